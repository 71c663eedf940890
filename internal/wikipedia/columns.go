package wikipedia

import (
	"strings"

	"github.com/brogergvhs/wikiep/internal/episode"
)

// ClassifyHeading maps one heading cell to an episode attribute. Headings
// that match nothing are returned verbatim so the column keeps its identity.
func ClassifyHeading(heading string) string {
	text := strings.ToLower(heading)

	switch {
	case strings.HasPrefix(text, "no."):
		return episode.AttrNumberInProgram
	case strings.Contains(text, "title"):
		return episode.AttrTitle
	case strings.Contains(text, "directed") || strings.Contains(text, "director"):
		return episode.AttrDirectors
	case strings.Contains(text, "writer") || strings.Contains(text, "written"):
		return episode.AttrWriters
	case strings.Contains(text, "release"):
		return episode.AttrRelease
	case strings.Contains(text, "air") || strings.Contains(text, "broadcast"):
		return episode.AttrAir
	}

	return heading
}

// ClassifyHeadings classifies a header row. Tables that number episodes both
// overall and within the season put the season number second, so a second
// column that looks like the overall number is renamed.
func ClassifyHeadings(headings []string) []string {
	attrs := make([]string, len(headings))
	for i, h := range headings {
		attrs[i] = ClassifyHeading(h)
	}

	if len(attrs) > 1 && attrs[1] == episode.AttrNumberInProgram {
		attrs[1] = episode.AttrNumberInSeries
	}

	return attrs
}
