package wikipedia

import "github.com/brogergvhs/wikiep/internal/episode"

// ExtractRow zips one row's cells against the classified columns. Columns
// classified under a raw heading are not episode attributes and are dropped.
func ExtractRow(cells, attrs []string, synopsis *string) (episode.Episode, error) {
	if len(cells) != len(attrs) {
		return episode.Episode{}, &RowShapeError{Cells: len(cells), Columns: len(attrs)}
	}

	var e episode.Episode
	for i, attr := range attrs {
		e.Set(attr, NormalizeValue(cells[i], attr))
	}

	if synopsis != nil {
		e.Set(episode.AttrDescription, episode.String(cleanText(*synopsis)))
	}

	return e, nil
}
