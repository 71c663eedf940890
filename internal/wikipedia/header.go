package wikipedia

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/wikiep/internal/series"
)

var (
	subtitlePattern = regexp.MustCompile(`\A\((?P<type>.*?)(?:\s+(?P<num>\d+))?\)\z`)
	fullNamePattern = regexp.MustCompile(`\A(?P<name>.*?)\s+\((?P<type>.*?)(?:\s+(?P<num>\d+))?\)\z`)
)

// ParseHeader reads the series descriptor from the page's first heading. The
// italic part of the heading is the series name; what remains is the subtitle,
// e.g. "(season 2)" or "(TV series)".
func ParseHeader(doc *goquery.Document, pageID string) (series.Descriptor, error) {
	heading := doc.Find("#firstHeading").First()
	if heading.Length() == 0 {
		return series.Descriptor{}, &StructuralError{Page: pageID, Err: ErrNoHeading}
	}

	fullName := heading.Text()

	var name string
	if italic := heading.Find("i").First(); italic.Length() > 0 {
		name = italic.Text()
	} else {
		name = nameFromHeading(fullName)
	}

	desc := series.Descriptor{
		Name:     name,
		FullName: fullName,
		Subtitle: strings.TrimSpace(strings.Replace(fullName, name, "", 1)),
	}
	desc.GroupType, desc.GroupNum = parseGroup(desc.Subtitle)

	return desc, nil
}

// nameFromHeading handles headings without an italic series name by cutting
// a trailing parenthetical qualifier.
func nameFromHeading(heading string) string {
	heading = strings.TrimSpace(heading)
	if m := fullNamePattern.FindStringSubmatch(heading); m != nil {
		return m[fullNamePattern.SubexpIndex("name")]
	}
	return heading
}

func parseGroup(subtitle string) (*string, *int) {
	m := subtitlePattern.FindStringSubmatch(subtitle)
	if m == nil {
		return nil, nil
	}

	typ := m[subtitlePattern.SubexpIndex("type")]

	raw := m[subtitlePattern.SubexpIndex("num")]
	if raw == "" {
		return &typ, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return &typ, nil
	}

	return &typ, &n
}
