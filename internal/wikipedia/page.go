package wikipedia

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/wikiep/internal/series"
)

// ParsePage parses one page's markup. pageID is only used in diagnostics.
func ParsePage(r io.Reader, pageID string, opts Options) (*series.Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: parse markup: %w", pageID, err)
	}

	return ParseDocument(doc, pageID, opts)
}

// ParseDocument extracts the series from an already parsed page. Citation
// markers are removed from the document first so that "[1]" style footnotes
// do not end up in cell values.
func ParseDocument(doc *goquery.Document, pageID string, opts Options) (*series.Result, error) {
	desc, err := ParseHeader(doc, pageID)
	if err != nil {
		return nil, err
	}

	doc.Find("sup.reference").Remove()

	episodes, warnings, err := ExtractEpisodes(doc, pageID, opts)
	if err != nil {
		return nil, err
	}

	return series.Assemble(desc, episodes, warnings), nil
}
