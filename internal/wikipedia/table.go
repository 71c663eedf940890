package wikipedia

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/wikiep/internal/episode"
)

const (
	episodeTableSelector = "table.wikiepisodetable"
	episodeRowSelector   = "tr.vevent"
	synopsisSelector     = "td.description"
)

// ExtractEpisodes returns the episodes listed in the page's episode tables
// in document order, together with non-fatal warnings.
func ExtractEpisodes(doc *goquery.Document, pageID string, opts Options) ([]episode.Episode, []string, error) {
	tables := doc.Find(episodeTableSelector)

	switch n := tables.Length(); {
	case n == 0:
		return nil, nil, &StructuralError{Page: pageID, Err: ErrNoEpisodeTable}
	case n > 1 && opts.Tables != TablesAll:
		return nil, nil, &StructuralError{Page: pageID, Err: fmt.Errorf("%w: %d tables, expected 1", ErrMultipleTables, n)}
	}

	var (
		out      []episode.Episode
		warnings []string
		firstErr error
	)

	tables.Each(func(i int, table *goquery.Selection) {
		eps, warn, err := extractTable(table, pageID, opts.Synopsis)
		warnings = append(warnings, warn...)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			warnings = append(warnings, fmt.Sprintf("table %d skipped: %v", i+1, err))
			return
		}
		out = append(out, eps...)
	})

	// A broken table only costs the page when nothing else was extracted.
	if firstErr != nil && (tables.Length() == 1 || len(out) == 0) {
		return nil, nil, firstErr
	}

	return out, warnings, nil
}

func extractTable(table *goquery.Selection, pageID string, mode SynopsisMode) ([]episode.Episode, []string, error) {
	var headings []string
	table.Find("tr").First().ChildrenFiltered("th").Each(func(_ int, th *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(th.Text()))
	})
	if len(headings) == 0 {
		return nil, nil, &StructuralError{Page: pageID, Err: ErrNoColumns}
	}

	attrs := ClassifyHeadings(headings)
	rows := table.Find(episodeRowSelector)
	synopses := table.Find(synopsisSelector)

	var warnings []string
	if synopses.Length() != rows.Length() {
		warnings = append(warnings, fmt.Sprintf(
			"%s: number of episode rows (%d) does not match number of synopsis cells (%d)",
			pageID, rows.Length(), synopses.Length()))
	}

	out := make([]episode.Episode, 0, rows.Length())
	var rowErr error

	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		var synopsis *string
		switch mode {
		case SynopsisPositional:
			if i < synopses.Length() {
				s := synopses.Eq(i).Text()
				synopsis = &s
			}
		default:
			synopsis = siblingSynopsis(row)
		}

		e, err := ExtractRow(rowCells(row), attrs, synopsis)
		if err != nil {
			var shape *RowShapeError
			if errors.As(err, &shape) {
				shape.Page = pageID
				shape.Row = i + 1
			}
			rowErr = err
			return false
		}

		out = append(out, e)
		return true
	})

	if rowErr != nil {
		return nil, warnings, rowErr
	}

	return out, warnings, nil
}

// rowCells returns the row's leading header cell followed by its data cells.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	if th := row.ChildrenFiltered("th").First(); th.Length() > 0 {
		cells = append(cells, th.Text())
	}
	row.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, td.Text())
	})
	return cells
}

func siblingSynopsis(row *goquery.Selection) *string {
	next := row.Next()
	if next.Length() == 0 || next.HasClass("vevent") {
		return nil
	}

	cell := next.Find(synopsisSelector).First()
	if cell.Length() == 0 {
		return nil
	}

	s := cell.Text()
	return &s
}
