package output

import (
	"github.com/brogergvhs/wikiep/internal/episode"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable renders episodes as a rounded box table. The date column shows
// the air date, or the release date for streaming series.
func RenderTable(eps []episode.Episode) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Program", "No.", "Season No.", "Title", "Date"})

	for _, e := range eps {
		tw.AppendRow(table.Row{
			e.Program,
			valueText(e.NumberInProgram),
			valueText(e.NumberInSeries),
			e.Title,
			dateText(e),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 48},
	})

	return tw.Render()
}

func valueText(v *episode.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func dateText(e episode.Episode) string {
	switch {
	case e.Air != nil:
		return *e.Air
	case e.Release != nil:
		return *e.Release
	}
	return ""
}
