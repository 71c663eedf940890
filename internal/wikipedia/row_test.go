package wikipedia

import (
	"errors"
	"testing"

	"github.com/brogergvhs/wikiep/internal/episode"
)

func TestExtractRowScenario(t *testing.T) {
	attrs := ClassifyHeadings([]string{"No.", "No.", "Title", "Directed by", "Written by", "Original air date"})
	cells := []string{"1", "1", "\"Pilot\"", "J. Doe", "A. Writer", "Sep 24, 2007"}

	e, err := ExtractRow(cells, attrs, nil)
	if err != nil {
		t.Fatalf("ExtractRow() error = %v", err)
	}

	if e.NumberInProgram == nil || *e.NumberInProgram != episode.Int(1) {
		t.Errorf("number_in_program = %v", e.NumberInProgram)
	}
	if e.NumberInSeries == nil || *e.NumberInSeries != episode.Int(1) {
		t.Errorf("number_in_series = %v", e.NumberInSeries)
	}
	if e.Title != "Pilot" {
		t.Errorf("title = %q", e.Title)
	}
	checkStr(t, "directors", e.Directors, "J. Doe")
	checkStr(t, "writers", e.Writers, "A. Writer")
	checkStr(t, "air", e.Air, "Sep 24, 2007")

	if e.Release != nil || e.Description != nil || e.Series != nil {
		t.Errorf("unexpected optional fields: %+v", e)
	}
}

func TestExtractRowSynopsis(t *testing.T) {
	synopsis := "  Leonard and Sheldon meet Penny.\n"

	e, err := ExtractRow([]string{"1", "Pilot"}, []string{"number_in_program", "title"}, &synopsis)
	if err != nil {
		t.Fatal(err)
	}

	checkStr(t, "description", e.Description, "Leonard and Sheldon meet Penny.")
}

func TestExtractRowDropsUnknownColumns(t *testing.T) {
	e, err := ExtractRow(
		[]string{"1", "Pilot", "9.52"},
		[]string{"number_in_program", "title", "U.S. viewers(millions)"},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}

	want := episode.Episode{NumberInProgram: e.NumberInProgram, Title: "Pilot"}
	if e != want {
		t.Errorf("got %+v, want only number and title", e)
	}
}

func TestExtractRowShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
	}{
		{"fewer cells", []string{"1"}},
		{"more cells", []string{"1", "Pilot", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractRow(tt.cells, []string{"number_in_program", "title"}, nil)

			var shape *RowShapeError
			if !errors.As(err, &shape) {
				t.Fatalf("error = %v, want *RowShapeError", err)
			}
			if shape.Cells != len(tt.cells) || shape.Columns != 2 {
				t.Errorf("shape = %+v", shape)
			}
		})
	}
}

func checkStr(t *testing.T, name string, got *string, want string) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is absent, want %q", name, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %q, want %q", name, *got, want)
	}
}
