package wikipedia

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parseFixture(t *testing.T, name string) *os.File {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParsePage(t *testing.T) {
	res, err := ParsePage(parseFixture(t, "big_bang_theory_season_1.html"), "bbt1", DefaultOptions())
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}

	if res.Name != "The Big Bang Theory" || res.FullName != "The Big Bang Theory (season 1)" {
		t.Errorf("descriptor = %+v", res.Descriptor)
	}
	if res.GroupNum == nil || *res.GroupNum != 1 {
		t.Errorf("GroupNum = %v", res.GroupNum)
	}
	if len(res.Episodes) != 3 {
		t.Fatalf("len(Episodes) = %d, want 3", len(res.Episodes))
	}

	for _, e := range res.Episodes {
		if e.Program != "The Big Bang Theory" {
			t.Errorf("program = %q", e.Program)
		}
		if e.Description != nil && strings.Contains(*e.Description, "[") {
			t.Errorf("citation left in description: %q", *e.Description)
		}
	}
}

func TestParsePageSynopsisMismatch(t *testing.T) {
	res, err := ParsePage(parseFixture(t, "good_omens.html"), "good-omens", DefaultOptions())
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}

	if len(res.Episodes) != 2 {
		t.Fatalf("len(Episodes) = %d, want 2", len(res.Episodes))
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "good-omens") {
		t.Errorf("Warnings = %v", res.Warnings)
	}
	if res.Episodes[1].Description != nil {
		t.Errorf("second episode description = %q, want absent", *res.Episodes[1].Description)
	}
	checkStr(t, "release", res.Episodes[0].Release, "31 May 2019")
	if res.GroupType == nil || *res.GroupType != "TV series" || res.GroupNum != nil {
		t.Errorf("group = %v / %v", res.GroupType, res.GroupNum)
	}
}

func TestParsePageStructuralFailures(t *testing.T) {
	tests := []struct {
		name string
		html string
		want error
	}{
		{"no heading", episodeTable(vevent("1", "A")), ErrNoHeading},
		{"no table", heading + "<p>nothing here</p>", ErrNoEpisodeTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParsePage(strings.NewReader(tt.html), "page", DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if res != nil {
				t.Errorf("result = %v, want nil", res)
			}
			if !strings.HasPrefix(err.Error(), "page: ") {
				t.Errorf("error %q does not name the page", err)
			}
		})
	}
}
