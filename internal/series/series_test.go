package series

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/brogergvhs/wikiep/internal/episode"
)

func num(n int) *episode.Value {
	v := episode.Int(n)
	return &v
}

func text(s string) *episode.Value {
	v := episode.String(s)
	return &v
}

func TestAssembleStampsProgram(t *testing.T) {
	desc := Descriptor{Name: "Good Omens", FullName: "Good Omens (TV series)", Subtitle: "(TV series)"}
	eps := []episode.Episode{
		{Title: "In the Beginning", NumberInProgram: num(1)},
		{Program: "stale", Title: "The Book", NumberInProgram: num(2)},
	}

	res := Assemble(desc, eps, []string{"warn"})

	if len(res.Episodes) != 2 {
		t.Fatalf("len(Episodes) = %d, want 2", len(res.Episodes))
	}
	for i, e := range res.Episodes {
		if e.Program != "Good Omens" {
			t.Errorf("episode %d program = %q, want %q", i, e.Program, "Good Omens")
		}
	}
	if res.Episodes[0].Title != "In the Beginning" || res.Episodes[1].Title != "The Book" {
		t.Errorf("row order not preserved: %v", res.Episodes)
	}
	if eps[1].Program != "stale" {
		t.Errorf("input slice mutated: %q", eps[1].Program)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestResultJSONShape(t *testing.T) {
	n := 1
	typ := "season"
	res := Assemble(Descriptor{
		Name:      "The Big Bang Theory",
		Subtitle:  "(season 1)",
		FullName:  "The Big Bang Theory (season 1)",
		GroupType: &typ,
		GroupNum:  &n,
	}, []episode.Episode{{Title: "Pilot"}}, []string{"ignored"})

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}

	s := string(data)
	for _, want := range []string{`"name":"The Big Bang Theory"`, `"group_num":1`, `"group_type":"season"`, `"episodes":[`} {
		if !strings.Contains(s, want) {
			t.Errorf("json %s missing %s", s, want)
		}
	}
	if strings.Contains(s, "ignored") {
		t.Errorf("warnings serialized: %s", s)
	}
}

func TestSortEpisodes(t *testing.T) {
	eps := []episode.Episode{
		{Program: "B", Title: "b2", NumberInProgram: num(2)},
		{Program: "A", Title: "a-none"},
		{Program: "A", Title: "a-text", NumberInProgram: text("1a")},
		{Program: "A", Title: "a10", NumberInProgram: num(10)},
		{Program: "A", Title: "a2", NumberInProgram: num(2)},
		{Program: "B", Title: "b1", NumberInProgram: num(1)},
	}

	SortEpisodes(eps)

	var got []string
	for _, e := range eps {
		got = append(got, e.Title)
	}

	want := "a2 a10 a-text a-none b1 b2"
	if strings.Join(got, " ") != want {
		t.Errorf("SortEpisodes() = %v, want %s", got, want)
	}
}

func TestSortEpisodesTieBreakBySeason(t *testing.T) {
	eps := []episode.Episode{
		{Program: "A", Title: "second", NumberInSeries: num(2)},
		{Program: "A", Title: "first", NumberInSeries: num(1)},
	}

	SortEpisodes(eps)

	if eps[0].Title != "first" {
		t.Errorf("got %s first, want first", eps[0].Title)
	}
}

func TestFlattenAndSortResults(t *testing.T) {
	results := []*Result{
		{Descriptor: Descriptor{FullName: "Z"}, Episodes: []episode.Episode{{Title: "z"}}},
		{Descriptor: Descriptor{FullName: "A"}, Episodes: []episode.Episode{{Title: "a1"}, {Title: "a2"}}},
	}

	SortResults(results)
	if results[0].FullName != "A" {
		t.Fatalf("SortResults() first = %q", results[0].FullName)
	}

	flat := Flatten(results)
	if len(flat) != 3 || flat[0].Title != "a1" || flat[2].Title != "z" {
		t.Errorf("Flatten() = %v", flat)
	}
}
