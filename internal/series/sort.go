package series

import (
	"sort"

	"github.com/brogergvhs/wikiep/internal/episode"
)

// Flatten concatenates the episodes of all results in result order.
func Flatten(results []*Result) []episode.Episode {
	var out []episode.Episode
	for _, r := range results {
		out = append(out, r.Episodes...)
	}
	return out
}

// SortEpisodes orders episodes by program, then overall number, then number
// within the season. Integers sort before text fallbacks, absent numbers last.
func SortEpisodes(eps []episode.Episode) {
	sort.SliceStable(eps, func(i, j int) bool {
		a, b := eps[i], eps[j]
		if a.Program != b.Program {
			return a.Program < b.Program
		}
		if c := compareNumber(a.NumberInProgram, b.NumberInProgram); c != 0 {
			return c < 0
		}
		return compareNumber(a.NumberInSeries, b.NumberInSeries) < 0
	})
}

// SortResults orders results by full page name.
func SortResults(results []*Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FullName < results[j].FullName
	})
}

func compareNumber(a, b *episode.Value) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.IsInt && b.IsInt:
		return a.Int - b.Int
	case a.IsInt:
		return -1
	case b.IsInt:
		return 1
	case a.Text < b.Text:
		return -1
	case a.Text > b.Text:
		return 1
	}
	return 0
}
