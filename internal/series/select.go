package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brogergvhs/wikiep/internal/episode"
)

// Selection picks episodes by their overall number. It is a comma-separated
// list of numbers, inclusive ranges (5-12) or raw labels (1a).
type Selection struct {
	ranges [][2]int
	labels map[string]bool
}

func ParseSelection(expr string) (*Selection, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	s := &Selection{labels: map[string]bool{}}
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := atoi(lo)
			end, err2 := atoi(hi)
			if err1 != nil || err2 != nil || start <= 0 || start > end {
				return nil, fmt.Errorf("invalid episode range %q", part)
			}
			s.ranges = append(s.ranges, [2]int{start, end})
			continue
		}

		if n, err := atoi(part); err == nil {
			s.ranges = append(s.ranges, [2]int{n, n})
			continue
		}
		s.labels[part] = true
	}

	return s, nil
}

// Match reports whether e's overall number is selected. A nil Selection
// matches everything; an episode without a number never matches.
func (s *Selection) Match(e episode.Episode) bool {
	if s == nil {
		return true
	}

	v := e.NumberInProgram
	if v == nil {
		return false
	}
	if !v.IsInt {
		return s.labels[v.Text]
	}

	for _, r := range s.ranges {
		if v.Int >= r[0] && v.Int <= r[1] {
			return true
		}
	}
	return s.labels[v.Text]
}

// Filter keeps the matching episodes of every result, in place.
func (s *Selection) Filter(results []*Result) {
	if s == nil {
		return
	}

	for _, r := range results {
		kept := r.Episodes[:0]
		for _, e := range r.Episodes {
			if s.Match(e) {
				kept = append(kept, e)
			}
		}
		r.Episodes = kept
	}
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
