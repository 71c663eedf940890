// Package series holds the page-level aggregate: the descriptor recovered from
// a page heading and the episodes listed on that page.
package series

import (
	"fmt"

	"github.com/brogergvhs/wikiep/internal/episode"
)

type Descriptor struct {
	Name      string  `json:"name" yaml:"name"`
	Subtitle  string  `json:"subtitle" yaml:"subtitle"`
	FullName  string  `json:"full_name" yaml:"full_name"`
	GroupType *string `json:"group_type,omitempty" yaml:"group_type,omitempty"`
	GroupNum  *int    `json:"group_num,omitempty" yaml:"group_num,omitempty"`
}

type Result struct {
	Descriptor `yaml:",inline"`
	Episodes   []episode.Episode `json:"episodes" yaml:"episodes"`

	// Warnings are non-fatal extraction diagnostics for the page.
	Warnings []string `json:"-" yaml:"-"`
}

// Assemble stamps the series name into every episode and wraps the rows in a
// Result. Row order is preserved.
func Assemble(desc Descriptor, episodes []episode.Episode, warnings []string) *Result {
	out := make([]episode.Episode, len(episodes))
	for i, e := range episodes {
		e.Program = desc.Name
		out[i] = e
	}

	return &Result{
		Descriptor: desc,
		Episodes:   out,
		Warnings:   warnings,
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("Series(%q (%d episodes))", r.FullName, len(r.Episodes))
}
