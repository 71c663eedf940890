// Package episode defines the record produced for every row of an episode
// table. The attribute set is closed: only the ten names listed in Attributes
// can be assigned.
package episode

import (
	"encoding/json"
	"fmt"
)

const (
	AttrProgram         = "program"
	AttrSeries          = "series"
	AttrNumberInProgram = "number_in_program"
	AttrNumberInSeries  = "number_in_series"
	AttrTitle           = "title"
	AttrDirectors       = "directors"
	AttrWriters         = "writers"
	AttrRelease         = "release"
	AttrAir             = "air"
	AttrDescription     = "description"
)

var Attributes = []string{
	AttrProgram,
	AttrSeries,
	AttrNumberInProgram,
	AttrNumberInSeries,
	AttrTitle,
	AttrDirectors,
	AttrWriters,
	AttrRelease,
	AttrAir,
	AttrDescription,
}

// Episode is one row of an episode table. Nil pointers are attributes the row
// did not provide, which is distinct from an empty cell.
type Episode struct {
	Program         string  `json:"program" yaml:"program"`
	Series          *Value  `json:"series,omitempty" yaml:"series,omitempty"`
	NumberInProgram *Value  `json:"number_in_program,omitempty" yaml:"number_in_program,omitempty"`
	NumberInSeries  *Value  `json:"number_in_series,omitempty" yaml:"number_in_series,omitempty"`
	Title           string  `json:"title" yaml:"title"`
	Directors       *string `json:"directors,omitempty" yaml:"directors,omitempty"`
	Writers         *string `json:"writers,omitempty" yaml:"writers,omitempty"`
	Release         *string `json:"release,omitempty" yaml:"release,omitempty"`
	Air             *string `json:"air,omitempty" yaml:"air,omitempty"`
	Description     *string `json:"description,omitempty" yaml:"description,omitempty"`
}

func IsAttribute(name string) bool {
	for _, a := range Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// Set assigns v to the named attribute. It reports false and leaves the
// episode untouched when attr is not one of Attributes.
func (e *Episode) Set(attr string, v Value) bool {
	switch attr {
	case AttrProgram:
		e.Program = v.String()
	case AttrSeries:
		e.Series = &v
	case AttrNumberInProgram:
		e.NumberInProgram = &v
	case AttrNumberInSeries:
		e.NumberInSeries = &v
	case AttrTitle:
		e.Title = v.String()
	case AttrDirectors:
		e.Directors = ptr(v.String())
	case AttrWriters:
		e.Writers = ptr(v.String())
	case AttrRelease:
		e.Release = ptr(v.String())
	case AttrAir:
		e.Air = ptr(v.String())
	case AttrDescription:
		e.Description = ptr(v.String())
	default:
		return false
	}
	return true
}

func (e Episode) String() string {
	return fmt.Sprintf("Episode(program=%q, title=%q)", e.Program, e.Title)
}

func Marshal(e Episode) ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal decodes an episode written by Marshal. Keys outside the attribute
// set are ignored.
func Unmarshal(data []byte) (Episode, error) {
	var e Episode
	if err := json.Unmarshal(data, &e); err != nil {
		return Episode{}, fmt.Errorf("decode episode: %w", err)
	}
	return e, nil
}

func ptr(s string) *string {
	return &s
}
