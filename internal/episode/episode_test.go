package episode

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func strp(s string) *string { return &s }

func valp(v Value) *Value { return &v }

func TestSetKnownAttributes(t *testing.T) {
	var e Episode

	for _, attr := range Attributes {
		if !e.Set(attr, String("x")) {
			t.Errorf("Set(%q) = false, want true", attr)
		}
	}

	if e.Program != "x" || e.Title != "x" {
		t.Errorf("program/title not set: %+v", e)
	}
	if e.Air == nil || *e.Air != "x" {
		t.Errorf("air not set: %v", e.Air)
	}
}

func TestSetUnknownAttributeIgnored(t *testing.T) {
	var e Episode

	if e.Set("Prod. code", String("3T7351")) {
		t.Fatal("Set(unknown) = true, want false")
	}
	if !reflect.DeepEqual(e, Episode{}) {
		t.Errorf("episode changed by unknown attribute: %+v", e)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ep   Episode
	}{
		{
			name: "minimal",
			ep:   Episode{Program: "Good Omens", Title: "In the Beginning"},
		},
		{
			name: "all fields",
			ep: Episode{
				Program:         "The Big Bang Theory",
				Series:          valp(Int(1)),
				NumberInProgram: valp(Int(1)),
				NumberInSeries:  valp(Int(1)),
				Title:           "Pilot",
				Directors:       strp("James Burrows"),
				Writers:         strp("Chuck Lorre & Bill Prady"),
				Release:         strp(""),
				Air:             strp("September 24, 2007"),
				Description:     strp("Leonard and Sheldon meet Penny."),
			},
		},
		{
			name: "non-numeric number",
			ep: Episode{
				Program:         "Star Trek: Discovery",
				NumberInProgram: valp(String("1a")),
				Title:           "The Vulcan Hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.ep)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			got, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if !reflect.DeepEqual(got, tt.ep) {
				t.Errorf("round trip mismatch\n got: %+v\nwant: %+v\njson: %s", got, tt.ep, data)
			}
		})
	}
}

func TestMarshalOmitsAbsent(t *testing.T) {
	data, err := Marshal(Episode{Program: "P", Title: "T", Release: strp("")})
	if err != nil {
		t.Fatal(err)
	}

	s := string(data)
	if strings.Contains(s, "air") || strings.Contains(s, "description") {
		t.Errorf("absent fields serialized: %s", s)
	}
	if !strings.Contains(s, `"release":""`) {
		t.Errorf("empty release dropped: %s", s)
	}
}

func TestMarshalNumberForms(t *testing.T) {
	data, err := Marshal(Episode{
		Program:         "P",
		Title:           "T",
		NumberInProgram: valp(Int(12)),
		NumberInSeries:  valp(String("TBA")),
	})
	if err != nil {
		t.Fatal(err)
	}

	s := string(data)
	if !strings.Contains(s, `"number_in_program":12`) {
		t.Errorf("integer not encoded as number: %s", s)
	}
	if !strings.Contains(s, `"number_in_series":"TBA"`) {
		t.Errorf("fallback not encoded as string: %s", s)
	}
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	got, err := Unmarshal([]byte(`{"program":"P","title":"T","viewers":"9.5"}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := Episode{Program: "P", Title: "T"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestUnmarshalRejectsBadNumber(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"program":"P","title":"T","number_in_program":[1]}`)); err == nil {
		t.Fatal("expected error for array number")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	ep := Episode{
		Program:         "P",
		NumberInProgram: valp(Int(3)),
		NumberInSeries:  valp(String("3b")),
		Title:           "T",
		Air:             strp("May 31, 2019"),
	}

	data, err := yaml.Marshal(ep)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var got Episode
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(got, ep) {
		t.Errorf("yaml round trip mismatch\n got: %+v\nwant: %+v\nyaml:\n%s", got, ep, data)
	}
}
