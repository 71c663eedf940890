package providers

import "testing"

func TestResolveReference(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "absolute url kept",
			ref:  "https://en.wikipedia.org/wiki/Good_Omens_(TV_series)",
			want: "https://en.wikipedia.org/wiki/Good_Omens_(TV_series)",
		},
		{
			name: "underscored title",
			base: DefaultWikiBase,
			ref:  "The_Big_Bang_Theory_(season_1)",
			want: "https://en.wikipedia.org/wiki/The_Big_Bang_Theory_%28season_1%29",
		},
		{
			name: "spaced title",
			base: DefaultWikiBase,
			ref:  " The Big Bang Theory (season 1) ",
			want: "https://en.wikipedia.org/wiki/The_Big_Bang_Theory_%28season_1%29",
		},
		{
			name: "empty base falls back",
			ref:  "Good_Omens",
			want: "https://en.wikipedia.org/wiki/Good_Omens",
		},
		{
			name: "base without slash",
			base: "https://de.wikipedia.org/wiki",
			ref:  "Tatort",
			want: "https://de.wikipedia.org/wiki/Tatort",
		},
		{
			name: "title with colon",
			base: DefaultWikiBase,
			ref:  "Star Trek: Discovery (season 1)",
			want: "https://en.wikipedia.org/wiki/Star_Trek:_Discovery_%28season_1%29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveReference(tt.base, tt.ref); got != tt.want {
				t.Errorf("ResolveReference(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}

func TestTitleFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://en.wikipedia.org/wiki/Good_Omens_(TV_series)", "Good Omens (TV series)"},
		{"https://en.wikipedia.org/wiki/The_Big_Bang_Theory_%28season_1%29", "The Big Bang Theory (season 1)"},
		{"/tmp/pages/bbt.html", "bbt.html"},
		{"Plain title", "Plain title"},
	}

	for _, tt := range tests {
		if got := TitleFromURL(tt.in); got != tt.want {
			t.Errorf("TitleFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
