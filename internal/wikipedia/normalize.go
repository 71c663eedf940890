package wikipedia

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/brogergvhs/wikiep/internal/episode"
	"golang.org/x/text/unicode/norm"
)

var spaceReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u200a", "",
)

var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'“':  '”',
	'‘':  '’',
}

func cleanText(raw string) string {
	return strings.TrimSpace(spaceReplacer.Replace(norm.NFC.String(raw)))
}

// NormalizeText cleans a cell and strips one matched pair of outer quotes.
func NormalizeText(raw string) string {
	return stripOuterQuotes(cleanText(raw))
}

// NormalizeValue normalizes a cell classified as attr. number_* attributes
// become integers when the text parses and stay text otherwise.
func NormalizeValue(raw, attr string) episode.Value {
	s := NormalizeText(raw)

	if strings.HasPrefix(attr, "number_") {
		if n, err := strconv.Atoi(s); err == nil {
			return episode.Int(n)
		}
	}

	return episode.String(s)
}

func stripOuterQuotes(s string) string {
	open, n := utf8.DecodeRuneInString(s)
	want, ok := quotePairs[open]
	if !ok {
		return s
	}

	end, m := utf8.DecodeLastRuneInString(s)
	if len(s) < n+m || end != want {
		return s
	}

	return strings.TrimSpace(s[n : len(s)-m])
}
