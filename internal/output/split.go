package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/brogergvhs/wikiep/internal/episode"
	"github.com/brogergvhs/wikiep/internal/series"
	"github.com/samber/lo"
)

var reUnderscore = regexp.MustCompile(`_+`)

// FileName returns a filesystem-safe name for a series, e.g.
// "The Big Bang Theory (season 1)" becomes "the_big_bang_theory_season_1".
func FileName(fullName string) string {
	s := strings.ToLower(fullName)

	repl := strings.NewReplacer(
		"•", "_",
		"-", "_",
		"—", "_",
		"–", "_",
		"/", "_",
		"\\", "_",
		".", "_",
		":", "_",
		" ", "_",
		"(", "",
		")", "",
	)
	s = repl.Replace(s)

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}
	s = reUnderscore.ReplaceAllString(string(clean), "_")

	s = strings.Trim(s, "_")
	if s == "" {
		return "series"
	}
	return s
}

// WriteSplit writes each result to its own file in dir and returns the paths
// written. Results that map to the same name get a numeric suffix.
func WriteSplit(dir string, f Format, results []*series.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}

	used := map[string]int{}
	var paths []string

	for _, r := range results {
		base := FileName(r.FullName)
		used[base]++
		if n := used[base]; n > 1 {
			base = fmt.Sprintf("%s_%d", base, n)
		}

		path := filepath.Join(dir, base+f.Ext())
		if err := writeFile(path, f, []*series.Result{r}); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteFile renders results into path, replacing any existing file.
func WriteFile(path string, f Format, results []*series.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output folder: %w", err)
		}
	}
	return writeFile(path, f, results)
}

func writeFile(path string, f Format, results []*series.Result) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, f, results); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}

// GroupEpisodes rebuilds per-program results from a flat episode list, in
// order of first appearance. Only the program name is known, so it stands
// in for the full page name.
func GroupEpisodes(eps []episode.Episode) []*series.Result {
	groups := lo.GroupBy(eps, func(e episode.Episode) string { return e.Program })
	programs := lo.Uniq(lo.Map(eps, func(e episode.Episode, _ int) string { return e.Program }))

	out := make([]*series.Result, 0, len(programs))
	for _, p := range programs {
		out = append(out, &series.Result{
			Descriptor: series.Descriptor{Name: p, FullName: p},
			Episodes:   groups[p],
		})
	}
	return out
}
