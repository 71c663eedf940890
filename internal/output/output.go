// Package output renders extracted series in the supported formats.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/brogergvhs/wikiep/internal/episode"
	"github.com/brogergvhs/wikiep/internal/series"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatJSONL, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, jsonl, yaml or table)", s)
}

func (f Format) Ext() string {
	if f == FormatTable {
		return ".txt"
	}
	return "." + string(f)
}

// Write renders results to w. jsonl and table list episodes across all
// results sorted by program and episode number; json and yaml keep one object
// per series in the given order.
func Write(w io.Writer, f Format, results []*series.Result) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []*series.Result{}
		}
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSONL:
		eps := series.Flatten(results)
		series.SortEpisodes(eps)
		return WriteEpisodes(w, eps)
	case FormatTable:
		eps := series.Flatten(results)
		series.SortEpisodes(eps)
		_, err := io.WriteString(w, RenderTable(eps)+"\n")
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteEpisodes writes one JSON object per line.
func WriteEpisodes(w io.Writer, eps []episode.Episode) error {
	bw := bufio.NewWriter(w)
	for _, e := range eps {
		line, err := episode.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e, err)
		}
		_, _ = bw.Write(line)
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadEpisodes reads what WriteEpisodes wrote. Blank lines are skipped.
func ReadEpisodes(r io.Reader) ([]episode.Episode, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)

	var out []episode.Episode
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(trimSpace(b)) == 0 {
			continue
		}

		e, err := episode.Unmarshal(b)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, e)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func trimSpace(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t' || b[0] == '\r') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
