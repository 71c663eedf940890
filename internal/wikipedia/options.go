package wikipedia

import "fmt"

type TableMode string

const (
	// TablesSingle requires exactly one episode table per page.
	TablesSingle TableMode = "single"
	// TablesAll extracts every episode table in document order.
	TablesAll TableMode = "all"
)

type SynopsisMode string

const (
	// SynopsisSibling reads the synopsis from the row following each episode row.
	SynopsisSibling SynopsisMode = "sibling"
	// SynopsisPositional pairs synopsis cells with episode rows by index.
	// Any row without a synopsis shifts every later pairing.
	SynopsisPositional SynopsisMode = "positional"
)

type Options struct {
	Tables   TableMode
	Synopsis SynopsisMode
}

func DefaultOptions() Options {
	return Options{Tables: TablesSingle, Synopsis: SynopsisSibling}
}

func ParseTableMode(s string) (TableMode, error) {
	switch TableMode(s) {
	case "", TablesSingle:
		return TablesSingle, nil
	case TablesAll:
		return TablesAll, nil
	}
	return "", fmt.Errorf("unknown table mode %q (want single or all)", s)
}

func ParseSynopsisMode(s string) (SynopsisMode, error) {
	switch SynopsisMode(s) {
	case "", SynopsisSibling:
		return SynopsisSibling, nil
	case SynopsisPositional:
		return SynopsisPositional, nil
	}
	return "", fmt.Errorf("unknown synopsis mode %q (want sibling or positional)", s)
}
