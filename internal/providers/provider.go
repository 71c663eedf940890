package providers

import "context"

// Page is one fetched page before extraction.
type Page struct {
	Ref      string // reference as given by the user
	Location string // resolved URL or file path
	Title    string // readable page title for diagnostics
	Body     []byte
}

type Source interface {
	Fetch(ctx context.Context, ref string) (Page, error)
}
