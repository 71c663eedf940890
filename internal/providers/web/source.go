package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brogergvhs/wikiep/internal/providers"
)

// maxPageSize bounds a single page body; episode lists are well under this.
const maxPageSize = 32 << 20

type Source struct {
	client   *http.Client
	base     string
	attempts int
	backoff  time.Duration
}

func NewSource(c *http.Client, base string, attempts int) *Source {
	if base == "" {
		base = providers.DefaultWikiBase
	}

	return &Source{
		client:   c,
		base:     base,
		attempts: attempts,
		backoff:  500 * time.Millisecond,
	}
}

func (s *Source) Fetch(ctx context.Context, ref string) (providers.Page, error) {
	target := providers.ResolveReference(s.base, ref)
	page := providers.Page{
		Ref:      ref,
		Location: target,
		Title:    providers.TitleFromURL(target),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return page, fmt.Errorf("fetch %s: %w", target, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := DoWithRetry(s.client, req, s.attempts, s.backoff)
	if err != nil {
		return page, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return page, fmt.Errorf("fetch %s: HTTP %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return page, fmt.Errorf("fetch %s: read body: %w", target, err)
	}

	page.Body = body
	return page, nil
}
