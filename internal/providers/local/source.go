// Package local reads saved pages from disk so extraction can run offline.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brogergvhs/wikiep/internal/providers"
)

type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) Fetch(ctx context.Context, ref string) (providers.Page, error) {
	page := providers.Page{
		Ref:      ref,
		Location: ref,
		Title:    strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)),
	}

	if err := ctx.Err(); err != nil {
		return page, err
	}

	body, err := os.ReadFile(ref)
	if err != nil {
		return page, fmt.Errorf("read %s: %w", ref, err)
	}

	page.Body = body
	return page, nil
}
