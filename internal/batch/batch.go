// Package batch fetches and extracts many pages concurrently. Every page is
// an independent task: a page that fails to fetch or extract is recorded in
// its Outcome and never stops the others.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/brogergvhs/wikiep/internal/providers"
	"github.com/brogergvhs/wikiep/internal/series"
	"github.com/brogergvhs/wikiep/internal/ui"
	"github.com/brogergvhs/wikiep/internal/wikipedia"
	"github.com/samber/lo"
)

type Outcome struct {
	Ref      string
	Location string
	Bytes    int
	Result   *series.Result
	Err      error
}

type Options struct {
	Workers  int
	Extract  wikipedia.Options
	Progress *ui.Progress
	Log      *ui.Logger
}

// Run processes refs with at most opts.Workers pages in flight and returns one
// Outcome per ref, in input order, once every task has finished. References
// not yet started when ctx is cancelled fail with the context error.
func Run(ctx context.Context, src providers.Source, refs []string, opts Options) []Outcome {
	outcomes := make([]Outcome, len(refs))

	sem := make(chan struct{}, max(1, opts.Workers))
	var wg sync.WaitGroup

	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			outcomes[i] = Outcome{Ref: ref, Err: err}
			continue
		}

		select {
		case <-ctx.Done():
			outcomes[i] = Outcome{Ref: ref, Err: ctx.Err()}
			continue
		case sem <- struct{}{}:
		}

		i, ref := i, ref
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			outcomes[i] = process(ctx, src, ref, opts)
			opts.Progress.PageDone(int64(outcomes[i].Bytes), outcomes[i].Err != nil)
		}()
	}
	wg.Wait()

	return outcomes
}

func process(ctx context.Context, src providers.Source, ref string, opts Options) (out Outcome) {
	out.Ref = ref

	defer func() {
		if r := recover(); r != nil {
			out.Result = nil
			out.Err = fmt.Errorf("%s: extraction panicked: %v", ref, r)
		}
	}()

	page, err := src.Fetch(ctx, ref)
	out.Location = page.Location
	if err != nil {
		out.Err = err
		return out
	}
	out.Bytes = len(page.Body)

	if opts.Log != nil {
		opts.Log.Debugf("fetched %s (%s)\n", page.Location, ui.Human(int64(len(page.Body))))
	}

	res, err := wikipedia.ParsePage(bytes.NewReader(page.Body), page.Location, opts.Extract)
	if err != nil {
		out.Err = err
		return out
	}

	out.Result = res
	return out
}

// Results returns the successful results in outcome order.
func Results(outcomes []Outcome) []*series.Result {
	return lo.FilterMap(outcomes, func(o Outcome, _ int) (*series.Result, bool) {
		return o.Result, o.Err == nil && o.Result != nil
	})
}

// Failures returns the outcomes that carry an error.
func Failures(outcomes []Outcome) []Outcome {
	return lo.Filter(outcomes, func(o Outcome, _ int) bool {
		return o.Err != nil
	})
}
