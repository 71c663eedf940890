package ui

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress tracks fetched pages. A nil *Progress is valid and does nothing,
// which is what NewProgress returns when output is not a terminal.
type Progress struct {
	p   *mpb.Progress
	bar *mpb.Bar

	bytes  atomic.Int64
	failed atomic.Int64
	start  time.Time
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewProgress(total int, enabled bool) *Progress {
	if !enabled || !IsTerminal(os.Stderr) {
		return nil
	}
	return newProgressTo(os.Stderr, total)
}

func newProgressTo(w io.Writer, total int) *Progress {
	pr := &Progress{
		p: mpb.New(
			mpb.WithWidth(40),
			mpb.WithOutput(w),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		start: time.Now(),
	}

	pr.bar = pr.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name("pages  "),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				return " | " + Human(pr.bytes.Load())
			}),
			decor.Any(func(_ decor.Statistics) string {
				if n := pr.failed.Load(); n > 0 {
					return fmt.Sprintf(" | %d failed", n)
				}
				return ""
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | %ds", int(time.Since(pr.start).Seconds()))
			}),
		),
	)

	return pr
}

// PageDone records one finished page, successful or not.
func (pr *Progress) PageDone(bytes int64, failed bool) {
	if pr == nil {
		return
	}
	pr.bytes.Add(bytes)
	if failed {
		pr.failed.Add(1)
	}
	pr.bar.Increment()
}

func (pr *Progress) Close() {
	if pr == nil {
		return
	}
	if !pr.bar.Completed() {
		pr.bar.Abort(false)
	}
	pr.p.Wait()
}
