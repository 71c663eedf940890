package ui

import (
	"fmt"
	"sync/atomic"
)

type Stats struct {
	PagesOK     atomic.Int64
	PagesFailed atomic.Int64
	Episodes    atomic.Int64
	Warnings    atomic.Int64
	Bytes       atomic.Int64
}

// Human formats a byte count with binary units.
func Human(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
