package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

// SetupInterruptHandler cancels ctx on the first SIGINT/SIGTERM so in-flight
// pages finish and no new ones start. A second signal removes leftover
// temporary output files under outputDir and exits.
func SetupInterruptHandler(ctx context.Context, outputDir string, w io.Writer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
			signal.Stop(sig)
			return
		}

		fmt.Fprintln(w, "\nInterrupt received. Finishing pages in flight, press Ctrl+C again to abort.")
		cancel()

		<-sig
		CleanupTempFiles(outputDir, w)
		RemoveIfEmpty(outputDir, w)
		fmt.Fprintln(w, "\nExiting due to interrupt.")

		os.Exit(1)
	}()

	return ctx, cancel
}

// CleanupTempFiles removes the dot-prefixed .tmp files left behind by an
// interrupted atomic write.
func CleanupTempFiles(outputDir string, w io.Writer) {
	if outputDir == "" {
		return
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !IsTempName(name) {
			continue
		}

		full := filepath.Join(outputDir, name)
		if err := os.Remove(full); err != nil {
			fmt.Fprintf(w, "Error cleaning up %s: %v\n", full, err)
		} else {
			fmt.Fprintf(w, "Removed %s\n", full)
		}
	}
}

func IsTempName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".tmp")
}

func RemoveIfEmpty(dir string, w io.Writer) {
	if dir == "" || dir == "." {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	if len(entries) == 0 {
		if err := os.Remove(dir); err == nil {
			fmt.Fprintf(w, "Removed empty output folder: %s\n", dir)
		}
	}
}
