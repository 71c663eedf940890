package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "good_omens.html")
	if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	page, err := NewSource().Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(page.Body) != "<html></html>" || page.Title != "good_omens" || page.Location != path {
		t.Errorf("page = %+v", page)
	}
}

func TestFetchMissing(t *testing.T) {
	if _, err := NewSource().Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSource().Fetch(ctx, "whatever.html"); err != context.Canceled {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
