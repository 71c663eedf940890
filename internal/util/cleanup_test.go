package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTempName(t *testing.T) {
	tests := map[string]bool{
		".episodes.json.123456.tmp": true,
		"episodes.json":             false,
		".hidden":                   false,
		"notes.tmp":                 false,
	}

	for name, want := range tests {
		if got := IsTempName(name); got != want {
			t.Errorf("IsTempName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestCleanupTempFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".out.json.1.tmp", "out.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	CleanupTempFiles(dir, &buf)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		t.Errorf("remaining entries = %v", entries)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Removed")) {
		t.Errorf("no removal reported: %q", buf.String())
	}
}

func TestRemoveIfEmpty(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	full := filepath.Join(root, "full")
	_ = os.Mkdir(empty, 0o755)
	_ = os.Mkdir(full, 0o755)
	_ = os.WriteFile(filepath.Join(full, "a"), nil, 0o644)

	var buf bytes.Buffer
	RemoveIfEmpty(empty, &buf)
	RemoveIfEmpty(full, &buf)

	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Errorf("empty dir still present: %v", err)
	}
	if _, err := os.Stat(full); err != nil {
		t.Errorf("non-empty dir removed: %v", err)
	}
}
