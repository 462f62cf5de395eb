package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blob")

	want := []byte("hello mapping")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(m.Bytes()); got != string(want) {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}

	if err := m.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	if err := m.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if len(m.Bytes()) != 0 {
		t.Errorf("Bytes() has %d bytes, want 0", len(m.Bytes()))
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
