package chunker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	hash, err := GetFileHash(path)
	if err != nil {
		t.Fatalf("GetFileHash failed: %v", err)
	}
	// sha256("hello world")
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if hash != want {
		t.Errorf("GetFileHash = %s, want %s", hash, want)
	}
}

func TestGetHash_Deterministic(t *testing.T) {
	a, err := GetHash(strings.NewReader("same bytes"))
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}
	b, err := GetHash(strings.NewReader("same bytes"))
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}
	if a != b {
		t.Errorf("hashes differ for identical input: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestGetFileHash_Directory(t *testing.T) {
	if _, err := GetFileHash(t.TempDir()); err != ErrExpectedFile {
		t.Errorf("GetFileHash on a directory: error = %v, want ErrExpectedFile", err)
	}
}
