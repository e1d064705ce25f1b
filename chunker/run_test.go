package chunker

import (
	"bytes"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcess_EndToEnd(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	// One oversized file, three groupable ones.
	big := make([]byte, 2500)
	rand.Read(big)
	os.WriteFile(filepath.Join(inputDir, "big.bin"), big, 0644)
	writeSized(t, filepath.Join(inputDir, "a.txt"), 400)
	writeSized(t, filepath.Join(inputDir, "b.txt"), 400)
	writeSized(t, filepath.Join(inputDir, "c.txt"), 400)

	res, err := Process(inputDir, outDir, Options{Threshold: 1000})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(res.Rejoinable) != 3 {
		t.Errorf("got %d rejoinable chunks, want 3 (ceil(2500/1000))", len(res.Rejoinable))
	}
	if len(res.Independent) != 2 {
		t.Errorf("got %d independent chunks, want 2 ([400,400] then [400])", len(res.Independent))
	}
	for _, name := range res.Rejoinable {
		if !strings.HasPrefix(name, "big.bin.part") {
			t.Errorf("unexpected rejoinable chunk name %q", name)
		}
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("chunk %s missing on disk: %v", name, err)
		}
	}
	if res.BundlePath != filepath.Join(outDir, BundleName) {
		t.Errorf("bundle path = %q, want it in the output directory", res.BundlePath)
	}
}

func TestProcess_RoundTrip(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	content := make([]byte, 3333)
	rand.Read(content)
	os.WriteFile(filepath.Join(inputDir, "movie.dat"), content, 0644)
	os.WriteFile(filepath.Join(inputDir, "note.txt"), []byte("hello"), 0644)
	os.MkdirAll(filepath.Join(inputDir, "docs"), 0755)
	os.WriteFile(filepath.Join(inputDir, "docs", "readme.md"), []byte("# docs"), 0644)

	res, err := Process(inputDir, outDir, Options{Threshold: 1000})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if err := VerifyBundle(res.BundlePath, inputDir); err != nil {
		t.Errorf("round trip failed: %v", err)
	}
}

func TestProcess_RoundTripCollidingBaseNames(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	// Same base name in two folders, different payloads. Grouping renames
	// one of them; verification must still match by content.
	os.MkdirAll(filepath.Join(inputDir, "docs"), 0755)
	os.MkdirAll(filepath.Join(inputDir, "img"), 0755)
	os.WriteFile(filepath.Join(inputDir, "docs", "report.txt"), []byte("quarterly numbers"), 0644)
	os.WriteFile(filepath.Join(inputDir, "img", "report.txt"), []byte("chart bytes"), 0644)

	res, err := Process(inputDir, outDir, Options{Threshold: 1000})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if err := VerifyBundle(res.BundlePath, inputDir); err != nil {
		t.Errorf("round trip with colliding base names failed: %v", err)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	res, err := Process(inputDir, outDir, Options{Threshold: 1000})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(res.Rejoinable) != 0 || len(res.Independent) != 0 {
		t.Errorf("empty input produced chunks: %v / %v", res.Rejoinable, res.Independent)
	}
	if _, err := os.Stat(res.BundlePath); err != nil {
		t.Errorf("bundle missing for empty input: %v", err)
	}
}

func TestProcess_InvalidThreshold(t *testing.T) {
	if _, err := Process(t.TempDir(), t.TempDir(), Options{}); err != ErrInvalidThreshold {
		t.Errorf("Process with zero threshold: error = %v, want ErrInvalidThreshold", err)
	}
}

func TestVerifyBundle_DetectsTampering(t *testing.T) {
	inputDir := t.TempDir()
	outDir := t.TempDir()

	os.WriteFile(filepath.Join(inputDir, "note.txt"), []byte("hello"), 0644)

	res, err := Process(inputDir, outDir, Options{Threshold: 1000})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// Changing the input after packing must fail verification.
	os.WriteFile(filepath.Join(inputDir, "note.txt"), []byte("tampered"), 0644)
	if err := VerifyBundle(res.BundlePath, inputDir); err == nil {
		t.Error("VerifyBundle passed on modified input, want mismatch error")
	}

	// A missing extra file must fail too.
	os.WriteFile(filepath.Join(inputDir, "note.txt"), []byte("hello"), 0644)
	os.WriteFile(filepath.Join(inputDir, "extra.txt"), bytes.Repeat([]byte{'y'}, 10), 0644)
	if err := VerifyBundle(res.BundlePath, inputDir); err == nil {
		t.Error("VerifyBundle passed with an extra input file, want mismatch error")
	}
}
