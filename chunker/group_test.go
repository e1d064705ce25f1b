package chunker

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestGroupFiles(t *testing.T) {
	rec := func(name string, size int64) FileRecord {
		return FileRecord{Path: name, Size: size}
	}

	tests := []struct {
		name      string
		files     []FileRecord
		threshold int64
		want      [][]string
	}{
		{
			name:      "three forties at one hundred",
			files:     []FileRecord{rec("a", 40), rec("b", 40), rec("c", 40)},
			threshold: 100,
			want:      [][]string{{"a", "b"}, {"c"}},
		},
		{
			name:      "all fit in one group",
			files:     []FileRecord{rec("a", 10), rec("b", 20), rec("c", 30)},
			threshold: 100,
			want:      [][]string{{"a", "b", "c"}},
		},
		{
			name:      "each file its own group",
			files:     []FileRecord{rec("a", 90), rec("b", 90)},
			threshold: 100,
			want:      [][]string{{"a"}, {"b"}},
		},
		{
			name:      "exact fit keeps the pair together",
			files:     []FileRecord{rec("a", 50), rec("b", 50), rec("c", 1)},
			threshold: 100,
			want:      [][]string{{"a", "b"}, {"c"}},
		},
		{
			name:      "no files no groups",
			files:     nil,
			threshold: 100,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupFiles(tt.files, tt.threshold)
			if len(groups) != len(tt.want) {
				t.Fatalf("GroupFiles produced %d groups, want %d", len(groups), len(tt.want))
			}
			for i, group := range groups {
				if len(group) != len(tt.want[i]) {
					t.Fatalf("group %d has %d files, want %d", i, len(group), len(tt.want[i]))
				}
				for j, f := range group {
					if f.Path != tt.want[i][j] {
						t.Errorf("group %d file %d = %q, want %q", i, j, f.Path, tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestGroupFiles_BoundsEveryGroup(t *testing.T) {
	var files []FileRecord
	sizes := []int64{30, 70, 10, 90, 50, 50, 1, 99, 100}
	for i, s := range sizes {
		files = append(files, FileRecord{Path: string(rune('a' + i)), Size: s})
	}

	groups := GroupFiles(files, 100)
	total := 0
	for i, group := range groups {
		var sum int64
		for _, f := range group {
			sum += f.Size
			total++
		}
		if sum > 100 {
			t.Errorf("group %d totals %d bytes, exceeds threshold 100", i, sum)
		}
	}
	if total != len(files) {
		t.Errorf("groups hold %d files, want %d (no duplicates or omissions)", total, len(files))
	}
}

func TestWriteGroupArchive(t *testing.T) {
	dir := t.TempDir()
	var group []FileRecord
	contents := map[string]string{
		"one.txt": "first file",
		"two.txt": "second file",
	}
	for name, body := range contents {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}
		group = append(group, FileRecord{Path: path, Size: int64(len(body))})
	}

	outPath := filepath.Join(t.TempDir(), IndependentName(1))
	if err := WriteGroupArchive(group, outPath); err != nil {
		t.Fatalf("WriteGroupArchive failed: %v", err)
	}

	zrc, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer zrc.Close()

	found := make(map[string]bool)
	for _, f := range zrc.File {
		found[f.Name] = true
	}
	for name := range contents {
		if !found[name] {
			t.Errorf("expected entry %q not found in archive, got %v", name, found)
		}
	}
}

func TestWriteGroupArchive_CollidingBaseNames(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	pathA := filepath.Join(dirA, "report.txt")
	pathB := filepath.Join(dirB, "report.txt")
	os.WriteFile(pathA, []byte("from a"), 0644)
	os.WriteFile(pathB, []byte("from b"), 0644)

	group := []FileRecord{
		{Path: pathA, Size: 6},
		{Path: pathB, Size: 6},
	}
	outPath := filepath.Join(t.TempDir(), IndependentName(1))
	if err := WriteGroupArchive(group, outPath); err != nil {
		t.Fatalf("WriteGroupArchive failed: %v", err)
	}

	zrc, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer zrc.Close()

	if len(zrc.File) != 2 {
		t.Fatalf("archive holds %d entries, want 2 (no silent overwrite)", len(zrc.File))
	}
	found := make(map[string]bool)
	for _, f := range zrc.File {
		found[f.Name] = true
	}
	if !found["report.txt"] || !found["report_1.txt"] {
		t.Errorf("colliding names not disambiguated, entries: %v", found)
	}
}

func TestWriteGroupArchives_CollisionAcrossArchives(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	pathA := filepath.Join(dirA, "report.txt")
	pathB := filepath.Join(dirB, "report.txt")
	os.WriteFile(pathA, []byte("from a"), 0644)
	os.WriteFile(pathB, []byte("from b"), 0644)

	// One file per group, so the collision spans two archives.
	groups := [][]FileRecord{
		{{Path: pathA, Size: 6}},
		{{Path: pathB, Size: 6}},
	}
	outDir := t.TempDir()
	names, err := WriteGroupArchives(groups, outDir)
	if err != nil {
		t.Fatalf("WriteGroupArchives failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %d archives, want 2", len(names))
	}

	entries := make(map[string]bool)
	for _, name := range names {
		zrc, err := zip.OpenReader(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("Failed to open archive %s: %v", name, err)
		}
		for _, f := range zrc.File {
			if entries[f.Name] {
				t.Errorf("entry %q appears in more than one archive", f.Name)
			}
			entries[f.Name] = true
		}
		zrc.Close()
	}
	if !entries["report.txt"] || !entries["report_1.txt"] {
		t.Errorf("collision across archives not disambiguated, entries: %v", entries)
	}
}
