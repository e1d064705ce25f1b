package chunker

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// GroupFiles packs the given files into ordered groups whose cumulative size
// stays at or below threshold. It is a single-pass greedy first-fit: when the
// next file would push a non-empty group over the threshold, the group is
// flushed and a new one started. The final non-empty group is always kept.
//
// Inputs are expected to each be <= threshold (Classify routes larger files
// to SplitFile), which makes every group total <= threshold. The pass does
// not sort and does not try to minimize the group count.
func GroupFiles(files []FileRecord, threshold int64) [][]FileRecord {
	var groups [][]FileRecord
	var current []FileRecord
	var currentSize int64

	for _, f := range files {
		if currentSize+f.Size > threshold && len(current) > 0 {
			groups = append(groups, current)
			current = nil
			currentSize = 0
		}
		current = append(current, f)
		currentSize += f.Size
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// IndependentName returns the archive file name for group i (1-based).
func IndependentName(i int) string {
	return fmt.Sprintf("independent_part%d.zip", i)
}

// WriteGroupArchive writes one zip archive at outPath containing every file
// in the group as a flat entry. Entries use the file's base name; when two
// files share a base name, later ones get a numeric suffix before the
// extension so no payload is silently dropped.
func WriteGroupArchive(group []FileRecord, outPath string) error {
	return writeGroupArchive(group, outPath, make(map[string]int))
}

// writeGroupArchive writes one group archive, consuming names from seen so
// callers can keep disambiguation consistent across several archives.
func writeGroupArchive(group []FileRecord, outPath string, seen map[string]int) error {
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	w := zip.NewWriter(file)
	for _, rec := range group {
		name := flatEntryName(filepath.Base(rec.Path), seen)
		src, err := os.Open(rec.Path)
		if err != nil {
			w.Close()
			return err
		}
		writer, err := w.Create(name)
		if err != nil {
			src.Close()
			w.Close()
			return err
		}
		_, err = io.Copy(writer, src)
		src.Close()
		if err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

// WriteGroupArchives flushes each group to its own independent archive in
// outDir and returns the archive file names in group order. One shared name
// map spans all groups, so a base name colliding across two archives is
// still disambiguated and extracting every archive into one directory
// overwrites nothing.
func WriteGroupArchives(groups [][]FileRecord, outDir string) ([]string, error) {
	names := make([]string, 0, len(groups))
	seen := make(map[string]int)
	for i, group := range groups {
		name := IndependentName(i + 1)
		if err := writeGroupArchive(group, filepath.Join(outDir, name), seen); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func flatEntryName(base string, seen map[string]int) string {
	n := seen[base]
	seen[base] = n + 1
	if n == 0 {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%d%s", stem, n, ext)
}
