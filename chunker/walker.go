package chunker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileRecord describes one regular file found under the input root.
type FileRecord struct {
	Path string `json:"path"` // absolute path on disk
	Size int64  `json:"size"` // size of the file in bytes
}

// Classify walks the tree rooted at root and splits its regular files into
// two disjoint lists: files strictly larger than threshold (which must be
// split into rejoinable parts) and files at or below it (which are grouped
// into independent archives). Symlinks and directories are skipped.
//
// Both lists are sorted by path so grouping is stable regardless of the
// platform's directory iteration order.
func Classify(root string, threshold int64) (oversized, normal []FileRecord, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, ErrExpectedDirectory
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rec := FileRecord{Path: path, Size: fi.Size()}
		if rec.Size > threshold {
			oversized = append(oversized, rec)
		} else {
			normal = append(normal, rec)
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error walking path %s: %w", root, err)
	}

	sort.Slice(oversized, func(i, j int) bool { return oversized[i].Path < oversized[j].Path })
	sort.Slice(normal, func(i, j int) bool { return normal[i].Path < normal[j].Path })
	return oversized, normal, nil
}
