package chunker

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// FindParts returns the part archives for the named source file in dir,
// sorted in part order. Part names are zero-padded, so lexical order is
// numeric order.
func FindParts(dir, base string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, base+".part*.zip"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// JoinParts reassembles a split file by extracting the single payload entry
// of each part archive and concatenating the payloads into dest, in the
// order given. It is the server-side equivalent of the manual procedure the
// bundle README describes.
func JoinParts(partPaths []string, dest string) error {
	if len(partPaths) == 0 {
		return ErrNoParts
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, p := range partPaths {
		if err := appendPart(p, out); err != nil {
			return fmt.Errorf("rejoining %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

func appendPart(partPath string, out io.Writer) error {
	zrc, err := zip.OpenReader(partPath)
	if err != nil {
		return err
	}
	defer zrc.Close()

	for _, f := range zrc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		_, err = io.Copy(out, rc)
		rc.Close()
		return err
	}
	return ErrPartMissing
}
