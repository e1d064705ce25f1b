package chunker

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// partWidth returns the zero-pad width for part numbers so that lexical
// ordering of part names matches numeric ordering. Three digits minimum
// keeps names uniform for the common case.
func partWidth(total int) int {
	w := len(strconv.Itoa(total))
	if w < 3 {
		w = 3
	}
	return w
}

// PartName returns the payload entry name for part i of total parts of the
// named source file, e.g. "video.mp4.part002".
func PartName(base string, i, total int) string {
	return fmt.Sprintf("%s.part%0*d", base, partWidth(total), i)
}

// PartCount returns ceil(size/threshold), the number of parts SplitFile
// produces for a file of the given size.
func PartCount(size, threshold int64) int {
	return int((size + threshold - 1) / threshold)
}

// SplitFile slices the file at path into threshold-sized blocks and writes
// each block as its own single-entry zip archive in outDir. Part i (1-based)
// holds bytes [(i-1)*threshold, i*threshold) clipped to the end of the file,
// so concatenating the extracted payloads in ascending part order reproduces
// the original bit-for-bit.
//
// It returns the archive file names (not full paths) in part order.
func SplitFile(path string, threshold int64, outDir string) ([]string, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrExpectedFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)
	total := PartCount(info.Size(), threshold)
	names := make([]string, 0, total)

	for i := 1; i <= total; i++ {
		entry := PartName(base, i, total)
		archive := entry + ".zip"
		if err := writePartZip(filepath.Join(outDir, archive), entry, io.LimitReader(f, threshold)); err != nil {
			return nil, fmt.Errorf("writing part %d of %s: %w", i, base, err)
		}
		names = append(names, archive)
	}
	return names, nil
}

func writePartZip(dest, entry string, payload io.Reader) error {
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()

	w := zip.NewWriter(file)
	writer, err := w.Create(entry)
	if err != nil {
		w.Close()
		return err
	}
	if _, err := io.Copy(writer, payload); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
