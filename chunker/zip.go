package chunker

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// IsZipName reports whether the file name carries a .zip extension.
func IsZipName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// CompressDirToZip zips the regular files at the top level of dir into a new
// archive at dest, replacing any existing file there. Entries use base names.
func CompressDirToZip(dir, dest string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrExpectedDirectory
	}
	os.Remove(dest)
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	w := zip.NewWriter(file)

	dirents, err := os.ReadDir(dir)
	if err != nil {
		w.Close()
		return err
	}
	for _, v := range dirents {
		if v.IsDir() {
			continue
		}
		if err := addFileToZip(w, filepath.Join(dir, v.Name()), v.Name()); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

func addFileToZip(w *zip.Writer, path, entry string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	writer, err := w.Create(entry)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, f)
	return err
}

// ExtractZip expands the archive at src into destDir, recreating the entry
// paths below it. Entries that would resolve outside destDir are rejected
// with ErrUnsafePath. A file that cannot be opened as a zip archive returns
// ErrBadArchive so callers can report it and keep processing other uploads.
func ExtractZip(src, destDir string) error {
	zrc, err := zip.OpenReader(src)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return fmt.Errorf("%w: %s", ErrBadArchive, filepath.Base(src))
		}
		return err
	}
	defer zrc.Close()

	for _, f := range zrc.File {
		target, err := safeJoin(destDir, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := extractEntry(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, rc)
	return err
}

// safeJoin joins entry onto dir and verifies the result stays inside dir.
func safeJoin(dir, entry string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(entry))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, entry)
	}
	return target, nil
}
