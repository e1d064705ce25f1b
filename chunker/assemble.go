package chunker

import (
	"archive/zip"
	"os"
	"path/filepath"
)

// Bundle layout inside the combined archive.
const (
	RejoinablePrefix  = "Rejoinable/"
	IndependentPrefix = "Independent/"
	ReadmeName        = "README.txt"

	// BundleName is the file name of the combined downloadable archive.
	BundleName = "ALL_CHUNKS.zip"
)

const readmeText = `HOW TO USE THESE CHUNKS
=======================

This archive contains two kinds of chunks:

Rejoinable/
  Each zip in this folder holds one ordered part of a file that was too
  large for a single chunk. To recover the original file, extract every
  part archive for that file and concatenate the extracted payloads in
  ascending part order, e.g. on Linux/macOS:

      cat video.mp4.part* > video.mp4

  Part numbers are zero-padded, so ascending file name order is the
  correct concatenation order.

Independent/
  Each zip in this folder is self-contained. Extract any of them on its
  own; no other chunk is needed.

Every chunk's payload fits within the size threshold that was configured
when the chunks were produced.
`

// Bundle builds the combined archive at outDir/BundleName, placing each
// rejoinable chunk under Rejoinable/, each independent chunk under
// Independent/, and a usage note at README.txt. The nested archives are
// copied byte for byte; nothing inside them is rewritten. With no chunks at
// all the bundle still carries the README.
//
// The chunk names are file names relative to outDir. Bundle returns the
// full path of the archive it wrote.
func Bundle(outDir string, rejoinable, independent []string) (string, error) {
	bundlePath := filepath.Join(outDir, BundleName)
	os.Remove(bundlePath)
	file, err := os.Create(bundlePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := zip.NewWriter(file)
	for _, name := range rejoinable {
		if err := addFileToZip(w, filepath.Join(outDir, name), RejoinablePrefix+name); err != nil {
			w.Close()
			return "", err
		}
	}
	for _, name := range independent {
		if err := addFileToZip(w, filepath.Join(outDir, name), IndependentPrefix+name); err != nil {
			w.Close()
			return "", err
		}
	}
	writer, err := w.Create(ReadmeName)
	if err != nil {
		w.Close()
		return "", err
	}
	if _, err := writer.Write([]byte(readmeText)); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return bundlePath, nil
}
