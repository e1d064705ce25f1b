// Package chunker provides the core splitting, grouping, and archive
// assembly operations for files-chunker.
package chunker

import "errors"

// Sentinel errors for package chunker.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Threshold errors
	ErrInvalidThreshold = errors.New("invalid chunk size threshold")

	// Archive errors
	ErrBadArchive  = errors.New("malformed zip archive")
	ErrUnsafePath  = errors.New("zip entry path escapes destination directory")
	ErrNoParts     = errors.New("no part archives to rejoin")
	ErrPartMissing = errors.New("part archive holds no payload entry")
)
