// Package chunker implements the core repackaging pipeline for files-chunker.
//
// This package contains the building blocks that turn an input directory into
// size-bounded zip chunks: classification against a byte threshold, byte-range
// splitting of oversized files, greedy grouping of normal files, and assembly
// of the combined download bundle.
//
// Key Components:
//
// Classification:
//   - Classify walks the input tree and partitions files by the threshold
//   - Records are sorted by path so grouping is deterministic across platforms
//
// Splitting (rejoinable path):
//   - SplitFile emits ceil(size/threshold) single-entry part archives
//   - Part i holds bytes [(i-1)*T, i*T) clipped to the end of the file
//   - Concatenating extracted payloads in part order restores the original
//
// Grouping (independent path):
//   - GroupFiles is a single-pass greedy first-fit bounded by the threshold
//   - Each group becomes one self-contained zip with flat entry names
//
// Assembly:
//   - Bundle packs all chunks under Rejoinable/ and Independent/ prefixes
//     with a generated README.txt usage note
//   - JoinParts reverses a split, mirroring the README's manual procedure
//
// Thresholds are parsed from human-readable size strings ("5MB") with
// ParseThreshold; invalid input is reported so callers can fall back to
// DefaultThreshold.
//
// Everything here is synchronous single-pass file I/O. One run is expected
// to proceed start to finish; the first filesystem error aborts it.
package chunker
