package chunker

import (
	"fmt"
	"path/filepath"
)

// Options configures one processing run.
type Options struct {
	// Threshold is the maximum chunk payload size in bytes. Files larger
	// than this are split; smaller files are grouped up to this bound.
	Threshold int64
}

// Result reports what one run produced. Chunk names are file names relative
// to the output directory.
type Result struct {
	Rejoinable  []string `json:"rejoinable"`  // per-part archives of split files
	Independent []string `json:"independent"` // grouped whole-file archives
	BundlePath  string   `json:"bundle_path"` // combined archive on disk
	Notices     []string `json:"notices"`     // user-facing warnings collected on the way
}

// Process runs the full pipeline over inputDir: classify every file against
// the threshold, split the oversized ones into rejoinable part archives,
// group the rest into independent archives, then bundle everything in
// outDir. The run is strictly sequential; the first filesystem error aborts
// the whole run.
func Process(inputDir, outDir string, opts Options) (*Result, error) {
	if opts.Threshold <= 0 {
		return nil, ErrInvalidThreshold
	}

	oversized, normal, err := Classify(inputDir, opts.Threshold)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, rec := range oversized {
		parts, err := SplitFile(rec.Path, opts.Threshold, outDir)
		if err != nil {
			return nil, fmt.Errorf("splitting %s: %w", filepath.Base(rec.Path), err)
		}
		res.Rejoinable = append(res.Rejoinable, parts...)
	}

	groups := GroupFiles(normal, opts.Threshold)
	res.Independent, err = WriteGroupArchives(groups, outDir)
	if err != nil {
		return nil, err
	}

	res.BundlePath, err = Bundle(outDir, res.Rejoinable, res.Independent)
	if err != nil {
		return nil, err
	}
	return res, nil
}
