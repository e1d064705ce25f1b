package chunker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var partArchivePattern = regexp.MustCompile(`^(.+)\.part\d+\.zip$`)

// VerifyBundle checks that a combined bundle reproduces the files under
// originalDir: it extracts the bundle into a scratch directory, rejoins
// every split file from its Rejoinable/ parts, extracts every Independent/
// archive, and compares the recovered set against the originals by SHA-256.
//
// Comparison is by content, so the renames grouping applies to colliding
// base names do not affect the result.
func VerifyBundle(bundlePath, originalDir string) error {
	scratch, err := os.MkdirTemp("", "chunk-verify-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	extracted := filepath.Join(scratch, "bundle")
	if err := os.MkdirAll(extracted, 0755); err != nil {
		return err
	}
	if err := ExtractZip(bundlePath, extracted); err != nil {
		return fmt.Errorf("extracting bundle: %w", err)
	}

	recovered := filepath.Join(scratch, "recovered")
	if err := os.MkdirAll(recovered, 0755); err != nil {
		return err
	}
	if err := recoverRejoinable(filepath.Join(extracted, "Rejoinable"), recovered); err != nil {
		return err
	}
	if err := recoverIndependent(filepath.Join(extracted, "Independent"), recovered); err != nil {
		return err
	}

	return compareTrees(originalDir, recovered)
}

// recoverRejoinable groups the part archives in dir by source file name and
// concatenates each group back into destDir.
func recoverRejoinable(dir, destDir string) error {
	dirents, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	parts := make(map[string][]string)
	for _, v := range dirents {
		m := partArchivePattern.FindStringSubmatch(v.Name())
		if m == nil {
			continue
		}
		parts[m[1]] = append(parts[m[1]], filepath.Join(dir, v.Name()))
	}
	for base, paths := range parts {
		sort.Strings(paths)
		if err := JoinParts(paths, filepath.Join(destDir, base)); err != nil {
			return err
		}
	}
	return nil
}

func recoverIndependent(dir, destDir string) error {
	dirents, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, v := range dirents {
		if v.IsDir() || !IsZipName(v.Name()) {
			continue
		}
		if err := ExtractZip(filepath.Join(dir, v.Name()), destDir); err != nil {
			return fmt.Errorf("extracting %s: %w", v.Name(), err)
		}
	}
	return nil
}

// compareTrees checks that the recovered files carry exactly the same
// contents as the originals, and that nothing extra was produced.
// Comparison is by SHA-256 multiset rather than by entry name, since
// grouping renames colliding base names (report.txt, report_1.txt) while
// the payloads stay identical.
func compareTrees(originalDir, recoveredDir string) error {
	want := make(map[string][]string) // content hash -> original base names
	wantCount := 0
	err := filepath.WalkDir(originalDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		h, err := GetFileHash(path)
		if err != nil {
			return err
		}
		want[h] = append(want[h], filepath.Base(path))
		wantCount++
		return nil
	})
	if err != nil {
		return err
	}

	gotCount := 0
	dirents, err := os.ReadDir(recoveredDir)
	if err != nil {
		return err
	}
	var mismatches []string
	for _, v := range dirents {
		if v.IsDir() {
			continue
		}
		gotCount++
		h, err := GetFileHash(filepath.Join(recoveredDir, v.Name()))
		if err != nil {
			return err
		}
		if len(want[h]) == 0 {
			mismatches = append(mismatches, fmt.Sprintf("unexpected content in %s", v.Name()))
			continue
		}
		want[h] = want[h][:len(want[h])-1]
	}
	for _, names := range want {
		for _, name := range names {
			mismatches = append(mismatches, fmt.Sprintf("no recovered file matches %s", name))
		}
	}
	if gotCount != wantCount {
		mismatches = append(mismatches, fmt.Sprintf("recovered %d files, want %d", gotCount, wantCount))
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("bundle does not reproduce the input: %s", strings.Join(mismatches, "; "))
	}
	return nil
}
