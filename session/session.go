// Package session manages the per-request workspace directories used by
// files-chunker.
//
// Each user interaction gets an isolated workspace keyed by a random ID:
// an input directory the uploads land in and an output directory the chunk
// archives are written to. Workspaces live under a base directory and are
// distributed into hash buckets so no single directory accumulates too many
// entries. A workspace is torn down with Close, typically via defer, so the
// temp tree is released on every exit path.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/taigrr/colorhash"
)

// bucketCount bounds the number of first-level directories under the base.
const bucketCount = 1000

// Workspace is the explicit per-request state: one isolated input/output
// directory pair. It replaces any notion of session-global mutable state;
// operations receive a Workspace and nothing else.
type Workspace struct {
	ID        string
	Root      string
	InputDir  string
	OutputDir string
}

// New creates a fresh workspace under baseDir with a random ID.
func New(baseDir string) (*Workspace, error) {
	id := uuid.New().String()
	return Open(baseDir, id)
}

// Open returns the workspace for the given session ID, creating its
// directories if needed. The workspace root is baseDir/<bucket>/<id> where
// the bucket is a color hash of the ID mod bucketCount.
func Open(baseDir, id string) (*Workspace, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", id, err)
	}
	bucket := colorhash.HashString(id) % bucketCount
	root := filepath.Join(baseDir, fmt.Sprintf("%d", bucket), id)
	ws := &Workspace{
		ID:        id,
		Root:      root,
		InputDir:  filepath.Join(root, "input"),
		OutputDir: filepath.Join(root, "output"),
	}
	if err := ws.ensureDirs(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (w *Workspace) ensureDirs() error {
	if err := os.MkdirAll(w.InputDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(w.OutputDir, 0755)
}

// Reset empties the workspace but keeps it usable for another run.
func (w *Workspace) Reset() error {
	if err := os.RemoveAll(w.Root); err != nil {
		return err
	}
	return w.ensureDirs()
}

// Close removes the workspace tree entirely.
func (w *Workspace) Close() error {
	return os.RemoveAll(w.Root)
}
