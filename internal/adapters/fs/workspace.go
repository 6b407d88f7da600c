// Package fs implements the workspace operations on the local filesystem.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace using the os package.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Getwd returns the current working directory.
func (w *Workspace) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return dir, nil
}

// Chdir changes the current working directory.
func (w *Workspace) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to change directory"), "path", dir)
	}
	return nil
}

// Exists reports whether path exists.
func (w *Workspace) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (w *Workspace) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}

// MkdirAll creates dir and any missing parents.
func (w *Workspace) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}
