package fileio

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Writer is a struct for writing files below a working directory
type Writer struct {
	// rootDir is the directory relative paths are resolved against
	rootDir string
}

// NewWriter creates a new writer rooted at rootDir. An empty rootDir leaves
// paths untouched.
func NewWriter(rootDir string) *Writer {
	return &Writer{rootDir: rootDir}
}

// SetRootdir sets the root directory for the writer
func (w *Writer) SetRootdir(path string) {
	w.rootDir = path
}

// PathFor returns the full path for the provided file. Absolute paths are
// returned unchanged.
func (w *Writer) PathFor(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(w.rootDir, filePath)
}

// MkdirAll creates the directory and its parents; an existing directory is not an error.
func (w *Writer) MkdirAll(dirPath string) error {
	return os.MkdirAll(w.PathFor(dirPath), 0o755)
}

// WriteFile writes the file at the provided path
func (w *Writer) WriteFile(filePath string, data []byte) error {
	return os.WriteFile(w.PathFor(filePath), data, 0644)
}

// WriteJSON writes v as JSON indented by four spaces.
func (w *Writer) WriteJSON(filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return w.WriteFile(filePath, append(data, '\n'))
}

// RemoveIfExists removes a regular file or symlink. Failures are logged and
// otherwise ignored.
func (w *Writer) RemoveIfExists(filePath string) {
	full := w.PathFor(filePath)
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.S().Named("fileio").Debugf("failed to remove %s: %v", full, err)
	}
}

// Symlink replaces linkPath with a symlink to target. The link stores the
// target relative to the link's directory.
func (w *Writer) Symlink(target, linkPath string) error {
	link := w.PathFor(linkPath)
	absTarget := w.PathFor(target)

	rel, err := filepath.Rel(filepath.Dir(link), absTarget)
	if err != nil {
		return err
	}

	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return err
		}
	}
	return os.Symlink(rel, link)
}
