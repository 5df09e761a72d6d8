package fileio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Reader is a struct for reading files below a working directory
type Reader struct {
	rootDir string
}

// NewReader creates a new reader rooted at rootDir.
func NewReader(rootDir string) *Reader {
	return &Reader{rootDir: rootDir}
}

// SetRootdir sets the root directory for the reader
func (r *Reader) SetRootdir(path string) {
	r.rootDir = path
}

// PathFor returns the full path for the provided file.
func (r *Reader) PathFor(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(r.rootDir, filePath)
}

// ReadFile reads the file at the provided path
func (r *Reader) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(r.PathFor(filePath))
}

// ReadJSON decodes the JSON document at filePath into v.
func (r *Reader) ReadJSON(filePath string, v interface{}) error {
	data, err := r.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", r.PathFor(filePath), err)
	}
	return nil
}

// CheckPathExists checks if a path exists and will return an error if either
// the file does not exist or if there is an error checking the path.
func (r *Reader) CheckPathExists(filePath string) error {
	_, err := os.Stat(r.PathFor(filePath))
	return err
}

// IsFile reports whether filePath resolves to a regular file.
func (r *Reader) IsFile(filePath string) bool {
	info, err := os.Stat(r.PathFor(filePath))
	return err == nil && info.Mode().IsRegular()
}

// TaskDirs lists the task.NNNNNN directories below dir, sorted by name.
func TaskDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	tasks := []string{}
	for _, e := range entries {
		if !e.IsDir() || !IsTaskName(e.Name()) {
			continue
		}
		tasks = append(tasks, filepath.Join(dir, e.Name()))
	}
	sort.Strings(tasks)
	return tasks, nil
}

// TaskName returns the zero-padded directory name of task idx.
func TaskName(idx int) string {
	return fmt.Sprintf("task.%06d", idx)
}

// IsTaskName reports whether name looks like task.<digits>.
func IsTaskName(name string) bool {
	suffix, ok := strings.CutPrefix(name, "task.")
	if !ok || suffix == "" {
		return false
	}
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
