package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// localStorage keeps site files (assets, exported pages) under a base directory
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// BasePath returns the directory the storage is rooted at
func (s *localStorage) BasePath() string {
	return s.basePath
}

// generatePath maps a slash-separated site path onto the base directory.
// The path is cleaned as if rooted, so ".." can never leave the base directory.
func (s *localStorage) generatePath(name string) string {
	cleaned := path.Clean("/" + name)
	return filepath.Join(s.basePath, filepath.FromSlash(cleaned))
}

// Create creates a new file, including missing parent directories
func (s *localStorage) Create(name string) (io.WriteCloser, error) {
	p := s.generatePath(name)

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, err
	}

	return os.Create(p)
}

// OpenFile opens a file and returns *os.File
func (s *localStorage) OpenFile(name string) (*os.File, error) {
	return os.Open(s.generatePath(name))
}

// Files lists every regular file under the base directory as slash-separated relative paths, sorted.
// A missing base directory yields no files.
func (s *localStorage) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.basePath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(s.basePath, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
