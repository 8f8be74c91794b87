package kvstore

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// File stores each key as a file in a folder, so the persisted state stays
// human-readable and diffable, and can live in a private git repo.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir, creating the folder
// if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// path maps a key to its file, escaping anything unfit for a filename.
func (s *File) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *File) Get(key string) (string, error) {
	content, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", key, err)
	}
	return string(content), nil
}

func (s *File) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}

func (s *File) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot delete %q: %w", key, err)
	}
	return nil
}

func (s *File) Close() error { return nil }
