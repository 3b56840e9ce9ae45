package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads under a directory served as static files.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Save writes the file and returns its public URL
func (s *LocalStorage) Save(_ context.Context, name string, _ string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + name, nil
}
