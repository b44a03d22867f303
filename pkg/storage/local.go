package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes files under a base directory and returns URLs under a
// base URL path, preserving the per-entity folder conventions.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) *LocalStore {
	return &LocalStore{baseDir: baseDir, baseURL: baseURL}
}

func (s *LocalStore) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return path.Join(s.baseURL, folder, filename), nil
}
