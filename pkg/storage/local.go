package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploaded files in a single flat directory. Filenames are
// generated by the caller and must not contain path separators.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(filename string, src io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStorage) Delete(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorage) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filename))
	return err == nil
}

func (s *LocalStorage) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}
