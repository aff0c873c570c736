package storage

import "io"

type FileStorage interface {
	Save(filename string, reader io.Reader) error
	Delete(filename string) error
	Exists(filename string) bool
	Path(filename string) string
}
