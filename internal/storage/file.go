package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps one JSON file per scope key inside a directory.
type FileBackend struct {
	Dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

func (b *FileBackend) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *FileBackend) Save(key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(b.path(key), data, 0o644)
}
