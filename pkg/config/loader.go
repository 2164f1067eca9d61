package config

import (
	"fmt"
	"io/fs"
	"os"
)

// Loader fetches the raw bytes of a named resource.
// A missing resource must produce an error wrapping fs.ErrNotExist.
type Loader interface {
	Load(name string) ([]byte, error)
}

// FSLoader loads resources from an fs.FS, such as an embed.FS bundle.
type FSLoader struct {
	FS fs.FS
}

// Load reads name from the underlying file system.
func (l FSLoader) Load(name string) ([]byte, error) {
	if l.FS == nil {
		return nil, fmt.Errorf("no file system configured: %w", fs.ErrNotExist)
	}
	return fs.ReadFile(l.FS, name)
}

// DirLoader returns a Loader reading resources from a directory on disk.
func DirLoader(dir string) FSLoader {
	return FSLoader{FS: os.DirFS(dir)}
}

// MapLoader serves resources from memory. Mostly useful in tests.
type MapLoader map[string]string

// Load returns the resource stored under name.
func (m MapLoader) Load(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}
