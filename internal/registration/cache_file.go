package registration

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileCache persists the pending registration as a JSON file so it survives
// process restarts. Default backend for single-node deploys and tests.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (f *FileCache) Save(p Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

func (f *FileCache) Load() (*Pending, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	var p Pending
	if err := json.Unmarshal(data, &p); err != nil {
		// Unparseable content counts as absent, never as a crash.
		return nil, nil
	}
	return &p, nil
}

func (f *FileCache) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
