package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const stateFileName = "state.json"

// FileStore is the on-device key-value cache backed by a single JSON file.
// Reads come from memory; every write goes straight through to disk so a
// killed process never loses the session.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// New opens (or creates) the state file under dir.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	fs := &FileStore{
		path: filepath.Join(dir, stateFileName),
		data: map[string]string{},
	}

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return fs, nil
}

// Get returns "" for a missing key.
func (fs *FileStore) Get(key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.data[key], nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flush()
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.flush()
}

// flush writes the whole map; the store holds a handful of short strings so
// rewriting it is cheaper than being clever. Caller holds the lock.
func (fs *FileStore) flush() error {
	raw, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing state: %w", err)
	}
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
