package receipt

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage defines the interface for the export archive, where the
// generated TXT and XLSX files of each batch are kept for download.
type Storage interface {
	// Save writes an export file
	Save(filename string, data []byte) error

	// Get retrieves an export file
	Get(filename string) ([]byte, error)

	// Delete removes an export file
	Delete(filename string) error
}

// LocalStorage implements the Storage interface using local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// Save writes an export file to local storage
func (l *LocalStorage) Save(filename string, data []byte) error {
	path := filepath.Join(l.basePath, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// Get retrieves an export file from local storage
func (l *LocalStorage) Get(filename string) ([]byte, error) {
	path := filepath.Join(l.basePath, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Delete removes an export file from local storage
func (l *LocalStorage) Delete(filename string) error {
	path := filepath.Join(l.basePath, filename)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
