package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore persists uploaded report files on the local filesystem.
// Each file is stored under a generated object ID so original filenames
// never collide or leak into storage paths.
type FileStore struct {
	dir string
}

// NewFileStore creates the storage directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the content to a new object and returns its object ID
func (fs *FileStore) Save(content io.Reader, ext string) (string, error) {
	objectID := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(fs.dir, objectID))
	if err != nil {
		return "", fmt.Errorf("failed to create object %s: %w", objectID, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write object %s: %w", objectID, err)
	}
	return objectID, nil
}

// Path returns the filesystem path of a stored object
func (fs *FileStore) Path(objectID string) string {
	return filepath.Join(fs.dir, objectID)
}

// Remove deletes a stored object. A missing object is not an error.
func (fs *FileStore) Remove(objectID string) error {
	err := os.Remove(filepath.Join(fs.dir, objectID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
