package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadStore saves image blobs under a local directory and hands back
// the generated file name; the rest of the system only ever stores and
// serves those reference names.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

func (s *UploadStore) Dir() string { return s.dir }

// Save writes the uploaded file under a UUID name, preserving the
// original extension, and returns the reference name.
func (s *UploadStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return name, nil
}

// Remove deletes a stored blob by reference name. A missing file is not
// an error; the reference may already have been cleaned up.
func (s *UploadStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
