package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/minhtriet326/Hotel-management-system/utils"
)

// FileService stores uploaded photo bytes on disk. Files are renamed to a
// random UUID so uploads can never collide or traverse outside the
// directory.
type FileService struct {
	Dir string
}

func NewFileService(dir string) *FileService {
	if dir == "" {
		dir = "photos"
	}
	return &FileService{Dir: dir}
}

// SaveFile writes the upload under a fresh UUID name, keeping the original
// extension, and returns the stored name.
func (s *FileService) SaveFile(header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(header.Filename)

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// FilePath resolves a stored name to its on-disk path, rejecting names that
// escape the photo directory.
func (s *FileService) FilePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", utils.NewNotFound("File", "name", name)
	}
	path := filepath.Join(s.Dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", utils.NewNotFound("File", "name", name)
	}
	return path, nil
}

// DeleteFile removes a stored file; a missing file is not an error, the
// database row is the source of truth.
func (s *FileService) DeleteFile(name string) error {
	if name == "" || name != filepath.Base(name) {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
