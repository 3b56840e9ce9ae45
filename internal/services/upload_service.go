package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ruanfv/portfolio/internal/storage"
)

// MaxUploadSize is the upload ceiling: 5 MiB.
const MaxUploadSize = 5 * 1024 * 1024

var (
	ErrInvalidFileType  = errors.New("invalid file type. Only JPEG, PNG and WebP are allowed")
	ErrFileTooLarge     = errors.New("file size exceeds 5MB limit")
	ErrNoFileProvided   = errors.New("no file provided")
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}
	unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

type UploadService struct {
	storage storage.Storage
}

func NewUploadService(store storage.Storage) *UploadService {
	return &UploadService{
		storage: store,
	}
}

// ValidateUpload rejects disallowed MIME types and oversized files
// before anything touches the storage backend.
func (s *UploadService) ValidateUpload(contentType string, size int64) error {
	if !allowedContentTypes[contentType] {
		return ErrInvalidFileType
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// BuildFileName produces a collision-resistant storage name:
// a millisecond timestamp plus the sanitized original name.
func (s *UploadService) BuildFileName(original string) string {
	sanitized := unsafeFileNameChars.ReplaceAllString(original, "_")
	return fmt.Sprintf("projects/%d-%s", time.Now().UnixMilli(), sanitized)
}

// Store validates the file, names it and hands it to the backend,
// returning the resulting access URL.
func (s *UploadService) Store(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if err := s.ValidateUpload(contentType, int64(len(data))); err != nil {
		return "", err
	}

	name := s.BuildFileName(originalName)
	return s.storage.Save(ctx, name, contentType, data)
}
