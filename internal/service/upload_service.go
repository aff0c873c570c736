package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/pkg/storage"
	"github.com/evergreenlawns/evergreen-backend/pkg/utils"
)

// MaxFileSize is the per-file upload limit.
const MaxFileSize = 10 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService validates incoming image files and writes them to storage
// under generated names. Nothing is written until a file passes validation.
type UploadService struct {
	storage  storage.FileStorage
	validate *utils.Validator
}

func NewUploadService(storage storage.FileStorage, validate *utils.Validator) *UploadService {
	return &UploadService{
		storage:  storage,
		validate: validate,
	}
}

func (s *UploadService) Validate(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return validationErrorf("Only image files are allowed (JPG, PNG, GIF, or WebP)")
	}

	// Browsers set a per-part content type; check it when it carries one.
	if mime := file.Header.Get("Content-Type"); mime != "" && mime != "application/octet-stream" {
		if err := s.validate.Var(mime, "supported_image"); err != nil {
			return validationErrorf("Unsupported image type: %s", mime)
		}
	}

	if file.Size > MaxFileSize {
		return validationErrorf("File is too large. Maximum size is 10MB.")
	}

	return nil
}

// Store validates the file and writes it to storage, returning the metadata
// recorded on the gallery entry.
func (s *UploadService) Store(file *multipart.FileHeader) (models.ImageFile, error) {
	if err := s.Validate(file); err != nil {
		return models.ImageFile{}, err
	}

	src, err := file.Open()
	if err != nil {
		return models.ImageFile{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	filename := s.generateFilename(file.Filename)
	if err := s.storage.Save(filename, src); err != nil {
		return models.ImageFile{}, fmt.Errorf("failed to store upload: %w", err)
	}

	return models.ImageFile{
		Filename:     filename,
		OriginalName: file.Filename,
		URL:          "/uploads/" + filename,
		Size:         file.Size,
	}, nil
}

// StorePair stores a before/after pair. Both files are validated up front so
// an invalid pair leaves nothing on disk, and the first file is removed if
// storing the second fails.
func (s *UploadService) StorePair(before, after *multipart.FileHeader) (models.ImageFile, models.ImageFile, error) {
	if err := s.Validate(before); err != nil {
		return models.ImageFile{}, models.ImageFile{}, err
	}
	if err := s.Validate(after); err != nil {
		return models.ImageFile{}, models.ImageFile{}, err
	}

	beforeFile, err := s.Store(before)
	if err != nil {
		return models.ImageFile{}, models.ImageFile{}, err
	}

	afterFile, err := s.Store(after)
	if err != nil {
		_ = s.storage.Delete(beforeFile.Filename)
		return models.ImageFile{}, models.ImageFile{}, err
	}

	return beforeFile, afterFile, nil
}

// Remove deletes a stored upload. A file already gone is not an error.
func (s *UploadService) Remove(filename string) error {
	return s.storage.Delete(filename)
}

func (s *UploadService) generateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), utils.GenerateRandomString(9), ext)
}
