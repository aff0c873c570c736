package service

import (
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
)

type GalleryService struct {
	galleryRepo *repository.GalleryRepository
	uploads     *UploadService
	logger      *zap.Logger
}

func NewGalleryService(
	galleryRepo *repository.GalleryRepository,
	uploads *UploadService,
	logger *zap.Logger,
) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		uploads:     uploads,
		logger:      logger,
	}
}

// List returns entries in insertion order, optionally filtered by exact
// category match. An empty category returns everything.
func (s *GalleryService) List(category string) []models.GalleryEntry {
	if category == "" || category == "all" {
		return s.galleryRepo.GetAll()
	}
	return s.galleryRepo.GetByCategory(category)
}

func (s *GalleryService) CreateSingle(file *multipart.FileHeader, category string) (*models.GalleryEntry, error) {
	stored, err := s.uploads.Store(file)
	if err != nil {
		return nil, err
	}

	entry := models.NewSingleEntry(newID(), stored, category, time.Now().UTC())

	if err := s.galleryRepo.Append(entry); err != nil {
		// Don't leave an orphaned file behind a failed record.
		if derr := s.uploads.Remove(stored.Filename); derr != nil {
			s.logger.Warn("failed to clean up stored file", zap.String("filename", stored.Filename), zap.Error(derr))
		}
		return nil, err
	}

	return &entry, nil
}

func (s *GalleryService) CreateBeforeAfter(before, after *multipart.FileHeader, category string) (*models.GalleryEntry, error) {
	beforeFile, afterFile, err := s.uploads.StorePair(before, after)
	if err != nil {
		return nil, err
	}

	entry := models.NewBeforeAfterEntry(newID(), beforeFile, afterFile, category, time.Now().UTC())

	if err := s.galleryRepo.Append(entry); err != nil {
		for _, filename := range entry.Files() {
			if derr := s.uploads.Remove(filename); derr != nil {
				s.logger.Warn("failed to clean up stored file", zap.String("filename", filename), zap.Error(derr))
			}
		}
		return nil, err
	}

	return &entry, nil
}

// Delete removes the entry and its stored file(s). File removal is
// best-effort: the record is removed even if a file is already gone.
func (s *GalleryService) Delete(id string) error {
	entry, err := s.galleryRepo.GetByID(id)
	if err != nil {
		return err
	}

	for _, filename := range entry.Files() {
		if err := s.uploads.Remove(filename); err != nil {
			s.logger.Warn("failed to delete stored file", zap.String("filename", filename), zap.Error(err))
		}
	}

	return s.galleryRepo.Remove(id)
}
