package repository

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/pkg/store"
)

// ErrNotFound is returned when a record id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

type GalleryRepository struct {
	collection *store.Collection[models.GalleryEntry]
}

func NewGalleryRepository(dataDir string, logger *zap.Logger) (*GalleryRepository, error) {
	collection, err := store.NewCollection[models.GalleryEntry](filepath.Join(dataDir, "gallery.json"), logger)
	if err != nil {
		return nil, err
	}

	return &GalleryRepository{
		collection: collection,
	}, nil
}

// GetAll returns every entry in insertion order.
func (r *GalleryRepository) GetAll() []models.GalleryEntry {
	return r.collection.Read()
}

func (r *GalleryRepository) GetByCategory(category string) []models.GalleryEntry {
	filtered := []models.GalleryEntry{}
	for _, entry := range r.collection.Read() {
		if entry.Category == category {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func (r *GalleryRepository) GetByID(id string) (*models.GalleryEntry, error) {
	for _, entry := range r.collection.Read() {
		if entry.ID == id {
			return &entry, nil
		}
	}
	return nil, ErrNotFound
}

func (r *GalleryRepository) Append(entry models.GalleryEntry) error {
	entries := r.collection.Read()
	return r.collection.Write(append(entries, entry))
}

func (r *GalleryRepository) Remove(id string) error {
	entries := r.collection.Read()

	remaining := make([]models.GalleryEntry, 0, len(entries))
	found := false
	for _, entry := range entries {
		if entry.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, entry)
	}

	if !found {
		return ErrNotFound
	}

	return r.collection.Write(remaining)
}
