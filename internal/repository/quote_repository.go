package repository

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/pkg/store"
)

type QuoteRepository struct {
	collection *store.Collection[models.QuoteRequest]
}

func NewQuoteRepository(dataDir string, logger *zap.Logger) (*QuoteRepository, error) {
	collection, err := store.NewCollection[models.QuoteRequest](filepath.Join(dataDir, "quotes.json"), logger)
	if err != nil {
		return nil, err
	}

	return &QuoteRepository{
		collection: collection,
	}, nil
}

func (r *QuoteRepository) GetAll() []models.QuoteRequest {
	return r.collection.Read()
}

func (r *QuoteRepository) GetByID(id string) (*models.QuoteRequest, error) {
	for _, quote := range r.collection.Read() {
		if quote.ID == id {
			return &quote, nil
		}
	}
	return nil, ErrNotFound
}

func (r *QuoteRepository) Append(quote models.QuoteRequest) error {
	quotes := r.collection.Read()
	return r.collection.Write(append(quotes, quote))
}

// Replace overwrites the stored quote with the same id.
func (r *QuoteRepository) Replace(updated models.QuoteRequest) error {
	quotes := r.collection.Read()

	for i, quote := range quotes {
		if quote.ID == updated.ID {
			quotes[i] = updated
			return r.collection.Write(quotes)
		}
	}

	return ErrNotFound
}

func (r *QuoteRepository) Remove(id string) error {
	quotes := r.collection.Read()

	remaining := make([]models.QuoteRequest, 0, len(quotes))
	found := false
	for _, quote := range quotes {
		if quote.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, quote)
	}

	if !found {
		return ErrNotFound
	}

	return r.collection.Write(remaining)
}
