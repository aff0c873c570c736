package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
)

// Mailer sends the two notifications that follow a quote submission.
type Mailer interface {
	SendQuoteConfirmation(quote *models.QuoteRequest) error
	SendQuoteAlert(quote *models.QuoteRequest) error
}

type QuoteService struct {
	quoteRepo *repository.QuoteRepository
	mailer    Mailer
	logger    *zap.Logger
}

func NewQuoteService(quoteRepo *repository.QuoteRepository, mailer Mailer, logger *zap.Logger) *QuoteService {
	return &QuoteService{
		quoteRepo: quoteRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

func (s *QuoteService) List() []models.QuoteRequest {
	return s.quoteRepo.GetAll()
}

// Create persists the submission (always status "new"), then sends the
// customer confirmation and owner alert. Email failures are logged and
// reported per recipient, never failing the request.
func (s *QuoteService) Create(req *models.CreateQuoteRequest) (*models.QuoteRequest, models.EmailReport, error) {
	quote := models.QuoteRequest{
		ID:           newID(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		PropertySize: req.PropertySize,
		Services:     req.Services,
		Message:      req.Message,
		Status:       models.QuoteStatusNew,
		Timestamp:    time.Now().UTC(),
	}

	if err := s.quoteRepo.Append(quote); err != nil {
		return nil, models.EmailReport{}, err
	}

	report := models.EmailReport{}

	if err := s.mailer.SendQuoteConfirmation(&quote); err != nil {
		s.logger.Warn("failed to send customer confirmation",
			zap.String("quote_id", quote.ID), zap.String("email", quote.Email), zap.Error(err))
	} else {
		report.Customer = true
	}

	if err := s.mailer.SendQuoteAlert(&quote); err != nil {
		s.logger.Warn("failed to send owner alert",
			zap.String("quote_id", quote.ID), zap.Error(err))
	} else {
		report.Owner = true
	}

	return &quote, report, nil
}

// Update patches status and/or notes; fields left nil are untouched.
func (s *QuoteService) Update(id string, req *models.UpdateQuoteRequest) (*models.QuoteRequest, error) {
	quote, err := s.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		quote.Status = *req.Status
	}
	if req.Notes != nil {
		quote.Notes = *req.Notes
	}

	if err := s.quoteRepo.Replace(*quote); err != nil {
		return nil, err
	}

	return quote, nil
}

func (s *QuoteService) Delete(id string) error {
	return s.quoteRepo.Remove(id)
}
