package email

import (
	"bytes"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/evergreenlawns/evergreen-backend/internal/config"
	"github.com/evergreenlawns/evergreen-backend/internal/models"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	owner        string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(cfg.Email.ResendAPIKey),
		from:         cfg.Email.FromAddress,
		fromName:     cfg.Email.FromName,
		owner:        cfg.Email.OwnerAddress,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

var propertySizeLabels = map[string]string{
	"small":  "Small (under 5,000 sq ft)",
	"medium": "Medium (5,000 - 10,000 sq ft)",
	"large":  "Large (10,000 - 20,000 sq ft)",
	"xlarge": "Extra Large (20,000+ sq ft)",
}

// SendQuoteConfirmation emails the customer that their request was received.
func (s *EmailService) SendQuoteConfirmation(quote *models.QuoteRequest) error {
	s.logger.Info("sending quote confirmation", zap.String("to", quote.Email), zap.String("quote_id", quote.ID))

	html, err := s.parseTemplate("quote-confirmation.html", s.templateData(quote))
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{quote.Email},
		Subject: "We received your quote request!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		return err
	}

	s.logger.Info("quote confirmation sent", zap.String("to", quote.Email), zap.String("resend_id", resp.Id))
	return nil
}

// SendQuoteAlert emails the business owner about a new submission.
func (s *EmailService) SendQuoteAlert(quote *models.QuoteRequest) error {
	s.logger.Info("sending quote alert", zap.String("to", s.owner), zap.String("quote_id", quote.ID))

	html, err := s.parseTemplate("quote-alert.html", s.templateData(quote))
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{s.owner},
		Subject: "New quote request from " + quote.Name,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		return err
	}

	s.logger.Info("quote alert sent", zap.String("to", s.owner), zap.String("resend_id", resp.Id))
	return nil
}

func (s *EmailService) templateData(quote *models.QuoteRequest) map[string]interface{} {
	propertySize := propertySizeLabels[quote.PropertySize]
	if propertySize == "" {
		propertySize = quote.PropertySize
	}

	return map[string]interface{}{
		"Name":         quote.Name,
		"Email":        quote.Email,
		"Phone":        quote.Phone,
		"Address":      quote.Address,
		"PropertySize": propertySize,
		"Services":     strings.Join(quote.Services, ", "),
		"Message":      quote.Message,
		"SubmittedAt":  quote.Timestamp.Format("January 2, 2006 3:04 PM"),
		"Year":         time.Now().Year(),
	}
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
