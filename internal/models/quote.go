package models

import (
	"time"
)

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusCompleted QuoteStatus = "completed"
)

type QuoteRequest struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	PropertySize string      `json:"propertySize,omitempty"`
	Services     []string    `json:"services,omitempty"`
	Message      string      `json:"message,omitempty"`
	Status       QuoteStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// CreateQuoteRequest deliberately has no status field: submissions always
// start as "new" no matter what the caller sends.
type CreateQuoteRequest struct {
	Name         string   `json:"name" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Address      string   `json:"address" validate:"required"`
	PropertySize string   `json:"propertySize" validate:"omitempty,oneof=small medium large xlarge"`
	Services     []string `json:"services"`
	Message      string   `json:"message"`
}

type UpdateQuoteRequest struct {
	Status *QuoteStatus `json:"status" validate:"omitempty,oneof=new contacted quoted completed"`
	Notes  *string      `json:"notes"`
}

// EmailReport records per-recipient delivery of the two best-effort
// notification emails sent after a quote submission.
type EmailReport struct {
	Customer bool `json:"customer"`
	Owner    bool `json:"owner"`
}

type QuoteListResponse struct {
	Success bool           `json:"success"`
	Quotes  []QuoteRequest `json:"quotes"`
}

type QuoteCreateResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Quote     QuoteRequest `json:"quote"`
	EmailSent EmailReport  `json:"emailSent"`
}

type QuoteUpdateResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Quote   QuoteRequest `json:"quote"`
}
