package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
	"github.com/evergreenlawns/evergreen-backend/internal/service"
	"github.com/evergreenlawns/evergreen-backend/pkg/utils"
)

type QuoteHandler struct {
	quoteService *service.QuoteService
	validator    *utils.Validator
}

func NewQuoteHandler(quoteService *service.QuoteService, validator *utils.Validator) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		validator:    validator,
	}
}

func (h *QuoteHandler) GetQuotes(c *fiber.Ctx) error {
	return c.JSON(models.QuoteListResponse{
		Success: true,
		Quotes:  h.quoteService.List(),
	})
}

func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req models.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	quote, emailSent, err := h.quoteService.Create(&req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.QuoteCreateResponse{
		Success:   true,
		Message:   "Quote request submitted successfully",
		Quote:     *quote,
		EmailSent: emailSent,
	})
}

func (h *QuoteHandler) UpdateQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.UpdateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	quote, err := h.quoteService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Quote not found"))
		}
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.QuoteUpdateResponse{
		Success: true,
		Message: "Quote updated successfully",
		Quote:   *quote,
	})
}

func (h *QuoteHandler) DeleteQuote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.quoteService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Quote not found"))
		}
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse("Quote deleted successfully"))
}
