package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/evergreenlawns/evergreen-backend/internal/repository"
	"github.com/evergreenlawns/evergreen-backend/internal/service"
)

func statusForError(err error) int {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
