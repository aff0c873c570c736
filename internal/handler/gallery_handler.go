package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/evergreenlawns/evergreen-backend/internal/models"
	"github.com/evergreenlawns/evergreen-backend/internal/repository"
	"github.com/evergreenlawns/evergreen-backend/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
}

func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) GetGallery(c *fiber.Ctx) error {
	category := c.Query("category")

	return c.JSON(models.GalleryListResponse{
		Success: true,
		Images:  h.galleryService.List(category),
	})
}

func (h *GalleryHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	category := c.FormValue("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Category is required"))
	}

	entry, err := h.galleryService.CreateSingle(file, category)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.GalleryUploadResponse{
		Success: true,
		Message: "Image uploaded successfully",
		Image:   *entry,
	})
}

func (h *GalleryHandler) UploadBeforeAfter(c *fiber.Ctx) error {
	before, beforeErr := c.FormFile("beforeImage")
	after, afterErr := c.FormFile("afterImage")
	if beforeErr != nil || afterErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Both before and after images are required"))
	}

	category := c.FormValue("category")
	if category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Category is required"))
	}

	entry, err := h.galleryService.CreateBeforeAfter(before, after, category)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.GalleryUploadResponse{
		Success: true,
		Message: "Before/After images uploaded successfully",
		Image:   *entry,
	})
}

func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.galleryService.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Image not found"))
		}
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse("Image deleted successfully"))
}
