// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"io"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadPlantPhoto handles POST /api/plants/:id/photos
// @Summary Upload and diagnose a plant photo
// @Description Attach a photo to a plant. The image is analyzed for foliage health, stored as a WebP rendition, and the diagnosis is returned with the photo record.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Param photo formData file true "Photo file (JPEG, PNG or WebP)"
// @Success 201 {object} models.PlantPhoto
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/photos [post]
func (s *Server) UploadPlantPhoto(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A 'photo' file field is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	photo, err := s.diagnosisService.AnalyzePhoto(c.UserContext(), service.AnalyzePhotoInput{
		Actor:       actor,
		PlantID:     plantID,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(photo)
}

// GetPlantPhotos handles GET /api/plants/:id/photos
// @Summary List a plant's photos
// @Description List the photos and diagnoses recorded for one of the authenticated user's plants, newest first.
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {array} models.PlantPhoto
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/photos [get]
func (s *Server) GetPlantPhotos(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	photos, err := s.diagnosisService.ListPhotos(c.UserContext(), actor, plantID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(photos)
}
