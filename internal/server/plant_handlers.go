// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"time"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePlant handles POST /api/plants
// @Summary Register a plant
// @Description Add a plant to the authenticated user's registry with its care intervals.
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,species=string,location=string,acquired_at=string,watering_interval_days=int,fertilizing_interval_days=int} true "Plant payload"
// @Success 201 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Router /plants [post]
func (s *Server) CreatePlant(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name                    string     `json:"name"`
		Species                 string     `json:"species"`
		Location                string     `json:"location"`
		AcquiredAt              *time.Time `json:"acquired_at"`
		WateringIntervalDays    int        `json:"watering_interval_days"`
		FertilizingIntervalDays int        `json:"fertilizing_interval_days"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plant, err := s.plantService.CreatePlant(c.UserContext(), service.CreatePlantInput{
		Actor:                   actor,
		Name:                    req.Name,
		Species:                 req.Species,
		Location:                req.Location,
		AcquiredAt:              req.AcquiredAt,
		WateringIntervalDays:    req.WateringIntervalDays,
		FertilizingIntervalDays: req.FertilizingIntervalDays,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(plant)
}

// GetPlants handles GET /api/plants
// @Summary List own plants
// @Description List the authenticated user's plants, sorted by name.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Plant
// @Router /plants [get]
func (s *Server) GetPlants(c *fiber.Ctx) error {
	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	plants, err := s.plantService.ListPlants(c.UserContext(), actor)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plants)
}

// GetPlant handles GET /api/plants/:id
// @Summary Get a plant
// @Description Fetch one of the authenticated user's plants. Other users' plants read as not found.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [get]
func (s *Server) GetPlant(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	plant, err := s.plantService.GetPlant(c.UserContext(), actor, plantID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plant)
}

// UpdatePlant handles PUT /api/plants/:id
// @Summary Update a plant
// @Description Partially update a plant. Omitted fields keep their current value.
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Param request body object{name=string,species=string,location=string,watering_interval_days=int,fertilizing_interval_days=int} false "Fields to update"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [put]
func (s *Server) UpdatePlant(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req struct {
		Name                    *string `json:"name"`
		Species                 *string `json:"species"`
		Location                *string `json:"location"`
		WateringIntervalDays    *int    `json:"watering_interval_days"`
		FertilizingIntervalDays *int    `json:"fertilizing_interval_days"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plant, err := s.plantService.UpdatePlant(c.UserContext(), service.UpdatePlantInput{
		Actor:                   actor,
		PlantID:                 plantID,
		Name:                    req.Name,
		Species:                 req.Species,
		Location:                req.Location,
		WateringIntervalDays:    req.WateringIntervalDays,
		FertilizingIntervalDays: req.FertilizingIntervalDays,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plant)
}

// DeletePlant handles DELETE /api/plants/:id
// @Summary Delete a plant
// @Description Remove a plant from the registry along with its pending reminders.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id} [delete]
func (s *Server) DeletePlant(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	if err := s.plantService.DeletePlant(c.UserContext(), actor, plantID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Plant deleted"})
}

// RecordCare handles POST /api/plants/:id/care
// @Summary Record a care action
// @Description Mark a plant as watered or fertilized now, resetting its schedule for that task.
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Param request body object{kind=string} true "Care kind: watering or fertilizing"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/care [post]
func (s *Server) RecordCare(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	var req struct {
		Kind string `json:"kind"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plant, err := s.plantService.RecordCare(c.UserContext(), actor, plantID, models.CareKind(req.Kind))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plant)
}

// WaterPlant handles POST /api/plants/:id/water
// @Summary Water a plant
// @Description Shortcut for recording a watering action now.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/water [post]
func (s *Server) WaterPlant(c *fiber.Ctx) error {
	return s.recordCareKind(c, models.CareWatering)
}

// FertilizePlant handles POST /api/plants/:id/fertilize
// @Summary Fertilize a plant
// @Description Shortcut for recording a fertilizing action now.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/fertilize [post]
func (s *Server) FertilizePlant(c *fiber.Ctx) error {
	return s.recordCareKind(c, models.CareFertilizing)
}

func (s *Server) recordCareKind(c *fiber.Ctx, kind models.CareKind) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	plant, err := s.plantService.RecordCare(c.UserContext(), actor, plantID, kind)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plant)
}

// GetCareSchedule handles GET /api/plants/:id/care
// @Summary Get a plant's care schedule
// @Description Compute the next due date and overdue flag for each of the plant's care tasks.
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant ID"
// @Success 200 {object} object{plant=models.Plant,schedule=[]service.CareScheduleEntry}
// @Failure 404 {object} models.ErrorResponse
// @Router /plants/{id}/care [get]
func (s *Server) GetCareSchedule(c *fiber.Ctx) error {
	plantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	actor, err := s.actor(c)
	if err != nil {
		return nil
	}

	plant, schedule, err := s.plantService.CareSchedule(c.UserContext(), actor, plantID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"plant":    plant,
		"schedule": schedule,
	})
}
