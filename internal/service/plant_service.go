package service

import (
	"context"
	"errors"
	"time"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/validation"

	"gorm.io/gorm"
)

// PlantService manages each user's plant registry and care actions.
type PlantService struct {
	plantRepo repository.PlantRepository
}

// CreatePlantInput is the payload for registering a plant.
type CreatePlantInput struct {
	Actor                   models.Actor
	Name                    string
	Species                 string
	Location                string
	AcquiredAt              *time.Time
	WateringIntervalDays    int
	FertilizingIntervalDays int
}

// UpdatePlantInput carries partial plant updates. Nil fields are untouched.
type UpdatePlantInput struct {
	Actor                   models.Actor
	PlantID                 uint
	Name                    *string
	Species                 *string
	Location                *string
	WateringIntervalDays    *int
	FertilizingIntervalDays *int
}

// NewPlantService returns a new PlantService.
func NewPlantService(plantRepo repository.PlantRepository) *PlantService {
	return &PlantService{plantRepo: plantRepo}
}

func (s *PlantService) CreatePlant(ctx context.Context, in CreatePlantInput) (*models.Plant, error) {
	if err := validation.ValidatePlantName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePlantField("species", in.Species); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePlantField("location", in.Location); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateWateringInterval(in.WateringIntervalDays); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateFertilizingInterval(in.FertilizingIntervalDays); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	plant := &models.Plant{
		UserID:                  in.Actor.ID,
		Name:                    in.Name,
		Species:                 in.Species,
		Location:                in.Location,
		AcquiredAt:              in.AcquiredAt,
		WateringIntervalDays:    in.WateringIntervalDays,
		FertilizingIntervalDays: in.FertilizingIntervalDays,
	}
	if err := s.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// GetPlant returns a plant the actor owns.
func (s *PlantService) GetPlant(ctx context.Context, actor models.Actor, plantID uint) (*models.Plant, error) {
	return s.getOwned(ctx, actor, plantID)
}

func (s *PlantService) ListPlants(ctx context.Context, actor models.Actor) ([]*models.Plant, error) {
	return s.plantRepo.ListByUser(ctx, actor.ID)
}

func (s *PlantService) UpdatePlant(ctx context.Context, in UpdatePlantInput) (*models.Plant, error) {
	plant, err := s.getOwned(ctx, in.Actor, in.PlantID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidatePlantName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		plant.Name = *in.Name
	}
	if in.Species != nil {
		if err := validation.ValidatePlantField("species", *in.Species); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		plant.Species = *in.Species
	}
	if in.Location != nil {
		if err := validation.ValidatePlantField("location", *in.Location); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		plant.Location = *in.Location
	}
	if in.WateringIntervalDays != nil {
		if err := validation.ValidateWateringInterval(*in.WateringIntervalDays); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		plant.WateringIntervalDays = *in.WateringIntervalDays
	}
	if in.FertilizingIntervalDays != nil {
		if err := validation.ValidateFertilizingInterval(*in.FertilizingIntervalDays); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		plant.FertilizingIntervalDays = *in.FertilizingIntervalDays
	}

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (s *PlantService) DeletePlant(ctx context.Context, actor models.Actor, plantID uint) error {
	if _, err := s.getOwned(ctx, actor, plantID); err != nil {
		return err
	}
	return s.plantRepo.Delete(ctx, plantID)
}

// RecordCare marks a care action done now, resetting the corresponding
// reminder clock.
func (s *PlantService) RecordCare(ctx context.Context, actor models.Actor, plantID uint, kind models.CareKind) (*models.Plant, error) {
	plant, err := s.getOwned(ctx, actor, plantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	switch kind {
	case models.CareWatering:
		plant.LastWateredAt = &now
	case models.CareFertilizing:
		if plant.FertilizingIntervalDays == 0 {
			return nil, models.NewValidationError("Fertilizing is disabled for this plant")
		}
		plant.LastFertilizedAt = &now
	default:
		return nil, models.NewValidationError("Invalid care kind")
	}

	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, err
	}
	return plant, nil
}

// CareScheduleEntry is one computed line of a plant's care schedule.
type CareScheduleEntry struct {
	Kind    models.CareKind `json:"kind"`
	DueOn   string          `json:"due_on"`
	Overdue bool            `json:"overdue"`
}

// CareSchedule returns a plant together with the computed next due date for
// each care task. Tasks with no interval are omitted.
func (s *PlantService) CareSchedule(ctx context.Context, actor models.Actor, plantID uint) (*models.Plant, []CareScheduleEntry, error) {
	plant, err := s.getOwned(ctx, actor, plantID)
	if err != nil {
		return nil, nil, err
	}

	today := time.Now().UTC()
	schedule := []CareScheduleEntry{}
	for _, kind := range []models.CareKind{models.CareWatering, models.CareFertilizing} {
		dueAt, ok := careDueDate(plant, kind)
		if !ok {
			continue
		}
		schedule = append(schedule, CareScheduleEntry{
			Kind:    kind,
			DueOn:   dueAt.UTC().Format(dueOnLayout),
			Overdue: !dueAt.After(today),
		})
	}
	return plant, schedule, nil
}

// getOwned loads a plant and enforces ownership. Plants of other users are
// reported as missing, not as forbidden.
func (s *PlantService) getOwned(ctx context.Context, actor models.Actor, plantID uint) (*models.Plant, error) {
	plant, err := s.plantRepo.GetByID(ctx, plantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Plant", plantID)
		}
		return nil, err
	}
	if plant.UserID != actor.ID && !actor.IsAdmin {
		return nil, models.NewNotFoundError("Plant", plantID)
	}
	return plant, nil
}
