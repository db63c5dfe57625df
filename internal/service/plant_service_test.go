package service

import (
	"context"
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantService_CreatePlant(t *testing.T) {
	ctx := context.Background()
	actor := models.Actor{ID: 2}

	t.Run("creates with valid intervals", func(t *testing.T) {
		repo := noopPlantRepo()
		svc := NewPlantService(repo)
		plant, err := svc.CreatePlant(ctx, CreatePlantInput{
			Actor:                actor,
			Name:                 "Monstera deliciosa",
			WateringIntervalDays: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, actor.ID, plant.UserID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := NewPlantService(noopPlantRepo())
		_, err := svc.CreatePlant(ctx, CreatePlantInput{Actor: actor, Name: "  ", WateringIntervalDays: 7})
		assertValidationError(t, err)
	})

	t.Run("rejects out-of-range watering interval", func(t *testing.T) {
		svc := NewPlantService(noopPlantRepo())
		_, err := svc.CreatePlant(ctx, CreatePlantInput{Actor: actor, Name: "Cactus", WateringIntervalDays: 0})
		assertValidationError(t, err)
	})

	t.Run("rejects negative fertilizing interval", func(t *testing.T) {
		svc := NewPlantService(noopPlantRepo())
		_, err := svc.CreatePlant(ctx, CreatePlantInput{Actor: actor, Name: "Cactus", WateringIntervalDays: 7, FertilizingIntervalDays: -1})
		assertValidationError(t, err)
	})
}

func TestPlantService_Ownership(t *testing.T) {
	ctx := context.Background()

	ownedBy := func(ownerID uint) *plantRepoStub {
		repo := noopPlantRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Plant, error) {
			return &models.Plant{ID: 1, UserID: ownerID, WateringIntervalDays: 7}, nil
		}
		return repo
	}

	t.Run("owner reads their plant", func(t *testing.T) {
		svc := NewPlantService(ownedBy(5))
		plant, err := svc.GetPlant(ctx, models.Actor{ID: 5}, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), plant.ID)
	})

	t.Run("another user's plant reads as missing", func(t *testing.T) {
		svc := NewPlantService(ownedBy(5))
		_, err := svc.GetPlant(ctx, models.Actor{ID: 6}, 1)
		assertNotFoundError(t, err)
	})

	t.Run("admin can read any plant", func(t *testing.T) {
		svc := NewPlantService(ownedBy(5))
		_, err := svc.GetPlant(ctx, models.Actor{ID: 6, IsAdmin: true}, 1)
		assert.NoError(t, err)
	})
}

func TestPlantService_RecordCare(t *testing.T) {
	ctx := context.Background()
	actor := models.Actor{ID: 5}

	t.Run("watering stamps the plant", func(t *testing.T) {
		repo := noopPlantRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Plant, error) {
			return &models.Plant{ID: 1, UserID: 5, WateringIntervalDays: 7}, nil
		}
		var saved *models.Plant
		repo.updateFn = func(_ context.Context, p *models.Plant) error {
			saved = p
			return nil
		}

		svc := NewPlantService(repo)
		plant, err := svc.RecordCare(ctx, actor, 1, models.CareWatering)
		require.NoError(t, err)
		require.NotNil(t, plant.LastWateredAt)
		assert.Same(t, plant, saved)
	})

	t.Run("fertilizing refused when disabled", func(t *testing.T) {
		repo := noopPlantRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Plant, error) {
			return &models.Plant{ID: 1, UserID: 5, WateringIntervalDays: 7, FertilizingIntervalDays: 0}, nil
		}

		svc := NewPlantService(repo)
		_, err := svc.RecordCare(ctx, actor, 1, models.CareFertilizing)
		assertValidationError(t, err)
	})

	t.Run("unknown care kind refused", func(t *testing.T) {
		repo := noopPlantRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Plant, error) {
			return &models.Plant{ID: 1, UserID: 5, WateringIntervalDays: 7}, nil
		}

		svc := NewPlantService(repo)
		_, err := svc.RecordCare(ctx, actor, 1, "pruning")
		assertValidationError(t, err)
	})
}
