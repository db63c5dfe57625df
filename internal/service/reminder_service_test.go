package service

import (
	"context"
	"testing"
	"time"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueReminder(t *testing.T) {
	today := date(2026, time.August, 24)

	t.Run("due when interval elapsed since last watering", func(t *testing.T) {
		last := date(2026, time.August, 10)
		plant := &models.Plant{ID: 1, WateringIntervalDays: 7, LastWateredAt: &last}

		r, ok := dueReminder(plant, models.CareWatering, today)
		require.True(t, ok)
		assert.Equal(t, "2026-08-17", r.DueOn)
		assert.Equal(t, models.CareWatering, r.Kind)
	})

	t.Run("not due before the interval elapses", func(t *testing.T) {
		last := date(2026, time.August, 20)
		plant := &models.Plant{ID: 1, WateringIntervalDays: 7, LastWateredAt: &last}

		_, ok := dueReminder(plant, models.CareWatering, today)
		assert.False(t, ok)
	})

	t.Run("falls back to acquisition date when never watered", func(t *testing.T) {
		acquired := date(2026, time.August, 1)
		plant := &models.Plant{ID: 1, WateringIntervalDays: 7, AcquiredAt: &acquired}

		r, ok := dueReminder(plant, models.CareWatering, today)
		require.True(t, ok)
		assert.Equal(t, "2026-08-08", r.DueOn)
	})

	t.Run("zero fertilizing interval disables the task", func(t *testing.T) {
		plant := &models.Plant{ID: 1, FertilizingIntervalDays: 0, CreatedAt: date(2026, time.January, 1)}

		_, ok := dueReminder(plant, models.CareFertilizing, today)
		assert.False(t, ok)
	})
}

func TestReminderService_Sweep(t *testing.T) {
	ctx := context.Background()
	lastWatered := date(2026, time.August, 1)
	lastFertilized := date(2026, time.June, 1)

	plantRepo := noopPlantRepo()
	plantRepo.listAllFn = func(_ context.Context) ([]*models.Plant, error) {
		return []*models.Plant{
			{ID: 1, WateringIntervalDays: 7, LastWateredAt: &lastWatered},
			{ID: 2, WateringIntervalDays: 7, FertilizingIntervalDays: 30, LastWateredAt: &lastWatered, LastFertilizedAt: &lastFertilized},
			{ID: 3, WateringIntervalDays: 30, LastWateredAt: &lastWatered},
		}, nil
	}

	reminderRepo := noopReminderRepo()
	var inserted []models.CareReminder
	reminderRepo.insertMissingFn = func(_ context.Context, rs []models.CareReminder) (int64, error) {
		inserted = rs
		return int64(len(rs)), nil
	}

	svc := NewReminderService(plantRepo, reminderRepo)
	svc.now = func() time.Time { return date(2026, time.August, 24) }

	n, err := svc.Sweep(ctx)
	require.NoError(t, err)
	// plants 1 and 2 are overdue for watering, plant 2 for fertilizing;
	// plant 3's 30-day interval has not elapsed.
	assert.Equal(t, int64(3), n)
	require.Len(t, inserted, 3)

	kinds := map[models.CareKind]int{}
	for _, r := range inserted {
		kinds[r.Kind]++
	}
	assert.Equal(t, 2, kinds[models.CareWatering])
	assert.Equal(t, 1, kinds[models.CareFertilizing])
}

func TestReminderService_AcknowledgeReminder(t *testing.T) {
	ctx := context.Background()

	reminderFor := func(ownerID uint) *reminderRepoStub {
		repo := noopReminderRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.CareReminder, error) {
			return &models.CareReminder{ID: 1, PlantID: 2, Plant: models.Plant{ID: 2, UserID: ownerID}}, nil
		}
		return repo
	}

	t.Run("owner acknowledges", func(t *testing.T) {
		svc := NewReminderService(noopPlantRepo(), reminderFor(9))
		r, err := svc.AcknowledgeReminder(ctx, models.Actor{ID: 9}, 1)
		require.NoError(t, err)
		assert.True(t, r.Acknowledged)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		svc := NewReminderService(noopPlantRepo(), reminderFor(9))
		_, err := svc.AcknowledgeReminder(ctx, models.Actor{ID: 3}, 1)
		assertNotFoundError(t, err)
	})
}
