package service

import (
	"context"
	"errors"
	"time"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/observability"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/repository"

	"gorm.io/gorm"
)

// dueOnLayout is the calendar-day format stored on reminders.
const dueOnLayout = "2006-01-02"

// ReminderService derives due care tasks from plant intervals. The sweep is a
// pure function of the registry: running it twice on the same day inserts
// nothing new, so it can run on a timer, on demand, or both.
type ReminderService struct {
	plantRepo    repository.PlantRepository
	reminderRepo repository.ReminderRepository
	now          func() time.Time
}

// NewReminderService returns a new ReminderService.
func NewReminderService(plantRepo repository.PlantRepository, reminderRepo repository.ReminderRepository) *ReminderService {
	return &ReminderService{
		plantRepo:    plantRepo,
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// Sweep walks every plant and inserts a reminder for each care task whose due
// date has arrived. Returns the number of newly created reminders.
func (s *ReminderService) Sweep(ctx context.Context) (int64, error) {
	plants, err := s.plantRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return s.sweepPlants(ctx, plants)
}

// SweepUser runs the sweep for a single user's plants. The reminder listing
// calls this first so a user always sees tasks that came due since the last
// background run.
func (s *ReminderService) SweepUser(ctx context.Context, userID uint) (int64, error) {
	plants, err := s.plantRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.sweepPlants(ctx, plants)
}

func (s *ReminderService) sweepPlants(ctx context.Context, plants []*models.Plant) (int64, error) {
	today := s.now().UTC()

	var due []models.CareReminder
	byKind := map[models.CareKind]int{}
	for _, plant := range plants {
		if r, ok := dueReminder(plant, models.CareWatering, today); ok {
			due = append(due, r)
			byKind[models.CareWatering]++
		}
		if r, ok := dueReminder(plant, models.CareFertilizing, today); ok {
			due = append(due, r)
			byKind[models.CareFertilizing]++
		}
	}

	inserted, err := s.reminderRepo.InsertMissing(ctx, due)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		for kind, n := range byKind {
			observability.RemindersGenerated.WithLabelValues(string(kind)).Add(float64(n))
		}
	}
	return inserted, nil
}

// dueReminder computes whether the given care task is due for the plant.
func dueReminder(plant *models.Plant, kind models.CareKind, today time.Time) (models.CareReminder, bool) {
	dueAt, ok := careDueDate(plant, kind)
	if !ok || dueAt.After(today) {
		return models.CareReminder{}, false
	}
	return models.CareReminder{
		PlantID: plant.ID,
		Kind:    kind,
		DueOn:   dueAt.UTC().Format(dueOnLayout),
	}, true
}

// careDueDate computes when the given care task next comes due. The clock
// starts at the last recorded care action, falling back to the acquisition
// date and then to registration. Returns false when the task is disabled.
func careDueDate(plant *models.Plant, kind models.CareKind) (time.Time, bool) {
	var interval int
	var last *time.Time

	switch kind {
	case models.CareWatering:
		interval = plant.WateringIntervalDays
		last = plant.LastWateredAt
	case models.CareFertilizing:
		interval = plant.FertilizingIntervalDays
		last = plant.LastFertilizedAt
	}
	if interval <= 0 {
		return time.Time{}, false
	}

	base := plant.CreatedAt
	if plant.AcquiredAt != nil {
		base = *plant.AcquiredAt
	}
	if last != nil {
		base = *last
	}

	return base.AddDate(0, 0, interval), true
}

// ListReminders returns the actor's unacknowledged reminders, sweeping their
// plants first.
func (s *ReminderService) ListReminders(ctx context.Context, actor models.Actor) ([]*models.CareReminder, error) {
	if _, err := s.SweepUser(ctx, actor.ID); err != nil {
		return nil, err
	}
	return s.reminderRepo.ListPendingByUser(ctx, actor.ID)
}

// AcknowledgeReminder marks a reminder handled. Only the plant's owner (or an
// admin) may acknowledge it.
func (s *ReminderService) AcknowledgeReminder(ctx context.Context, actor models.Actor, reminderID uint) (*models.CareReminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reminder", reminderID)
		}
		return nil, err
	}
	if reminder.Plant.UserID != actor.ID && !actor.IsAdmin {
		return nil, models.NewNotFoundError("Reminder", reminderID)
	}

	if err := s.reminderRepo.Acknowledge(ctx, reminderID); err != nil {
		return nil, err
	}
	reminder.Acknowledged = true
	return reminder, nil
}
