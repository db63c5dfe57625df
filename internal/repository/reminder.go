package repository

import (
	"context"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReminderRepository defines the interface for care reminder operations.
type ReminderRepository interface {
	InsertMissing(ctx context.Context, reminders []models.CareReminder) (int64, error)
	ListPendingByUser(ctx context.Context, userID uint) ([]*models.CareReminder, error)
	ListByPlant(ctx context.Context, plantID uint) ([]*models.CareReminder, error)
	GetByID(ctx context.Context, id uint) (*models.CareReminder, error)
	Acknowledge(ctx context.Context, id uint) error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// InsertMissing inserts reminders that do not exist yet and silently skips
// duplicates on the (plant_id, kind, due_on) unique index. This makes the
// sweep safe to re-run at any time. Returns the number of rows inserted.
func (r *reminderRepository) InsertMissing(ctx context.Context, reminders []models.CareReminder) (int64, error) {
	if len(reminders) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "plant_id"}, {Name: "kind"}, {Name: "due_on"}},
		DoNothing: true,
	}).Create(&reminders)
	return result.RowsAffected, result.Error
}

func (r *reminderRepository) ListPendingByUser(ctx context.Context, userID uint) ([]*models.CareReminder, error) {
	var reminders []*models.CareReminder
	err := r.db.WithContext(ctx).
		Preload("Plant").
		Joins("JOIN plants ON plants.id = care_reminders.plant_id").
		Where("plants.user_id = ? AND plants.deleted_at IS NULL AND care_reminders.acknowledged = ?", userID, false).
		Order("care_reminders.due_on ASC, care_reminders.id ASC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) ListByPlant(ctx context.Context, plantID uint) ([]*models.CareReminder, error) {
	var reminders []*models.CareReminder
	err := r.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("due_on DESC").
		Find(&reminders).Error
	return reminders, err
}

func (r *reminderRepository) GetByID(ctx context.Context, id uint) (*models.CareReminder, error) {
	var reminder models.CareReminder
	if err := r.db.WithContext(ctx).Preload("Plant").First(&reminder, id).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) Acknowledge(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.CareReminder{}).
		Where("id = ?", id).
		Update("acknowledged", true).Error
}
