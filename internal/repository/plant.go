package repository

import (
	"context"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/cache"
	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
)

// PlantRepository defines the interface for plant registry operations.
type PlantRepository interface {
	Create(ctx context.Context, plant *models.Plant) error
	GetByID(ctx context.Context, id uint) (*models.Plant, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Plant, error)
	ListAll(ctx context.Context) ([]*models.Plant, error)
	Update(ctx context.Context, plant *models.Plant) error
	Delete(ctx context.Context, id uint) error
}

type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new plant repository.
func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) Create(ctx context.Context, plant *models.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *plantRepository) GetByID(ctx context.Context, id uint) (*models.Plant, error) {
	var plant models.Plant
	err := cache.Aside(ctx, cache.PlantKey(id), &plant, cache.PlantTTL, func() error {
		return r.db.WithContext(ctx).First(&plant, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Plant, error) {
	var plants []*models.Plant
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&plants).Error
	return plants, err
}

// ListAll feeds the reminder sweep, which walks every plant regardless of owner.
func (r *plantRepository) ListAll(ctx context.Context) ([]*models.Plant, error) {
	var plants []*models.Plant
	err := r.db.WithContext(ctx).Order("id ASC").Find(&plants).Error
	return plants, err
}

func (r *plantRepository) Update(ctx context.Context, plant *models.Plant) error {
	if err := r.db.WithContext(ctx).Save(plant).Error; err != nil {
		return err
	}
	cache.InvalidatePlant(ctx, plant.ID)
	return nil
}

func (r *plantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Plant{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePlant(ctx, id)
	return nil
}
