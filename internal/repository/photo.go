package repository

import (
	"context"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"gorm.io/gorm"
)

// PhotoRepository defines the interface for plant photo records.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.PlantPhoto) error
	GetByID(ctx context.Context, id uint) (*models.PlantPhoto, error)
	ListByPlant(ctx context.Context, plantID uint) ([]*models.PlantPhoto, error)
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.PlantPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) GetByID(ctx context.Context, id uint) (*models.PlantPhoto, error) {
	var photo models.PlantPhoto
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByPlant(ctx context.Context, plantID uint) ([]*models.PlantPhoto, error) {
	var photos []*models.PlantPhoto
	err := r.db.WithContext(ctx).
		Where("plant_id = ?", plantID).
		Order("created_at DESC").
		Find(&photos).Error
	return photos, err
}
