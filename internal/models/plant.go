package models

import (
	"time"

	"gorm.io/gorm"
)

// Plant is a user-registered plant with its care intervals. Watering and
// fertilizing schedules are derived from the interval fields and the last
// care timestamps; nothing scheduled is persisted on the plant itself.
type Plant struct {
	ID                      uint           `gorm:"primaryKey" json:"id"`
	UserID                  uint           `gorm:"not null;index" json:"user_id"`
	User                    User           `gorm:"foreignKey:UserID" json:"-"`
	Name                    string         `gorm:"size:80;not null" json:"name"`
	Species                 string         `gorm:"size:120" json:"species"`
	Location                string         `gorm:"size:120" json:"location"`
	AcquiredAt              *time.Time     `json:"acquired_at"`
	WateringIntervalDays    int            `gorm:"not null" json:"watering_interval_days"`
	FertilizingIntervalDays int            `gorm:"not null;default:0" json:"fertilizing_interval_days"`
	LastWateredAt           *time.Time     `json:"last_watered_at"`
	LastFertilizedAt        *time.Time     `json:"last_fertilized_at"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`

	Photos []PlantPhoto `gorm:"foreignKey:PlantID" json:"photos,omitempty"`
}

// CareKind identifies the kind of care task a reminder refers to.
type CareKind string

const (
	// CareWatering is a watering task.
	CareWatering CareKind = "watering"
	// CareFertilizing is a fertilizing task.
	CareFertilizing CareKind = "fertilizing"
)

// CareReminder is a due care task produced by the reminder sweep. The
// (PlantID, Kind, DueOn) triple is unique so repeated sweeps are idempotent.
type CareReminder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlantID      uint      `gorm:"not null;uniqueIndex:idx_reminders_plant_kind_due" json:"plant_id"`
	Plant        Plant     `gorm:"foreignKey:PlantID" json:"plant,omitempty"`
	Kind         CareKind  `gorm:"type:varchar(20);not null;uniqueIndex:idx_reminders_plant_kind_due" json:"kind"`
	DueOn        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_reminders_plant_kind_due" json:"due_on"`
	Acknowledged bool      `gorm:"not null;default:false" json:"acknowledged"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
