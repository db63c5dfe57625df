package models

import "time"

// DiagnosisStatus is the verdict attached to an analyzed plant photo.
type DiagnosisStatus string

const (
	// DiagnosisHealthy indicates no visible problem.
	DiagnosisHealthy DiagnosisStatus = "healthy"
	// DiagnosisWarning indicates early signs of stress.
	DiagnosisWarning DiagnosisStatus = "warning"
	// DiagnosisSick indicates clear signs of disease or decay.
	DiagnosisSick DiagnosisStatus = "sick"
)

// PlantPhoto is an uploaded photo together with the heuristic diagnosis
// computed at upload time. The original bytes are not stored; only a
// downscaled WebP rendition plus the decoded metadata and the analysis
// result are kept.
type PlantPhoto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PlantID   uint   `gorm:"not null;index" json:"plant_id"`
	Plant     Plant  `gorm:"foreignKey:PlantID" json:"-"`
	Format    string `gorm:"size:10;not null" json:"format"`
	Width     int    `gorm:"not null" json:"width"`
	Height    int    `gorm:"not null" json:"height"`
	SizeBytes int    `gorm:"not null" json:"size_bytes"`
	ThumbPath string `gorm:"size:255" json:"thumb_path"`

	Status     DiagnosisStatus `gorm:"type:varchar(20);not null" json:"status"`
	GreenRatio float64         `gorm:"not null" json:"green_ratio"`
	Advice     string          `gorm:"type:text" json:"advice"`

	CreatedAt time.Time `json:"created_at"`
}
