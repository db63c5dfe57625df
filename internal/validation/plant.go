package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bounds for plant registration.
const (
	MaxPlantNameLen         = 80
	MaxPlantFieldLen        = 120
	MaxWateringIntervalDays = 90
	MaxFertilizingDays      = 365
)

// ValidatePlantName checks the plant display name.
func ValidatePlantName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 {
		return fmt.Errorf("plant name is required")
	}
	if n > MaxPlantNameLen {
		return fmt.Errorf("plant name must not exceed %d characters", MaxPlantNameLen)
	}
	return nil
}

// ValidatePlantField checks optional descriptive fields (species, location).
func ValidatePlantField(label, value string) error {
	if utf8.RuneCountInString(value) > MaxPlantFieldLen {
		return fmt.Errorf("%s must not exceed %d characters", label, MaxPlantFieldLen)
	}
	return nil
}

// ValidateWateringInterval checks the watering interval in days.
func ValidateWateringInterval(days int) error {
	if days < 1 || days > MaxWateringIntervalDays {
		return fmt.Errorf("watering interval must be between 1 and %d days", MaxWateringIntervalDays)
	}
	return nil
}

// ValidateFertilizingInterval checks the fertilizing interval in days.
// Zero disables fertilizing reminders.
func ValidateFertilizingInterval(days int) error {
	if days < 0 || days > MaxFertilizingDays {
		return fmt.Errorf("fertilizing interval must be between 0 and %d days", MaxFertilizingDays)
	}
	return nil
}
