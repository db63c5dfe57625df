package seed

import (
	_ "embed"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yml
var presetsYAML []byte

// Preset is a named seeding profile loaded from presets.yml.
type Preset struct {
	Description string `yaml:"description"`
	Users       int    `yaml:"users"`
	Plants      int    `yaml:"plants"`
	Posts       int    `yaml:"posts"`
	MaxDays     int    `yaml:"max_days"`
	SkipBcrypt  bool   `yaml:"skip_bcrypt"`
}

// LoadPresets parses the embedded preset profiles.
func LoadPresets() (map[string]Preset, error) {
	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse embedded presets: %w", err)
	}
	return presets, nil
}

// PresetNames returns the available preset names in stable order.
func PresetNames() ([]string, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ApplyPreset runs a full seed using the named profile.
func ApplyPreset(db *gorm.DB, name string) error {
	presets, err := LoadPresets()
	if err != nil {
		return err
	}
	preset, ok := presets[name]
	if !ok {
		names, _ := PresetNames()
		return fmt.Errorf("unknown preset %q (available: %v)", name, names)
	}

	return Seed(db, Options{
		NumUsers:    preset.Users,
		NumPlants:   preset.Plants,
		NumPosts:    preset.Posts,
		MaxDays:     preset.MaxDays,
		SkipBcrypt:  preset.SkipBcrypt,
		ShouldClean: true,
	})
}
