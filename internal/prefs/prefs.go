// Package prefs manages the user preference file: per-user defaults applied
// to imported rows that leave optional fields blank.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"garagelog/internal/dateutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Preferences are the user-tunable defaults. Zero values fall back to the
// application configuration.
type Preferences struct {
	Currency     string `yaml:"currency,omitempty"`
	DistanceUnit string `yaml:"distance_unit,omitempty"`
	VolumeUnit   string `yaml:"volume_unit,omitempty"`
	FuelTime     string `yaml:"fuel_time,omitempty"`
}

// Store loads and saves the preference file.
type Store struct {
	Path string
}

// NewStore creates a preference store for the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the preference file. A missing file is not an error: it yields
// empty preferences so configuration defaults apply.
func (s *Store) Load() (Preferences, error) {
	if s.Path == "" {
		return Preferences{}, nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Preference file not found: %s", s.Path)
			return Preferences{}, nil
		}
		return Preferences{}, fmt.Errorf("error reading preference file: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("error parsing preference file: %w", err)
	}

	if p.FuelTime != "" {
		if _, err := dateutils.ParseClock(p.FuelTime); err != nil {
			return Preferences{}, fmt.Errorf("invalid fuel_time in preference file: %w", err)
		}
	}

	log.Debugf("Loaded preferences from %s", s.Path)
	return p, nil
}

// Save writes the preference file, creating parent directories as needed.
func (s *Store) Save(p Preferences) error {
	if s.Path == "" {
		return fmt.Errorf("no preference file path configured")
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("error marshaling preferences: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("error writing preference file: %w", err)
	}

	log.Debugf("Saved preferences to %s", s.Path)
	return nil
}
