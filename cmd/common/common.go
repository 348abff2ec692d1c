// Package common contains shared functionality for command handlers
package common

import (
	"garagelog/internal/config"
	"garagelog/internal/prefs"
	"garagelog/internal/store"
	"garagelog/internal/validator"

	"github.com/sirupsen/logrus"
)

// OpenStore opens the configured SQLite store.
func OpenStore(cfg *config.Config) (*store.Store, error) {
	return store.New(cfg.Database.Path)
}

// BuildDefaults layers the user preference file over the configuration
// defaults. An unreadable preference file is logged and skipped rather than
// blocking a command.
func BuildDefaults(cfg *config.Config, log *logrus.Logger) validator.Defaults {
	defaults := validator.Defaults{
		Currency: cfg.Defaults.Currency,
		FuelTime: cfg.Defaults.FuelTime,
	}

	p, err := prefs.NewStore(cfg.Prefs.Path).Load()
	if err != nil {
		log.WithError(err).Warn("Could not load preference file, using configuration defaults")
		return defaults
	}
	if p.Currency != "" {
		defaults.Currency = p.Currency
	}
	if p.FuelTime != "" {
		defaults.FuelTime = p.FuelTime
	}
	return defaults
}
