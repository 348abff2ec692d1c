package exporter

import (
	"time"

	"garagelog/internal/models"
)

// Filter narrows an export to one vehicle, a date range and, for expense
// and income entries, a category. Zero values leave a dimension open.
type Filter struct {
	VehicleID string
	From      time.Time
	To        time.Time
	Category  string
}

// Match reports whether the entry passes the filter. Pure predicate: it
// never mutates the entry.
func (f Filter) Match(e models.Entry) bool {
	if f.VehicleID != "" && e.Vehicle() != f.VehicleID {
		return false
	}
	if !f.From.IsZero() && e.When().Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.When().After(f.To) {
		return false
	}
	if f.Category != "" {
		switch m := e.(type) {
		case models.ExpenseEntry:
			if m.Category != f.Category {
				return false
			}
		case models.IncomeEntry:
			if m.Category != f.Category {
				return false
			}
		}
		// Fuel entries have no category; the filter leaves them alone.
	}
	return true
}
