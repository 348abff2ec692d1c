// Package duplicates compares validated candidates against already persisted
// entries and produces advisory warnings. Vehicle and date are the natural
// dedup key and match exactly; numeric fields use tolerance windows that
// absorb rounding and rekeying noise from manual re-entry. Warnings never
// remove or mutate a candidate.
package duplicates

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"garagelog/internal/dateutils"
	"garagelog/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Tolerance windows. A delta strictly below the window flags a duplicate;
// a delta at or above it does not.
var (
	mileageWindow = decimal.NewFromInt(10)
	amountWindow  = decimal.NewFromInt(1)
)

// Detect compares each candidate against the persisted entries of the same
// kind and returns one warning per candidate that has at least one close
// match. The candidate set is returned untouched by design - the caller
// decides what to do with the warnings.
func Detect(candidates []models.Candidate, existing []models.Entry) []models.DuplicateWarning {
	var warnings []models.DuplicateWarning

	for _, c := range candidates {
		for _, e := range existing {
			if !matches(c.Entry, e) {
				continue
			}
			warnings = append(warnings, models.DuplicateWarning{
				Row:      c.Row,
				Message:  fmt.Sprintf("possible duplicate of an existing %s entry", e.Kind()),
				Existing: e.Label(),
			})
			break // one warning per row is enough
		}
	}

	if len(warnings) > 0 {
		log.WithField("count", len(warnings)).Warn("Found possible duplicate entries")
	}
	return warnings
}

func matches(candidate, existing models.Entry) bool {
	if candidate.Kind() != existing.Kind() {
		return false
	}
	if candidate.Vehicle() != existing.Vehicle() {
		return false
	}
	if !dateutils.SameDay(candidate.When(), existing.When()) {
		return false
	}

	switch c := candidate.(type) {
	case models.FuelEntry:
		e, ok := existing.(models.FuelEntry)
		return ok && within(c.Mileage, e.Mileage, mileageWindow) && within(c.Cost, e.Cost, amountWindow)
	case models.ExpenseEntry:
		e, ok := existing.(models.ExpenseEntry)
		return ok && c.Category == e.Category && within(c.Amount, e.Amount, amountWindow)
	case models.IncomeEntry:
		e, ok := existing.(models.IncomeEntry)
		return ok && c.Category == e.Category && within(c.Amount, e.Amount, amountWindow)
	default:
		return false
	}
}

func within(a, b, window decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(window)
}
