// Package validator turns header-keyed row records into typed candidate
// entries. All violations for a row are collected, never short-circuited,
// so the user sees every problem with a row at once.
package validator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"garagelog/internal/currencyutils"
	"garagelog/internal/dateutils"
	"garagelog/internal/models"
	"garagelog/internal/rowparser"
	"garagelog/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Defaults are the values applied to optional fields a row leaves blank.
type Defaults struct {
	Currency string
	FuelTime string
}

// normalized fills any zero-valued default with its built-in fallback.
func (d Defaults) normalized() Defaults {
	if d.Currency == "" {
		d.Currency = "USD"
	}
	if d.FuelTime == "" {
		d.FuelTime = dateutils.DefaultClock
	}
	return d
}

// Validate checks one row record against the rule set for the given entry
// kind and converts it into a typed candidate entry. rowIndex is 1-based.
// When any violation exists the returned entry is nil: partial, best-effort
// entries are never produced.
func Validate(rec rowparser.Record, rowIndex int, kind models.EntryKind, roster []models.Vehicle, defaults Defaults) (models.Entry, []models.ValidationError) {
	defaults = defaults.normalized()

	var errs []models.ValidationError
	addErr := func(field, message, value string) {
		errs = append(errs, models.ValidationError{Row: rowIndex, Field: field, Message: message, Value: value})
	}

	for _, col := range models.RequiredColumns(kind) {
		if rec[col] == "" {
			addErr(col, "required field is missing", "")
		}
	}

	// Vehicle resolution runs even when other required fields already
	// failed, so a row's problems are reported all at once.
	vehicleID := ""
	if name := rec[models.ColCarName]; name != "" {
		id, ok := ResolveVehicle(name, roster)
		if !ok {
			addErr(models.ColCarName, "vehicle not found: create the vehicle before importing entries for it", name)
		}
		vehicleID = id
	}

	var date time.Time
	if raw := rec[models.ColDate]; raw != "" {
		d, err := dateutils.ParseISODate(raw)
		if err != nil {
			addErr(models.ColDate, err.Error(), raw)
		}
		date = d
	}

	var entry models.Entry
	switch kind {
	case models.KindFuel:
		entry = validateFuel(rec, date, vehicleID, defaults, addErr)
	default:
		entry = validateMoney(rec, kind, date, vehicleID, defaults, addErr)
	}

	if len(errs) > 0 {
		log.WithFields(logrus.Fields{
			"row":    rowIndex,
			"errors": len(errs),
		}).Debug("Row rejected by validation")
		return nil, errs
	}
	return entry, nil
}

type errFunc func(field, message, value string)

func validateFuel(rec rowparser.Record, date time.Time, vehicleID string, defaults Defaults, addErr errFunc) models.Entry {
	mileage := requireDecimal(rec, models.ColMileage, addErr)
	volume := requireDecimal(rec, models.ColVolume, addErr)
	cost := requireDecimal(rec, models.ColCost, addErr)
	tyrePressure := optionalDecimal(rec, models.ColTyrePressure, addErr)

	clock := defaults.FuelTime
	if raw := rec[models.ColTime]; raw != "" {
		c, err := dateutils.ParseClock(raw)
		if err != nil {
			addErr(models.ColTime, err.Error(), raw)
		}
		clock = c
	}

	return models.FuelEntry{
		VehicleID:        vehicleID,
		FuelCompany:      rec[models.ColFuelCompany],
		FuelType:         rec[models.ColFuelType],
		Mileage:          mileage,
		DistanceUnit:     rec[models.ColDistanceUnit],
		Volume:           volume,
		VolumeUnit:       rec[models.ColVolumeUnit],
		Cost:             cost,
		Currency:         currencyutils.Normalize(rec[models.ColCurrency], defaults.Currency),
		Date:             date,
		Time:             clock,
		Location:         rec[models.ColLocation],
		PartialFuelUp:    textutils.ParseYesNo(rec[models.ColPartialFuelUp]),
		PaymentType:      rec[models.ColPaymentType],
		TyrePressure:     tyrePressure,
		TyrePressureUnit: rec[models.ColTyrePressureUnit],
		Tags:             textutils.SplitTags(rec[models.ColTags]),
		Notes:            rec[models.ColNotes],
	}
}

func validateMoney(rec rowparser.Record, kind models.EntryKind, date time.Time, vehicleID string, defaults Defaults, addErr errFunc) models.Entry {
	amount := requireDecimal(rec, models.ColAmount, addErr)
	currency := currencyutils.Normalize(rec[models.ColCurrency], defaults.Currency)
	category := rec[models.ColCategory]
	notes := rec[models.ColNotes]

	if kind == models.KindIncome {
		return models.NewIncomeEntry("", vehicleID, category, amount, currency, date, notes)
	}
	return models.NewExpenseEntry("", vehicleID, category, amount, currency, date, notes)
}

// requireDecimal parses a populated numeric field. Presence is checked by
// the required-field pass; this only reports parse failures.
func requireDecimal(rec rowparser.Record, col string, addErr errFunc) decimal.Decimal {
	raw := rec[col]
	if raw == "" {
		return decimal.Zero
	}
	dec, err := models.ParseDecimal(raw)
	if err != nil {
		addErr(col, fmt.Sprintf("invalid number %q", raw), raw)
		return decimal.Zero
	}
	return dec
}

// optionalDecimal parses an optional numeric field, defaulting to zero when
// unpopulated. A populated value that fails to parse is still an error.
func optionalDecimal(rec rowparser.Record, col string, addErr errFunc) decimal.Decimal {
	if rec[col] == "" {
		return decimal.Zero
	}
	return requireDecimal(rec, col, addErr)
}
