// Package exporter renders persisted entries into the CSV interchange
// format. Column names and order are identical to what the importer
// consumes, which is the round-trip guarantee: exporting and re-importing
// a data set reproduces it.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"garagelog/internal/dateutils"
	"garagelog/internal/models"
	"garagelog/internal/textutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the field separator for CSV output.
var Delimiter rune = ','

// SetDelimiter sets the field separator for subsequent exports.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// Export renders entries of one kind to w, applying the filter first. The
// internal vehicle identifier is mapped back to the vehicle's display name,
// the inverse of import-time resolution. Filters are pure predicates: the
// entry slice is never mutated.
func Export(w io.Writer, kind models.EntryKind, entries []models.Entry, vehicles []models.Vehicle, filter Filter) error {
	names := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = v.Name
	}

	nameFor := func(e models.Entry) string {
		if name, ok := names[e.Vehicle()]; ok {
			return name
		}
		// Entry references a vehicle the roster no longer has. Exporting
		// the raw identifier keeps the row visible instead of dropping it.
		log.WithField("vehicle", e.Vehicle()).Warn("Vehicle id not found in roster, exporting raw id")
		return e.Vehicle()
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if kind == models.KindFuel {
		rows := make([]models.FuelCSVRow, 0, len(entries))
		for _, e := range entries {
			fe, ok := e.(models.FuelEntry)
			if !ok || !filter.Match(e) {
				continue
			}
			rows = append(rows, fuelRow(fe, nameFor(e)))
		}
		if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		log.WithField("count", len(rows)).Info("Exported fuel entries")
		return nil
	}

	rows := make([]models.MoneyCSVRow, 0, len(entries))
	for _, e := range entries {
		if e.Kind() != kind || !filter.Match(e) {
			continue
		}
		rows = append(rows, moneyRow(e, nameFor(e)))
	}
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	log.WithFields(logrus.Fields{
		"count": len(rows),
		"kind":  kind,
	}).Info("Exported entries")
	return nil
}

// ExportToFile writes the export to a file, creating parent directories as
// needed.
func ExportToFile(path string, kind models.EntryKind, entries []models.Entry, vehicles []models.Vehicle, filter Filter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Export(file, kind, entries, vehicles, filter)
}

func fuelRow(e models.FuelEntry, carName string) models.FuelCSVRow {
	return models.FuelCSVRow{
		CarName:          carName,
		Date:             dateutils.ToISODate(e.Date),
		Time:             e.Time,
		FuelCompany:      e.FuelCompany,
		FuelType:         e.FuelType,
		Mileage:          e.Mileage.String(),
		DistanceUnit:     e.DistanceUnit,
		Volume:           e.Volume.String(),
		VolumeUnit:       e.VolumeUnit,
		Cost:             e.Cost.String(),
		Currency:         e.Currency,
		Location:         e.Location,
		PartialFuelUp:    textutils.FormatYesNo(e.PartialFuelUp),
		PaymentType:      e.PaymentType,
		TyrePressure:     e.TyrePressure.String(),
		TyrePressureUnit: e.TyrePressureUnit,
		Tags:             textutils.JoinTags(e.Tags),
		Notes:            e.Notes,
	}
}

func moneyRow(e models.Entry, carName string) models.MoneyCSVRow {
	row := models.MoneyCSVRow{
		CarName: carName,
		Date:    dateutils.ToISODate(e.When()),
	}
	switch m := e.(type) {
	case models.ExpenseEntry:
		row.Category = m.Category
		row.Amount = m.Amount.String()
		row.Currency = m.Currency
		row.Notes = m.Notes
	case models.IncomeEntry:
		row.Category = m.Category
		row.Amount = m.Amount.String()
		row.Currency = m.Currency
		row.Notes = m.Notes
	}
	return row
}
