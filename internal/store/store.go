// Package store provides the SQLite-backed persistence provider for
// vehicles and entries. The import pipeline does not depend on this package
// directly; it consumes the store through the narrow roster, existing-entries
// and submit contracts, so another backend can be swapped in.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

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

// Store wraps the SQLite database holding vehicles and entries.
type Store struct {
	db *sql.DB
}

// New opens (creating if necessary) the database at dbPath and brings the
// schema up to date.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateVehicle adds a vehicle to the roster and returns it with a minted id.
func (s *Store) CreateVehicle(ctx context.Context, name string) (models.Vehicle, error) {
	v := models.Vehicle{ID: uuid.New().String(), Name: name}
	_, err := s.db.ExecContext(ctx, `INSERT INTO vehicles (id, name) VALUES (?, ?)`, v.ID, v.Name)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("create vehicle: %w", err)
	}

	log.WithFields(logrus.Fields{"id": v.ID, "name": v.Name}).Info("Vehicle created")
	return v, nil
}

// ListVehicles returns the roster in insertion order.
func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM vehicles ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// CreateEntry persists one entry, minting an id when the entry has none.
func (s *Store) CreateEntry(ctx context.Context, entry models.Entry) error {
	const insert = `INSERT INTO entries (
		id, kind, vehicle_id, date, time, category, amount, currency,
		fuel_company, fuel_type, mileage, distance_unit, volume, volume_unit,
		cost, location, partial_fuel_up, payment_type, tyre_pressure,
		tyre_pressure_unit, tags, notes
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var err error
	switch e := entry.(type) {
	case models.FuelEntry:
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		partial := 0
		if e.PartialFuelUp {
			partial = 1
		}
		_, err = s.db.ExecContext(ctx, insert,
			id, string(models.KindFuel), e.VehicleID, dateutils.ToISODate(e.Date), e.Time,
			"", "0", e.Currency,
			e.FuelCompany, e.FuelType, e.Mileage.String(), e.DistanceUnit,
			e.Volume.String(), e.VolumeUnit, e.Cost.String(), e.Location,
			partial, e.PaymentType, e.TyrePressure.String(), e.TyrePressureUnit,
			textutils.JoinTags(e.Tags), e.Notes)
	case models.ExpenseEntry:
		err = s.insertMoney(ctx, insert, models.KindExpense, e.ID, e.VehicleID, e.Category, e.Amount, e.Currency, e.Date, e.Notes)
	case models.IncomeEntry:
		err = s.insertMoney(ctx, insert, models.KindIncome, e.ID, e.VehicleID, e.Category, e.Amount, e.Currency, e.Date, e.Notes)
	default:
		return fmt.Errorf("unsupported entry type %T", entry)
	}

	if err != nil {
		return fmt.Errorf("create %s entry: %w", entry.Kind(), err)
	}
	return nil
}

func (s *Store) insertMoney(ctx context.Context, insert string, kind models.EntryKind, id, vehicleID, category string, amount decimal.Decimal, currency string, date time.Time, notes string) error {
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, insert,
		id, string(kind), vehicleID, dateutils.ToISODate(date), "",
		category, amount.String(), currency,
		"", "", "0", "", "0", "", "0", "", 0, "", "0", "", "", notes)
	return err
}

// ListEntries returns all persisted entries of one kind, ordered by date.
func (s *Store) ListEntries(ctx context.Context, kind models.EntryKind) ([]models.Entry, error) {
	const query = `SELECT
		id, vehicle_id, date, time, category, amount, currency,
		fuel_company, fuel_type, mileage, distance_unit, volume, volume_unit,
		cost, location, partial_fuel_up, payment_type, tyre_pressure,
		tyre_pressure_unit, tags, notes
	FROM entries WHERE kind = ? ORDER BY date, rowid`

	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", kind, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows, kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows, kind models.EntryKind) (models.Entry, error) {
	var (
		id, vehicleID, dateStr, clock, category, amountStr, currency  string
		fuelCompany, fuelType, mileageStr, distanceUnit               string
		volumeStr, volumeUnit, costStr, location                      string
		partial                                                       int
		paymentType, tyrePressureStr, tyrePressureUnit, tagsStr, note string
	)
	if err := rows.Scan(&id, &vehicleID, &dateStr, &clock, &category, &amountStr, &currency,
		&fuelCompany, &fuelType, &mileageStr, &distanceUnit, &volumeStr, &volumeUnit,
		&costStr, &location, &partial, &paymentType, &tyrePressureStr, &tyrePressureUnit,
		&tagsStr, &note); err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	date, err := dateutils.ParseISODate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", id, err)
	}

	if kind != models.KindFuel {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("entry %s: invalid amount %q", id, amountStr)
		}
		if kind == models.KindIncome {
			return models.NewIncomeEntry(id, vehicleID, category, amount, currency, date, note), nil
		}
		return models.NewExpenseEntry(id, vehicleID, category, amount, currency, date, note), nil
	}

	mileage, err := decimal.NewFromString(mileageStr)
	if err != nil {
		return nil, fmt.Errorf("entry %s: invalid mileage %q", id, mileageStr)
	}
	volume, err := decimal.NewFromString(volumeStr)
	if err != nil {
		return nil, fmt.Errorf("entry %s: invalid volume %q", id, volumeStr)
	}
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return nil, fmt.Errorf("entry %s: invalid cost %q", id, costStr)
	}
	tyrePressure, err := decimal.NewFromString(tyrePressureStr)
	if err != nil {
		return nil, fmt.Errorf("entry %s: invalid tyre pressure %q", id, tyrePressureStr)
	}

	return models.FuelEntry{
		ID:               id,
		VehicleID:        vehicleID,
		FuelCompany:      fuelCompany,
		FuelType:         fuelType,
		Mileage:          mileage,
		DistanceUnit:     distanceUnit,
		Volume:           volume,
		VolumeUnit:       volumeUnit,
		Cost:             cost,
		Currency:         currency,
		Date:             date,
		Time:             clock,
		Location:         location,
		PartialFuelUp:    partial != 0,
		PaymentType:      paymentType,
		TyrePressure:     tyrePressure,
		TyrePressureUnit: tyrePressureUnit,
		Tags:             textutils.SplitTags(tagsStr),
		Notes:            note,
	}, nil
}
