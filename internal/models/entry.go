// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the kind of a logged entry.
type EntryKind string

const (
	// KindFuel is a fuel fill-up entry.
	KindFuel EntryKind = "fuel"
	// KindExpense is a non-fuel expense entry.
	KindExpense EntryKind = "expense"
	// KindIncome is an income entry (e.g. mileage reimbursement).
	KindIncome EntryKind = "income"
)

// ParseEntryKind converts a user-supplied kind string to an EntryKind.
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(s) {
	case KindFuel, KindExpense, KindIncome:
		return EntryKind(s), nil
	default:
		return "", fmt.Errorf("unknown entry kind: %s (must be fuel, expense or income)", s)
	}
}

// Entry is the closed union of the three entry kinds. Concrete types are
// FuelEntry, ExpenseEntry and IncomeEntry; nothing else implements it.
// Untyped row maps never cross this boundary - an Entry only exists after
// a row has passed validation with zero errors.
type Entry interface {
	// Kind reports which entry kind this is.
	Kind() EntryKind
	// Vehicle returns the resolved vehicle identifier the entry belongs to.
	Vehicle() string
	// When returns the calendar date of the entry.
	When() time.Time
	// Label returns a short human-readable summary used in progress
	// reporting and duplicate warnings.
	Label() string
}

// FuelEntry is a validated fuel fill-up ready for persistence submission.
type FuelEntry struct {
	ID               string
	VehicleID        string
	FuelCompany      string
	FuelType         string
	Mileage          decimal.Decimal
	DistanceUnit     string
	Volume           decimal.Decimal
	VolumeUnit       string
	Cost             decimal.Decimal
	Currency         string
	Date             time.Time
	Time             string // wall clock HH:MM
	Location         string
	PartialFuelUp    bool
	PaymentType      string
	TyrePressure     decimal.Decimal
	TyrePressureUnit string
	Tags             []string
	Notes            string
}

// Kind implements Entry.
func (e FuelEntry) Kind() EntryKind { return KindFuel }

// Vehicle implements Entry.
func (e FuelEntry) Vehicle() string { return e.VehicleID }

// When implements Entry.
func (e FuelEntry) When() time.Time { return e.Date }

// Label implements Entry.
func (e FuelEntry) Label() string {
	return fmt.Sprintf("fuel %s, mileage %s, cost %s %s",
		e.Date.Format("2006-01-02"), e.Mileage.String(), e.Cost.String(), e.Currency)
}

// moneyFields holds the fields shared by expense and income entries.
type moneyFields struct {
	ID        string
	VehicleID string
	Category  string
	Amount    decimal.Decimal
	Currency  string
	Date      time.Time
	Notes     string
}

func (m moneyFields) label(kind EntryKind) string {
	return fmt.Sprintf("%s %s, %s, %s %s",
		kind, m.Date.Format("2006-01-02"), m.Category, m.Amount.String(), m.Currency)
}

// ExpenseEntry is a validated non-fuel expense ready for persistence submission.
type ExpenseEntry struct {
	moneyFields
}

// NewExpenseEntry builds an ExpenseEntry from its fields.
func NewExpenseEntry(id, vehicleID, category string, amount decimal.Decimal, currency string, date time.Time, notes string) ExpenseEntry {
	return ExpenseEntry{moneyFields{ID: id, VehicleID: vehicleID, Category: category, Amount: amount, Currency: currency, Date: date, Notes: notes}}
}

// Kind implements Entry.
func (e ExpenseEntry) Kind() EntryKind { return KindExpense }

// Vehicle implements Entry.
func (e ExpenseEntry) Vehicle() string { return e.VehicleID }

// When implements Entry.
func (e ExpenseEntry) When() time.Time { return e.Date }

// Label implements Entry.
func (e ExpenseEntry) Label() string { return e.label(KindExpense) }

// IncomeEntry is a validated income record ready for persistence submission.
type IncomeEntry struct {
	moneyFields
}

// NewIncomeEntry builds an IncomeEntry from its fields.
func NewIncomeEntry(id, vehicleID, category string, amount decimal.Decimal, currency string, date time.Time, notes string) IncomeEntry {
	return IncomeEntry{moneyFields{ID: id, VehicleID: vehicleID, Category: category, Amount: amount, Currency: currency, Date: date, Notes: notes}}
}

// Kind implements Entry.
func (e IncomeEntry) Kind() EntryKind { return KindIncome }

// Vehicle implements Entry.
func (e IncomeEntry) Vehicle() string { return e.VehicleID }

// When implements Entry.
func (e IncomeEntry) When() time.Time { return e.Date }

// Label implements Entry.
func (e IncomeEntry) Label() string { return e.label(KindIncome) }

// Candidate pairs a validated entry with the 1-based row it came from,
// so downstream diagnostics can point the user back at the source file.
type Candidate struct {
	Row   int
	Entry Entry
}
