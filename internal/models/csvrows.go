package models

// Column names of the CSV interchange contract. The exporter emits columns
// in exactly this order and the importer reads rows keyed by these names;
// that identity is what guarantees exported files re-import losslessly.
const (
	ColCarName          = "Car Name"
	ColDate             = "Date"
	ColTime             = "Time"
	ColFuelCompany      = "Fuel Company"
	ColFuelType         = "Fuel Type"
	ColMileage          = "Mileage"
	ColDistanceUnit     = "Distance Unit"
	ColVolume           = "Volume"
	ColVolumeUnit       = "Volume Unit"
	ColCost             = "Cost"
	ColCurrency         = "Currency"
	ColLocation         = "Location"
	ColPartialFuelUp    = "Partial Fuel Up"
	ColPaymentType      = "Payment Type"
	ColTyrePressure     = "Tyre Pressure"
	ColTyrePressureUnit = "Tyre Pressure Unit"
	ColTags             = "Tags"
	ColNotes            = "Notes"
	ColCategory         = "Category"
	ColAmount           = "Amount"
)

// FuelCSVRow is the gocsv marshalling shape for one fuel entry. Field order
// matches the column contract; all values are rendered as strings so the
// output round-trips byte-for-byte through the importer.
type FuelCSVRow struct {
	CarName          string `csv:"Car Name"`
	Date             string `csv:"Date"`
	Time             string `csv:"Time"`
	FuelCompany      string `csv:"Fuel Company"`
	FuelType         string `csv:"Fuel Type"`
	Mileage          string `csv:"Mileage"`
	DistanceUnit     string `csv:"Distance Unit"`
	Volume           string `csv:"Volume"`
	VolumeUnit       string `csv:"Volume Unit"`
	Cost             string `csv:"Cost"`
	Currency         string `csv:"Currency"`
	Location         string `csv:"Location"`
	PartialFuelUp    string `csv:"Partial Fuel Up"`
	PaymentType      string `csv:"Payment Type"`
	TyrePressure     string `csv:"Tyre Pressure"`
	TyrePressureUnit string `csv:"Tyre Pressure Unit"`
	Tags             string `csv:"Tags"`
	Notes            string `csv:"Notes"`
}

// MoneyCSVRow is the gocsv marshalling shape shared by expense and income
// entries.
type MoneyCSVRow struct {
	CarName  string `csv:"Car Name"`
	Date     string `csv:"Date"`
	Category string `csv:"Category"`
	Amount   string `csv:"Amount"`
	Currency string `csv:"Currency"`
	Notes    string `csv:"Notes"`
}

// RequiredColumns returns the columns that must be populated for a row of
// the given kind to become a candidate entry.
func RequiredColumns(kind EntryKind) []string {
	if kind == KindFuel {
		return []string{ColCarName, ColDate, ColMileage, ColVolume, ColCost}
	}
	return []string{ColCarName, ColDate, ColCategory, ColAmount}
}
