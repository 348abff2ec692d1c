package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagelog/internal/models"
	"garagelog/internal/rowparser"
	"garagelog/internal/validator"
)

var (
	testVehicles = []models.Vehicle{{ID: "v1", Name: "My Car"}}
	testDay      = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
)

func testFuelEntry() models.FuelEntry {
	return models.FuelEntry{
		VehicleID:     "v1",
		Date:          testDay,
		Time:          "08:30",
		FuelCompany:   "Shell",
		FuelType:      "Diesel",
		Mileage:       decimal.NewFromInt(15000),
		DistanceUnit:  "km",
		Volume:        decimal.RequireFromString("45.5"),
		VolumeUnit:    "l",
		Cost:          decimal.RequireFromString("350.75"),
		Currency:      "USD",
		Location:      "Springfield",
		PartialFuelUp: true,
		Tags:          []string{"summer", "road-trip"},
		Notes:         "full tank",
	}
}

func TestExport_Fuel(t *testing.T) {
	var buf bytes.Buffer

	err := Export(&buf, models.KindFuel, []models.Entry{testFuelEntry()}, testVehicles, Filter{})
	require.NoError(t, err)

	result := rowparser.Parse(buf.String())
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, "My Car", rec[models.ColCarName])
	assert.Equal(t, "2024-01-15", rec[models.ColDate])
	assert.Equal(t, "08:30", rec[models.ColTime])
	assert.Equal(t, "15000", rec[models.ColMileage])
	assert.Equal(t, "45.5", rec[models.ColVolume])
	assert.Equal(t, "350.75", rec[models.ColCost])
	assert.Equal(t, "Yes", rec[models.ColPartialFuelUp])
	assert.Equal(t, "summer;road-trip", rec[models.ColTags])
	assert.Equal(t, "full tank", rec[models.ColNotes])
}

func TestExport_RoundTrip(t *testing.T) {
	// An exported file fed back through parse and validate must reproduce
	// the original entry.
	var buf bytes.Buffer
	original := testFuelEntry()

	require.NoError(t, Export(&buf, models.KindFuel, []models.Entry{original}, testVehicles, Filter{}))

	result := rowparser.Parse(buf.String())
	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Malformed)

	entry, errs := validator.Validate(result.Records[0], 1, models.KindFuel, testVehicles, validator.Defaults{})
	require.Empty(t, errs)

	reimported := entry.(models.FuelEntry)
	assert.Equal(t, original.VehicleID, reimported.VehicleID)
	assert.Equal(t, original.Date, reimported.Date)
	assert.Equal(t, original.Time, reimported.Time)
	assert.True(t, original.Mileage.Equal(reimported.Mileage))
	assert.True(t, original.Volume.Equal(reimported.Volume))
	assert.True(t, original.Cost.Equal(reimported.Cost))
	assert.Equal(t, original.PartialFuelUp, reimported.PartialFuelUp)
	assert.Equal(t, original.Tags, reimported.Tags)
	assert.Equal(t, original.Notes, reimported.Notes)
}

func TestExport_Expense(t *testing.T) {
	var buf bytes.Buffer
	entries := []models.Entry{
		models.NewExpenseEntry("e1", "v1", "Insurance", decimal.RequireFromString("120.50"), "EUR", testDay, "annual premium"),
	}

	require.NoError(t, Export(&buf, models.KindExpense, entries, testVehicles, Filter{}))

	result := rowparser.Parse(buf.String())
	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "My Car", rec[models.ColCarName])
	assert.Equal(t, "Insurance", rec[models.ColCategory])
	assert.Equal(t, "120.5", rec[models.ColAmount])
	assert.Equal(t, "EUR", rec[models.ColCurrency])
}

func TestExport_SkipsOtherKinds(t *testing.T) {
	var buf bytes.Buffer
	entries := []models.Entry{
		testFuelEntry(),
		models.NewExpenseEntry("e1", "v1", "Toll", decimal.NewFromInt(5), "USD", testDay, ""),
	}

	require.NoError(t, Export(&buf, models.KindExpense, entries, testVehicles, Filter{}))

	result := rowparser.Parse(buf.String())
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Toll", result.Records[0][models.ColCategory])
}

func TestExport_UnknownVehicleExportsRawID(t *testing.T) {
	var buf bytes.Buffer
	entry := testFuelEntry()
	entry.VehicleID = "gone"

	require.NoError(t, Export(&buf, models.KindFuel, []models.Entry{entry}, testVehicles, Filter{}))

	result := rowparser.Parse(buf.String())
	require.Len(t, result.Records, 1, "entries must never be dropped silently")
	assert.Equal(t, "gone", result.Records[0][models.ColCarName])
}

func TestExport_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Export(&buf, models.KindFuel, nil, testVehicles, Filter{}))

	result := rowparser.Parse(buf.String())
	assert.Empty(t, result.Records)
	assert.Contains(t, buf.String(), models.ColCarName)
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "fuel.csv")

	err := ExportToFile(path, models.KindFuel, []models.Entry{testFuelEntry()}, testVehicles, Filter{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "My Car")
}
