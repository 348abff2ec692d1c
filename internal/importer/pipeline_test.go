package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garagelog/internal/logging"
	"garagelog/internal/models"
	"garagelog/internal/validator"
)

const fuelCSV = `Car Name,Date,Mileage,Volume,Cost
My Car,2024-01-15,15000,45,350
My Car,2024-02-01,not-a-number,40,300
My Car,2024-02-20,16200,42,310
`

func testPipeline(store *fakeStore) *Pipeline {
	return &Pipeline{
		Kind:     models.KindFuel,
		Roster:   store.roster,
		Existing: store.existing,
		Submit:   store.submit,
		Defaults: validator.Defaults{Currency: "USD"},
		Logger:   &logging.MockLogger{},
	}
}

type fakeStore struct {
	vehicles    []models.Vehicle
	entries     []models.Entry
	rosterErr   error
	existingErr error
	submitErr   error
	submitted   []models.Entry
}

func (f *fakeStore) roster(ctx context.Context) ([]models.Vehicle, error) {
	return f.vehicles, f.rosterErr
}

func (f *fakeStore) existing(ctx context.Context, kind models.EntryKind) ([]models.Entry, error) {
	return f.entries, f.existingErr
}

func (f *fakeStore) submit(ctx context.Context, entry models.Entry) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, entry)
	return nil
}

func TestPipelineRun(t *testing.T) {
	store := &fakeStore{vehicles: []models.Vehicle{{ID: "v1", Name: "My Car"}}}

	report, err := testPipeline(store).Run(context.Background(), fuelCSV)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Parsed)
	assert.Equal(t, 0, report.Malformed)

	// The bad mileage row is rejected, the two valid rows are imported.
	require.Len(t, report.Candidates, 2)
	assert.Equal(t, 1, report.Candidates[0].Row)
	assert.Equal(t, 3, report.Candidates[1].Row)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Equal(t, "Mileage", report.Errors[0].Field)

	assert.Equal(t, 2, report.Result.Success)
	assert.Equal(t, 0, report.Result.Failed)
	assert.Len(t, store.submitted, 2)
}

func TestPipelineRun_RosterFailureIsHardError(t *testing.T) {
	store := &fakeStore{rosterErr: fmt.Errorf("database locked")}

	_, err := testPipeline(store).Run(context.Background(), fuelCSV)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database locked")
	assert.Empty(t, store.submitted)
}

func TestPipelineRun_ExistingFailureSkipsDuplicateDetection(t *testing.T) {
	store := &fakeStore{
		vehicles:    []models.Vehicle{{ID: "v1", Name: "My Car"}},
		existingErr: fmt.Errorf("query timeout"),
	}
	p := testPipeline(store)

	report, err := p.Run(context.Background(), fuelCSV)

	require.NoError(t, err, "a failed duplicate lookup must not block the import")
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 2, report.Result.Success)

	mock := p.Logger.(*logging.MockLogger)
	assert.True(t, mock.HasMessage("Could not list existing entries, skipping duplicate detection"))
}

func TestPipelineRun_DuplicateWarningsDoNotBlockSubmission(t *testing.T) {
	store := &fakeStore{vehicles: []models.Vehicle{{ID: "v1", Name: "My Car"}}}

	// Seed the store with an entry identical to row 1, then run the same
	// file: the row is flagged but still imported.
	first, err := testPipeline(store).Run(context.Background(), fuelCSV)
	require.NoError(t, err)
	store.entries = store.submitted
	store.submitted = nil

	report, err := testPipeline(store).Run(context.Background(), fuelCSV)
	require.NoError(t, err)

	require.Len(t, report.Warnings, 2)
	assert.Equal(t, first.Result.Success, report.Result.Success)
	assert.Len(t, store.submitted, 2)
}

func TestPipelineRun_AllRowsInvalid(t *testing.T) {
	store := &fakeStore{vehicles: []models.Vehicle{{ID: "v1", Name: "My Car"}}}
	raw := "Car Name,Date,Mileage,Volume,Cost\nUnknown Car,2024-01-15,15000,45,350\n"

	report, err := testPipeline(store).Run(context.Background(), raw)

	require.NoError(t, err)
	assert.Empty(t, report.Candidates)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Message, "vehicle not found")
	assert.Equal(t, models.ImportResult{}, report.Result)
	assert.Empty(t, store.submitted)
}

func TestPipelineRun_SubmitFailureReportedPerRow(t *testing.T) {
	store := &fakeStore{
		vehicles:  []models.Vehicle{{ID: "v1", Name: "My Car"}},
		submitErr: fmt.Errorf("constraint violation"),
	}

	report, err := testPipeline(store).Run(context.Background(), fuelCSV)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Result.Success)
	assert.Equal(t, 2, report.Result.Failed)
	require.Len(t, report.Result.Errors, 2)
	for _, msg := range report.Result.Errors {
		assert.True(t, strings.HasPrefix(msg, "row "), msg)
		assert.Contains(t, msg, "constraint violation")
	}
}
