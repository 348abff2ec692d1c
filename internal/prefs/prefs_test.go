package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "prefs.yaml"))

	p, err := s.Load()
	require.NoError(t, err, "a missing preference file is not an error")
	assert.Equal(t, Preferences{}, p)
}

func TestLoad_EmptyPath(t *testing.T) {
	p, err := NewStore("").Load()
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, p)
}

func TestSaveAndLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "prefs.yaml"))

	want := Preferences{
		Currency:     "CHF",
		DistanceUnit: "km",
		VolumeUnit:   "l",
		FuelTime:     "08:00",
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: eur\n"), 0600))

	p, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "eur", p.Currency)
	assert.Empty(t, p.FuelTime)
}

func TestLoad_InvalidFuelTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fuel_time: noonish\n"), 0600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuel_time")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: [unclosed\n"), 0600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
}

func TestSave_NoPath(t *testing.T) {
	err := NewStore("").Save(Preferences{Currency: "USD"})
	require.Error(t, err)
}
