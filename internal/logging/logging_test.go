package logging

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.Info("Imported entries", Field{Key: FieldCount, Value: 3})

	out := buf.String()
	assert.Contains(t, out, "Imported entries")
	assert.Contains(t, out, `"count":3`)
}

func TestLogrusAdapter_WithErrorAndField(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithError(fmt.Errorf("disk full")).WithField(FieldRow, 7).Warn("Entry submission failed")

	out := buf.String()
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, `"row":7`)
	assert.Contains(t, out, "Entry submission failed")
}

func TestNewLogrusAdapter_InvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("verbose", "text")
	require.NotNil(t, logger)
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)
	logger.Debug("should not panic")
}

func TestMockLogger(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("first", Field{Key: "a", Value: 1})
	mock.WithError(fmt.Errorf("boom")).Warn("second")
	mock.WithField("k", "v").Error("third")

	require.Len(t, mock.Entries, 3)
	assert.True(t, mock.HasMessage("first"))
	assert.True(t, mock.HasMessage("second"))
	assert.False(t, mock.HasMessage("missing"))

	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.EqualError(t, mock.Entries[1].Error, "boom")
	require.Len(t, mock.Entries[2].Fields, 1)
	assert.Equal(t, "k", mock.Entries[2].Fields[0].Key)
}
