package logging

// MockLogger captures log entries for verification in tests. Loggers
// derived with WithError or WithField record into the same entry list.
type MockLogger struct {
	Entries []LogEntry
}

// LogEntry is a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, err error, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Message: msg, Fields: fields, Error: err})
}

// Debug captures a debug-level message.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, nil, fields) }

// Info captures an info-level message.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, nil, fields) }

// Warn captures a warning-level message.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, nil, fields) }

// Error captures an error-level message.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, nil, fields) }

// WithError returns a logger that attaches err to the entries it records.
func (m *MockLogger) WithError(err error) Logger {
	return &derivedMock{parent: m, err: err}
}

// WithField returns a logger that attaches the field to the entries it records.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &derivedMock{parent: m, fields: []Field{{Key: key, Value: value}}}
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// derivedMock carries pending error and field context back to its parent.
type derivedMock struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (d *derivedMock) record(level, msg string, fields []Field) {
	d.parent.record(level, msg, d.err, append(d.fields, fields...))
}

func (d *derivedMock) Debug(msg string, fields ...Field) { d.record("DEBUG", msg, fields) }
func (d *derivedMock) Info(msg string, fields ...Field)  { d.record("INFO", msg, fields) }
func (d *derivedMock) Warn(msg string, fields ...Field)  { d.record("WARN", msg, fields) }
func (d *derivedMock) Error(msg string, fields ...Field) { d.record("ERROR", msg, fields) }

func (d *derivedMock) WithError(err error) Logger {
	return &derivedMock{parent: d.parent, err: err, fields: d.fields}
}

func (d *derivedMock) WithField(key string, value interface{}) Logger {
	return &derivedMock{parent: d.parent, err: d.err, fields: append(d.fields, Field{Key: key, Value: value})}
}
