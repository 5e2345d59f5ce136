package logging

import "sync"

// MockEntry is a single captured log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// MockLogger is a Logger implementation for tests that records every call
// instead of writing output.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
	fields  []Field
	err     error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) log(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.log("error", msg, fields) }
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.log("fatal", msg, fields) }

func (m *MockLogger) Fatalf(msg string, args ...interface{}) { m.log("fatal", msg, nil) }

// WithError returns a logger that attaches err to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{Entries: m.Entries, fields: m.fields, err: err}
}

// WithField returns a logger that attaches a field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a logger that attaches fields to subsequent entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &MockLogger{
		Entries: m.Entries,
		fields:  append(append([]Field{}, m.fields...), fields...),
		err:     m.err,
	}
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
