package testutil

import (
	"context"
	"sync"
	"time"

	"schultafel/internal/models"
	"schultafel/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCompressor implements interfaces.CompressorInterface without
// actually compressing; override CompressFn/DecompressFn to inject
// failures.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	return val, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}

// MockTimetableService implements services.TimetableServiceInterface.
type MockTimetableService struct {
	mu           sync.Mutex
	Grid         *models.MergedTimetable
	Current      *models.MergedTimetable
	Err          error
	Date         time.Time
	GetCalls     []time.Time
	RefreshCalls int
}

func (m *MockTimetableService) GetTimetable(_ context.Context, date time.Time) (*models.MergedTimetable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, date)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Grid, nil
}

func (m *MockTimetableService) Refresh(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshCalls++
	if m.Err != nil {
		return m.Err
	}
	m.Current = m.Grid
	return nil
}

func (m *MockTimetableService) GetCurrent() *models.MergedTimetable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Current
}

func (m *MockTimetableService) PutCurrent(grid *models.MergedTimetable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Current = grid
}

func (m *MockTimetableService) DisplayDate() time.Time {
	return m.Date
}
