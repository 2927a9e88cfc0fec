package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schultafel/internal/models"
	"schultafel/internal/testutil"
)

func newTestFileManager(t *testing.T, service *testutil.MockTimetableService) *FileManager {
	t.Helper()
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	fm := NewFileManager(compressor, service, &testutil.MockLogger{})
	t.Cleanup(fm.Close)
	return fm
}

func sampleGrid() *models.MergedTimetable {
	return &models.MergedTimetable{
		Date:       "2024-02-05",
		IsToday:    true,
		ClassNames: []string{"5a", "5b"},
		Hours: []models.Hour{
			{Hour: 1, Subjects: []*models.Lesson{nil, nil}},
		},
		Notes:    []string{"Vertretung in Raum 12"},
		LastHour: 1,
		Updated:  "05.02.2024, 09:30",
	}
}

func TestFileManager_SaveLoadRoundTrip(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "snapshot.bin")

	source := &testutil.MockTimetableService{}
	source.PutCurrent(sampleGrid())
	require.NoError(t, newTestFileManager(t, source).SaveToFile(fileName))

	target := &testutil.MockTimetableService{}
	require.NoError(t, newTestFileManager(t, target).LoadFromFile(fileName))

	restored := target.GetCurrent()
	require.NotNil(t, restored)
	assert.Equal(t, "2024-02-05", restored.Date)
	assert.Equal(t, []string{"5a", "5b"}, restored.ClassNames)
	assert.Equal(t, []string{"Vertretung in Raum 12"}, restored.Notes)
	assert.Equal(t, "05.02.2024, 09:30", restored.Updated)
}

func TestFileManager_SaveSkipsWithoutGrid(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "snapshot.bin")

	fm := newTestFileManager(t, &testutil.MockTimetableService{})
	require.NoError(t, fm.SaveToFile(fileName))

	_, err := os.Stat(fileName)
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_LoadMissingFile(t *testing.T) {
	service := &testutil.MockTimetableService{}
	fm := newTestFileManager(t, service)

	require.NoError(t, fm.LoadFromFile(filepath.Join(t.TempDir(), "absent.bin")))
	assert.Nil(t, service.GetCurrent())
}

func TestFileManager_LoadCorruptFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "snapshot.bin")
	require.NoError(t, os.WriteFile(fileName, []byte("not a snapshot"), 0644))

	service := &testutil.MockTimetableService{}
	fm := newTestFileManager(t, service)

	assert.Error(t, fm.LoadFromFile(fileName))
	assert.Nil(t, service.GetCurrent())
}

func TestFileManager_LoadEmptyDateIgnored(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "snapshot.bin")

	source := &testutil.MockTimetableService{}
	source.PutCurrent(&models.MergedTimetable{})
	require.NoError(t, newTestFileManager(t, source).SaveToFile(fileName))

	target := &testutil.MockTimetableService{}
	require.NoError(t, newTestFileManager(t, target).LoadFromFile(fileName))
	assert.Nil(t, target.GetCurrent())
}

func TestFileManager_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "snapshot.bin")

	source := &testutil.MockTimetableService{}
	source.PutCurrent(sampleGrid())
	require.NoError(t, newTestFileManager(t, source).SaveToFile(fileName))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "snapshot.bin", entries[0].Name())
}
