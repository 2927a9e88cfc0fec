package snapshot

import (
	"os"

	json "github.com/goccy/go-json"

	"schultafel/internal/models"
	"schultafel/internal/providers"
	"schultafel/internal/services"
	"schultafel/internal/snapshot/interfaces"
)

// FileManager persists the last good display grid so a restarted kiosk
// has something to show before the first refresh, even when the
// upstream is down.
type FileManager struct {
	service    services.TimetableServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.TimetableServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	grid := f.service.GetCurrent()
	if grid == nil {
		// Nothing refreshed yet; keep whatever snapshot is on disk.
		return nil
	}

	jsonData, err := json.Marshal(grid)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var grid models.MergedTimetable
	if err := json.Unmarshal(decompressedData, &grid); err != nil {
		return err
	}
	if grid.Date == "" {
		f.logger.Warnf(providers.TypeApp, "Snapshot %s has no date, ignoring", fileName)
		return nil
	}

	f.service.PutCurrent(&grid)
	f.logger.Infof(providers.TypeApp, "Restored snapshot for %s (updated %s)", grid.Date, grid.Updated)
	return nil
}
