package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"schultafel/internal/providers"
	"schultafel/internal/services"
	"schultafel/internal/snapshot/interfaces"
	"schultafel/internal/structures"
)

// refreshTimeout caps one resolve run, which is at most a handful of
// sequential week fetches.
const refreshTimeout = 2 * time.Minute

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.TimetableServiceInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	refreshInterval := s.config.Journal.RefreshInterval

	s.cron.AddFunc(gron.Every(refreshInterval), func() {
		s.refresh()
	})

	s.cron.AddFunc(gron.Every(saveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting snapshot: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted snapshot to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()

	// First grid as soon as possible; the cron only fires after one
	// full interval.
	go s.refresh()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.service.Refresh(ctx); err != nil {
		s.logger.Warnf(providers.TypeApp, "Refresh failed, keeping previous grid: %s", err)
	}
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting snapshot to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting snapshot: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.TimetableServiceInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
	}
}
