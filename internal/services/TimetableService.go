package services

import (
	"context"
	"time"

	"go.uber.org/atomic"

	"schultafel/internal/journal"
	"schultafel/internal/models"
	"schultafel/internal/providers"
	"schultafel/internal/structures"
)

type TimetableServiceInterface interface {
	GetTimetable(ctx context.Context, date time.Time) (*models.MergedTimetable, error)
	Refresh(ctx context.Context) error
	GetCurrent() *models.MergedTimetable
	PutCurrent(grid *models.MergedTimetable)
	DisplayDate() time.Time
}

// TimetableService glues the resolver and the merger together and
// keeps the most recently refreshed grid for /current and for the
// snapshot file.
type TimetableService struct {
	conf     *structures.Config
	resolver journal.ResolverInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	current  atomic.Pointer[models.MergedTimetable]
	now      func() time.Time
}

func NewTimetableService(conf *structures.Config, resolver journal.ResolverInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) TimetableServiceInterface {
	return &TimetableService{
		conf:     conf,
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// GetTimetable resolves the given date and merges the result into a
// display grid. Errors here come from the initial week fetch and are
// the caller's to surface.
func (ts *TimetableService) GetTimetable(ctx context.Context, date time.Time) (*models.MergedTimetable, error) {
	tt, err := ts.resolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	ts.metrics.ObserveSearchDays(tt.DaysOffBefore)
	return journal.MergeSubjectLists(tt, ts.now()), nil
}

// DisplayDate is the date the kiosk should be showing right now:
// today, or the next weekday once the configured switch hour passed.
func (ts *TimetableService) DisplayDate() time.Time {
	return journal.NextValidDate(ts.now(), ts.conf.Journal.SwitchHour)
}

// Refresh re-resolves the display date and swaps it in as the current
// grid. A failed refresh keeps the previous grid.
func (ts *TimetableService) Refresh(ctx context.Context) error {
	date := ts.DisplayDate()
	grid, err := ts.GetTimetable(ctx, date)
	if err != nil {
		ts.logger.Errorf(providers.TypeApp, "refresh for %s failed: %s", journal.FormatDate(date), err)
		return err
	}
	ts.current.Store(grid)
	ts.metrics.SetLastRefresh(ts.now())
	ts.logger.Infof(providers.TypeApp, "refreshed timetable for %s (%d classes, last hour %d)",
		grid.Date, len(grid.ClassNames), grid.LastHour)
	return nil
}

func (ts *TimetableService) GetCurrent() *models.MergedTimetable {
	return ts.current.Load()
}

func (ts *TimetableService) PutCurrent(grid *models.MergedTimetable) {
	ts.current.Store(grid)
}
