package journal

import (
	"context"
	"time"

	"schultafel/internal/models"
	"schultafel/internal/providers"
	"schultafel/internal/structures"
)

// DefaultSearchHorizonDays bounds the forward holiday search to three
// weeks past the requested date.
const DefaultSearchHorizonDays = 21

type searchState int

const (
	stateSearching searchState = iota
	stateFound
	stateExhausted
)

// ResolverInterface resolves the timetable for a calendar date,
// skipping forward over holidays to the next day that has lessons.
type ResolverInterface interface {
	Resolve(ctx context.Context, date time.Time) (*models.Timetable, error)
}

type Resolver struct {
	fetcher FetcherInterface
	logger  providers.Logger
	horizon int
}

func NewResolver(conf *structures.Config, fetcher FetcherInterface, logger providers.Logger) ResolverInterface {
	horizon := conf.Journal.SearchHorizonDays
	if horizon <= 0 {
		horizon = DefaultSearchHorizonDays
	}
	return &Resolver{
		fetcher: fetcher,
		logger:  logger,
		horizon: horizon,
	}
}

// Resolve fetches the requested date's week and, when the day turns
// out empty, walks forward day by day until it finds lessons or
// exhausts the horizon. A failure on the initial fetch aborts the run;
// failures on later candidate weeks only skip that day. Each call owns
// its week cache, so concurrent resolutions never interfere.
func (r *Resolver) Resolve(ctx context.Context, date time.Time) (*models.Timetable, error) {
	reply, err := r.fetcher.FetchWeek(ctx, date)
	if err != nil {
		return nil, err
	}

	times, classes, notes := ExtractDay(reply, date)
	original := &models.Timetable{
		Times:         times,
		Classes:       classes,
		Notes:         notes,
		ActualDate:    date,
		DaysOffBefore: 0,
	}
	if original.HasLessons() {
		return original, nil
	}

	r.logger.Infof(providers.TypeSearch, "no lessons on %s, searching for next school day", FormatDate(date))

	cache := NewWeekCache()
	cache.Put(WeekKey(date), reply)

	candidate := date.AddDate(0, 0, 1)
	limit := date.AddDate(0, 0, r.horizon)
	state := stateSearching
	var next *models.Timetable

	for state == stateSearching {
		if candidate.After(limit) {
			state = stateExhausted
			continue
		}

		// Weekends never carry lessons; skip them without a fetch.
		if isWeekend(candidate) {
			candidate = candidate.AddDate(0, 0, 1)
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := WeekKey(candidate)
		week, ok := cache.Get(key)
		if !ok {
			week, err = r.fetcher.FetchWeek(ctx, candidate)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				r.logger.Warnf(providers.TypeSearch, "skipping %s: %s", FormatDate(candidate), err)
				candidate = candidate.AddDate(0, 0, 1)
				continue
			}
			cache.Put(key, week)
		}

		times, classes, notes = ExtractDay(week, candidate)
		tt := &models.Timetable{
			Times:         times,
			Classes:       classes,
			Notes:         notes,
			ActualDate:    candidate,
			DaysOffBefore: daysBetween(date, candidate),
		}
		if tt.HasLessons() {
			next = tt
			state = stateFound
			continue
		}

		candidate = candidate.AddDate(0, 0, 1)
	}

	if state == stateFound {
		r.logger.Infof(providers.TypeSearch, "next school day %s after %d days off",
			FormatDate(next.ActualDate), next.DaysOffBefore)
		return next, nil
	}

	// Horizon exhausted: hand back the original empty day rather than
	// an error, so the caller can still render "nothing scheduled".
	r.logger.Warnf(providers.TypeSearch, "no school day within %d days of %s", r.horizon, FormatDate(date))
	return original, nil
}
