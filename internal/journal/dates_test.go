package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-02-05", FormatDate(date(2024, time.February, 5)))
	assert.Equal(t, "2024-12-31", FormatDate(date(2024, time.December, 31)))
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-05")
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-05", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("05.02.2024")
	assert.Error(t, err)
}

func TestWeekKey(t *testing.T) {
	assert.Equal(t, "2024-6", WeekKey(date(2024, time.February, 5)))
}

func TestWeekKey_IsoYearDiffersFromCalendarYear(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	assert.Equal(t, "2025-1", WeekKey(date(2024, time.December, 30)))
	// 2021-01-01 is a Friday belonging to ISO week 53 of 2020.
	assert.Equal(t, "2020-53", WeekKey(date(2021, time.January, 1)))
}

func TestWeekKey_SameForAllDaysOfWeek(t *testing.T) {
	monday := date(2024, time.February, 5)
	for i := 0; i < 7; i++ {
		assert.Equal(t, "2024-6", WeekKey(monday.AddDate(0, 0, i)))
	}
}

func TestNextValidDate_MorningKeepsToday(t *testing.T) {
	now := time.Date(2024, time.February, 5, 8, 30, 0, 0, time.UTC) // Monday
	assert.Equal(t, "2024-02-05", FormatDate(NextValidDate(now, 17)))
}

func TestNextValidDate_EveningRollsToTomorrow(t *testing.T) {
	now := time.Date(2024, time.February, 5, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-06", FormatDate(NextValidDate(now, 17)))
}

func TestNextValidDate_SkipsWeekend(t *testing.T) {
	saturday := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-12", FormatDate(NextValidDate(saturday, 17)))
}

func TestNextValidDate_FridayEveningSkipsToMonday(t *testing.T) {
	friday := time.Date(2024, time.February, 9, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-12", FormatDate(NextValidDate(friday, 17)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, daysBetween(date(2024, time.February, 5), date(2024, time.February, 5)))
	assert.Equal(t, 3, daysBetween(date(2024, time.February, 9), date(2024, time.February, 12)))
	assert.Equal(t, 21, daysBetween(date(2024, time.February, 5), date(2024, time.February, 26)))
}

func TestDaysBetween_IgnoresClockTime(t *testing.T) {
	a := time.Date(2024, time.February, 5, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.February, 6, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, daysBetween(a, b))
}
