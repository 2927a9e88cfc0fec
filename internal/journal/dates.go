package journal

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDate renders a date the way the upstream keys its day records.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate is the inverse of FormatDate.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// WeekKey builds the ISO week identifier used in journal URLs and as
// the week cache key, e.g. "2024-5". The ISO year can differ from the
// calendar year around January 1st.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%d", year, week)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextValidDate picks the date worth displaying: today, or tomorrow
// once the school day is over (past switchHour), always rolled forward
// past weekends.
func NextValidDate(now time.Time, switchHour int) time.Time {
	d := now
	if d.Hour() >= switchHour {
		d = d.AddDate(0, 0, 1)
	}
	for isWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// daysBetween counts calendar days from a to b, ignoring clock time.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
