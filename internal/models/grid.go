package models

// MergedTimetable is the display-ready hour-by-class grid produced
// from a resolved day.
type MergedTimetable struct {
	Date       string   `json:"date"`
	IsToday    bool     `json:"is_today"`
	ClassNames []string `json:"class_names"`
	Hours      []Hour   `json:"hours"`
	Notes      []string `json:"notes"`
	LastHour   int      `json:"last_hour"`
	DaysOff    int      `json:"days_off"`
	Updated    string   `json:"updated"`
}

// Hour is one grid row. Subjects holds one entry per class column, in
// ClassNames order; nil marks a free period.
type Hour struct {
	Hour     int       `json:"hour"`
	Time     *TimeSlot `json:"time"`
	Subjects []*Lesson `json:"subjects"`
}
