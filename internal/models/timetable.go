package models

import "time"

// SubjectList is one class column of a resolved day: the derived class
// label and that class's lessons, sorted ascending by hour number.
type SubjectList struct {
	ClassName string   `json:"class_name"`
	Subjects  []Lesson `json:"subjects"`
}

// Timetable is a resolved school day. ActualDate may differ from the
// requested date when the holiday search had to skip forward;
// DaysOffBefore is the raw calendar-day gap between the two (zero when
// nothing was skipped or the search came up empty).
type Timetable struct {
	Times         map[int]TimeSlot `json:"times"`
	Classes       []SubjectList    `json:"classes"`
	Notes         []Note           `json:"notes"`
	ActualDate    time.Time        `json:"actual_date"`
	DaysOffBefore int              `json:"days_off_before"`
}

// HasLessons reports whether any class column retained at least one
// lesson. An all-empty timetable is how a holiday looks.
func (t *Timetable) HasLessons() bool {
	for _, c := range t.Classes {
		if len(c.Subjects) > 0 {
			return true
		}
	}
	return false
}
