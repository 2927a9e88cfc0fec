package journal

import (
	"strings"
	"time"

	"schultafel/internal/models"
)

const updatedLayout = "02.01.2006, 15:04"

// MergeSubjectLists flattens a resolved day into the hour-by-class
// grid the display consumes. now supplies both the "is this today"
// comparison and the updated stamp, so callers with a frozen clock get
// deterministic output.
func MergeSubjectLists(tt *models.Timetable, now time.Time) *models.MergedTimetable {
	dateStr := FormatDate(tt.ActualDate)

	merged := &models.MergedTimetable{
		Date:       dateStr,
		IsToday:    dateStr == FormatDate(now),
		ClassNames: make([]string, 0, len(tt.Classes)),
		Notes:      []string{},
		LastHour:   -1,
		DaysOff:    tt.DaysOffBefore,
		Updated:    now.Format(updatedLayout),
	}

	for _, class := range tt.Classes {
		merged.ClassNames = append(merged.ClassNames, class.ClassName)
		for _, subject := range class.Subjects {
			if subject.Nr > merged.LastHour {
				merged.LastHour = subject.Nr
			}
		}
	}

	for i := 1; i <= merged.LastHour; i++ {
		hour := models.Hour{
			Hour:     i,
			Subjects: make([]*models.Lesson, 0, len(tt.Classes)),
		}
		if slot, ok := tt.Times[i]; ok {
			s := slot
			hour.Time = &s
		}

		for c := range tt.Classes {
			hour.Subjects = append(hour.Subjects, lessonAt(&tt.Classes[c], i))
		}

		merged.Hours = append(merged.Hours, hour)
	}

	for _, note := range tt.Notes {
		for _, line := range strings.Split(note.Description, "\n") {
			text := strings.TrimSpace(strings.TrimLeft(line, "-–—"))
			if text != "" {
				merged.Notes = append(merged.Notes, text)
			}
		}
	}

	return merged
}

func lessonAt(class *models.SubjectList, nr int) *models.Lesson {
	for i := range class.Subjects {
		if class.Subjects[i].Nr == nr {
			return &class.Subjects[i]
		}
	}
	return nil
}
