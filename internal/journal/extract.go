package journal

import (
	"sort"
	"time"

	"schultafel/internal/models"
)

// ExtractDay isolates one day from a week payload: its notes verbatim,
// its valid lessons grouped into one class column per level id, and a
// first-writer-wins map from hour number to time slot. A date with no
// matching day record yields empty results; that is how holidays and
// out-of-week dates look, not an error.
func ExtractDay(reply *models.WeekReply, date time.Time) (map[int]models.TimeSlot, []models.SubjectList, []models.Note) {
	dateStr := FormatDate(date)

	lessonsByLevel := make(map[int][]models.Lesson)
	namesByLevel := make(map[int]string)
	times := make(map[int]models.TimeSlot)
	var notes []models.Note

	for _, day := range reply.Data.Days {
		if day.Date != dateStr {
			continue
		}

		notes = day.Notes

		for _, lesson := range day.Lessons {
			// The upstream interpolates placeholder records with a
			// zeroed level or hour; they carry no displayable lesson.
			if lesson.Group.LevelId == 0 || lesson.Nr == 0 {
				continue
			}

			level := lesson.Group.LevelId
			lessonsByLevel[level] = append(lessonsByLevel[level], lesson)

			if name, seen := namesByLevel[level]; seen {
				namesByLevel[level] = commonPrefix(name, lesson.Group.LocalId)
			} else {
				namesByLevel[level] = lesson.Group.LocalId
			}

			if _, seen := times[lesson.Nr]; !seen {
				times[lesson.Nr] = lesson.Time
			}
		}
	}

	levels := make([]int, 0, len(lessonsByLevel))
	for level := range lessonsByLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	classes := make([]models.SubjectList, 0, len(levels))
	for _, level := range levels {
		lessons := lessonsByLevel[level]
		sort.SliceStable(lessons, func(i, j int) bool {
			return lessons[i].Nr < lessons[j].Nr
		})
		classes = append(classes, models.SubjectList{
			ClassName: namesByLevel[level],
			Subjects:  lessons,
		})
	}

	return times, classes, notes
}

// commonPrefix reduces a class label to the characters two group labels
// agree on, position by position. "5a" and "5b" give "5"; labels that
// disagree from the first character give "". This is the class-naming
// heuristic, odd-looking by intent.
func commonPrefix(a, b string) string {
	ar := []rune(a)
	br := []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return string(ar[:n])
}
