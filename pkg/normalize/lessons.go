package normalize

import (
	"sort"
	"strings"

	"github.com/coursemap/coursemap/pkg/modules"
)

// Period bucket names derived from a lesson's padded start time.
const (
	periodMorning   = "Morning"
	periodAfternoon = "Afternoon"
	periodEvening   = "Evening"
)

// Period-aggregated lesson-type buckets. Other bucket names in the
// lesson-type table are ignored by period aggregation.
const (
	bucketLecture  = "Lecture"
	bucketTutorial = "Tutorial"
)

// enrichLessons derives the display fields for every lesson of the module's
// final timetable, aggregates the per-lesson-type period buckets, registers
// venues into the global accumulator, and sorts the lesson list by its
// composite key.
func (n *normalizer) enrichLessons(mod *modules.Module, r *run) {
	if mod.Timetable == nil {
		return
	}

	lecturePeriods := newOrderedSet()
	tutorialPeriods := newOrderedSet()

	for i := range mod.Timetable {
		lesson := &mod.Timetable[i]

		lesson.DayText = titleize(lesson.DayText)
		lesson.StartTime = padTime(lesson.StartTime)

		// The bucket lookup keys on the raw lesson type code, before it
		// is titleized below.
		switch n.lessonTypes[lesson.LessonType] {
		case bucketLecture:
			lecturePeriods.add(lesson.DayText + " " + periodOf(lesson.StartTime))
		case bucketTutorial:
			tutorialPeriods.add(lesson.DayText + " " + periodOf(lesson.StartTime))
		}

		lesson.LessonType = titleize(lesson.LessonType)
		lesson.WeekText = titleize(lesson.WeekText)
		lesson.EndTime = padTime(lesson.EndTime)
		lesson.Venue = strings.TrimSpace(lesson.Venue)
		r.venues.add(lesson.Venue)
	}

	if lecturePeriods.len() > 0 {
		mod.LecturePeriods = lecturePeriods.values()
	}
	if tutorialPeriods.len() > 0 {
		mod.TutorialPeriods = tutorialPeriods.values()
	}

	sortLessons(mod.Timetable)
}

// periodOf classifies a zero-padded start time into a period bucket by
// string comparison.
func periodOf(startTime string) string {
	switch {
	case startTime < "1200":
		return periodMorning
	case startTime < "1800":
		return periodAfternoon
	default:
		return periodEvening
	}
}

// padTime left-pads a time string with zeros and keeps its last 4 digits.
func padTime(s string) string {
	s = "000" + s
	return s[len(s)-4:]
}

// sortLessons orders lessons ascending by the composite key
// (LessonType, ClassNo, DayCode, StartTime, EndTime, WeekText, Venue),
// comparing each key lexically with ties broken by the next key.
func sortLessons(lessons []modules.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		a, b := lessons[i], lessons[j]
		if a.LessonType != b.LessonType {
			return a.LessonType < b.LessonType
		}
		if a.ClassNo != b.ClassNo {
			return a.ClassNo < b.ClassNo
		}
		if a.DayCode != b.DayCode {
			return a.DayCode < b.DayCode
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.EndTime != b.EndTime {
			return a.EndTime < b.EndTime
		}
		if a.WeekText != b.WeekText {
			return a.WeekText < b.WeekText
		}
		return a.Venue < b.Venue
	})
}
