package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursemap/coursemap/pkg/modules"
)

func TestPadTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"800", "0800"},
		{"0800", "0800"},
		{"30", "0030"},
		{"", "0000"},
		{"1300", "1300"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, padTime(tt.input), "padTime(%q)", tt.input)
	}
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		startTime string
		expected  string
	}{
		{"0800", periodMorning},
		{"1159", periodMorning},
		{"1200", periodAfternoon},
		{"1759", periodAfternoon},
		{"1800", periodEvening},
		{"2100", periodEvening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, periodOf(tt.startTime), "periodOf(%q)", tt.startTime)
	}
}

func TestEnrichLessons(t *testing.T) {
	n := &normalizer{lessonTypes: map[string]string{
		"LECTURE":  bucketLecture,
		"TUTORIAL": bucketTutorial,
		"SEMINAR":  "Seminar", // not period-aggregated
	}}

	mod := &modules.Module{
		Timetable: []modules.Lesson{
			{ClassNo: "1", LessonType: "TUTORIAL", WeekText: "EVERY WEEK", DayText: "THURSDAY", DayCode: "4", StartTime: "1400", EndTime: "1500", Venue: " COM1-0114 "},
			{ClassNo: "1", LessonType: "LECTURE", WeekText: "EVERY WEEK", DayText: "MONDAY", DayCode: "1", StartTime: "800", EndTime: "900", Venue: "LT27"},
			{ClassNo: "1", LessonType: "SEMINAR", WeekText: "EVERY WEEK", DayText: "FRIDAY", DayCode: "5", StartTime: "1800", EndTime: "2000", Venue: "SR1"},
		},
	}

	r := testRun()
	n.enrichLessons(mod, r)

	// Lessons are sorted by (LessonType, ClassNo, DayCode, ...) on the
	// enriched values.
	require.Len(t, mod.Timetable, 3)
	assert.Equal(t, "Lecture", mod.Timetable[0].LessonType)
	assert.Equal(t, "Seminar", mod.Timetable[1].LessonType)
	assert.Equal(t, "Tutorial", mod.Timetable[2].LessonType)

	lecture := mod.Timetable[0]
	assert.Equal(t, "Monday", lecture.DayText)
	assert.Equal(t, "0800", lecture.StartTime)
	assert.Equal(t, "0900", lecture.EndTime)
	assert.Equal(t, "Every Week", lecture.WeekText)

	assert.Equal(t, []string{"Monday Morning"}, mod.LecturePeriods)
	assert.Equal(t, []string{"Thursday Afternoon"}, mod.TutorialPeriods)

	venues := r.venues.finalize()
	assert.Equal(t, []string{"COM1-0114", "LT27", "SR1"}, venues)
}

func TestEnrichLessonsNoTimetable(t *testing.T) {
	n := &normalizer{lessonTypes: map[string]string{}}
	mod := &modules.Module{}
	n.enrichLessons(mod, testRun())

	assert.Nil(t, mod.Timetable)
	assert.Nil(t, mod.LecturePeriods)
	assert.Nil(t, mod.TutorialPeriods)
}

func TestSortLessonsCompositeKey(t *testing.T) {
	lessons := []modules.Lesson{
		{LessonType: "Tutorial", ClassNo: "2", StartTime: "0900", EndTime: "1000", WeekText: "b", Venue: "B"},
		{LessonType: "Lecture", ClassNo: "1", StartTime: "1000", EndTime: "1200", WeekText: "a", Venue: "A"},
		{LessonType: "Tutorial", ClassNo: "2", StartTime: "0900", EndTime: "1000", WeekText: "b", Venue: "A"},
		{LessonType: "Tutorial", ClassNo: "1", StartTime: "0900", EndTime: "1000", WeekText: "a", Venue: "A"},
	}

	sortLessons(lessons)

	for i := 1; i < len(lessons); i++ {
		a, b := lessons[i-1], lessons[i]
		less := a.LessonType < b.LessonType ||
			(a.LessonType == b.LessonType && (a.ClassNo < b.ClassNo ||
				(a.ClassNo == b.ClassNo && (a.StartTime < b.StartTime ||
					(a.StartTime == b.StartTime && (a.EndTime < b.EndTime ||
						(a.EndTime == b.EndTime && (a.WeekText < b.WeekText ||
							(a.WeekText == b.WeekText && a.Venue <= b.Venue)))))))))
		assert.True(t, less, "lessons[%d] and lessons[%d] out of order", i-1, i)
	}
	assert.Equal(t, "Lecture", lessons[0].LessonType)
	assert.Equal(t, "A", lessons[2].Venue)
	assert.Equal(t, "B", lessons[3].Venue)
}
