package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursemap/coursemap/pkg/logging"
	"github.com/coursemap/coursemap/pkg/modules"
)

func testDelta(classNo, venue, lastModified string, isDelete bool) modules.TimetableDelta {
	return modules.TimetableDelta{
		ClassNo:      classNo,
		LessonType:   "LECTURE",
		WeekText:     "EVERY WEEK",
		DayCode:      "1",
		DayText:      "MONDAY",
		StartTime:    "1000",
		EndTime:      "1200",
		Venue:        venue,
		LastModified: lastModified,
		IsDelete:     isDelete,
	}
}

func testRun() *run {
	return &run{
		facultyDepartments: newFacultyDepartments(),
		venues:             newVenueSet(),
		logger:             &logging.Nop,
	}
}

func TestFoldDeltaInsertAndModify(t *testing.T) {
	// Insert, then supersede with a new last-modified marker: exactly one
	// lesson remains, carrying the newer marker.
	lessons, removed := foldDelta(nil, testDelta("1", "LT27", "m1", false))
	assert.Equal(t, 0, removed)
	lessons = append(lessons, lessonFromDelta(testDelta("1", "LT27", "m1", false)))

	out, removed := foldDelta(lessons, testDelta("1", "LT27", "m2", false))
	assert.Equal(t, 1, removed, "the stale copy is superseded, not duplicated")
	assert.Empty(t, out)
}

func TestFoldDeltaDeleteMatchesVenueOnly(t *testing.T) {
	lessons := []modules.Lesson{lessonFromDelta(testDelta("1", "LT27", "m1", false))}

	// A delete with a different venue removes nothing.
	out, removed := foldDelta(lessons, testDelta("1", "LT19", "m2", true))
	assert.Equal(t, 0, removed)
	assert.Len(t, out, 1)

	// A delete with the matching venue removes the lesson.
	out, removed = foldDelta(lessons, testDelta("1", "LT27", "m2", true))
	assert.Equal(t, 1, removed)
	assert.Empty(t, out)
}

func TestFoldDeltaLeavesInputUntouched(t *testing.T) {
	lessons := []modules.Lesson{lessonFromDelta(testDelta("1", "LT27", "m1", false))}
	_, removed := foldDelta(lessons, testDelta("1", "LT27", "m1", true))
	require.Equal(t, 1, removed)
	assert.Len(t, lessons, 1, "foldDelta must not mutate its input")
}

func TestFoldDeltaMultipleRemovals(t *testing.T) {
	// Pathological input: two stale copies of the same slot both match a
	// non-delete event. Both are removed; callers log the anomaly but keep
	// the result.
	lessons := []modules.Lesson{
		lessonFromDelta(testDelta("1", "LT27", "m1", false)),
		lessonFromDelta(testDelta("1", "LT27", "m2", false)),
	}
	out, removed := foldDelta(lessons, testDelta("1", "LT27", "m3", false))
	assert.Equal(t, 2, removed)
	assert.Empty(t, out)
}

func TestBuildTimetableDeleteThenRecreate(t *testing.T) {
	mod := &modules.Module{}
	raw := &modules.RawRecord{
		TimetableDelta: []modules.TimetableDelta{
			testDelta("1", "LT27", "m1", false),
			testDelta("1", "LT27", "m2", true),
		},
	}
	buildTimetable(mod, raw, "CS1010", testRun())

	assert.Nil(t, mod.Timetable, "an emptied timetable is absent, not an empty list")
}

func TestBuildTimetableSundayDeltasIgnored(t *testing.T) {
	sunday := testDelta("1", "LT27", "m1", false)
	sunday.DayCode = "7"
	sunday.DayText = "SUNDAY"
	sundayDelete := sunday
	sundayDelete.IsDelete = true

	mod := &modules.Module{}
	raw := &modules.RawRecord{
		TimetableDelta: []modules.TimetableDelta{sunday, sundayDelete},
	}
	r := testRun()
	buildTimetable(mod, raw, "CS1010", r)

	assert.Nil(t, mod.Timetable)
	assert.Equal(t, 0, r.stats.DeltasFolded)
}

func TestBuildTimetableModifyKeepsOneLesson(t *testing.T) {
	mod := &modules.Module{}
	raw := &modules.RawRecord{
		TimetableDelta: []modules.TimetableDelta{
			testDelta("1", "LT27", "m1", false),
			testDelta("1", "LT27", "m2", false),
		},
	}
	r := testRun()
	buildTimetable(mod, raw, "CS1010", r)

	require.Len(t, mod.Timetable, 1)
	assert.Equal(t, "m2", mod.Timetable[0].LastModified)
	assert.Equal(t, 1, r.stats.DeltaAnomalies, "the supersede removal is reported as a cleanup")
}

func TestBuildTimetableSnapshotPassThrough(t *testing.T) {
	mod := &modules.Module{}
	raw := &modules.RawRecord{
		CORS: &modules.CORSInfo{
			Timetable: []modules.RawLesson{
				{
					ClassNo:    "SL1",
					LessonType: "SECTIONAL TEACHING",
					WeekText:   "EVERY&nbsp;WEEK",
					DayText:    "TUESDAY",
					StartTime:  "0900",
					EndTime:    "1200",
					Venue:      "null,",
				},
			},
		},
		// Deltas are ignored when an authoritative snapshot exists.
		TimetableDelta: []modules.TimetableDelta{testDelta("1", "LT27", "m1", false)},
	}
	buildTimetable(mod, raw, "ACC1002", testRun())

	expected := []modules.Lesson{
		{
			ClassNo:    "SL1",
			LessonType: "SECTIONAL TEACHING",
			WeekText:   "EVERY WEEK",
			DayText:    "TUESDAY",
			DayCode:    "2",
			StartTime:  "0900",
			EndTime:    "1200",
			Venue:      "",
		},
	}
	if diff := cmp.Diff(expected, mod.Timetable); diff != "" {
		t.Errorf("timetable mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTimetableVenueArtifacts(t *testing.T) {
	tests := []struct {
		venue    string
		expected string
	}{
		{"null,", ""},
		{"LT27,", "LT27"},
		{"LT27", "LT27"},
		{"null, Annex", "null, Annex"},
	}

	for _, tt := range tests {
		mod := &modules.Module{}
		raw := &modules.RawRecord{
			CORS: &modules.CORSInfo{
				Timetable: []modules.RawLesson{{DayText: "MONDAY", Venue: tt.venue}},
			},
		}
		buildTimetable(mod, raw, "X", testRun())
		require.Len(t, mod.Timetable, 1)
		assert.Equal(t, tt.expected, mod.Timetable[0].Venue, "venue %q", tt.venue)
	}
}
