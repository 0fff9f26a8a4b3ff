package normalize

import (
	"regexp"
	"slices"
	"strings"

	"github.com/coursemap/coursemap/pkg/modules"
)

// dayCodes is the fixed weekday name to day code lookup.
var dayCodes = map[string]string{
	"MONDAY":    "1",
	"TUESDAY":   "2",
	"WEDNESDAY": "3",
	"THURSDAY":  "4",
	"FRIDAY":    "5",
	"SATURDAY":  "6",
	"SUNDAY":    "7",
}

// sundayCode marks delta events that are known-invalid placeholder data in
// the change feed and must be discarded unconditionally.
const sundayCode = "7"

// venueArtifact strips a trailing comma left by a null field, optionally
// with the literal "null" prefix when the venue was entirely null.
var venueArtifact = regexp.MustCompile(`(?:^null)?,$`)

// buildTimetable produces the module's lesson list: a pass-through of the
// authoritative CORS snapshot when one exists, otherwise an event-sourced
// reconstruction folded from the timetable delta stream in arrival order.
func buildTimetable(mod *modules.Module, raw *modules.RawRecord, code string, r *run) {
	if raw.CORS != nil && len(raw.CORS.Timetable) > 0 {
		lessons := make([]modules.Lesson, 0, len(raw.CORS.Timetable))
		for _, rl := range raw.CORS.Timetable {
			lessons = append(lessons, modules.Lesson{
				ClassNo:    rl.ClassNo,
				LessonType: rl.LessonType,
				WeekText:   strings.Replace(rl.WeekText, "&nbsp;", " ", 1),
				DayText:    rl.DayText,
				DayCode:    dayCodes[rl.DayText],
				StartTime:  rl.StartTime,
				EndTime:    rl.EndTime,
				Venue:      venueArtifact.ReplaceAllString(rl.Venue, ""),
			})
		}
		mod.Timetable = lessons
		return
	}

	for _, delta := range raw.TimetableDelta {
		// Ignore Sundays - they seem to be dummy values.
		if delta.DayCode == sundayCode {
			continue
		}

		lessons, removed := foldDelta(mod.Timetable, delta)

		if delta.IsDelete {
			if removed != 1 {
				r.stats.DeltaAnomalies++
				r.logger.Debug().
					Str("module", code).
					Int("removed", removed).
					Msg("Delete event removed an unexpected number of lessons")
			}
			if len(lessons) == 0 {
				// Absence, not an empty list.
				lessons = nil
				r.logger.Debug().
					Str("module", code).
					Msg("No more lessons for module")
			}
		} else {
			if removed > 0 {
				r.stats.DeltaAnomalies++
				r.logger.Debug().
					Str("module", code).
					Int("removed", removed).
					Msg("Duplicate lesson removed before insert")
			}
			lessons = append(lessons, lessonFromDelta(delta))
		}

		mod.Timetable = lessons
		r.stats.DeltasFolded++
	}
}

// foldDelta applies one change event to the lesson list and reports how
// many existing lessons were removed. The list is scanned from the end
// backward for entries matching the event's full identity key; a match is
// removed when its venue equals the event's venue, or when the event is not
// a delete and the match carries a different last-modified marker. The scan
// can remove more than one lesson for pathological input; callers treat
// that as an anomaly but keep the result.
func foldDelta(lessons []modules.Lesson, delta modules.TimetableDelta) ([]modules.Lesson, int) {
	out := slices.Clone(lessons)
	removed := 0
	for i := len(out) - 1; i >= 0; i-- {
		lesson := out[i]
		if !sameSlot(lesson, delta) {
			continue
		}
		if lesson.Venue == delta.Venue ||
			(!delta.IsDelete && lesson.LastModified != delta.LastModified) {
			out = append(out[:i], out[i+1:]...)
			removed++
		}
	}
	return out, removed
}

// sameSlot reports whether a lesson matches a delta event's identity key.
func sameSlot(lesson modules.Lesson, delta modules.TimetableDelta) bool {
	return lesson.ClassNo == delta.ClassNo &&
		lesson.LessonType == delta.LessonType &&
		lesson.WeekText == delta.WeekText &&
		lesson.DayCode == delta.DayCode &&
		lesson.StartTime == delta.StartTime &&
		lesson.EndTime == delta.EndTime
}

// lessonFromDelta builds the lesson inserted for a non-delete event.
func lessonFromDelta(delta modules.TimetableDelta) modules.Lesson {
	return modules.Lesson{
		ClassNo:      delta.ClassNo,
		LessonType:   delta.LessonType,
		WeekText:     delta.WeekText,
		DayCode:      delta.DayCode,
		DayText:      delta.DayText,
		StartTime:    delta.StartTime,
		EndTime:      delta.EndTime,
		Venue:        delta.Venue,
		LastModified: delta.LastModified,
	}
}
