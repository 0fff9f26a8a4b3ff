package normalize

import (
	"strings"
	"time"

	"github.com/coursemap/coursemap/pkg/errors"
	"github.com/coursemap/coursemap/pkg/modules"
)

const (
	// bulletinExamLayout parses the bulletin date substring plus the
	// separate 12-hour time string.
	bulletinExamLayout = "2/1/2006 3:04 PM"

	// corsExamLayout parses the date half of the composite CORS string.
	corsExamLayout = "02-01-2006"

	// examTimeLayout is the emitted minute-precision timestamp. The feed
	// historically labels it "+0800" without shifting the parsed UTC wall
	// clock; that quirk is preserved.
	examTimeLayout = "2006-01-02T15:04"

	// examOffsetLabel is appended literally to every exam timestamp.
	examOffsetLabel = "+0800"

	// noExamDate is the CORS literal meaning the module has no exam.
	noExamDate = "No Exam Date."
)

// resolveExam derives the module's exam fields from whichever exam shape is
// present. A bulletin exam block always takes precedence over a CORS one.
// The only fatal outcome is a CORS time-of-day token outside AM/PM/EVENING.
func resolveExam(mod *modules.Module, raw *modules.RawRecord) error {
	if raw.Exam != nil {
		return resolveBulletinExam(mod, raw.Exam)
	}
	if raw.CORS != nil {
		return resolveCORSExam(mod, raw.CORS.ExamDate)
	}
	return nil
}

// resolveBulletinExam parses the date substring and time string as UTC and
// copies the remaining exam details.
func resolveBulletinExam(mod *modules.Module, exam *modules.ExamRecord) error {
	date := exam.Date
	if len(date) > 11 {
		date = date[:11]
	}

	composed := clean(upper(date + exam.Time))
	t, err := time.Parse(bulletinExamLayout, composed)
	if err != nil {
		return errors.NewParseError("date", "", "bad exam date "+exam.Date+" "+exam.Time, err)
	}
	mod.ExamDate = examTimestamp(t)

	if exam.Marker == "*" {
		mod.ExamOpenBook = true
	}
	if exam.Duration != "" {
		mod.ExamDuration = "P" + truncate(compact(exam.Duration), 5)
	}
	if exam.Venue != "" {
		mod.ExamVenue = exam.Venue
	}
	return nil
}

// resolveCORSExam parses the composite "DD-MM-YYYY AM|PM|EVENING" string.
// The hour rule is fixed: AM exams at 9, PM exams at 13 except Fridays at
// 14:30, evening exams at 17.
func resolveCORSExam(mod *modules.Module, examDate string) error {
	if examDate == noExamDate || examDate == "" {
		return nil
	}

	parts := strings.SplitN(examDate, " ", 2)
	t, err := time.Parse(corsExamLayout, parts[0])
	if err != nil {
		return errors.NewParseError("date", "", "bad exam date "+examDate, err)
	}

	period := ""
	if len(parts) > 1 {
		period = parts[1]
	}

	hour, minute := 0, 0
	switch period {
	case "AM":
		hour = 9
	case "PM":
		// 2.30 PM on Friday afternoons
		if t.Weekday() == time.Friday {
			hour, minute = 14, 30
		} else {
			hour = 13
		}
	case "EVENING":
		hour = 17
	default:
		return errors.NewValidationError("ExamDate", period, "unexpected exam time "+period)
	}

	mod.ExamDate = examTimestamp(time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, time.UTC))
	return nil
}

// examTimestamp formats the UTC wall clock to minute precision and appends
// the literal offset label.
func examTimestamp(t time.Time) string {
	return t.UTC().Format(examTimeLayout) + examOffsetLabel
}

// compact strips all whitespace and upper-cases the string.
func compact(s string) string {
	return upper(whitespaceRun.ReplaceAllString(s, ""))
}

// truncate cuts the string to at most n bytes.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
