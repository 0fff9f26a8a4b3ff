// Package modules defines the domain types for coursemap: the union-shaped
// raw records consolidated from the upstream source feeds, and the canonical
// Module entity the normalization engine produces from them.
package modules

import (
	"encoding/json"
)

// RawRecord is one consolidated per-module input record. Each field holds
// the block contributed by one upstream feed; any of them may be absent.
// Exactly one of Bulletin/CORS is expected to carry the primary descriptive
// fields. A record with neither produces no output module.
type RawRecord struct {
	// Bulletin is the course bulletin block, the preferred primary source.
	Bulletin *Info `json:"Bulletin,omitempty"`

	// CORS is the registration-system block with timetable and exam metadata.
	CORS *CORSInfo `json:"CORS,omitempty"`

	// IVLE holds the e-learning platform entries for this module, passed
	// through verbatim. A pointer distinguishes an absent feed from a
	// present-but-empty one, which is still emitted.
	IVLE *[]json.RawMessage `json:"IVLE,omitempty"`

	// Exam is the bulletin exam block. When present it takes precedence
	// over the CORS exam date.
	Exam *ExamRecord `json:"Exam,omitempty"`

	// CorsBiddingStats are historical bidding rounds for this module.
	CorsBiddingStats []BiddingStats `json:"CorsBiddingStats,omitempty"`

	// TimetableDelta is the time-ordered stream of timetable change events,
	// used when no authoritative CORS timetable snapshot exists.
	TimetableDelta []TimetableDelta `json:"TimetableDelta,omitempty"`
}

// Info holds the descriptive fields shared by the Bulletin and CORS feeds.
type Info struct {
	ModuleCode        string `json:"ModuleCode,omitempty"`
	ModuleTitle       string `json:"ModuleTitle,omitempty"`
	Department        string `json:"Department,omitempty"`
	ModuleDescription string `json:"ModuleDescription,omitempty"`
	CrossModule       string `json:"CrossModule,omitempty"`
	ModuleCredit      string `json:"ModuleCredit,omitempty"`
	Workload          string `json:"Workload,omitempty"`
	Prerequisite      string `json:"Prerequisite,omitempty"`
	Preclusion        string `json:"Preclusion,omitempty"`
	Corequisite       string `json:"Corequisite,omitempty"`
	Faculty           string `json:"Faculty,omitempty"`
}

// CORSInfo is the registration-system block: the shared descriptive fields
// plus exam, lesson-type and timetable metadata specific to that feed.
type CORSInfo struct {
	Info

	// ExamDate is a composite "DD-MM-YYYY AM|PM|EVENING" string, or the
	// literal "No Exam Date." when the module has no exam.
	ExamDate string `json:"ExamDate,omitempty"`

	// Types lists the lesson type codes offered for this module.
	Types []string `json:"Types,omitempty"`

	// Timetable is the authoritative lesson snapshot, when the feed has one.
	Timetable []RawLesson `json:"Timetable,omitempty"`
}

// ExamRecord is the bulletin exam block. The open-book marker arrives under
// an empty-string key in the raw feed, so decoding needs a custom pass.
type ExamRecord struct {
	Date     string `json:"Date,omitempty"`
	Time     string `json:"Time,omitempty"`
	Duration string `json:"Duration,omitempty"`
	Venue    string `json:"Venue,omitempty"`

	// Marker is the value of the feed's unnamed column; "*" flags an
	// open-book exam.
	Marker string `json:"-"`
}

// examRecord mirrors ExamRecord for decoding without recursion.
type examRecord struct {
	Date     string `json:"Date"`
	Time     string `json:"Time"`
	Duration string `json:"Duration"`
	Venue    string `json:"Venue"`
}

// UnmarshalJSON decodes the named fields and then recovers the unnamed
// marker column, which struct tags cannot express.
func (e *ExamRecord) UnmarshalJSON(data []byte) error {
	var rec examRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	e.Date = rec.Date
	e.Time = rec.Time
	e.Duration = rec.Duration
	e.Venue = rec.Venue

	if raw, ok := fields[""]; ok {
		var marker string
		if err := json.Unmarshal(raw, &marker); err == nil {
			e.Marker = marker
		}
	}
	return nil
}

// RawLesson is one lesson row from the authoritative CORS timetable snapshot.
type RawLesson struct {
	ClassNo    string `json:"ClassNo,omitempty"`
	LessonType string `json:"LessonType,omitempty"`
	WeekText   string `json:"WeekText,omitempty"`
	DayText    string `json:"DayText,omitempty"`
	StartTime  string `json:"StartTime,omitempty"`
	EndTime    string `json:"EndTime,omitempty"`
	Venue      string `json:"Venue,omitempty"`
}

// TimetableDelta is one timetable change event. Its identity key is the
// tuple (ClassNo, LessonType, WeekText, DayCode, StartTime, EndTime); the
// venue and last-modified marker decide whether an existing lesson is
// superseded when the event is applied.
type TimetableDelta struct {
	ClassNo      string `json:"ClassNo,omitempty"`
	LessonType   string `json:"LessonType,omitempty"`
	WeekText     string `json:"WeekText,omitempty"`
	DayCode      string `json:"DayCode,omitempty"`
	DayText      string `json:"DayText,omitempty"`
	StartTime    string `json:"StartTime,omitempty"`
	EndTime      string `json:"EndTime,omitempty"`
	Venue        string `json:"Venue,omitempty"`
	LastModified string `json:"LastModified_js,omitempty"`
	IsDelete     bool   `json:"isDelete,omitempty"`
}

// IVLELecturer is the subset of an e-learning lecturer entry the engine
// reads when deriving a module's lecturer list.
type IVLELecturer struct {
	Role string `json:"Role"`
	User struct {
		Name string `json:"Name"`
	} `json:"User"`
}

// IVLEModule is the subset of an e-learning entry the engine reads.
// The full entry is passed through to output untouched.
type IVLEModule struct {
	Lecturers []IVLELecturer `json:"Lecturers"`
}
