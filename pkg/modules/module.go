package modules

import (
	"encoding/json"
)

// Module is the canonical output entity for one course. Every field whose
// cleaned source value matched the null-sentinel set is absent from output
// (omitempty on an empty string), except Department which is always kept.
type Module struct {
	// Core identity and description, from the primary source block
	ModuleCode        string `json:"ModuleCode,omitempty"`
	ModuleTitle       string `json:"ModuleTitle,omitempty"`
	Department        string `json:"Department"` // retained even when null-like
	ModuleDescription string `json:"ModuleDescription,omitempty"`
	CrossModule       string `json:"CrossModule,omitempty"`
	ModuleCredit      string `json:"ModuleCredit,omitempty"`
	Workload          string `json:"Workload,omitempty"`
	Prerequisite      string `json:"Prerequisite,omitempty"`
	Preclusion        string `json:"Preclusion,omitempty"`
	Corequisite       string `json:"Corequisite,omitempty"`

	// Exam metadata, derived from whichever exam shape was present
	ExamDate     string `json:"ExamDate,omitempty"`     // minute precision, literal "+0800" label
	ExamOpenBook bool   `json:"ExamOpenBook,omitempty"` // bulletin "*" marker
	ExamDuration string `json:"ExamDuration,omitempty"` // "P" + compacted source string, e.g. "P2HRS"
	ExamVenue    string `json:"ExamVenue,omitempty"`

	// Registration-system extras
	Types            []string       `json:"Types,omitempty"`
	CorsBiddingStats []BiddingStats `json:"CorsBiddingStats,omitempty"`

	// E-learning extras
	Lecturers []string           `json:"Lecturers,omitempty"`
	IVLE      *[]json.RawMessage `json:"IVLE,omitempty"` // raw passthrough, may be empty

	// Timetable, from the snapshot or reconstructed from the delta stream
	Timetable []Lesson `json:"Timetable,omitempty"`

	// Derived per-lesson-type period buckets, insertion order
	LecturePeriods  []string `json:"LecturePeriods,omitempty"`
	TutorialPeriods []string `json:"TutorialPeriods,omitempty"`
}

// Lesson is one timetable slot of a module. DayCode and LastModified are
// working fields for delta matching and sorting; they never serialize.
type Lesson struct {
	ClassNo    string `json:"ClassNo,omitempty"`
	LessonType string `json:"LessonType,omitempty"`
	WeekText   string `json:"WeekText,omitempty"`
	DayText    string `json:"DayText,omitempty"`
	StartTime  string `json:"StartTime,omitempty"` // 4-digit zero-padded 24h
	EndTime    string `json:"EndTime,omitempty"`   // 4-digit zero-padded 24h
	Venue      string `json:"Venue"`

	// DayCode is the weekday digit ("1" Monday .. "7" Sunday), used for
	// delta identity matching and ordering only.
	DayCode string `json:"-"`

	// LastModified is the delta feed's change marker, used for
	// supersede-if-changed matching only.
	LastModified string `json:"-"`
}

// BiddingStats is one historical bidding round for a module. ModuleCode is
// read from input but cleared before emission, matching the derived feed.
type BiddingStats struct {
	ModuleCode          string `json:"ModuleCode,omitempty"`
	AcadYear            string `json:"AcadYear,omitempty"`
	Semester            string `json:"Semester,omitempty"`
	Round               string `json:"Round,omitempty"`
	Group               string `json:"Group,omitempty"`
	Quota               string `json:"Quota,omitempty"`
	Bidders             string `json:"Bidders,omitempty"`
	LowestBid           string `json:"LowestBid,omitempty"`
	LowestSuccessfulBid string `json:"LowestSuccessfulBid,omitempty"`
	HighestBid          string `json:"HighestBid,omitempty"`
	Faculty             string `json:"Faculty,omitempty"`
	StudentAcctType     string `json:"StudentAcctType,omitempty"`
}
