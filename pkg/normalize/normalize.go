// Package normalize provides the reconciliation engine that consolidates
// heterogeneous per-module source records into canonical Module entities.
// It merges the bulletin and registration-system blocks under a fixed
// priority rule, derives exam timestamps, reconstructs timetables from the
// change-event stream when no authoritative snapshot exists, and accumulates
// the faculty-department and venue indexes across the whole run.
package normalize

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/coursemap/coursemap/pkg/logging"
	"github.com/coursemap/coursemap/pkg/modules"
)

// Normalizer is the main interface for normalizing consolidated records.
type Normalizer interface {
	// Normalize processes the consolidated records in input order and
	// returns the module list plus the derived indexes. Records lacking
	// both primary blocks are skipped. The only fatal path is a
	// data-contract violation in an exam date.
	Normalize(ctx context.Context, records []modules.RawRecord) (*Result, error)
}

// normalizer is the default implementation of Normalizer.
type normalizer struct {
	lessonTypes map[string]string
	logger      *zerolog.Logger
}

// New creates a new Normalizer with options.
func New(opts ...Option) (Normalizer, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &normalizer{
		lessonTypes: options.lessonTypes,
		logger:      options.logger,
	}, nil
}

// run holds the mutable per-run state: the two cross-module accumulators
// and the running statistics.
type run struct {
	facultyDepartments facultyDepartments
	venues             venueSet
	stats              ResultStatistics
	logger             *zerolog.Logger
}

// Normalize processes all records in a single synchronous pass.
func (n *normalizer) Normalize(ctx context.Context, records []modules.RawRecord) (*Result, error) {
	logger := n.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	result := NewResult()
	r := &run{
		facultyDepartments: newFacultyDepartments(),
		venues:             newVenueSet(),
		logger:             logger,
	}

	for i := range records {
		r.stats.RecordsSeen++
		mod, err := n.module(&records[i], r)
		if err != nil {
			return nil, err
		}
		if mod == nil {
			// No primary info block; the record is dropped entirely.
			r.stats.RecordsSkipped++
			continue
		}
		result.Modules = append(result.Modules, *mod)
	}

	result.FacultyDepartments = r.facultyDepartments.finalize()
	result.Venues = r.venues.finalize()
	result.Metadata.Stats = r.stats
	result.Metadata.Stats.ModulesEmitted = len(result.Modules)
	result.Finalize()

	logger.Info().
		Int("records", r.stats.RecordsSeen).
		Int("modules", result.Metadata.Stats.ModulesEmitted).
		Int("skipped", r.stats.RecordsSkipped).
		Msg("Normalized consolidated records")

	return result, nil
}

// module normalizes one raw record, or returns nil when the record has no
// primary info block. Construction is all-or-nothing: an error discards
// the whole run, never a partial module.
func (n *normalizer) module(raw *modules.RawRecord, r *run) (*modules.Module, error) {
	info := primaryInfo(raw)
	if info == nil {
		return nil, nil
	}

	mod := &modules.Module{}
	extractInfo(mod, info)

	// Faculty-department pairs are only known to the bulletin feed.
	if raw.Bulletin != nil {
		r.facultyDepartments.add(titleize(info.Faculty), mod.Department)
	}

	if err := resolveExam(mod, raw); err != nil {
		return nil, err
	}

	if raw.CORS != nil {
		mod.Types = raw.CORS.Types
	}

	applyIVLE(mod, raw)
	buildTimetable(mod, raw, info.ModuleCode, r)
	applyBiddingStats(mod, raw)
	n.enrichLessons(mod, r)

	return mod, nil
}

// primaryInfo selects the primary descriptive block: Bulletin if present,
// else CORS, else nil.
func primaryInfo(raw *modules.RawRecord) *modules.Info {
	if raw.Bulletin != nil {
		return raw.Bulletin
	}
	if raw.CORS != nil {
		return &raw.CORS.Info
	}
	return nil
}

// extractInfo copies the canonical field subset from the primary block,
// cleaning each value and dropping null-like ones. Department is retained
// whatever its value; the title is only re-cased when it arrives fully
// upper-case.
func extractInfo(mod *modules.Module, info *modules.Info) {
	mod.ModuleCode = cleanField(info.ModuleCode)
	mod.ModuleTitle = cleanField(info.ModuleTitle)
	mod.Department = clean(info.Department)
	mod.ModuleDescription = cleanField(info.ModuleDescription)
	mod.CrossModule = cleanField(info.CrossModule)
	mod.ModuleCredit = cleanField(info.ModuleCredit)
	mod.Workload = cleanField(info.Workload)
	mod.Prerequisite = cleanField(info.Prerequisite)
	mod.Preclusion = cleanField(info.Preclusion)
	mod.Corequisite = cleanField(info.Corequisite)

	if upper(mod.ModuleTitle) == mod.ModuleTitle {
		mod.ModuleTitle = titleize(mod.ModuleTitle)
	}
	mod.Department = titleize(mod.Department)
}

// applyIVLE passes the e-learning entries through verbatim and derives the
// lecturer list from the first entry's teaching roles.
func applyIVLE(mod *modules.Module, raw *modules.RawRecord) {
	if raw.IVLE == nil {
		return
	}

	entries := *raw.IVLE
	if len(entries) > 0 {
		var first modules.IVLEModule
		if err := json.Unmarshal(entries[0], &first); err == nil {
			var lecturers []string
			for _, lecturer := range first.Lecturers {
				switch trim(lecturer.Role) {
				case "Lecturer", "Co-Lecturer", "Visiting Professor":
					lecturers = append(lecturers, lecturer.User.Name)
				}
			}
			if len(lecturers) > 0 {
				mod.Lecturers = lecturers
			}
		}
	}

	mod.IVLE = raw.IVLE
}

// applyBiddingStats copies the bidding rounds, titleizing the group and
// faculty and scrubbing markup artifacts. ModuleCode is cleared since the
// stats ride inside the module entity.
func applyBiddingStats(mod *modules.Module, raw *modules.RawRecord) {
	if raw.CorsBiddingStats == nil {
		return
	}

	stats := make([]modules.BiddingStats, len(raw.CorsBiddingStats))
	for i, s := range raw.CorsBiddingStats {
		s.ModuleCode = ""
		s.Group = titleize(s.Group)
		s.Faculty = titleize(s.Faculty)
		s.StudentAcctType = stripFirst(s.StudentAcctType, "<br>")
		stats[i] = s
	}
	mod.CorsBiddingStats = stats
}
