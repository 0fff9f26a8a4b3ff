package normalize

import (
	"fmt"
	"time"

	"github.com/coursemap/coursemap/pkg/modules"
)

// Result represents the outcome of one normalization run: the module list
// in input order plus the two derived indexes.
type Result struct {
	// Modules is the canonical module list, input order, records lacking
	// a primary info block omitted.
	Modules []modules.Module

	// FacultyDepartments maps each faculty to its sorted department list.
	FacultyDepartments map[string][]string

	// Venues is the sorted list of venues seen across all modules.
	Venues []string

	// Metadata about the run.
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about the normalization run.
type ResultMetadata struct {
	// StartTime when the run started
	StartTime time.Time

	// EndTime when the run completed
	EndTime time.Time

	// Duration of the run
	Duration time.Duration

	// Statistics about the run
	Stats ResultStatistics
}

// ResultStatistics contains statistics about the normalization run.
type ResultStatistics struct {
	RecordsSeen    int
	ModulesEmitted int
	RecordsSkipped int
	DeltasFolded   int
	DeltaAnomalies int
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("Normalized %d of %d records (%d skipped, %d deltas folded, %d anomalies) in %s",
		r.Metadata.Stats.ModulesEmitted,
		r.Metadata.Stats.RecordsSeen,
		r.Metadata.Stats.RecordsSkipped,
		r.Metadata.Stats.DeltasFolded,
		r.Metadata.Stats.DeltaAnomalies,
		r.Metadata.Duration.Round(time.Millisecond))
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Modules:            []modules.Module{},
		FacultyDepartments: map[string][]string{},
		Venues:             []string{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}
