// Package output renders scoring run reports for the console, as JSON, and
// as Markdown. Formatters are presentation only: every number they print was
// computed by the scoring engine and is passed through unchanged.
package output

import (
	"time"

	"github.com/exohab/exohab/internal/scoring"
)

// Result pairs one planet's assessment with the record file it came from.
type Result struct {
	File       string
	Assessment *scoring.Assessment
}

// Report aggregates a scoring run across a catalog.
type Report struct {
	CatalogRoot string
	StartTime   time.Time
	Results     []Result
}

// Systems counts the distinct record files in the report.
func (r *Report) Systems() int {
	seen := make(map[string]bool)
	for _, result := range r.Results {
		seen[result.File] = true
	}
	return len(seen)
}

// Best returns the highest-scoring result, or nil for an empty report.
func (r *Report) Best() *Result {
	var best *Result
	for i := range r.Results {
		if best == nil || r.Results[i].Assessment.TotalScore > best.Assessment.TotalScore {
			best = &r.Results[i]
		}
	}
	return best
}
