// Package analytics holds the pure derived-data engines: filtering,
// aggregate metrics, and calendar matching over a user's job applications.
// Every function here takes the record set as an explicit argument and has
// no side effects, so the engines can be tested without a database or an
// HTTP server behind them.
package analytics

import (
	"strings"

	"github.com/jobpulse/jobpulse/internal/models"
)

// FilterSpec narrows a record set. A nil Status means "any status"; an empty
// Search means "no text filter". Both conditions are ANDed.
type FilterSpec struct {
	Status *models.Status
	Search string
}

// Empty reports whether the spec filters nothing.
func (s FilterSpec) Empty() bool {
	return s.Status == nil && s.Search == ""
}

// Filter returns the records matching spec, in their original order. The
// status check is an exact, case-sensitive match; the search term matches
// case-insensitively as a substring of the title, company, notes, or any tag.
func Filter(records []models.JobApplication, spec FilterSpec) []models.JobApplication {
	if spec.Empty() {
		return records
	}

	search := strings.ToLower(spec.Search)
	out := make([]models.JobApplication, 0, len(records))
	for _, r := range records {
		if spec.Status != nil && r.Status != *spec.Status {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r models.JobApplication, search string) bool {
	if strings.Contains(strings.ToLower(r.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Company), search) {
		return true
	}
	if r.Notes != "" && strings.Contains(strings.ToLower(r.Notes), search) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
