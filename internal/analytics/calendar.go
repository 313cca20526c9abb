package analytics

import (
	"time"

	"github.com/jobpulse/jobpulse/internal/models"
)

// InterviewsOn returns the records whose interview falls on the same calendar
// day as day, preserving input order. Records without a scheduled interview
// never match. Matching compares (year, month, day) as observed in the
// process-local time zone; the time of day is ignored here and left on the
// record for display. Cross-time-zone users can see interviews shift a day —
// a known limitation of day-level matching.
func InterviewsOn(records []models.JobApplication, day time.Time) []models.JobApplication {
	wy, wm, wd := day.In(time.Local).Date()

	var out []models.JobApplication
	for _, r := range records {
		if r.InterviewDate == nil {
			continue
		}
		y, m, d := r.InterviewDate.In(time.Local).Date()
		if y == wy && m == wm && d == wd {
			out = append(out, r)
		}
	}
	return out
}
