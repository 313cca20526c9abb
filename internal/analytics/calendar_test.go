package analytics

import (
	"testing"
	"time"

	"github.com/jobpulse/jobpulse/internal/models"
)

func withInterview(id string, at time.Time) models.JobApplication {
	return models.JobApplication{ID: id, Title: "Engineer", Company: "Acme", InterviewDate: &at}
}

func TestInterviewsOnMatchesCalendarDay(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	records := []models.JobApplication{
		withInterview("morning", time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)),
		withInterview("afternoon", time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)),
		withInterview("day-before", time.Date(2026, time.March, 9, 23, 59, 0, 0, time.Local)),
		withInterview("day-after", time.Date(2026, time.March, 11, 0, 0, 0, 0, time.Local)),
		{ID: "no-interview", Title: "Engineer", Company: "Acme"},
	}

	got := InterviewsOn(records, day)
	assertIDs(t, got, "morning", "afternoon")
}

func TestInterviewsOnIgnoresTimeOfDayOnQuery(t *testing.T) {
	// Querying with a timestamp mid-day matches the whole calendar day.
	query := time.Date(2026, time.March, 10, 17, 45, 0, 0, time.Local)
	records := []models.JobApplication{
		withInterview("early", time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)),
	}

	got := InterviewsOn(records, query)
	assertIDs(t, got, "early")
}

func TestInterviewsOnEmptyInputs(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)

	if got := InterviewsOn(nil, day); len(got) != 0 {
		t.Errorf("expected no matches on empty record set, got %d", len(got))
	}

	records := []models.JobApplication{
		{ID: "1", Title: "Engineer", Company: "Acme"},
		{ID: "2", Title: "Engineer", Company: "Globex"},
	}
	if got := InterviewsOn(records, day); len(got) != 0 {
		t.Errorf("records without interviews must never match, got %d", len(got))
	}
}

func TestInterviewsOnPreservesTimeOfDay(t *testing.T) {
	at := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)
	records := []models.JobApplication{withInterview("x", at)}

	got := InterviewsOn(records, at)
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if !got[0].InterviewDate.Equal(at) {
		t.Errorf("interview timestamp was altered: got %v, want %v", got[0].InterviewDate, at)
	}
}
