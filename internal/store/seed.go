package store

import (
	"context"
	"time"

	"github.com/jobpulse/jobpulse/internal/models"
)

// DemoUserID scopes the seeded sample data. Demo sessions all share it.
const DemoUserID = "demo-user"

// NewDemoStore returns a MemoryStore pre-loaded with a fixed sample record
// set so the dashboard, chart, and calendar have something to show before
// the visitor adds anything. Dates are anchored to now so the six-month
// window is always populated.
func NewDemoStore(now time.Time) *MemoryStore {
	s := NewMemoryStore()
	ctx := context.Background()

	s.users[DemoUserID] = models.User{
		ID:        DemoUserID,
		Email:     "demo@jobpulse.local",
		Name:      "Demo User",
		Plan:      "free",
		CreatedAt: now,
		UpdatedAt: now,
	}

	day := func(monthsAgo, dayOfMonth int) time.Time {
		base := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location())
		return base.AddDate(0, -monthsAgo, dayOfMonth-1)
	}
	nextTuesday := now.AddDate(0, 0, (int(time.Tuesday)-int(now.Weekday())+7)%7+7)
	interview := time.Date(nextTuesday.Year(), nextTuesday.Month(), nextTuesday.Day(), 14, 30, 0, 0, now.Location())

	jobs := []models.JobApplication{
		{
			ID: "demo-job-1", UserID: DemoUserID,
			Title: "Backend Engineer", Company: "Northwind Labs",
			Status: models.StatusInterview, Location: "Remote",
			Notes:           "Phone screen went well, systems round next.",
			ApplicationDate: day(1, 12),
			InterviewDate:   &interview,
			Tags:            []string{"remote", "go", "backend"},
		},
		{
			ID: "demo-job-2", UserID: DemoUserID,
			Title: "Backend Engineer", Company: "Acme Cloud",
			Status: models.StatusApplied, Location: "Berlin",
			ApplicationDate: day(0, 3),
			Tags:            []string{"backend", "kubernetes"},
		},
		{
			ID: "demo-job-3", UserID: DemoUserID,
			Title: "Platform Engineer", Company: "Cobalt Systems",
			Status:          models.StatusOffer,
			Salary:          "$140k - $165k",
			ApplicationDate: day(3, 21),
			Tags:            []string{"platform", "aws"},
		},
		{
			ID: "demo-job-4", UserID: DemoUserID,
			Title: "Site Reliability Engineer", Company: "Ferrier & Co",
			Status:          models.StatusRejected,
			Notes:           "Position filled internally.",
			ApplicationDate: day(4, 8),
			Tags:            []string{"sre", "oncall"},
		},
		{
			ID: "demo-job-5", UserID: DemoUserID,
			Title: "Backend Engineer", Company: "Halcyon Health",
			Status:          models.StatusApplied,
			URL:             "https://careers.halcyon.example/backend",
			ApplicationDate: day(2, 17),
			Tags:            []string{"remote", "healthcare"},
		},
	}
	for i := range jobs {
		_ = s.InsertJob(ctx, &jobs[i])
	}

	reminders := []models.Reminder{
		{
			ID: "demo-rem-1", UserID: DemoUserID, JobID: "demo-job-1",
			Date: now.AddDate(0, 0, 2), Note: "Send thank-you note after phone screen",
		},
		{
			ID: "demo-rem-2", UserID: DemoUserID, JobID: "demo-job-3",
			Date: now.AddDate(0, 0, 5), Note: "Review offer terms and respond",
		},
		{
			ID: "demo-rem-3", UserID: DemoUserID, JobID: "demo-job-2",
			Date: now.AddDate(0, 0, -1), Note: "Follow up with recruiter",
			Completed: true,
		},
	}
	for i := range reminders {
		_ = s.InsertReminder(ctx, &reminders[i])
	}

	return s
}
