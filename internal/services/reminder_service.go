package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jobpulse/jobpulse/internal/dtos"
	"github.com/jobpulse/jobpulse/internal/models"
	"github.com/jobpulse/jobpulse/internal/store"
)

// JobTitleFallback is shown for reminders whose job has since been deleted.
// Reminders deliberately outlive their job: the link is for display only,
// not an ownership relation.
const JobTitleFallback = "Job not found"

// ReminderView is a reminder joined with its job's display fields.
type ReminderView struct {
	models.Reminder
	JobTitle   string `json:"job_title"`
	JobCompany string `json:"job_company,omitempty"`
}

type ReminderService struct {
	Store store.Store
}

func NewReminderService(st store.Store) *ReminderService {
	return &ReminderService{Store: st}
}

func (s *ReminderService) Add(ctx context.Context, userID string, req *dtos.ReminderRequest) (models.Reminder, error) {
	if strings.TrimSpace(req.JobID) == "" {
		return models.Reminder{}, fmt.Errorf("%w: job_id is required", ErrValidation)
	}
	if strings.TrimSpace(req.Note) == "" {
		return models.Reminder{}, fmt.Errorf("%w: note is required", ErrValidation)
	}
	date, err := dtos.ParseDate(req.Date)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%w: date: %v", ErrValidation, err)
	}

	rem := models.Reminder{
		UserID: userID,
		JobID:  req.JobID,
		Date:   date,
		Note:   strings.TrimSpace(req.Note),
	}
	if err := s.Store.InsertReminder(ctx, &rem); err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

// ToggleComplete flips the completed flag and returns the updated reminder.
func (s *ReminderService) ToggleComplete(ctx context.Context, userID, id string) (models.Reminder, error) {
	rem, err := s.Store.GetReminder(ctx, userID, id)
	if err != nil {
		return models.Reminder{}, err
	}
	rem.Completed = !rem.Completed
	if err := s.Store.UpdateReminder(ctx, &rem); err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

func (s *ReminderService) Delete(ctx context.Context, userID, id string) error {
	return s.Store.DeleteReminder(ctx, userID, id)
}

// List returns the user's reminders soonest-first, each resolved against its
// job for display. Completed reminders are dropped entirely unless
// showCompleted is set.
func (s *ReminderService) List(ctx context.Context, userID string, showCompleted bool) ([]ReminderView, error) {
	rems, err := s.Store.ListReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.Store.ListJobs(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.JobApplication, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	out := make([]ReminderView, 0, len(rems))
	for _, r := range rems {
		if r.Completed && !showCompleted {
			continue
		}
		view := ReminderView{Reminder: r, JobTitle: JobTitleFallback}
		if job, ok := byID[r.JobID]; ok {
			view.JobTitle = job.Title
			view.JobCompany = job.Company
		}
		out = append(out, view)
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Date.Before(out[k].Date)
	})
	return out, nil
}
