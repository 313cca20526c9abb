package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jobpulse/jobpulse/internal/analytics"
	"github.com/jobpulse/jobpulse/internal/dtos"
	"github.com/jobpulse/jobpulse/internal/models"
	"github.com/jobpulse/jobpulse/internal/store"
)

// ErrValidation marks user-fixable input problems. Handlers report these
// inline at the form with a 400 instead of a server error.
var ErrValidation = errors.New("validation failed")

type JobService struct {
	Store store.Store
}

func NewJobService(st store.Store) *JobService {
	return &JobService{Store: st}
}

// List returns the user's records narrowed by spec. Filtering happens
// in-process on the full record set, same as the dashboard does it.
func (s *JobService) List(ctx context.Context, userID string, spec analytics.FilterSpec) ([]models.JobApplication, error) {
	jobs, err := s.Store.ListJobs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.Filter(jobs, spec), nil
}

func (s *JobService) Get(ctx context.Context, userID, id string) (models.JobApplication, error) {
	return s.Store.GetJob(ctx, userID, id)
}

func (s *JobService) Create(ctx context.Context, userID string, req *dtos.JobRequest) (models.JobApplication, error) {
	job, err := s.fromRequest(userID, req)
	if err != nil {
		return models.JobApplication{}, err
	}
	if err := s.Store.InsertJob(ctx, &job); err != nil {
		return models.JobApplication{}, err
	}
	return job, nil
}

// Update replaces the record with id wholesale (last write wins; there is no
// conflict detection because a session only ever has one writer).
func (s *JobService) Update(ctx context.Context, userID, id string, req *dtos.JobRequest) (models.JobApplication, error) {
	job, err := s.fromRequest(userID, req)
	if err != nil {
		return models.JobApplication{}, err
	}
	job.ID = id
	if err := s.Store.UpdateJob(ctx, &job); err != nil {
		return models.JobApplication{}, err
	}
	return s.Store.GetJob(ctx, userID, id)
}

func (s *JobService) Delete(ctx context.Context, userID, id string) error {
	return s.Store.DeleteJob(ctx, userID, id)
}

func (s *JobService) fromRequest(userID string, req *dtos.JobRequest) (models.JobApplication, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.JobApplication{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(req.Company) == "" {
		return models.JobApplication{}, fmt.Errorf("%w: company is required", ErrValidation)
	}

	job := models.JobApplication{
		UserID:       userID,
		Title:        strings.TrimSpace(req.Title),
		Company:      strings.TrimSpace(req.Company),
		Status:       models.StatusApplied,
		Location:     req.Location,
		Notes:        req.Notes,
		URL:          req.URL,
		Salary:       req.Salary,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Tags:         models.NormalizeTags(req.Tags),
	}

	if req.Status != "" {
		job.Status = models.ParseStatus(req.Status)
	}

	if req.ApplicationDate != "" {
		d, err := dtos.ParseDate(req.ApplicationDate)
		if err != nil {
			return models.JobApplication{}, fmt.Errorf("%w: application_date: %v", ErrValidation, err)
		}
		job.ApplicationDate = d
	} else {
		job.ApplicationDate = timeNow()
	}

	if req.InterviewDate != "" {
		d, err := dtos.ParseDate(req.InterviewDate)
		if err != nil {
			return models.JobApplication{}, fmt.Errorf("%w: interview_date: %v", ErrValidation, err)
		}
		job.InterviewDate = &d
	}

	return job, nil
}
