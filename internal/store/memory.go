package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobpulse/jobpulse/internal/models"
)

// MemoryStore keeps everything in process memory. It backs demo sessions,
// where mutations must work without touching postgres, and doubles as the
// store used by service tests. The mutex is there because HTTP handlers can
// hit the same demo session from parallel requests, even though the modeled
// client only ever issues one write at a time.
type MemoryStore struct {
	mu        sync.RWMutex
	jobs      map[string]models.JobApplication
	reminders map[string]models.Reminder
	users     map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:      make(map[string]models.JobApplication),
		reminders: make(map[string]models.Reminder),
		users:     make(map[string]models.User),
	}
}

func (s *MemoryStore) ListJobs(_ context.Context, userID string) ([]models.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []models.JobApplication
	for _, j := range s.jobs {
		if j.UserID == userID {
			jobs = append(jobs, j)
		}
	}
	// Same order the postgres store returns: newest application first.
	sort.Slice(jobs, func(i, k int) bool {
		if !jobs[i].ApplicationDate.Equal(jobs[k].ApplicationDate) {
			return jobs[i].ApplicationDate.After(jobs[k].ApplicationDate)
		}
		return jobs[i].ID < jobs[k].ID
	})
	return jobs, nil
}

func (s *MemoryStore) GetJob(_ context.Context, userID, id string) (models.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok || job.UserID != userID {
		return models.JobApplication{}, ErrNotFound
	}
	return job, nil
}

func (s *MemoryStore) InsertJob(_ context.Context, job *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	job.Tags = models.NormalizeTags(job.Tags)
	s.jobs[job.ID] = *job
	return nil
}

func (s *MemoryStore) UpdateJob(_ context.Context, job *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.jobs[job.ID]
	if !ok || existing.UserID != job.UserID {
		return ErrNotFound
	}
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()
	job.Tags = models.NormalizeTags(job.Tags)
	s.jobs[job.ID] = *job
	return nil
}

func (s *MemoryStore) DeleteJob(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.UserID != userID {
		return ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

func (s *MemoryStore) ListReminders(_ context.Context, userID string) ([]models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rems []models.Reminder
	for _, r := range s.reminders {
		if r.UserID == userID {
			rems = append(rems, r)
		}
	}
	sort.Slice(rems, func(i, k int) bool {
		if !rems[i].Date.Equal(rems[k].Date) {
			return rems[i].Date.Before(rems[k].Date)
		}
		return rems[i].ID < rems[k].ID
	})
	return rems, nil
}

func (s *MemoryStore) GetReminder(_ context.Context, userID, id string) (models.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rem, ok := s.reminders[id]
	if !ok || rem.UserID != userID {
		return models.Reminder{}, ErrNotFound
	}
	return rem, nil
}

func (s *MemoryStore) InsertReminder(_ context.Context, rem *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rem.ID == "" {
		rem.ID = uuid.NewString()
	}
	now := time.Now()
	rem.CreatedAt = now
	rem.UpdatedAt = now
	s.reminders[rem.ID] = *rem
	return nil
}

func (s *MemoryStore) UpdateReminder(_ context.Context, rem *models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reminders[rem.ID]
	if !ok || existing.UserID != rem.UserID {
		return ErrNotFound
	}
	rem.CreatedAt = existing.CreatedAt
	rem.UpdatedAt = time.Now()
	s.reminders[rem.ID] = *rem
	return nil
}

func (s *MemoryStore) DeleteReminder(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rem, ok := s.reminders[id]
	if !ok || rem.UserID != userID {
		return ErrNotFound
	}
	delete(s.reminders, id)
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) FindOrCreateUser(_ context.Context, email, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Plan:      "free",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}
