// Package store is the persistence boundary for job applications, reminders,
// and users. Two implementations exist: a postgres-backed store for signed-in
// users and an in-memory store that backs demo sessions. Handlers and the
// analytics engines never know which one they are talking to — demo mode is a
// data-source substitution, not a logic substitution.
package store

import (
	"context"
	"errors"

	"github.com/jobpulse/jobpulse/internal/models"
)

// ErrNotFound is returned when an update or delete references a record that
// no longer exists, as distinct from a transport or database failure.
var ErrNotFound = errors.New("record not found")

type Store interface {
	ListJobs(ctx context.Context, userID string) ([]models.JobApplication, error)
	GetJob(ctx context.Context, userID, id string) (models.JobApplication, error)
	InsertJob(ctx context.Context, job *models.JobApplication) error
	// UpdateJob replaces the stored record with the same ID and UserID.
	UpdateJob(ctx context.Context, job *models.JobApplication) error
	DeleteJob(ctx context.Context, userID, id string) error

	ListReminders(ctx context.Context, userID string) ([]models.Reminder, error)
	GetReminder(ctx context.Context, userID, id string) (models.Reminder, error)
	InsertReminder(ctx context.Context, rem *models.Reminder) error
	UpdateReminder(ctx context.Context, rem *models.Reminder) error
	DeleteReminder(ctx context.Context, userID, id string) error

	GetUser(ctx context.Context, id string) (models.User, error)
	// FindOrCreateUser looks a user up by email, creating the row on first login.
	FindOrCreateUser(ctx context.Context, email, name string) (models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}
