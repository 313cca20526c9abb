package store

import (
	"context"

	"github.com/jobpulse/jobpulse/internal/models"
)

// RoutedStore sends demo-session traffic to the in-memory demo store and
// everything else to the primary (postgres) store. Services are constructed
// once against this, so nothing above the store layer branches on demo mode.
type RoutedStore struct {
	Primary Store
	Demo    Store
}

func NewRoutedStore(primary, demo Store) *RoutedStore {
	return &RoutedStore{Primary: primary, Demo: demo}
}

func (s *RoutedStore) pick(userID string) Store {
	if userID == DemoUserID {
		return s.Demo
	}
	return s.Primary
}

func (s *RoutedStore) ListJobs(ctx context.Context, userID string) ([]models.JobApplication, error) {
	return s.pick(userID).ListJobs(ctx, userID)
}

func (s *RoutedStore) GetJob(ctx context.Context, userID, id string) (models.JobApplication, error) {
	return s.pick(userID).GetJob(ctx, userID, id)
}

func (s *RoutedStore) InsertJob(ctx context.Context, job *models.JobApplication) error {
	return s.pick(job.UserID).InsertJob(ctx, job)
}

func (s *RoutedStore) UpdateJob(ctx context.Context, job *models.JobApplication) error {
	return s.pick(job.UserID).UpdateJob(ctx, job)
}

func (s *RoutedStore) DeleteJob(ctx context.Context, userID, id string) error {
	return s.pick(userID).DeleteJob(ctx, userID, id)
}

func (s *RoutedStore) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.pick(userID).ListReminders(ctx, userID)
}

func (s *RoutedStore) GetReminder(ctx context.Context, userID, id string) (models.Reminder, error) {
	return s.pick(userID).GetReminder(ctx, userID, id)
}

func (s *RoutedStore) InsertReminder(ctx context.Context, rem *models.Reminder) error {
	return s.pick(rem.UserID).InsertReminder(ctx, rem)
}

func (s *RoutedStore) UpdateReminder(ctx context.Context, rem *models.Reminder) error {
	return s.pick(rem.UserID).UpdateReminder(ctx, rem)
}

func (s *RoutedStore) DeleteReminder(ctx context.Context, userID, id string) error {
	return s.pick(userID).DeleteReminder(ctx, userID, id)
}

func (s *RoutedStore) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.pick(id).GetUser(ctx, id)
}

func (s *RoutedStore) FindOrCreateUser(ctx context.Context, email, name string) (models.User, error) {
	// Logins always belong to the primary store; demo sessions never log in.
	return s.Primary.FindOrCreateUser(ctx, email, name)
}

func (s *RoutedStore) UpdateUser(ctx context.Context, user *models.User) error {
	return s.pick(user.ID).UpdateUser(ctx, user)
}
