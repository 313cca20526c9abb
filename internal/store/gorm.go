package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jobpulse/jobpulse/internal/models"
	"gorm.io/gorm"
)

// GormStore persists records in postgres through gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListJobs(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var jobs []models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *GormStore) GetJob(ctx context.Context, userID, id string) (models.JobApplication, error) {
	var job models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.JobApplication{}, ErrNotFound
	}
	return job, err
}

func (s *GormStore) InsertJob(ctx context.Context, job *models.JobApplication) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.Tags = models.NormalizeTags(job.Tags)
	return s.DB.WithContext(ctx).Create(job).Error
}

func (s *GormStore) UpdateJob(ctx context.Context, job *models.JobApplication) error {
	job.Tags = models.NormalizeTags(job.Tags)
	res := s.DB.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ? AND user_id = ?", job.ID, job.UserID).
		Select("title", "company", "status", "location", "notes", "url", "salary",
			"contact_name", "contact_email", "application_date", "interview_date", "tags").
		Updates(job)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteJob(ctx context.Context, userID, id string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.JobApplication{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	var rems []models.Reminder
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rems).Error
	if err != nil {
		return nil, err
	}
	return rems, nil
}

func (s *GormStore) GetReminder(ctx context.Context, userID, id string) (models.Reminder, error) {
	var rem models.Reminder
	err := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reminder{}, ErrNotFound
	}
	return rem, err
}

func (s *GormStore) InsertReminder(ctx context.Context, rem *models.Reminder) error {
	if rem.ID == "" {
		rem.ID = uuid.NewString()
	}
	return s.DB.WithContext(ctx).Create(rem).Error
}

func (s *GormStore) UpdateReminder(ctx context.Context, rem *models.Reminder) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", rem.ID, rem.UserID).
		Select("date", "note", "completed").
		Updates(rem)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteReminder(ctx context.Context, userID, id string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *GormStore) FindOrCreateUser(ctx context.Context, email, name string) (models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where(models.User{Email: email}).
		Attrs(models.User{ID: uuid.NewString(), Name: name, Plan: "free"}).
		FirstOrCreate(&user).Error
	return user, err
}

func (s *GormStore) UpdateUser(ctx context.Context, user *models.User) error {
	res := s.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Select("name", "plan", "plan_started_at", "plan_renews_at").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
