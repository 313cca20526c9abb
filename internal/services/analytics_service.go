package services

import (
	"context"
	"sync"
	"time"

	"github.com/jobpulse/jobpulse/internal/analytics"
	"github.com/jobpulse/jobpulse/internal/models"
	"github.com/jobpulse/jobpulse/internal/store"
)

// timeNow is swapped out in tests that need a fixed clock.
var timeNow = time.Now

// AnalyticsService serves derived metrics. Metrics are never persisted: each
// request loads the current record set and runs it through a per-user memo
// cache, so results can't drift out of sync with the records.
type AnalyticsService struct {
	Store store.Store

	mu     sync.Mutex
	caches map[string]*analytics.MetricsCache
}

func NewAnalyticsService(st store.Store) *AnalyticsService {
	return &AnalyticsService{
		Store:  st,
		caches: make(map[string]*analytics.MetricsCache),
	}
}

func (s *AnalyticsService) Metrics(ctx context.Context, userID string) (analytics.Metrics, error) {
	jobs, err := s.Store.ListJobs(ctx, userID)
	if err != nil {
		return analytics.Metrics{}, err
	}
	return s.cacheFor(userID).Get(jobs, timeNow()), nil
}

// InterviewsOn returns the records with an interview on the given calendar day.
func (s *AnalyticsService) InterviewsOn(ctx context.Context, userID string, day time.Time) ([]models.JobApplication, error) {
	jobs, err := s.Store.ListJobs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.InterviewsOn(jobs, day), nil
}

func (s *AnalyticsService) cacheFor(userID string) *analytics.MetricsCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.caches[userID]
	if !ok {
		c = &analytics.MetricsCache{}
		s.caches[userID] = c
	}
	return c
}
