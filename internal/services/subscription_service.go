package services

import (
	"context"
	"fmt"

	"github.com/jobpulse/jobpulse/internal/models"
	"github.com/jobpulse/jobpulse/internal/store"
)

// Plans the mock checkout accepts. There is no payment processor behind
// this; checkout just records the plan change on the user.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

type SubscriptionService struct {
	Store store.Store
}

func NewSubscriptionService(st store.Store) *SubscriptionService {
	return &SubscriptionService{Store: st}
}

func (s *SubscriptionService) Current(ctx context.Context, userID string) (models.User, error) {
	return s.Store.GetUser(ctx, userID)
}

// Checkout simulates a successful payment and activates the plan for a month.
func (s *SubscriptionService) Checkout(ctx context.Context, userID, plan string) (models.User, error) {
	if plan != PlanPro {
		return models.User{}, fmt.Errorf("%w: unknown plan %q", ErrValidation, plan)
	}

	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	now := timeNow()
	renews := now.AddDate(0, 1, 0)
	user.Plan = plan
	user.PlanStartedAt = &now
	user.PlanRenewsAt = &renews

	if err := s.Store.UpdateUser(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Cancel drops the user back to the free plan immediately.
func (s *SubscriptionService) Cancel(ctx context.Context, userID string) (models.User, error) {
	user, err := s.Store.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.Plan = PlanFree
	user.PlanStartedAt = nil
	user.PlanRenewsAt = nil

	if err := s.Store.UpdateUser(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
