package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/dtos"
	"github.com/jobpulse/jobpulse/internal/services"
)

type SubscriptionHandler struct {
	Subs *services.SubscriptionService
}

func NewSubscriptionHandler(s *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: s}
}

func (h *SubscriptionHandler) Current(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	user, err := h.Subs.Current(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":            user.Plan,
		"plan_started_at": user.PlanStartedAt,
		"plan_renews_at":  user.PlanRenewsAt,
	})
}

// Checkout is POST /subscription/checkout. The payment itself is mocked;
// a successful call activates the plan immediately.
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	var req dtos.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	user, err := h.Subs.Checkout(ctx, userID(c), req.Plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": user.Plan, "plan_renews_at": user.PlanRenewsAt})
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	user, err := h.Subs.Cancel(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": user.Plan})
}
