package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/services"
)

type AnalyticsHandler struct {
	Analytics *services.AnalyticsService
}

func NewAnalyticsHandler(a *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: a}
}

// Metrics is GET /analytics: the full derived-metrics block the dashboard
// renders.
func (h *AnalyticsHandler) Metrics(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	metrics, err := h.Analytics.Metrics(ctx, userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Calendar is GET /calendar?date=YYYY-MM-DD: the interviews scheduled on
// that calendar day.
func (h *AnalyticsHandler) Calendar(c *gin.Context) {
	raw := c.Query("date")
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	jobs, err := h.Analytics.InterviewsOn(ctx, userID(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": raw, "interviews": jobs, "count": len(jobs)})
}
