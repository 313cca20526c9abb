package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/auth"
	"github.com/jobpulse/jobpulse/internal/services"
	"github.com/jobpulse/jobpulse/internal/store"
)

// storeTimeout bounds every storage call made on behalf of a request, so a
// stalled database surfaces as an error instead of a hung spinner.
const storeTimeout = 15 * time.Second

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func requestCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// userID returns the authenticated user's ID. Routes using this sit behind
// auth.Middleware, so the session is always present.
func userID(c *gin.Context) string {
	session, _ := auth.CurrentSession(c)
	return session.UserID
}

// respondError maps service/store errors onto the API's error taxonomy:
// validation -> 400, vanished record -> 404, anything else -> 502 from the
// storage layer. All of them leave the app usable; nothing here is fatal.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "storage timed out"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage error: " + err.Error()})
	}
}
