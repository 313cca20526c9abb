package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/dtos"
	"github.com/jobpulse/jobpulse/internal/services"
)

type ReminderHandler struct {
	Reminders *services.ReminderService
}

func NewReminderHandler(r *services.ReminderService) *ReminderHandler {
	return &ReminderHandler{Reminders: r}
}

// List is GET /reminders. Completed reminders only appear with
// ?show_completed=true.
func (h *ReminderHandler) List(c *gin.Context) {
	showCompleted := c.Query("show_completed") == "true"

	ctx, cancel := requestCtx(c)
	defer cancel()

	rems, err := h.Reminders.List(ctx, userID(c), showCompleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": rems, "count": len(rems)})
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var req dtos.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	rem, err := h.Reminders.Add(ctx, userID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// Toggle is PATCH /reminders/:id/toggle.
func (h *ReminderHandler) Toggle(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	rem, err := h.Reminders.ToggleComplete(ctx, userID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rem)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	if err := h.Reminders.Delete(ctx, userID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
