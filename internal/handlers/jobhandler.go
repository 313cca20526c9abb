package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobpulse/jobpulse/internal/analytics"
	"github.com/jobpulse/jobpulse/internal/dtos"
	"github.com/jobpulse/jobpulse/internal/models"
	"github.com/jobpulse/jobpulse/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// List is GET /jobs. Optional ?status= and ?search= run through the same
// filter the dashboard uses; both together are ANDed.
func (h *JobHandler) List(c *gin.Context) {
	var spec analytics.FilterSpec
	if raw := c.Query("status"); raw != "" {
		status := models.ParseStatus(raw)
		spec.Status = &status
	}
	spec.Search = c.Query("search")

	ctx, cancel := requestCtx(c)
	defer cancel()

	jobs, err := h.Jobs.List(ctx, userID(c), spec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *JobHandler) Get(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	job, err := h.Jobs.Get(ctx, userID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	job, err := h.Jobs.Create(ctx, userID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	job, err := h.Jobs.Update(ctx, userID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	ctx, cancel := requestCtx(c)
	defer cancel()

	if err := h.Jobs.Delete(ctx, userID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
