package dtos

import (
	"fmt"
	"time"
)

type JobRequest struct {
	Title   string `json:"title" binding:"required"`
	Company string `json:"company" binding:"required"`
	Status  string `json:"status"` // defaults to "Applied" when empty

	// Optional fields
	Location     string   `json:"location"`
	Notes        string   `json:"notes"`
	URL          string   `json:"url"`
	Salary       string   `json:"salary"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email"`
	Tags         []string `json:"tags"`

	ApplicationDate string `json:"application_date"`         // defaults to now when empty
	InterviewDate   string `json:"interview_date,omitempty"` // empty = not scheduled
}

type ReminderRequest struct {
	JobID string `json:"job_id" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Note  string `json:"note" binding:"required"`
}

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// ParseDate accepts either a full RFC3339 timestamp or a bare YYYY-MM-DD
// date (interpreted at local midnight), which is what the date pickers send.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected RFC3339 or YYYY-MM-DD)", s)
}
