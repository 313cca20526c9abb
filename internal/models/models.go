package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status is the stage of a job application. It is stored as text so that
// aggregation keeps working if new stages show up in the data; use
// ParseStatus to map arbitrary input onto the known set.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

// KnownStatuses lists the stages the UI offers, in pipeline order.
var KnownStatuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// ParseStatus maps a raw string onto a Status. Unrecognized values are kept
// as-is rather than rejected, so records written by a newer client still load.
func ParseStatus(raw string) Status {
	for _, s := range KnownStatuses {
		if string(s) == raw {
			return s
		}
	}
	return Status(raw)
}

// Known reports whether s is one of the stages this build understands.
func (s Status) Known() bool {
	for _, k := range KnownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`

	// Mock subscription state. No real payment processor is wired up;
	// checkout just flips the plan.
	Plan          string     `gorm:"default:'free'" json:"plan"`
	PlanStartedAt *time.Time `json:"plan_started_at,omitempty"`
	PlanRenewsAt  *time.Time `json:"plan_renews_at,omitempty"`
}

// JobApplication is the central record. Deletes are real deletes: there is
// no soft-delete or versioning, the last write wins.
type JobApplication struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"index;not null" json:"user_id"`

	Title   string `gorm:"not null" json:"title"`
	Company string `gorm:"not null" json:"company"`
	Status  Status `gorm:"type:text;default:'Applied'" json:"status"`

	Location     string `json:"location,omitempty"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`
	URL          string `json:"url,omitempty"`
	Salary       string `json:"salary,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`

	ApplicationDate time.Time  `json:"application_date"`
	InterviewDate   *time.Time `json:"interview_date,omitempty"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
}

// Reminder is a follow-up note linked to a job application. The JobID is a
// weak reference: deleting a job does not delete its reminders, and the API
// falls back to a "Job not found" label when the job is gone.
type Reminder struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    string    `gorm:"index;not null" json:"user_id"`
	JobID     string    `gorm:"index;not null" json:"job_id"`
	Date      time.Time `json:"date"`
	Note      string    `gorm:"not null" json:"note"`
	Completed bool      `gorm:"default:false" json:"completed"`
}

// NormalizeTags trims whitespace and drops empty strings and exact duplicates,
// preserving first-occurrence order. Comparison is case-sensitive: "Remote"
// and "remote" are distinct tags.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
