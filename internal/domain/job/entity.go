package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffered      = "offered"
	StatusRejected     = "rejected"
)

// ValidStatus reports whether s is one of the application tracker statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Job is a cached posting from an external job-search provider.
// ExternalID is the provider's identifier and the upsert key.
type Job struct {
	ID          uuid.UUID
	Source      string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	JobType     string
	URL         string
	PostedDate  *time.Time
	CachedAt    time.Time
}

type SavedJob struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	JobID     uuid.UUID
	SavedAt   time.Time
}

type ApplicationTracker struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	JobID     uuid.UUID
	Status    string
	Notes     string
	AppliedAt time.Time
	UpdatedAt time.Time
}
