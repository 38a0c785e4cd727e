package dto

import (
	"time"

	"github.com/google/uuid"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"
)

type ApplicationResponse struct {
	ID        uuid.UUID    `json:"id"`
	JobID     uuid.UUID    `json:"job_id"`
	Status    string       `json:"status"`
	Notes     string       `json:"notes"`
	AppliedAt time.Time    `json:"applied_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Job       *JobResponse `json:"job,omitempty"`
}

func FromApplication(a domjob.ApplicationTracker) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    a.Status,
		Notes:     a.Notes,
		AppliedAt: a.AppliedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromApplicationsWithJobs(items []repository.ApplicationWithJob) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, it := range items {
		res := FromApplication(it.Application)
		job := FromJob(it.Job)
		res.Job = &job
		out = append(out, res)
	}
	return out
}
