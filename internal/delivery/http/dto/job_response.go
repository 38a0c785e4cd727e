package dto

import (
	"time"

	"github.com/google/uuid"

	domjob "gradmatch/internal/domain/job"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	JobType     string    `json:"job_type"`
	URL         string    `json:"url"`
	PostedDate  *string   `json:"posted_date"`
	CachedAt    time.Time `json:"cached_at"`
}

func FromJob(j domjob.Job) JobResponse {
	var posted *string
	if j.PostedDate != nil {
		s := j.PostedDate.Format("2006-01-02")
		posted = &s
	}

	return JobResponse{
		ID:          j.ID,
		Source:      j.Source,
		ExternalID:  j.ExternalID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Description: j.Description,
		JobType:     j.JobType,
		URL:         j.URL,
		PostedDate:  posted,
		CachedAt:    j.CachedAt,
	}
}

func FromJobs(jobs []domjob.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
