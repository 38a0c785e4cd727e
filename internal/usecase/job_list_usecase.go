package usecase

import (
	"context"
	"fmt"
	"log"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]domjob.Job, error)
}

type JobList struct {
	jobs   repository.JobRepository
	cache  Cache
	logger *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache Cache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]domjob.Job, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 {
		return nil, ErrInvalidInput
	}
	offset := params.Offset
	if offset < 0 {
		return nil, ErrInvalidInput
	}

	cacheKey := fmt.Sprintf("jobs:list:%d:%d", limit, offset)
	if u.cache != nil {
		var cached []domjob.Job
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListJobs(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, jobs, 0)
	}
	return jobs, nil
}
