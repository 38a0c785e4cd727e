package usecase

import (
	"context"
	"errors"
	"testing"

	domjob "gradmatch/internal/domain/job"
)

func TestJobListUsecase_ListJobs_InvalidLimit(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, &mockCache{}, nil)

	for _, limit := range []int{-1, 101} {
		_, err := uc.ListJobs(context.Background(), JobListParams{Limit: limit})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit %d: expected ErrInvalidInput, got %v", limit, err)
		}
	}
}

func TestJobListUsecase_ListJobs_InvalidOffset(t *testing.T) {
	uc := NewJobListUsecase(&mockJobRepo{}, &mockCache{}, nil)

	_, err := uc.ListJobs(context.Background(), JobListParams{Offset: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_Success(t *testing.T) {
	jobs := []domjob.Job{
		cachedJob("Graduate Engineer", "London", "graduate", "desc", 1),
		cachedJob("Data Analyst", "Leeds", "full_time", "desc", 3),
	}
	uc := NewJobListUsecase(&mockJobRepo{recent: jobs}, &mockCache{}, nil)

	got, err := uc.ListJobs(context.Background(), JobListParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got))
	}
}
