package usecase

import (
	"context"
	"errors"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	ListSaved(ctx context.Context, userID uuid.UUID) ([]domjob.Job, error)
	// Save bookmarks a job; the bool reports whether a new bookmark was
	// created (false when it already existed).
	Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, userID, jobID uuid.UUID) error
}

type SavedJob struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	saved    repository.SavedJobRepository
	cache    Cache
}

func NewSavedJobUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	saved repository.SavedJobRepository,
	cache Cache,
) *SavedJob {
	return &SavedJob{profiles: profiles, jobs: jobs, saved: saved, cache: cache}
}

func (u *SavedJob) ListSaved(ctx context.Context, userID uuid.UUID) ([]domjob.Job, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.saved.ListJobsForProfile(ctx, profile)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *SavedJob) Save(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return false, err
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return false, ErrJobNotFound
		}
		return false, ErrInternal
	}

	created, err := u.saved.Save(ctx, profile, jobID)
	if err != nil {
		return false, ErrInternal
	}

	u.dropRecommendations(ctx, profile)
	return created, nil
}

func (u *SavedJob) Unsave(ctx context.Context, userID, jobID uuid.UUID) error {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if err := u.saved.Unsave(ctx, profile, jobID); err != nil {
		return ErrInternal
	}

	u.dropRecommendations(ctx, profile)
	return nil
}

func (u *SavedJob) requireProfile(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return uuid.Nil, ErrProfileNotFound
		}
		return uuid.Nil, ErrInternal
	}
	return profile.ID, nil
}

// Saved jobs shape the recommendation candidate set, so the cached
// ranking for this student is stale after a toggle.
func (u *SavedJob) dropRecommendations(ctx context.Context, profileID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, "recommendations:"+profileID.String())
}
