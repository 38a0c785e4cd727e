package usecase

import (
	"context"
	"errors"
	"strings"

	domjob "gradmatch/internal/domain/job"
	"gradmatch/internal/repository"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

type UpsertApplicationInput struct {
	JobID  uuid.UUID
	Status string
	Notes  string
}

type UpdateApplicationInput struct {
	Status *string
	Notes  *string
}

type ApplicationUsecase interface {
	ListApplications(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationWithJob, error)
	// UpsertApplication creates or updates the tracker for (student, job).
	// An unknown status on the create path is downgraded to "applied".
	UpsertApplication(ctx context.Context, userID uuid.UUID, in UpsertApplicationInput) (domjob.ApplicationTracker, bool, error)
	GetApplication(ctx context.Context, userID, id uuid.UUID) (domjob.ApplicationTracker, error)
	UpdateApplication(ctx context.Context, userID, id uuid.UUID, in UpdateApplicationInput) (domjob.ApplicationTracker, error)
	DeleteApplication(ctx context.Context, userID, id uuid.UUID) error
}

type Application struct {
	profiles     repository.ProfileRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

func NewApplicationUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
) *Application {
	return &Application{profiles: profiles, jobs: jobs, applications: applications}
}

func (u *Application) ListApplications(ctx context.Context, userID uuid.UUID) ([]repository.ApplicationWithJob, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := u.applications.ListForProfile(ctx, profile)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Application) UpsertApplication(ctx context.Context, userID uuid.UUID, in UpsertApplicationInput) (domjob.ApplicationTracker, bool, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return domjob.ApplicationTracker{}, false, err
	}

	if in.JobID == uuid.Nil {
		return domjob.ApplicationTracker{}, false, ErrInvalidInput
	}
	if _, err := u.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domjob.ApplicationTracker{}, false, ErrJobNotFound
		}
		return domjob.ApplicationTracker{}, false, ErrInternal
	}

	status := in.Status
	if !domjob.ValidStatus(status) {
		status = domjob.StatusApplied
	}

	app, created, err := u.applications.Upsert(ctx, profile, in.JobID, status, strings.TrimSpace(in.Notes))
	if err != nil {
		return domjob.ApplicationTracker{}, false, ErrInternal
	}
	return app, created, nil
}

func (u *Application) GetApplication(ctx context.Context, userID, id uuid.UUID) (domjob.ApplicationTracker, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return domjob.ApplicationTracker{}, err
	}

	app, err := u.applications.GetForProfile(ctx, profile, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domjob.ApplicationTracker{}, ErrApplicationNotFound
		}
		return domjob.ApplicationTracker{}, ErrInternal
	}
	return app, nil
}

func (u *Application) UpdateApplication(ctx context.Context, userID, id uuid.UUID, in UpdateApplicationInput) (domjob.ApplicationTracker, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return domjob.ApplicationTracker{}, err
	}

	status := in.Status
	if status != nil && !domjob.ValidStatus(*status) {
		// unknown status values are ignored on update
		status = nil
	}
	notes := in.Notes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		notes = &trimmed
	}

	app, err := u.applications.Update(ctx, profile, id, status, notes)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domjob.ApplicationTracker{}, ErrApplicationNotFound
		}
		return domjob.ApplicationTracker{}, ErrInternal
	}
	return app, nil
}

func (u *Application) DeleteApplication(ctx context.Context, userID, id uuid.UUID) error {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.applications.Delete(ctx, profile, id); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Application) requireProfile(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
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
