package repository

import (
	"context"

	"gradmatch/internal/database"
	domjob "gradmatch/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobRepository interface {
	ListJobsForProfile(ctx context.Context, profileID uuid.UUID) ([]domjob.Job, error)
	ListJobIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error)
	// Save bookmarks the job; returns false when it was already saved.
	Save(ctx context.Context, profileID, jobID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, profileID, jobID uuid.UUID) error
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) ListJobsForProfile(ctx context.Context, profileID uuid.UUID) ([]domjob.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.id, j.source, j.external_id, j.title, COALESCE(j.company, ''), COALESCE(j.location, ''),
			COALESCE(j.description, ''), COALESCE(j.job_type, ''), COALESCE(j.url, ''), j.posted_date, j.cached_at
		FROM jobs j
		JOIN saved_jobs sj ON sj.job_id = j.id
		WHERE sj.profile_id = $1
		ORDER BY sj.saved_at DESC`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresSavedJobRepository) ListJobIDs(ctx context.Context, profileID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id FROM saved_jobs WHERE profile_id = $1`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, profileID, jobID uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx, `
		INSERT INTO saved_jobs (id, profile_id, job_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id, job_id) DO NOTHING`,
		uuid.New(), profileID, jobID,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresSavedJobRepository) Unsave(ctx context.Context, profileID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE profile_id = $1 AND job_id = $2`, profileID, jobID)
	return err
}

var _ SavedJobRepository = (*PostgresSavedJobRepository)(nil)
