package repository

import (
	"context"
	"database/sql"
	"errors"

	"gradmatch/internal/database"
	domjob "gradmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationWithJob is a tracker row joined with its job for list views.
type ApplicationWithJob struct {
	Application domjob.ApplicationTracker
	Job         domjob.Job
}

type ApplicationRepository interface {
	ListForProfile(ctx context.Context, profileID uuid.UUID) ([]ApplicationWithJob, error)
	// Upsert creates or updates the (profile, job) tracker; returns the
	// stored row and whether it was created.
	Upsert(ctx context.Context, profileID, jobID uuid.UUID, status, notes string) (domjob.ApplicationTracker, bool, error)
	GetForProfile(ctx context.Context, profileID, id uuid.UUID) (domjob.ApplicationTracker, error)
	Update(ctx context.Context, profileID, id uuid.UUID, status, notes *string) (domjob.ApplicationTracker, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const appColumns = `id, profile_id, job_id, status, COALESCE(notes, ''), applied_at, updated_at`

func (r *PostgresApplicationRepository) ListForProfile(ctx context.Context, profileID uuid.UUID) ([]ApplicationWithJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.profile_id, a.job_id, a.status, COALESCE(a.notes, ''), a.applied_at, a.updated_at,
			j.id, j.source, j.external_id, j.title, COALESCE(j.company, ''), COALESCE(j.location, ''),
			COALESCE(j.description, ''), COALESCE(j.job_type, ''), COALESCE(j.url, ''), j.posted_date, j.cached_at
		FROM application_trackers a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.profile_id = $1
		ORDER BY a.updated_at DESC`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationWithJob, 0)
	for rows.Next() {
		var it ApplicationWithJob
		a := &it.Application
		j := &it.Job
		err := rows.Scan(
			&a.ID, &a.ProfileID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt,
			&j.ID, &j.Source, &j.ExternalID, &j.Title, &j.Company, &j.Location,
			&j.Description, &j.JobType, &j.URL, &j.PostedDate, &j.CachedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Upsert(ctx context.Context, profileID, jobID uuid.UUID, status, notes string) (domjob.ApplicationTracker, bool, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO application_trackers (id, profile_id, job_id, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (profile_id, job_id) DO UPDATE SET
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING `+appColumns+`, (xmax = 0) AS inserted`,
		uuid.New(), profileID, jobID, status, notes,
	)

	var a domjob.ApplicationTracker
	var inserted bool
	err := row.Scan(&a.ID, &a.ProfileID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt, &inserted)
	if err != nil {
		return domjob.ApplicationTracker{}, false, err
	}
	return a, inserted, nil
}

func (r *PostgresApplicationRepository) GetForProfile(ctx context.Context, profileID, id uuid.UUID) (domjob.ApplicationTracker, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+appColumns+` FROM application_trackers WHERE id = $1 AND profile_id = $2`, id, profileID)

	var a domjob.ApplicationTracker
	err := row.Scan(&a.ID, &a.ProfileID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return domjob.ApplicationTracker{}, ErrApplicationNotFound
		}
		return domjob.ApplicationTracker{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, profileID, id uuid.UUID, status, notes *string) (domjob.ApplicationTracker, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE application_trackers SET
			status = COALESCE($3, status),
			notes = COALESCE($4, notes),
			updated_at = now()
		WHERE id = $1 AND profile_id = $2
		RETURNING `+appColumns,
		id, profileID, status, notes,
	)

	var a domjob.ApplicationTracker
	err := row.Scan(&a.ID, &a.ProfileID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return domjob.ApplicationTracker{}, ErrApplicationNotFound
		}
		return domjob.ApplicationTracker{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM application_trackers WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

var _ ApplicationRepository = (*PostgresApplicationRepository)(nil)
