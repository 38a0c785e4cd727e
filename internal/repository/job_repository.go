package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gradmatch/internal/database"
	domjob "gradmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobUpsert is one normalized row keyed by the provider's external id.
type JobUpsert struct {
	Source      string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	JobType     string
	URL         string
	PostedDate  *time.Time
}

type JobRepository interface {
	// UpsertJobs applies the whole batch in one transaction; on error no
	// partial writes survive. Returns the stored rows in input order plus
	// created/updated counts.
	UpsertJobs(ctx context.Context, batch []JobUpsert) ([]domjob.Job, int, int, error)
	ListJobs(ctx context.Context, limit, offset int) ([]domjob.Job, error)
	ListRecent(ctx context.Context, limit int) ([]domjob.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (domjob.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, source, external_id, title, COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(job_type, ''), COALESCE(url, ''), posted_date, cached_at`

func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, batch []JobUpsert) ([]domjob.Job, int, int, error) {
	if len(batch) == 0 {
		return nil, 0, 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	saved := make([]domjob.Job, 0, len(batch))
	created := 0
	updated := 0

	for _, in := range batch {
		row := tx.QueryRow(ctx, `
			INSERT INTO jobs (id, source, external_id, title, company, location, description, job_type, url, posted_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (external_id) DO UPDATE SET
				source = EXCLUDED.source,
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				location = EXCLUDED.location,
				description = EXCLUDED.description,
				job_type = EXCLUDED.job_type,
				url = EXCLUDED.url,
				posted_date = EXCLUDED.posted_date
			RETURNING `+jobColumns+`, (xmax = 0) AS inserted`,
			uuid.New(), in.Source, in.ExternalID, in.Title, in.Company, in.Location,
			in.Description, in.JobType, in.URL, in.PostedDate,
		)

		var j domjob.Job
		var inserted bool
		if err := scanJobFrom(row, &j, &inserted); err != nil {
			return nil, 0, 0, err
		}
		saved = append(saved, j)
		if inserted {
			created++
		} else {
			updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, 0, err
	}
	return saved, created, updated, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]domjob.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY cached_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ListRecent returns the newest cached jobs for the recommendation
// candidate pool.
func (r *PostgresJobRepository) ListRecent(ctx context.Context, limit int) ([]domjob.Job, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY cached_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (domjob.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	var j domjob.Job
	if err := scanJobFrom(row, &j, nil); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return domjob.Job{}, ErrJobNotFound
		}
		return domjob.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]domjob.Job, error) {
	out := make([]domjob.Job, 0)
	for rows.Next() {
		var j domjob.Job
		if err := scanJobFrom(rows, &j, nil); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJobFrom(s scanner, j *domjob.Job, inserted *bool) error {
	dest := []any{
		&j.ID, &j.Source, &j.ExternalID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.JobType, &j.URL, &j.PostedDate, &j.CachedAt,
	}
	if inserted != nil {
		dest = append(dest, inserted)
	}
	return s.Scan(dest...)
}
