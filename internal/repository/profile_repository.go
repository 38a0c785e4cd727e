package repository

import (
	"context"
	"database/sql"
	"errors"

	"gradmatch/internal/database"
	"gradmatch/internal/domain/student"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("student profile not found")

type ProfileUpdate struct {
	Name              *string
	Course            *string
	PreferredJobType  *string
	PreferredLocation *string
	SkillIDs          []uuid.UUID
}

type ProfileRepository interface {
	// EnsureProfile creates the profile row for a user when absent. It is
	// idempotent and safe to call on every registration and login path.
	EnsureProfile(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (student.Profile, error)
	Update(ctx context.Context, profileID uuid.UUID, upd ProfileUpdate) error
	GetCV(ctx context.Context, profileID uuid.UUID) (student.CV, error)
	// ReplaceCV overwrites the summary and recreates all education and
	// experience rows in one transaction.
	ReplaceCV(ctx context.Context, profileID uuid.UUID, cv student.CV) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) EnsureProfile(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO student_profiles (id, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`,
		uuid.New(), userID,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT id FROM student_profiles WHERE user_id = $1`, userID)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (student.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, course, preferred_job_type, preferred_location, cv_summary, created_at, updated_at
		FROM student_profiles WHERE user_id = $1`, userID)

	var p student.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Course, &p.PreferredJobType,
		&p.PreferredLocation, &p.CVSummary, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return student.Profile{}, ErrProfileNotFound
		}
		return student.Profile{}, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name FROM skills s
		JOIN student_skills ss ON ss.skill_id = s.id
		WHERE ss.profile_id = $1
		ORDER BY s.name ASC`, p.ID)
	if err != nil {
		return student.Profile{}, err
	}
	defer rows.Close()

	p.Skills = make([]student.Skill, 0)
	for rows.Next() {
		var s student.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return student.Profile{}, err
		}
		p.Skills = append(p.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return student.Profile{}, err
	}

	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, profileID uuid.UUID, upd ProfileUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n, err := tx.Exec(ctx, `
		UPDATE student_profiles SET
			name = COALESCE($2, name),
			course = COALESCE($3, course),
			preferred_job_type = COALESCE($4, preferred_job_type),
			preferred_location = COALESCE($5, preferred_location),
			updated_at = now()
		WHERE id = $1`,
		profileID, upd.Name, upd.Course, upd.PreferredJobType, upd.PreferredLocation,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}

	if upd.SkillIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM student_skills WHERE profile_id = $1`, profileID); err != nil {
			return err
		}
		for _, skillID := range upd.SkillIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO student_skills (profile_id, skill_id)
				SELECT $1, id FROM skills WHERE id = $2
				ON CONFLICT DO NOTHING`, profileID, skillID)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) GetCV(ctx context.Context, profileID uuid.UUID) (student.CV, error) {
	var cv student.CV

	row := r.db.QueryRow(ctx, `SELECT cv_summary FROM student_profiles WHERE id = $1`, profileID)
	if err := row.Scan(&cv.Summary); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return student.CV{}, ErrProfileNotFound
		}
		return student.CV{}, err
	}

	eduRows, err := r.db.Query(ctx, `
		SELECT id, institution, degree, subject, start_date, end_date, description, position
		FROM educations WHERE profile_id = $1 ORDER BY position ASC, id`, profileID)
	if err != nil {
		return student.CV{}, err
	}
	defer eduRows.Close()

	cv.Education = make([]student.Education, 0)
	for eduRows.Next() {
		var e student.Education
		if err := eduRows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Subject, &e.StartDate, &e.EndDate, &e.Description, &e.Position); err != nil {
			return student.CV{}, err
		}
		cv.Education = append(cv.Education, e)
	}
	if err := eduRows.Err(); err != nil {
		return student.CV{}, err
	}

	expRows, err := r.db.Query(ctx, `
		SELECT id, company, role, start_date, end_date, description, position
		FROM experiences WHERE profile_id = $1 ORDER BY position ASC, id`, profileID)
	if err != nil {
		return student.CV{}, err
	}
	defer expRows.Close()

	cv.Experience = make([]student.Experience, 0)
	for expRows.Next() {
		var e student.Experience
		if err := expRows.Scan(&e.ID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description, &e.Position); err != nil {
			return student.CV{}, err
		}
		cv.Experience = append(cv.Experience, e)
	}
	if err := expRows.Err(); err != nil {
		return student.CV{}, err
	}

	return cv, nil
}

func (r *PostgresProfileRepository) ReplaceCV(ctx context.Context, profileID uuid.UUID, cv student.CV) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n, err := tx.Exec(ctx,
		`UPDATE student_profiles SET cv_summary = $2, updated_at = now() WHERE id = $1`,
		profileID, cv.Summary,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM educations WHERE profile_id = $1`, profileID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM experiences WHERE profile_id = $1`, profileID); err != nil {
		return err
	}

	for i, e := range cv.Education {
		_, err := tx.Exec(ctx, `
			INSERT INTO educations (id, profile_id, institution, degree, subject, start_date, end_date, description, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.New(), profileID, e.Institution, e.Degree, e.Subject, e.StartDate, e.EndDate, e.Description, i,
		)
		if err != nil {
			return err
		}
	}

	for i, e := range cv.Experience {
		_, err := tx.Exec(ctx, `
			INSERT INTO experiences (id, profile_id, company, role, start_date, end_date, description, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), profileID, e.Company, e.Role, e.StartDate, e.EndDate, e.Description, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

var _ ProfileRepository = (*PostgresProfileRepository)(nil)
