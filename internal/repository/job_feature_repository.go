package repository

import (
	"context"
	"errors"
	"time"

	"campus-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobFeatureNotFound = errors.New("job feature not found")

// JobFeatureRecord is the stored form of an extracted feature. Skill and
// keyword lists go through the versioned codec at this edge.
type JobFeatureRecord struct {
	JobID          uuid.UUID
	CategoryID     *uuid.UUID
	RequiredSkills []string
	Keywords       []string
	UpdatedAt      time.Time
}

type JobFeatureRepository interface {
	Upsert(ctx context.Context, rec JobFeatureRecord) error
	FindByJobID(ctx context.Context, jobID uuid.UUID) (JobFeatureRecord, error)
	ListForOpenJobs(ctx context.Context) ([]JobFeatureRecord, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]JobFeatureRecord, error)
	DeleteByJobID(ctx context.Context, jobID uuid.UUID) error
}

type PostgresJobFeatureRepository struct {
	db database.DB
}

func NewPostgresJobFeatureRepository(db database.DB) *PostgresJobFeatureRepository {
	return &PostgresJobFeatureRepository{db: db}
}

func (r *PostgresJobFeatureRepository) Upsert(ctx context.Context, rec JobFeatureRecord) error {
	if rec.JobID == uuid.Nil {
		return nil
	}

	skills, err := encodeStringList(rec.RequiredSkills)
	if err != nil {
		return err
	}
	keywords, err := encodeStringList(rec.Keywords)
	if err != nil {
		return err
	}

	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO job_features (job_id, category_id, required_skills, keywords, updated_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (job_id) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			required_skills = EXCLUDED.required_skills,
			keywords = EXCLUDED.keywords,
			updated_at = EXCLUDED.updated_at`,
		rec.JobID, rec.CategoryID, skills, keywords, updatedAt,
	)
	return err
}

func (r *PostgresJobFeatureRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) (JobFeatureRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT job_id, category_id, COALESCE(required_skills, ''), COALESCE(keywords, ''), updated_at
		 FROM job_features
		 WHERE job_id = $1`,
		jobID,
	)

	rec, err := scanJobFeature(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobFeatureRecord{}, ErrJobFeatureNotFound
		}
		return JobFeatureRecord{}, err
	}
	return rec, nil
}

func (r *PostgresJobFeatureRepository) ListForOpenJobs(ctx context.Context) ([]JobFeatureRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT f.job_id, f.category_id, COALESCE(f.required_skills, ''), COALESCE(f.keywords, ''), f.updated_at
		 FROM job_features f
		 JOIN jobs j ON j.id = f.job_id
		 WHERE j.status = 'open' AND j.deleted_at IS NULL
		 ORDER BY f.job_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobFeatureRecord, 0)
	for rows.Next() {
		rec, err := scanJobFeature(rows)
		if err != nil {
			if errors.Is(err, ErrMalformedStoredList) {
				continue
			}
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresJobFeatureRepository) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]JobFeatureRecord, error) {
	out := make(map[uuid.UUID]JobFeatureRecord, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, category_id, COALESCE(required_skills, ''), COALESCE(keywords, ''), updated_at
		 FROM job_features
		 WHERE job_id = ANY($1)`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanJobFeature(rows)
		if err != nil {
			if errors.Is(err, ErrMalformedStoredList) {
				continue
			}
			return nil, err
		}
		out[rec.JobID] = rec
	}
	return out, rows.Err()
}

func (r *PostgresJobFeatureRepository) DeleteByJobID(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM job_features WHERE job_id = $1`, jobID)
	return err
}

func scanJobFeature(row database.Row) (JobFeatureRecord, error) {
	var rec JobFeatureRecord
	var skills, keywords string
	if err := row.Scan(&rec.JobID, &rec.CategoryID, &skills, &keywords, &rec.UpdatedAt); err != nil {
		return JobFeatureRecord{}, err
	}

	var err error
	if rec.RequiredSkills, err = decodeStringList(skills); err != nil {
		return JobFeatureRecord{}, err
	}
	if rec.Keywords, err = decodeStringList(keywords); err != nil {
		return JobFeatureRecord{}, err
	}
	return rec, nil
}
