package repository

import (
	"context"
	"errors"
	"time"

	"campus-match/internal/database"
	"campus-match/internal/domain/recommend"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

// JobRecommendationDetail is a listing row with the posting attributes and
// category ids joined in for display.
type JobRecommendationDetail struct {
	recommend.JobRecommendation
	JobTitle    string
	JobLocation string
	JobType     string
	CategoryIDs []uuid.UUID
}

type JobRecommendationRepository interface {
	// Insert persists a new record. The unique index on (user_id, job_id)
	// makes this a no-op when the pair already exists; the bool reports
	// whether a row was actually created.
	Insert(ctx context.Context, rec recommend.JobRecommendation) (bool, error)
	JobIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
	FindByID(ctx context.Context, id uuid.UUID) (recommend.JobRecommendation, error)
	// UpdateStatus moves a record from one status to another. The source
	// status is part of the predicate, so a concurrent first hop loses
	// cleanly (zero rows affected).
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to recommend.Status) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]JobRecommendationDetail, error)
}

type PostgresJobRecommendationRepository struct {
	db database.DB
}

func NewPostgresJobRecommendationRepository(db database.DB) *PostgresJobRecommendationRepository {
	return &PostgresJobRecommendationRepository{db: db}
}

func (r *PostgresJobRecommendationRepository) Insert(ctx context.Context, rec recommend.JobRecommendation) (bool, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}
	if rec.Status == "" {
		rec.Status = recommend.StatusNew
	}

	affected, err := r.db.Exec(ctx,
		`INSERT INTO job_recommendations (id, user_id, job_id, score, reason, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		rec.ID, rec.UserID, rec.JobID, rec.Score, rec.Reason, string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresJobRecommendationRepository) JobIDsByUser(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM job_recommendations WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

func (r *PostgresJobRecommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (recommend.JobRecommendation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, score, reason, status, created_at, updated_at
		 FROM job_recommendations
		 WHERE id = $1`,
		id,
	)

	var rec recommend.JobRecommendation
	var status string
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.Score, &rec.Reason, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recommend.JobRecommendation{}, ErrRecommendationNotFound
		}
		return recommend.JobRecommendation{}, err
	}
	rec.Status = recommend.Status(status)
	return rec, nil
}

func (r *PostgresJobRecommendationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to recommend.Status) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_recommendations
		 SET status = $1, updated_at = $2
		 WHERE id = $3 AND status = $4`,
		string(to), time.Now().UTC(), id, string(from),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresJobRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]JobRecommendationDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.user_id, r.job_id, r.score, r.reason, r.status, r.created_at, r.updated_at,
			COALESCE(j.title, ''), COALESCE(j.location, ''), COALESCE(j.job_type, '')
		 FROM job_recommendations r
		 LEFT JOIN jobs j ON j.id = r.job_id
		 WHERE r.user_id = $1
		 ORDER BY r.score DESC, r.job_id
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRecommendationDetail, 0)
	for rows.Next() {
		var d JobRecommendationDetail
		var status string
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.JobID, &d.Score, &d.Reason, &status, &d.CreatedAt, &d.UpdatedAt,
			&d.JobTitle, &d.JobLocation, &d.JobType,
		); err != nil {
			return nil, err
		}
		d.Status = recommend.Status(status)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	jobIDs := make([]uuid.UUID, 0, len(out))
	for _, d := range out {
		jobIDs = append(jobIDs, d.JobID)
	}
	if len(jobIDs) > 0 {
		catRows, err := r.db.Query(ctx,
			`SELECT job_id, category_id FROM job_categories WHERE job_id = ANY($1) ORDER BY job_id, category_id`,
			jobIDs,
		)
		if err != nil {
			return nil, err
		}
		defer catRows.Close()

		byJob := make(map[uuid.UUID][]uuid.UUID)
		for catRows.Next() {
			var jobID, catID uuid.UUID
			if err := catRows.Scan(&jobID, &catID); err != nil {
				return nil, err
			}
			byJob[jobID] = append(byJob[jobID], catID)
		}
		if err := catRows.Err(); err != nil {
			return nil, err
		}
		for i := range out {
			out[i].CategoryIDs = byJob[out[i].JobID]
		}
	}
	return out, nil
}
