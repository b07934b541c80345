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

// TalentRecommendationDetail is a listing row with the student's declared
// profile summary joined in.
type TalentRecommendationDetail struct {
	recommend.TalentRecommendation
	Major          string
	EducationLevel string
	Skills         []string
}

type TalentRecommendationRepository interface {
	Insert(ctx context.Context, rec recommend.TalentRecommendation) (bool, error)
	StudentIDsByOrganization(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID]struct{}, error)
	FindByID(ctx context.Context, id uuid.UUID) (recommend.TalentRecommendation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to recommend.Status) (bool, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]TalentRecommendationDetail, error)
}

type PostgresTalentRecommendationRepository struct {
	db database.DB
}

func NewPostgresTalentRecommendationRepository(db database.DB) *PostgresTalentRecommendationRepository {
	return &PostgresTalentRecommendationRepository{db: db}
}

func (r *PostgresTalentRecommendationRepository) Insert(ctx context.Context, rec recommend.TalentRecommendation) (bool, error) {
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
		`INSERT INTO talent_recommendations (id, organization_id, student_id, score, reason, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (organization_id, student_id) DO NOTHING`,
		rec.ID, rec.OrganizationID, rec.StudentID, rec.Score, rec.Reason, string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresTalentRecommendationRepository) StudentIDsByOrganization(ctx context.Context, orgID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT student_id FROM talent_recommendations WHERE organization_id = $1`,
		orgID,
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

func (r *PostgresTalentRecommendationRepository) FindByID(ctx context.Context, id uuid.UUID) (recommend.TalentRecommendation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, organization_id, student_id, score, reason, status, created_at, updated_at
		 FROM talent_recommendations
		 WHERE id = $1`,
		id,
	)

	var rec recommend.TalentRecommendation
	var status string
	if err := row.Scan(&rec.ID, &rec.OrganizationID, &rec.StudentID, &rec.Score, &rec.Reason, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recommend.TalentRecommendation{}, ErrRecommendationNotFound
		}
		return recommend.TalentRecommendation{}, err
	}
	rec.Status = recommend.Status(status)
	return rec, nil
}

func (r *PostgresTalentRecommendationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to recommend.Status) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE talent_recommendations
		 SET status = $1, updated_at = $2
		 WHERE id = $3 AND status = $4`,
		string(to), time.Now().UTC(), id, string(from),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresTalentRecommendationRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]TalentRecommendationDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.organization_id, r.student_id, r.score, r.reason, r.status, r.created_at, r.updated_at,
			COALESCE(f.major, ''), COALESCE(f.education_level, ''), COALESCE(f.skills, '')
		 FROM talent_recommendations r
		 LEFT JOIN user_features f ON f.user_id = r.student_id
		 WHERE r.organization_id = $1
		 ORDER BY r.score DESC, r.student_id
		 LIMIT $2 OFFSET $3`,
		orgID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TalentRecommendationDetail, 0)
	for rows.Next() {
		var d TalentRecommendationDetail
		var status, skills string
		if err := rows.Scan(
			&d.ID, &d.OrganizationID, &d.StudentID, &d.Score, &d.Reason, &status, &d.CreatedAt, &d.UpdatedAt,
			&d.Major, &d.EducationLevel, &skills,
		); err != nil {
			return nil, err
		}
		d.Status = recommend.Status(status)
		if decoded, err := decodeStringList(skills); err == nil {
			d.Skills = decoded
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
