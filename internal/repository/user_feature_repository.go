package repository

import (
	"context"
	"errors"
	"time"

	"campus-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrUserFeatureNotFound = errors.New("user feature not found")

// UserFeatureRecord is the stored form of a user's declared profile.
type UserFeatureRecord struct {
	UserID            uuid.UUID
	Major             string
	EducationLevel    string
	PreferredLocation string
	PreferredJobType  string
	Skills            []string
	Interests         []string
	UpdatedAt         time.Time
}

type UserFeatureRepository interface {
	Upsert(ctx context.Context, rec UserFeatureRecord) (UserFeatureRecord, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (UserFeatureRecord, error)
	ListAll(ctx context.Context) ([]UserFeatureRecord, error)
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type PostgresUserFeatureRepository struct {
	db database.DB
}

func NewPostgresUserFeatureRepository(db database.DB) *PostgresUserFeatureRepository {
	return &PostgresUserFeatureRepository{db: db}
}

func (r *PostgresUserFeatureRepository) Upsert(ctx context.Context, rec UserFeatureRecord) (UserFeatureRecord, error) {
	skills, err := encodeStringList(rec.Skills)
	if err != nil {
		return UserFeatureRecord{}, err
	}
	interests, err := encodeStringList(rec.Interests)
	if err != nil {
		return UserFeatureRecord{}, err
	}

	rec.UpdatedAt = time.Now().UTC()

	_, err = r.db.Exec(ctx,
		`INSERT INTO user_features (user_id, major, education_level, preferred_location, preferred_job_type, skills, interests, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (user_id) DO UPDATE SET
			major = EXCLUDED.major,
			education_level = EXCLUDED.education_level,
			preferred_location = EXCLUDED.preferred_location,
			preferred_job_type = EXCLUDED.preferred_job_type,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			updated_at = EXCLUDED.updated_at`,
		rec.UserID, rec.Major, rec.EducationLevel, rec.PreferredLocation, rec.PreferredJobType,
		skills, interests, rec.UpdatedAt,
	)
	if err != nil {
		return UserFeatureRecord{}, err
	}
	return rec, nil
}

func (r *PostgresUserFeatureRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (UserFeatureRecord, error) {
	row := r.db.QueryRow(ctx, userFeatureSelect+` WHERE user_id = $1`, userID)

	rec, err := scanUserFeature(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UserFeatureRecord{}, ErrUserFeatureNotFound
		}
		return UserFeatureRecord{}, err
	}
	return rec, nil
}

func (r *PostgresUserFeatureRepository) ListAll(ctx context.Context) ([]UserFeatureRecord, error) {
	rows, err := r.db.Query(ctx, userFeatureSelect+` ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserFeatureRecord, 0)
	for rows.Next() {
		rec, err := scanUserFeature(rows)
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

func (r *PostgresUserFeatureRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM user_features ORDER BY user_id`)
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
	return out, rows.Err()
}

const userFeatureSelect = `SELECT user_id, COALESCE(major, ''), COALESCE(education_level, ''),
	 COALESCE(preferred_location, ''), COALESCE(preferred_job_type, ''),
	 COALESCE(skills, ''), COALESCE(interests, ''), updated_at
	 FROM user_features`

func scanUserFeature(row database.Row) (UserFeatureRecord, error) {
	var rec UserFeatureRecord
	var skills, interests string
	if err := row.Scan(
		&rec.UserID, &rec.Major, &rec.EducationLevel,
		&rec.PreferredLocation, &rec.PreferredJobType,
		&skills, &interests, &rec.UpdatedAt,
	); err != nil {
		return UserFeatureRecord{}, err
	}

	var err error
	if rec.Skills, err = decodeStringList(skills); err != nil {
		return UserFeatureRecord{}, err
	}
	if rec.Interests, err = decodeStringList(interests); err != nil {
		return UserFeatureRecord{}, err
	}
	return rec, nil
}
