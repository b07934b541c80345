package repository

import (
	"context"
	"errors"

	"campus-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// Job is the posting contract consumed from the wider platform: everything
// the engine needs to extract features and score, nothing more.
type Job struct {
	ID                   uuid.UUID
	Title                string
	Description          string
	Requirements         string
	JobType              string
	Location             string
	EducationRequirement string
	OrganizationID       uuid.UUID
	Status               string
	CategoryIDs          []uuid.UUID
}

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListOpenJobs(ctx context.Context) ([]Job, error)
	ListOpenJobsByOrganization(ctx context.Context, orgID uuid.UUID) ([]Job, error)
	ListOrganizationIDsWithOpenJobs(ctx context.Context) ([]uuid.UUID, error)
	CategoriesByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, COALESCE(j.description, ''), COALESCE(j.requirements, ''),
	 COALESCE(j.job_type, ''), COALESCE(j.location, ''), COALESCE(j.education_requirement, ''),
	 j.organization_id, j.status`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.id = $1 AND j.deleted_at IS NULL`,
		id,
	)

	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}

	cats, err := r.CategoriesByJobIDs(ctx, []uuid.UUID{j.ID})
	if err != nil {
		return Job{}, err
	}
	j.CategoryIDs = cats[j.ID]
	return j, nil
}

func (r *PostgresJobRepository) ListOpenJobs(ctx context.Context) ([]Job, error) {
	return r.listJobs(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.status = 'open' AND j.deleted_at IS NULL
		 ORDER BY j.id`,
	)
}

func (r *PostgresJobRepository) ListOpenJobsByOrganization(ctx context.Context, orgID uuid.UUID) ([]Job, error) {
	return r.listJobs(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.organization_id = $1 AND j.status = 'open' AND j.deleted_at IS NULL
		 ORDER BY j.id`,
		orgID,
	)
}

func (r *PostgresJobRepository) ListOrganizationIDsWithOpenJobs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT organization_id
		 FROM jobs
		 WHERE status = 'open' AND deleted_at IS NULL
		 ORDER BY organization_id`,
	)
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

func (r *PostgresJobRepository) CategoriesByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, category_id
		 FROM job_categories
		 WHERE job_id = ANY($1)
		 ORDER BY job_id, category_id`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobID, catID uuid.UUID
		if err := rows.Scan(&jobID, &catID); err != nil {
			return nil, err
		}
		out[jobID] = append(out[jobID], catID)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) listJobs(ctx context.Context, query string, args ...any) ([]Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(out))
	for _, j := range out {
		ids = append(ids, j.ID)
	}
	cats, err := r.CategoriesByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].CategoryIDs = cats[out[i].ID]
	}
	return out, nil
}

func scanJob(row database.Row) (Job, error) {
	var j Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements,
		&j.JobType, &j.Location, &j.EducationRequirement,
		&j.OrganizationID, &j.Status,
	)
	return j, err
}
