package repository

import (
	"context"

	"campus-match/internal/database"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID
	Name string
}

type CategoryRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Category, error)
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Category, error) {
	out := make(map[uuid.UUID]Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM categories WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out[c.ID] = c
	}
	return out, rows.Err()
}
