package repository

import (
	"context"

	"campus-match/internal/database"
	"campus-match/internal/domain/behavior"

	"github.com/google/uuid"
)

// BehaviorRepository is the append-only interaction log. Events are never
// updated or deleted here.
type BehaviorRepository interface {
	Append(ctx context.Context, ev behavior.Event) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]behavior.Event, error)
}

type PostgresBehaviorRepository struct {
	db database.DB
}

func NewPostgresBehaviorRepository(db database.DB) *PostgresBehaviorRepository {
	return &PostgresBehaviorRepository{db: db}
}

func (r *PostgresBehaviorRepository) Append(ctx context.Context, ev behavior.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_behaviors (id, user_id, behavior_type, target_type, target_id, weight, search_keyword, occurred_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		ev.ID, ev.UserID, string(ev.Type), string(ev.TargetType), ev.TargetID,
		ev.Weight, ev.SearchKeyword, ev.OccurredAt,
	)
	return err
}

func (r *PostgresBehaviorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]behavior.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, behavior_type, target_type, target_id, weight, COALESCE(search_keyword, ''), occurred_at
		 FROM user_behaviors
		 WHERE user_id = $1
		 ORDER BY occurred_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]behavior.Event, 0)
	for rows.Next() {
		var ev behavior.Event
		var typ, target string
		if err := rows.Scan(&ev.ID, &ev.UserID, &typ, &target, &ev.TargetID, &ev.Weight, &ev.SearchKeyword, &ev.OccurredAt); err != nil {
			return nil, err
		}
		ev.Type = behavior.Type(typ)
		ev.TargetType = behavior.TargetType(target)
		out = append(out, ev)
	}
	return out, rows.Err()
}
