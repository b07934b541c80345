package behavior

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownType       = errors.New("unknown behavior type")
	ErrUnknownTargetType = errors.New("unknown target type")
)

type Type string

const (
	TypeView     Type = "view"
	TypeSearch   Type = "search"
	TypeApply    Type = "apply"
	TypeFavorite Type = "favorite"
)

type TargetType string

const (
	TargetJob      TargetType = "job"
	TargetCategory TargetType = "category"
)

func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeView:
		return TypeView, nil
	case TypeSearch:
		return TypeSearch, nil
	case TypeApply:
		return TypeApply, nil
	case TypeFavorite:
		return TypeFavorite, nil
	default:
		return "", ErrUnknownType
	}
}

func ParseTargetType(s string) (TargetType, error) {
	switch TargetType(strings.ToLower(strings.TrimSpace(s))) {
	case TargetJob:
		return TargetJob, nil
	case TargetCategory:
		return TargetCategory, nil
	default:
		return "", ErrUnknownTargetType
	}
}

// Event is one logged user interaction. Events are append-only; the weight is
// frozen at ingestion time from the weight table in force, so later tuning
// never rewrites history.
type Event struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          Type
	TargetType    TargetType
	TargetID      uuid.UUID
	Weight        float64
	SearchKeyword string
	OccurredAt    time.Time
}

// Weights maps an interaction type to its strength as an interest signal.
type Weights map[Type]float64

func DefaultWeights() Weights {
	return Weights{
		TypeView:     1.0,
		TypeSearch:   2.0,
		TypeFavorite: 3.0,
		TypeApply:    5.0,
	}
}

func (w Weights) For(t Type) float64 {
	if w == nil {
		return DefaultWeights()[t]
	}
	return w[t]
}
