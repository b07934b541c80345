package recommend

import (
	"sort"

	"github.com/google/uuid"
)

// Candidate is one scored entry in a generation pass: a job for a user, or a
// student for an organization.
type Candidate struct {
	ID     uuid.UUID
	Score  float64
	Reason string
}

// Rank orders candidates by score descending. Ties are broken by ascending
// candidate id so the ordering is a total order and reproducible across runs.
// The input slice is not mutated.
func Rank(in []Candidate) []Candidate {
	out := make([]Candidate, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].Score > out[j].Score
	})
	return out
}
