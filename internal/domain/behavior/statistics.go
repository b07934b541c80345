package behavior

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

const recentSearchLimit = 5

// Statistics is the pure aggregation over a user's behavior log.
type Statistics struct {
	ViewCount         int
	ApplyCount        int
	FavoriteCount     int
	RecentSearches    []string
	CategoryInterests []CategoryInterest
}

// CategoryInterest is the summed event weight attributed to one category.
type CategoryInterest struct {
	CategoryID uuid.UUID
	Score      float64
}

// Aggregate computes statistics from a user's events without time-windowing.
// jobCategories resolves job-targeted events to the categories the job belongs
// to; category-targeted events contribute directly. Re-running after new
// events are appended reflects them, there is no caching here.
func Aggregate(events []Event, jobCategories map[uuid.UUID][]uuid.UUID) Statistics {
	var st Statistics

	byCategory := make(map[uuid.UUID]float64)

	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.After(ordered[j].OccurredAt)
	})

	seenSearch := make(map[string]struct{})
	for _, ev := range ordered {
		switch ev.Type {
		case TypeView:
			st.ViewCount++
		case TypeApply:
			st.ApplyCount++
		case TypeFavorite:
			st.FavoriteCount++
		case TypeSearch:
			kw := strings.TrimSpace(ev.SearchKeyword)
			if kw == "" {
				break
			}
			if _, ok := seenSearch[kw]; ok {
				break
			}
			if len(st.RecentSearches) < recentSearchLimit {
				seenSearch[kw] = struct{}{}
				st.RecentSearches = append(st.RecentSearches, kw)
			}
		}

		switch ev.TargetType {
		case TargetCategory:
			if ev.TargetID != uuid.Nil {
				byCategory[ev.TargetID] += ev.Weight
			}
		case TargetJob:
			for _, cat := range jobCategories[ev.TargetID] {
				if cat != uuid.Nil {
					byCategory[cat] += ev.Weight
				}
			}
		}
	}

	st.CategoryInterests = make([]CategoryInterest, 0, len(byCategory))
	for id, score := range byCategory {
		st.CategoryInterests = append(st.CategoryInterests, CategoryInterest{CategoryID: id, Score: score})
	}
	sort.SliceStable(st.CategoryInterests, func(i, j int) bool {
		if st.CategoryInterests[i].Score == st.CategoryInterests[j].Score {
			return st.CategoryInterests[i].CategoryID.String() < st.CategoryInterests[j].CategoryID.String()
		}
		return st.CategoryInterests[i].Score > st.CategoryInterests[j].Score
	})

	return st
}
