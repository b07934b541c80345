package behavior

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func at(minutesAgo int) time.Time {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(-time.Duration(minutesAgo) * time.Minute)
}

func TestAggregate_Counts(t *testing.T) {
	events := []Event{
		{Type: TypeView, OccurredAt: at(1)},
		{Type: TypeView, OccurredAt: at(2)},
		{Type: TypeApply, OccurredAt: at(3)},
		{Type: TypeFavorite, OccurredAt: at(4)},
		{Type: TypeSearch, SearchKeyword: "go", OccurredAt: at(5)},
	}

	st := Aggregate(events, nil)
	if st.ViewCount != 2 || st.ApplyCount != 1 || st.FavoriteCount != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
}

func TestAggregate_RecentSearchesDistinctAndCapped(t *testing.T) {
	events := make([]Event, 0, 10)
	for i := 0; i < 8; i++ {
		events = append(events, Event{
			Type:          TypeSearch,
			SearchKeyword: fmt.Sprintf("kw%d", i),
			OccurredAt:    at(i),
		})
	}
	// duplicate of the newest keyword, older than the original
	events = append(events, Event{Type: TypeSearch, SearchKeyword: "kw0", OccurredAt: at(30)})
	// blank keyword never appears
	events = append(events, Event{Type: TypeSearch, SearchKeyword: "   ", OccurredAt: at(0)})

	st := Aggregate(events, nil)
	want := []string{"kw0", "kw1", "kw2", "kw3", "kw4"}
	if !reflect.DeepEqual(st.RecentSearches, want) {
		t.Fatalf("recent searches = %v, want %v", st.RecentSearches, want)
	}
}

func TestAggregate_OrderIndependentOfInputOrder(t *testing.T) {
	newest := Event{Type: TypeSearch, SearchKeyword: "latest", OccurredAt: at(0)}
	oldest := Event{Type: TypeSearch, SearchKeyword: "earliest", OccurredAt: at(60)}

	st := Aggregate([]Event{oldest, newest}, nil)
	if !reflect.DeepEqual(st.RecentSearches, []string{"latest", "earliest"}) {
		t.Fatalf("recent searches = %v", st.RecentSearches)
	}
}

func TestAggregate_CategoryInterests(t *testing.T) {
	catA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	catB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	job := uuid.New()

	events := []Event{
		{Type: TypeView, TargetType: TargetCategory, TargetID: catA, Weight: 1, OccurredAt: at(1)},
		{Type: TypeApply, TargetType: TargetJob, TargetID: job, Weight: 5, OccurredAt: at(2)},
		{Type: TypeFavorite, TargetType: TargetCategory, TargetID: catB, Weight: 3, OccurredAt: at(3)},
	}
	jobCats := map[uuid.UUID][]uuid.UUID{job: {catA}}

	st := Aggregate(events, jobCats)
	want := []CategoryInterest{
		{CategoryID: catA, Score: 6},
		{CategoryID: catB, Score: 3},
	}
	if !reflect.DeepEqual(st.CategoryInterests, want) {
		t.Fatalf("interests = %v, want %v", st.CategoryInterests, want)
	}
}

func TestAggregate_TieBreaksOnCategoryID(t *testing.T) {
	catA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	catB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	events := []Event{
		{Type: TypeView, TargetType: TargetCategory, TargetID: catB, Weight: 2, OccurredAt: at(1)},
		{Type: TypeView, TargetType: TargetCategory, TargetID: catA, Weight: 2, OccurredAt: at(2)},
	}

	st := Aggregate(events, nil)
	if len(st.CategoryInterests) != 2 || st.CategoryInterests[0].CategoryID != catA {
		t.Fatalf("expected id tie-break, got %v", st.CategoryInterests)
	}
}

func TestParseType(t *testing.T) {
	if _, err := ParseType("bogus"); err == nil {
		t.Fatal("expected error for unknown type")
	}
	typ, err := ParseType("  View ")
	if err != nil || typ != TypeView {
		t.Fatalf("ParseType = %v, %v", typ, err)
	}
}

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	cases := map[Type]float64{TypeView: 1, TypeSearch: 2, TypeFavorite: 3, TypeApply: 5}
	for typ, want := range cases {
		if got := w.For(typ); got != want {
			t.Fatalf("weight for %s = %v, want %v", typ, got, want)
		}
	}
	var nilW Weights
	if nilW.For(TypeApply) != 5 {
		t.Fatal("nil weights should fall back to defaults")
	}
}
