package matching

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_SkillOverlapFraction(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{Skills: []string{"Java", "SQL"}, EducationLevel: 1},
		JobProfile{RequiredSkills: []string{"Java", "Python", "SQL"}},
		JobInfo{EducationLevel: 1},
	)

	// education equal adds 15, skills add 20 * 2/3
	want := 15.0 + 20.0*2.0/3.0
	if !almostEqual(res.Score, want) {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestScore_SkillMatchCaseInsensitive(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{Skills: []string{"go", " postgresql "}, EducationLevel: 1},
		JobProfile{RequiredSkills: []string{"Go", "PostgreSQL"}},
		JobInfo{EducationLevel: 1},
	)
	want := 15.0 + 20.0
	if !almostEqual(res.Score, want) {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestScore_EducationPenalty(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{EducationLevel: 1},
		JobProfile{},
		JobInfo{EducationLevel: 2},
	)
	if !almostEqual(res.Score, 0) {
		t.Fatalf("expected clamp to zero, got %v", res.Score)
	}
}

func TestScore_UnspecifiedJobEducationIsBonus(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(UserProfile{}, JobProfile{}, JobInfo{})
	if !almostEqual(res.Score, 15) {
		t.Fatalf("score = %v, want 15", res.Score)
	}
}

func TestScore_MajorKeywordBonus(t *testing.T) {
	e := NewEngine(Config{})

	with := e.Score(
		UserProfile{Major: "计算机", EducationLevel: 1},
		JobProfile{Keywords: []string{"计算机科学", "后端"}},
		JobInfo{EducationLevel: 1},
	)
	without := e.Score(
		UserProfile{Major: "建筑", EducationLevel: 1},
		JobProfile{Keywords: []string{"计算机科学", "后端"}},
		JobInfo{EducationLevel: 1},
	)
	if !almostEqual(with.Score-without.Score, 10) {
		t.Fatalf("major bonus delta = %v, want 10", with.Score-without.Score)
	}
}

func TestScore_InterestOverlap(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{Interests: []string{"machine learning", "painting"}, EducationLevel: 1},
		JobProfile{Keywords: []string{"machine learning", "python"}},
		JobInfo{EducationLevel: 1},
	)
	want := 15.0 + 15.0*1.0/2.0
	if !almostEqual(res.Score, want) {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestScore_LocationMutualContainment(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{PreferredLocation: "Beijing", EducationLevel: 1},
		JobProfile{},
		JobInfo{Location: "Beijing Haidian", EducationLevel: 1},
	)
	if !almostEqual(res.Score, 15+10) {
		t.Fatalf("score = %v, want 25", res.Score)
	}
}

func TestScore_JobTypeExactMatch(t *testing.T) {
	e := NewEngine(Config{})

	exact := e.Score(
		UserProfile{PreferredJobType: "full_time", EducationLevel: 1},
		JobProfile{},
		JobInfo{JobType: "full_time", EducationLevel: 1},
	)
	other := e.Score(
		UserProfile{PreferredJobType: "full_time", EducationLevel: 1},
		JobProfile{},
		JobInfo{JobType: "internship", EducationLevel: 1},
	)
	if !almostEqual(exact.Score-other.Score, 10) {
		t.Fatalf("job type delta = %v, want 10", exact.Score-other.Score)
	}
}

func TestScore_MoreMatchedSkillsNeverScoresLower(t *testing.T) {
	e := NewEngine(Config{})
	required := []string{"Go", "SQL", "Docker", "Kafka"}

	prev := -1.0
	skills := []string{}
	for _, s := range required {
		skills = append(skills, s)
		res := e.Score(
			UserProfile{Skills: skills, EducationLevel: 1},
			JobProfile{RequiredSkills: required},
			JobInfo{EducationLevel: 1},
		)
		if res.Score < prev {
			t.Fatalf("score dropped from %v to %v with more matched skills", prev, res.Score)
		}
		prev = res.Score
	}
}

func TestReasons_CapAndPriority(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(
		UserProfile{
			Major:             "Computer",
			Skills:            []string{"Go"},
			PreferredLocation: "Shanghai",
			PreferredJobType:  "full_time",
			EducationLevel:    2,
		},
		JobProfile{
			RequiredSkills: []string{"Go"},
			Keywords:       []string{"Computer Science"},
		},
		JobInfo{Location: "Shanghai", JobType: "full_time", EducationLevel: 1},
	)

	if len(res.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", res.Reasons)
	}
	if res.Reasons[0] != "your major fits this role" {
		t.Fatalf("unexpected first reason: %q", res.Reasons[0])
	}
	if !strings.HasPrefix(res.Reasons[1], "skills match: ") {
		t.Fatalf("unexpected second reason: %q", res.Reasons[1])
	}
}

func TestReasons_FallbackWhenNothingFires(t *testing.T) {
	e := NewEngine(Config{})

	res := e.Score(UserProfile{}, JobProfile{}, JobInfo{})
	if len(res.Reasons) != 1 || res.Reasons[0] != ReasonFallback {
		t.Fatalf("expected fallback reason, got %v", res.Reasons)
	}
}

func TestJoinReasons(t *testing.T) {
	if got := JoinReasons(nil); got != ReasonFallback {
		t.Fatalf("JoinReasons(nil) = %q", got)
	}
	if got := JoinReasons([]string{"a", "b"}); got != "a; b" {
		t.Fatalf("JoinReasons = %q", got)
	}
}

func TestNewEngine_ZeroConfigUsesDefaults(t *testing.T) {
	e := NewEngine(Config{})
	if e.cfg.SkillOverlapWeight != 20 || e.cfg.MaxReasons != 2 {
		t.Fatalf("defaults not applied: %+v", e.cfg)
	}
}
