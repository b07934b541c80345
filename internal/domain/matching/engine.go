package matching

import "strings"

// UserProfile is the scoring view of a user's feature record.
type UserProfile struct {
	Major             string
	EducationLevel    int
	PreferredLocation string
	PreferredJobType  string
	Skills            []string
	Interests         []string
}

// JobProfile is the scoring view of a job's extracted feature record.
type JobProfile struct {
	RequiredSkills []string
	Keywords       []string
}

// JobInfo carries the posting attributes that score directly, outside the
// extracted feature sets.
type JobInfo struct {
	Title          string
	Location       string
	JobType        string
	EducationLevel int
}

type Result struct {
	Score   float64
	Reasons []string
}

// Engine computes the compatibility score between a user and a job. Score is
// a pure function of its inputs; missing optional fields contribute nothing
// from their term rather than erroring.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg == (Config{}) {
		cfg = def
	}
	if cfg.MaxReasons <= 0 {
		cfg.MaxReasons = def.MaxReasons
	}
	return &Engine{cfg: cfg}
}

// Score sums the independent per-factor contributions and clamps the total at
// zero. The only negative term is the education penalty for under-qualified
// users; everything else adds or is absent.
func (e *Engine) Score(u UserProfile, jf JobProfile, j JobInfo) Result {
	var total float64

	if e.majorMatches(u, jf) {
		total += e.cfg.MajorKeywordBonus
	}

	if len(jf.RequiredSkills) > 0 {
		m := len(e.matchedSkills(u.Skills, jf.RequiredSkills))
		total += e.cfg.SkillOverlapWeight * float64(m) / float64(len(jf.RequiredSkills))
	}

	if len(u.Interests) > 0 {
		m := 0
		for _, interest := range u.Interests {
			if interestMatches(interest, jf.Keywords) {
				m++
			}
		}
		total += e.cfg.InterestOverlapWeight * float64(m) / float64(len(u.Interests))
	}

	switch {
	case j.EducationLevel <= 0:
		total += e.cfg.EducationBonus
	case u.EducationLevel >= j.EducationLevel:
		total += e.cfg.EducationBonus
	default:
		total -= e.cfg.EducationPenalty
	}

	if locationMatches(u.PreferredLocation, j.Location) {
		total += e.cfg.LocationBonus
	}

	if u.PreferredJobType != "" && u.PreferredJobType == j.JobType {
		total += e.cfg.JobTypeBonus
	}

	if total < 0 {
		total = 0
	}

	return Result{Score: total, Reasons: e.reasons(u, jf, j)}
}

func (e *Engine) majorMatches(u UserProfile, jf JobProfile) bool {
	major := strings.TrimSpace(u.Major)
	if major == "" {
		return false
	}
	for _, kw := range jf.Keywords {
		if strings.Contains(kw, major) {
			return true
		}
	}
	return false
}

// matchedSkills returns the user's skills present in the job's required set.
func (e *Engine) matchedSkills(userSkills, required []string) []string {
	out := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		for _, r := range required {
			if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(r)) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// interestMatches holds when the interest is a substring of a keyword or the
// keyword a substring of the interest, either direction.
func interestMatches(interest string, keywords []string) bool {
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return false
	}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(kw, interest) || strings.Contains(interest, kw) {
			return true
		}
	}
	return false
}

// locationMatches is mutual case-sensitive containment, so "Beijing" matches
// "Beijing Haidian" and vice versa.
func locationMatches(preferred, jobLocation string) bool {
	preferred = strings.TrimSpace(preferred)
	jobLocation = strings.TrimSpace(jobLocation)
	if preferred == "" || jobLocation == "" {
		return false
	}
	return strings.Contains(jobLocation, preferred) || strings.Contains(preferred, jobLocation)
}
