package matching

import "strings"

// ReasonFallback is emitted when no predicate fired.
const ReasonFallback = "matches your profile"

// ReasonSeparator joins reason clauses when a single string is needed.
const ReasonSeparator = "; "

// reasons re-runs the match predicates in priority order and renders up to
// MaxReasons human-readable clauses. The wording is advisory; the predicates
// are the same ones that scored.
func (e *Engine) reasons(u UserProfile, jf JobProfile, j JobInfo) []string {
	out := make([]string, 0, e.cfg.MaxReasons)

	add := func(clause string) bool {
		out = append(out, clause)
		return len(out) >= e.cfg.MaxReasons
	}

	if e.majorMatches(u, jf) {
		if add("your major fits this role") {
			return out
		}
	}

	if matched := e.matchedSkills(u.Skills, jf.RequiredSkills); len(matched) > 0 {
		if add("skills match: " + strings.Join(matched, ", ")) {
			return out
		}
	}

	if locationMatches(u.PreferredLocation, j.Location) {
		if add("located in your preferred area") {
			return out
		}
	}

	if u.PreferredJobType != "" && u.PreferredJobType == j.JobType {
		if add("matches your preferred job type") {
			return out
		}
	}

	if len(out) == 0 {
		out = append(out, ReasonFallback)
	}
	return out
}

// JoinReasons renders reason clauses as the single string persisted on a
// recommendation record.
func JoinReasons(reasons []string) string {
	if len(reasons) == 0 {
		return ReasonFallback
	}
	return strings.Join(reasons, ReasonSeparator)
}
