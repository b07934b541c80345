package recommend

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidStatus marks a status value outside the allowed set for the
	// recommendation kind, or a transition the lifecycle does not model.
	ErrInvalidStatus = errors.New("invalid recommendation status")
)

// statusSets lists the statuses a record of each kind may be moved to. The
// lifecycle models first hops out of "new" only: once a record is viewed,
// applied, contacted or ignored, no further change is exposed.
var statusSets = map[Kind]map[Status]struct{}{
	KindJob: {
		StatusViewed:  {},
		StatusApplied: {},
		StatusIgnored: {},
	},
	KindTalent: {
		StatusViewed:    {},
		StatusContacted: {},
		StatusIgnored:   {},
	},
}

// ParseStatus validates a requested target status against the kind's allowed
// set. "new" is never a valid target: records are created new, not moved back.
func ParseStatus(kind Kind, raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := statusSets[kind][s]; !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ValidateTransition enforces the first-hop-only rule: the only legal source
// state is "new". A viewed record cannot become applied; that transition is
// outside the modeled machine and rejected as an invalid value.
func ValidateTransition(kind Kind, from Status, to Status) error {
	if _, ok := statusSets[kind][to]; !ok {
		return ErrInvalidStatus
	}
	if from != StatusNew {
		return ErrInvalidStatus
	}
	return nil
}
