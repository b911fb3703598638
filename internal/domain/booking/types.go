package booking

// Status is the lifecycle state of a reservation.
//
//	pending ──► confirmed ──► completed
//	   │            │
//	   ▼            ▼
//	cancelled    cancelled / no_show
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// validTransitions is the single source of truth for transition legality.
// It must be consulted before any persistence write. Terminal states have
// no outgoing transitions.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition out of s is allowed.
func (s Status) IsTerminal() bool {
	return s.IsValid() && len(validTransitions[s]) == 0
}

// AllowedTargets returns the statuses reachable from s, in table order.
func (s Status) AllowedTargets() []Status {
	targets := validTransitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether s → target is present in the transition table.
func (s Status) CanTransition(target Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ValidateTransition returns an *InvalidTransitionError when s → target is
// not in the table.
func ValidateTransition(current, target Status) error {
	if !current.CanTransition(target) {
		return &InvalidTransitionError{
			From:    current,
			To:      target,
			Allowed: current.AllowedTargets(),
		}
	}
	return nil
}
