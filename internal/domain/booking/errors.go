package booking

import (
	"fmt"
	"strings"
)

// InvalidTransitionError carries the rejected pair and the set of statuses
// that would have been allowed, so callers can surface a structured
// rejection.
type InvalidTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = s.String()
	}
	return fmt.Sprintf("cannot transition booking from %q to %q (allowed: %s)",
		e.From, e.To, strings.Join(allowed, ", "))
}
