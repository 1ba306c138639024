package scheduling

import "errors"

var (
	// ErrNoFeasibleSlot means the full horizon was searched without finding a
	// gap long enough. An expected outcome, not a system fault.
	ErrNoFeasibleSlot = errors.New("no feasible slot within the scheduling horizon")

	// ErrInvalidDuration means the requested duration is not a positive number
	// of minutes. Rejected before the resolver runs.
	ErrInvalidDuration = errors.New("meeting duration must be a positive number of minutes")

	// ErrNoParticipants means the request names nobody to schedule for.
	ErrNoParticipants = errors.New("at least one participant is required")
)
