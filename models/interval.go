package models

import (
	"errors"
	"time"
)

// ErrMalformedInterval is returned when an interval would have end <= start.
var ErrMalformedInterval = errors.New("interval end must be after start")

// TimeInterval is a half-open time range [Start, End). Touching intervals do
// not overlap. Both instants are normalized to the scheduling zone at
// construction; downstream comparisons never see mixed offsets.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeInterval builds a normalized interval in the given location.
func NewTimeInterval(start, end time.Time, loc *time.Location) (TimeInterval, error) {
	if !end.After(start) {
		return TimeInterval{}, ErrMalformedInterval
	}
	return TimeInterval{Start: start.In(loc), End: end.In(loc)}, nil
}

// Overlaps reports whether the two half-open intervals share any instant.
func (i TimeInterval) Overlaps(o TimeInterval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Touches reports whether one interval ends exactly where the other begins.
func (i TimeInterval) Touches(o TimeInterval) bool {
	return i.End.Equal(o.Start) || o.End.Equal(i.Start)
}

// Merge combines two overlapping or touching intervals into their union.
// Calling it on disjoint intervals would fabricate time; callers guard with
// Overlaps/Touches first.
func (i TimeInterval) Merge(o TimeInterval) TimeInterval {
	merged := i
	if o.Start.Before(merged.Start) {
		merged.Start = o.Start
	}
	if o.End.After(merged.End) {
		merged.End = o.End
	}
	return merged
}

// Clamp intersects the interval with bound. The second return is false when
// the two are disjoint.
func (i TimeInterval) Clamp(bound TimeInterval) (TimeInterval, bool) {
	if !i.Overlaps(bound) {
		return TimeInterval{}, false
	}
	clamped := i
	if bound.Start.After(clamped.Start) {
		clamped.Start = bound.Start
	}
	if bound.End.Before(clamped.End) {
		clamped.End = bound.End
	}
	return clamped, true
}

// Duration returns the interval length.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// BusyInterval is a committed time range on one participant's calendar. Owner
// and Label are carried for reporting only; resolution looks at the times.
type BusyInterval struct {
	TimeInterval
	Owner string `json:"owner"`
	Label string `json:"label,omitempty"`
}

// ParticipantSchedule is one participant's normalized busy sequence: sorted by
// start, no two elements overlapping or touching. Built once per request by
// the aggregator and read-only afterwards.
type ParticipantSchedule struct {
	ParticipantID string         `json:"participantId"`
	Busy          []BusyInterval `json:"busy"`
}

// AvailabilityWindow is one day's working-hours span within the lookahead
// horizon.
type AvailabilityWindow = TimeInterval

// ResolvedSlot is the chosen meeting slot: exactly the requested duration,
// fully inside one availability window, overlapping nobody's busy time.
type ResolvedSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Interval returns the slot as a TimeInterval for overlap checks.
func (s ResolvedSlot) Interval() TimeInterval {
	return TimeInterval{Start: s.Start, End: s.End}
}
