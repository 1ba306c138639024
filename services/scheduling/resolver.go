package scheduling

import (
	"time"

	"meetwise/models"
)

// Resolve finds the earliest mutually free slot of the requested length. It
// walks the windows in chronological order; within each window the busy
// intervals of every participant are clamped to the window, merged into one
// occupied sequence, and the complementary free gaps scanned front to back.
// The first gap long enough decides: the slot starts at the gap's start, in
// the earliest feasible window. Exhausting the horizon yields
// ErrNoFeasibleSlot.
func Resolve(schedules []models.ParticipantSchedule, windows []models.AvailabilityWindow, durationMinutes int) (models.ResolvedSlot, error) {
	if durationMinutes <= 0 {
		return models.ResolvedSlot{}, ErrInvalidDuration
	}
	duration := time.Duration(durationMinutes) * time.Minute

	// A meeting longer than the widest window can never fit, whatever the
	// horizon.
	fits := false
	for _, w := range windows {
		if w.Duration() >= duration {
			fits = true
			break
		}
	}
	if !fits {
		return models.ResolvedSlot{}, ErrNoFeasibleSlot
	}

	for _, window := range windows {
		var clamped []models.BusyInterval
		for _, schedule := range schedules {
			for _, b := range schedule.Busy {
				if iv, ok := b.TimeInterval.Clamp(window); ok {
					clamped = append(clamped, models.BusyInterval{TimeInterval: iv, Owner: b.Owner, Label: b.Label})
				}
			}
		}
		occupied := mergeBusy(clamped)

		for _, gap := range freeGaps(window, occupied) {
			if gap.Duration() >= duration {
				return models.ResolvedSlot{Start: gap.Start, End: gap.Start.Add(duration)}, nil
			}
		}
	}

	return models.ResolvedSlot{}, ErrNoFeasibleSlot
}

// freeGaps computes the maximal free intervals of a window given its merged
// occupied sequence: the lead-in before the first busy interval, the gaps
// between consecutive ones, and the tail after the last. An empty occupied
// sequence leaves the whole window as one gap.
func freeGaps(window models.AvailabilityWindow, occupied []models.BusyInterval) []models.TimeInterval {
	var gaps []models.TimeInterval
	cursor := window.Start
	for _, b := range occupied {
		if cursor.Before(b.Start) {
			gaps = append(gaps, models.TimeInterval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(window.End) {
		gaps = append(gaps, models.TimeInterval{Start: cursor, End: window.End})
	}
	return gaps
}

// NearbyEvents reports each participant's busy intervals overlapping the slot
// widened by radius on both sides. Feeds the response metadata so callers can
// see what the chosen slot had to steer around.
func NearbyEvents(schedules []models.ParticipantSchedule, slot models.ResolvedSlot, radius time.Duration) []models.BusyInterval {
	widened := models.TimeInterval{Start: slot.Start.Add(-radius), End: slot.End.Add(radius)}
	var near []models.BusyInterval
	for _, schedule := range schedules {
		for _, b := range schedule.Busy {
			if b.TimeInterval.Overlaps(widened) {
				near = append(near, b)
			}
		}
	}
	return near
}
