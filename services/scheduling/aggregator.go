package scheduling

import (
	"sort"
	"time"

	"meetwise/models"

	"go.uber.org/zap"
)

// OffHoursSummary marks calendar events that encode non-working time rather
// than commitments. They are excluded from busy time and used to infer
// working hours.
const OffHoursSummary = "Off Hours"

// ParseEventTime parses a provider timestamp. Timestamps carrying an offset
// are taken as-is; naive ones are interpreted in the scheduling zone.
func ParseEventTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, loc)
}

// AggregateSchedule normalizes one participant's raw events into a sorted
// busy sequence with no two intervals overlapping or touching. Off-hours
// events are skipped; malformed events are dropped with a warning.
func AggregateSchedule(participantID string, events []models.RawEvent, loc *time.Location, logger *zap.Logger) models.ParticipantSchedule {
	busy := make([]models.BusyInterval, 0, len(events))
	for _, ev := range events {
		if ev.Summary == OffHoursSummary {
			continue
		}
		start, err := ParseEventTime(ev.StartTime, loc)
		if err != nil {
			logger.Warn("dropping event with unparseable start",
				zap.String("participant", participantID), zap.String("start", ev.StartTime))
			continue
		}
		end, err := ParseEventTime(ev.EndTime, loc)
		if err != nil {
			logger.Warn("dropping event with unparseable end",
				zap.String("participant", participantID), zap.String("end", ev.EndTime))
			continue
		}
		iv, err := models.NewTimeInterval(start, end, loc)
		if err != nil {
			logger.Warn("dropping malformed event",
				zap.String("participant", participantID),
				zap.String("summary", ev.Summary),
				zap.Time("start", start), zap.Time("end", end))
			continue
		}
		busy = append(busy, models.BusyInterval{
			TimeInterval: iv,
			Owner:        participantID,
			Label:        ev.Summary,
		})
	}

	return models.ParticipantSchedule{
		ParticipantID: participantID,
		Busy:          mergeBusy(busy),
	}
}

// mergeBusy sorts intervals by start and collapses every overlapping or
// touching pair in a single sweep. The union of the result equals the union
// of the input. Labels of absorbed intervals are discarded; the earliest
// event's label survives.
func mergeBusy(busy []models.BusyInterval) []models.BusyInterval {
	if len(busy) == 0 {
		return busy
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	merged := make([]models.BusyInterval, 0, len(busy))
	current := busy[0]
	for _, b := range busy[1:] {
		if current.Overlaps(b.TimeInterval) || current.Touches(b.TimeInterval) {
			current.TimeInterval = current.Merge(b.TimeInterval)
			continue
		}
		merged = append(merged, current)
		current = b
	}
	return append(merged, current)
}

// InferWorkingHours derives a participant's daily working span from their
// off-hours pattern: the working day starts where off hours end and ends
// where they begin. Falls back to the configured default when the calendar
// has no off-hours events.
func InferWorkingHours(events []models.RawEvent, loc *time.Location, fallback models.WorkingHours) models.WorkingHours {
	for _, ev := range events {
		if ev.Summary != OffHoursSummary {
			continue
		}
		offStart, err := ParseEventTime(ev.StartTime, loc)
		if err != nil {
			continue
		}
		offEnd, err := ParseEventTime(ev.EndTime, loc)
		if err != nil {
			continue
		}
		return models.WorkingHours{
			StartMinute: offEnd.Hour()*60 + offEnd.Minute(),
			EndMinute:   offStart.Hour()*60 + offStart.Minute(),
		}
	}
	return fallback
}
