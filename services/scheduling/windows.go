package scheduling

import (
	"strings"
	"time"

	"meetwise/models"
)

// Config carries every scheduling knob as an explicit value. It is built once
// from the application configuration and passed into the engine per call, so
// tests can override any of it without touching process state.
type Config struct {
	// Hours is the default daily working span, used when a participant's
	// calendar does not reveal their own.
	Hours models.WorkingHours
	// HorizonDays is the lookahead horizon in days from the reference time.
	HorizonDays int
	// Location is the fixed scheduling zone all instants are normalized to.
	Location *time.Location
	// IncludeWeekends keeps Saturday and Sunday windows in the horizon.
	IncludeWeekends bool
	// DefaultDurationMinutes applies when intent parsing yields no duration.
	DefaultDurationMinutes int
}

// minuteOfDay anchors a minutes-from-midnight offset on day's calendar date.
func minuteOfDay(day time.Time, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(minute) * time.Minute)
}

// GenerateWindows produces one working-hours window per calendar day from the
// reference day through the horizon, in chronological order. The reference
// day's window is clipped to start no earlier than ref, and skipped entirely
// when ref is already past that day's working end. Pure function of its
// inputs.
func GenerateWindows(ref time.Time, hours models.WorkingHours, cfg Config) []models.AvailabilityWindow {
	if !hours.Valid() || cfg.HorizonDays <= 0 {
		return nil
	}
	ref = ref.In(cfg.Location)

	windows := make([]models.AvailabilityWindow, 0, cfg.HorizonDays+1)
	for d := 0; d <= cfg.HorizonDays; d++ {
		day := ref.AddDate(0, 0, d)
		if !cfg.IncludeWeekends && isWeekend(day.Weekday()) {
			continue
		}
		start := minuteOfDay(day, hours.StartMinute)
		end := minuteOfDay(day, hours.EndMinute)
		if d == 0 {
			if !ref.Before(end) {
				continue
			}
			if ref.After(start) {
				start = ref
			}
		}
		windows = append(windows, models.AvailabilityWindow{Start: start, End: end})
	}
	return windows
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// FilterByWeekday keeps the windows falling on the given weekday.
func FilterByWeekday(windows []models.AvailabilityWindow, wd time.Weekday) []models.AvailabilityWindow {
	var out []models.AvailabilityWindow
	for _, w := range windows {
		if w.Start.Weekday() == wd {
			out = append(out, w)
		}
	}
	return out
}

// SplitWeekdaysWeekends partitions the windows into business days and
// weekends, preserving order.
func SplitWeekdaysWeekends(windows []models.AvailabilityWindow) (weekdays, weekends []models.AvailabilityWindow) {
	for _, w := range windows {
		if isWeekend(w.Start.Weekday()) {
			weekends = append(weekends, w)
		} else {
			weekdays = append(weekdays, w)
		}
	}
	return weekdays, weekends
}

// ParseWeekday extracts a concrete weekday from a free-form time preference
// like "next Thursday" or "thursday afternoon". The second return is false
// when no weekday is named.
func ParseWeekday(preference string) (time.Weekday, bool) {
	lower := strings.ToLower(preference)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.Contains(lower, strings.ToLower(wd.String())) {
			return wd, true
		}
	}
	return time.Sunday, false
}
