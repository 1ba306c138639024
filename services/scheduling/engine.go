package scheduling

import (
	"context"
	"errors"
	"time"

	"meetwise/models"

	"go.uber.org/zap"
)

// requestDatetimeLayout is the sender timestamp format on inbound payloads,
// day first and without an offset.
const requestDatetimeLayout = "02-01-2006T15:04:05"

// conflictRadius bounds how far around the chosen slot events count as
// steered-around conflicts in the response metadata.
const conflictRadius = time.Hour

// CalendarSource yields a participant's raw events in a time range. A fetch
// failure is a typed outcome, not an empty schedule.
type CalendarSource interface {
	Events(ctx context.Context, participant string, from, to time.Time) ([]models.RawEvent, error)
}

// IntentService extracts meeting intent from the request email and phrases
// scheduling insights. Implementations must degrade to deterministic
// defaults; the engine treats their output as trusted structure.
type IntentService interface {
	ParseMeetingIntent(ctx context.Context, emailContent string, attendees []string, defaultDuration int) models.MeetingIntent
	MeetingInsights(ctx context.Context, in models.InsightsInput) models.MetaData
}

// SchedulingService processes a meeting request end to end.
type SchedulingService interface {
	ScheduleMeeting(ctx context.Context, req models.ScheduleRequest) (models.ScheduleResponse, error)
}

// DefaultSchedulingService wires the calendar source and intent service into
// the pure resolution core.
type DefaultSchedulingService struct {
	Calendar CalendarSource
	Intent   IntentService
	Cfg      Config
	Logger   *zap.Logger
}

// ScheduleMeeting runs the full pipeline: intent extraction, calendar
// retrieval, working-hours intersection, window generation and
// preference-ordered slot resolution. An exhausted horizon returns a
// structured not-found response, not an error; errors are reserved for
// invalid requests.
func (s *DefaultSchedulingService) ScheduleMeeting(ctx context.Context, req models.ScheduleRequest) (models.ScheduleResponse, error) {
	participants := Participants(req)
	if len(participants) == 0 {
		return models.ScheduleResponse{}, ErrNoParticipants
	}

	ref := s.referenceTime(req)
	intent := s.Intent.ParseMeetingIntent(ctx, req.EmailContent, participants, s.Cfg.DefaultDurationMinutes)
	duration := intent.DurationMinutes
	if duration == 0 {
		duration = s.Cfg.DefaultDurationMinutes
	}
	if duration <= 0 {
		return models.ScheduleResponse{}, ErrInvalidDuration
	}

	from := ref
	to := ref.AddDate(0, 0, s.Cfg.HorizonDays)

	// Fetch every participant's calendar. A participant whose calendar cannot
	// be retrieved takes part unconstrained; the outcome is logged and
	// reported, never silently substituted.
	allEvents := make(map[string][]models.RawEvent, len(participants))
	var unreachable []string
	for _, p := range participants {
		events, err := s.Calendar.Events(ctx, p, from, to)
		if err != nil {
			s.Logger.Warn("calendar unavailable, scheduling participant as unconstrained",
				zap.String("participant", p), zap.Error(err))
			unreachable = append(unreachable, p)
			continue
		}
		allEvents[p] = events
	}

	// The most restrictive working hours across participants win.
	hours := s.Cfg.Hours
	for _, p := range participants {
		hours = hours.Intersect(InferWorkingHours(allEvents[p], s.Cfg.Location, s.Cfg.Hours))
	}
	if !hours.Valid() {
		return s.notFound(req, unreachable, "participants share no common working hours"), nil
	}

	schedules := make([]models.ParticipantSchedule, 0, len(participants))
	for _, p := range participants {
		schedules = append(schedules, AggregateSchedule(p, allEvents[p], s.Cfg.Location, s.Logger))
	}

	windows := GenerateWindows(ref, hours, s.Cfg)
	slot, ok := s.resolveWithPreference(schedules, windows, duration, intent.TimePreference)
	if !ok {
		return s.notFound(req, unreachable, "no feasible slot within the scheduling horizon"), nil
	}

	meta := s.Intent.MeetingInsights(ctx, models.InsightsInput{
		EmailContent:     req.EmailContent,
		Attendees:        participants,
		Slot:             slot,
		MeetingCounts:    MeetingCounts(allEvents, slot, s.Cfg.Location),
		ConflictsAvoided: ConflictsAvoided(schedules, slot),
	})
	meta.ScheduledDatetime = slot.Start.In(s.Cfg.Location).Format(time.RFC3339)
	meta.AttendeeCount = len(participants)
	meta.UnreachableCalendars = unreachable

	return BuildResponse(req, slot, allEvents, duration, s.Cfg.Location, meta), nil
}

// resolveWithPreference tries the preferred weekday first, then any business
// day, then weekends. Earliest feasible slot within the earliest pass wins.
func (s *DefaultSchedulingService) resolveWithPreference(schedules []models.ParticipantSchedule, windows []models.AvailabilityWindow, duration int, preference string) (models.ResolvedSlot, bool) {
	if wd, ok := ParseWeekday(preference); ok {
		if slot, err := Resolve(schedules, FilterByWeekday(windows, wd), duration); err == nil {
			return slot, true
		} else if !errors.Is(err, ErrNoFeasibleSlot) {
			return models.ResolvedSlot{}, false
		}
		s.Logger.Info("no slot on preferred weekday, falling back",
			zap.String("preference", preference))
	}

	weekdays, weekends := SplitWeekdaysWeekends(windows)
	if slot, err := Resolve(schedules, weekdays, duration); err == nil {
		return slot, true
	}
	if slot, err := Resolve(schedules, weekends, duration); err == nil {
		return slot, true
	}
	return models.ResolvedSlot{}, false
}

func (s *DefaultSchedulingService) referenceTime(req models.ScheduleRequest) time.Time {
	if req.Datetime != "" {
		if t, err := time.ParseInLocation(requestDatetimeLayout, req.Datetime, s.Cfg.Location); err == nil {
			return t
		}
		s.Logger.Warn("unparseable request datetime, using current time",
			zap.String("datetime", req.Datetime))
	}
	return time.Now().In(s.Cfg.Location)
}

func (s *DefaultSchedulingService) notFound(req models.ScheduleRequest, unreachable []string, reason string) models.ScheduleResponse {
	resp := NotFoundResponse(req, reason)
	resp.MetaData.UnreachableCalendars = unreachable
	return resp
}

// MeetingCounts tallies each participant's other meetings on the chosen day.
// Off-hours events do not count.
func MeetingCounts(allEvents map[string][]models.RawEvent, slot models.ResolvedSlot, loc *time.Location) map[string]int {
	slotDay := slot.Start.In(loc).Format("2006-01-02")
	counts := make(map[string]int, len(allEvents))
	for participant, events := range allEvents {
		n := 0
		for _, ev := range events {
			if ev.Summary == OffHoursSummary {
				continue
			}
			start, err := ParseEventTime(ev.StartTime, loc)
			if err != nil {
				continue
			}
			if start.Format("2006-01-02") == slotDay {
				n++
			}
		}
		counts[participant] = n
	}
	return counts
}

// ConflictsAvoided lists "owner: label" for busy intervals within an hour of
// the chosen slot.
func ConflictsAvoided(schedules []models.ParticipantSchedule, slot models.ResolvedSlot) []string {
	var out []string
	for _, b := range NearbyEvents(schedules, slot, conflictRadius) {
		out = append(out, b.Owner+": "+b.Label)
	}
	return out
}
