package scheduling

import (
	"sort"
	"strconv"
	"time"

	"meetwise/models"
)

// BuildResponse assembles the outbound payload for a resolved slot: the
// request echo fields, the chosen slot in the scheduling zone, and each
// participant's events of record with the new meeting inserted in start
// order.
func BuildResponse(req models.ScheduleRequest, slot models.ResolvedSlot, allEvents map[string][]models.RawEvent, durationMinutes int, loc *time.Location, meta models.MetaData) models.ScheduleResponse {
	participants := Participants(req)

	newMeeting := models.RawEvent{
		StartTime:    slot.Start.In(loc).Format(time.RFC3339),
		EndTime:      slot.End.In(loc).Format(time.RFC3339),
		NumAttendees: len(participants),
		Attendees:    participants,
		Summary:      req.Subject,
	}

	attendees := make([]models.AttendeeEvents, 0, len(participants))
	for _, email := range participants {
		events := append([]models.RawEvent{}, allEvents[email]...)
		events = append(events, newMeeting)
		sort.SliceStable(events, func(i, j int) bool {
			a, errA := ParseEventTime(events[i].StartTime, loc)
			b, errB := ParseEventTime(events[j].StartTime, loc)
			if errA != nil || errB != nil {
				return errA == nil
			}
			return a.Before(b)
		})
		attendees = append(attendees, models.AttendeeEvents{Email: email, Events: events})
	}

	return models.ScheduleResponse{
		RequestID:    req.RequestID,
		Datetime:     req.Datetime,
		Location:     req.Location,
		From:         req.From,
		Attendees:    attendees,
		Subject:      req.Subject,
		EmailContent: req.EmailContent,
		EventStart:   newMeeting.StartTime,
		EventEnd:     newMeeting.EndTime,
		DurationMins: strconv.Itoa(durationMinutes),
		MetaData:     meta,
	}
}

// NotFoundResponse echoes the request with empty slot fields and the reason
// no slot could be found. Callers return it with HTTP 200: an exhausted
// horizon is an expected outcome.
func NotFoundResponse(req models.ScheduleRequest, reason string) models.ScheduleResponse {
	return models.ScheduleResponse{
		RequestID:    req.RequestID,
		Datetime:     req.Datetime,
		Location:     req.Location,
		From:         req.From,
		Subject:      req.Subject,
		EmailContent: req.EmailContent,
		EventStart:   "",
		EventEnd:     "",
		DurationMins: "",
		Error:        reason,
	}
}

// Participants returns the organizer followed by every attendee, the order
// the response lists them in.
func Participants(req models.ScheduleRequest) []string {
	out := make([]string, 0, len(req.Attendees)+1)
	out = append(out, req.From)
	for _, a := range req.Attendees {
		out = append(out, a.Email)
	}
	return out
}
