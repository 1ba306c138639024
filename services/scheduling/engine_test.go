package scheduling

import (
	"context"
	"testing"
	"time"

	"meetwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCalendar serves canned events per participant and fails for anyone in
// the broken set.
type fakeCalendar struct {
	events map[string][]models.RawEvent
	broken map[string]error
}

func (f *fakeCalendar) Events(_ context.Context, participant string, _, _ time.Time) ([]models.RawEvent, error) {
	if err, ok := f.broken[participant]; ok {
		return nil, err
	}
	return f.events[participant], nil
}

// fakeIntent returns a fixed intent and the engine-computed insight input for
// inspection.
type fakeIntent struct {
	intent   models.MeetingIntent
	lastSeen models.InsightsInput
}

func (f *fakeIntent) ParseMeetingIntent(_ context.Context, _ string, _ []string, defaultDuration int) models.MeetingIntent {
	if f.intent.DurationMinutes == 0 {
		f.intent.DurationMinutes = defaultDuration
	}
	return f.intent
}

func (f *fakeIntent) MeetingInsights(_ context.Context, in models.InsightsInput) models.MetaData {
	f.lastSeen = in
	return models.MetaData{Reasoning: "test", ConfidenceScore: "high"}
}

func newEngine(cal CalendarSource, intent IntentService) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Calendar: cal,
		Intent:   intent,
		Cfg:      testCfg(30, true),
		Logger:   zap.NewNop(),
	}
}

func TestScheduleMeetingHappyPath(t *testing.T) {
	req := testRequest()
	cal := &fakeCalendar{events: map[string][]models.RawEvent{
		"userone.amd@gmail.com": {
			rawEvent(istTime(17, 13, 0), istTime(17, 14, 0), "Project sync"),
		},
	}}
	intent := &fakeIntent{intent: models.MeetingIntent{DurationMinutes: 30, TimePreference: "Thursday"}}
	engine := newEngine(cal, intent)

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)

	// Reference 17-07-2025T12:34:55 is a Thursday; the slot lands the same
	// afternoon, after the sender's 13:00 meeting.
	assert.Equal(t, "2025-07-17T14:00:00+05:30", resp.EventStart)
	assert.Equal(t, "2025-07-17T14:30:00+05:30", resp.EventEnd)
	assert.Equal(t, "30", resp.DurationMins)
	assert.Equal(t, 3, resp.MetaData.AttendeeCount)
	assert.Equal(t, resp.EventStart, resp.MetaData.ScheduledDatetime)
	assert.Empty(t, resp.MetaData.UnreachableCalendars)
	require.Len(t, resp.Attendees, 3)
}

func TestScheduleMeetingPreferredWeekdayFallback(t *testing.T) {
	req := testRequest()
	// Every Thursday in the horizon is fully booked; resolution falls back
	// to the next business day.
	var thursdayBusy []models.RawEvent
	for d := 17; d <= 47; d += 7 {
		day := istTime(1, 0, 0).AddDate(0, 0, d-1)
		if day.Weekday() != time.Thursday {
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, ist)
		end := time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, ist)
		thursdayBusy = append(thursdayBusy, rawEvent(start, end, "All day"))
	}
	require.NotEmpty(t, thursdayBusy)

	cal := &fakeCalendar{events: map[string][]models.RawEvent{
		"userone.amd@gmail.com": thursdayBusy,
	}}
	intent := &fakeIntent{intent: models.MeetingIntent{DurationMinutes: 30, TimePreference: "Thursday"}}
	engine := newEngine(cal, intent)

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)

	start, perr := ParseEventTime(resp.EventStart, ist)
	require.NoError(t, perr)
	assert.NotEqual(t, time.Thursday, start.Weekday())
	// Reference day loses its remaining Thursday hours; Friday morning wins.
	assert.Equal(t, time.Friday, start.Weekday())
	assert.Equal(t, 9, start.Hour())
}

func TestScheduleMeetingUnreachableCalendar(t *testing.T) {
	req := testRequest()
	cal := &fakeCalendar{
		events: map[string][]models.RawEvent{},
		broken: map[string]error{"usertwo.amd@gmail.com": assert.AnError},
	}
	intent := &fakeIntent{}
	engine := newEngine(cal, intent)

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)

	// The request still resolves; the failure is reported, not hidden.
	assert.NotEmpty(t, resp.EventStart)
	assert.Equal(t, []string{"usertwo.amd@gmail.com"}, resp.MetaData.UnreachableCalendars)
}

func TestScheduleMeetingNoParticipants(t *testing.T) {
	engine := newEngine(&fakeCalendar{}, &fakeIntent{})

	_, err := engine.ScheduleMeeting(context.Background(), models.ScheduleRequest{})
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestScheduleMeetingInvalidDuration(t *testing.T) {
	engine := newEngine(&fakeCalendar{}, &fakeIntent{intent: models.MeetingIntent{DurationMinutes: -10}})

	_, err := engine.ScheduleMeeting(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestScheduleMeetingDefaultDuration(t *testing.T) {
	engine := newEngine(&fakeCalendar{}, &fakeIntent{})

	resp, err := engine.ScheduleMeeting(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "30", resp.DurationMins)
}

func TestScheduleMeetingHorizonExhausted(t *testing.T) {
	req := testRequest()
	// A fifteen-hour meeting never fits an eight-hour day. Expected outcome,
	// not an error: the response carries empty slot fields and a reason.
	intent := &fakeIntent{intent: models.MeetingIntent{DurationMinutes: 15 * 60}}
	engine := newEngine(&fakeCalendar{}, intent)

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.EventStart)
	assert.Empty(t, resp.EventEnd)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, req.RequestID, resp.RequestID)
}

func TestScheduleMeetingInferredHoursRestrict(t *testing.T) {
	req := testRequest()
	// One participant's off hours end at 11:00, so no slot may start before
	// that, whatever the configured default.
	cal := &fakeCalendar{events: map[string][]models.RawEvent{
		"usertwo.amd@gmail.com": {
			rawEvent(istTime(17, 18, 0), istTime(18, 11, 0), OffHoursSummary),
		},
	}}
	intent := &fakeIntent{intent: models.MeetingIntent{DurationMinutes: 30, TimePreference: "Friday"}}
	engine := newEngine(cal, intent)

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)

	start, perr := ParseEventTime(resp.EventStart, ist)
	require.NoError(t, perr)
	assert.Equal(t, time.Friday, start.Weekday())
	assert.Equal(t, 11, start.Hour())
}

func TestScheduleMeetingDisjointWorkingHours(t *testing.T) {
	req := testRequest()
	// 18:00-09:00 off hours for one participant and 02:00-20:00 for another
	// leave no shared working time at all.
	cal := &fakeCalendar{events: map[string][]models.RawEvent{
		"userone.amd@gmail.com": {
			rawEvent(istTime(17, 18, 0), istTime(18, 9, 0), OffHoursSummary),
		},
		"usertwo.amd@gmail.com": {
			rawEvent(istTime(17, 2, 0), istTime(17, 20, 0), OffHoursSummary),
		},
	}}
	engine := newEngine(cal, &fakeIntent{})

	resp, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.EventStart)
	assert.NotEmpty(t, resp.Error)
}

func TestScheduleMeetingInsightsInput(t *testing.T) {
	req := testRequest()
	cal := &fakeCalendar{events: map[string][]models.RawEvent{
		"userone.amd@gmail.com": {
			rawEvent(istTime(17, 13, 30), istTime(17, 14, 30), "Adjacent call"),
		},
	}}
	intent := &fakeIntent{intent: models.MeetingIntent{DurationMinutes: 30}}
	engine := newEngine(cal, intent)

	_, err := engine.ScheduleMeeting(context.Background(), req)
	require.NoError(t, err)

	// The slot lands 12:34-ish onward; the 13:30 call is within the hour
	// radius and shows up as a steered-around conflict.
	assert.Contains(t, intent.lastSeen.ConflictsAvoided, "userone.amd@gmail.com: Adjacent call")
	assert.Equal(t, 1, intent.lastSeen.MeetingCounts["userone.amd@gmail.com"])
	assert.Equal(t, 0, intent.lastSeen.MeetingCounts["usertwo.amd@gmail.com"])
}

func TestMeetingCountsExcludesOffHours(t *testing.T) {
	allEvents := map[string][]models.RawEvent{
		"a": {
			rawEvent(istTime(17, 9, 0), istTime(17, 10, 0), "One"),
			rawEvent(istTime(17, 18, 0), istTime(18, 9, 0), OffHoursSummary),
			rawEvent(istTime(18, 9, 0), istTime(18, 10, 0), "Other day"),
		},
	}
	slot := models.ResolvedSlot{Start: istTime(17, 11, 0), End: istTime(17, 11, 30)}

	counts := MeetingCounts(allEvents, slot, ist)
	assert.Equal(t, 1, counts["a"])
}
