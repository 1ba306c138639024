package models

// RawEvent is a provider-native calendar event as handed over by the calendar
// source: timestamps are ISO strings that may carry any offset, ordering and
// overlap are not guaranteed.
type RawEvent struct {
	StartTime    string   `json:"StartTime" bson:"startTime"`
	EndTime      string   `json:"EndTime" bson:"endTime"`
	NumAttendees int      `json:"NumAttendees" bson:"numAttendees"`
	Attendees    []string `json:"Attendees" bson:"attendees"`
	Summary      string   `json:"Summary" bson:"summary"`
}

// MeetingIntent is the structured result of parsing the request email.
type MeetingIntent struct {
	DurationMinutes int    `json:"duration_minutes"`
	TimePreference  string `json:"time_preference"`
	MeetingType     string `json:"meeting_type"`
	Urgency         string `json:"urgency"`
}

// WorkingHours is a daily working span in minutes from midnight.
type WorkingHours struct {
	StartMinute int
	EndMinute   int
}

// Intersect narrows the span to the overlap of both; the most restrictive
// hours win when combining participants.
func (w WorkingHours) Intersect(o WorkingHours) WorkingHours {
	out := w
	if o.StartMinute > out.StartMinute {
		out.StartMinute = o.StartMinute
	}
	if o.EndMinute < out.EndMinute {
		out.EndMinute = o.EndMinute
	}
	return out
}

// Valid reports whether the span contains any time at all.
func (w WorkingHours) Valid() bool {
	return w.EndMinute > w.StartMinute
}
