package models

// RequestAttendee is one attendee entry on the inbound payload.
type RequestAttendee struct {
	Email string `json:"email" bson:"email"`
}

// ScheduleRequest is the inbound meeting request payload. Datetime is the
// sender's timestamp in DD-MM-YYYYTHH:MM:SS form without an offset; it is
// interpreted in the configured scheduling zone.
type ScheduleRequest struct {
	RequestID    string            `json:"Request_id" bson:"requestId" binding:"required"`
	Datetime     string            `json:"Datetime" bson:"datetime"`
	Location     string            `json:"Location" bson:"location"`
	From         string            `json:"From" bson:"from" binding:"required"`
	Attendees    []RequestAttendee `json:"Attendees" bson:"attendees" binding:"required"`
	Subject      string            `json:"Subject" bson:"subject"`
	EmailContent string            `json:"EmailContent" bson:"emailContent"`
}

// AttendeeEvents pairs an attendee with their events of record, including the
// newly scheduled meeting.
type AttendeeEvents struct {
	Email  string     `json:"email" bson:"email"`
	Events []RawEvent `json:"events" bson:"events"`
}

// MetaData carries scheduling insights attached to a response.
type MetaData struct {
	Reasoning            string   `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	Benefits             []string `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Considerations       []string `json:"considerations,omitempty" bson:"considerations,omitempty"`
	ConfidenceScore      string   `json:"confidence_score,omitempty" bson:"confidenceScore,omitempty"`
	ScheduledDatetime    string   `json:"scheduled_datetime,omitempty" bson:"scheduledDatetime,omitempty"`
	AttendeeCount        int      `json:"attendee_count,omitempty" bson:"attendeeCount,omitempty"`
	UnreachableCalendars []string `json:"unreachable_calendars,omitempty" bson:"unreachableCalendars,omitempty"`
	Error                string   `json:"error,omitempty" bson:"error,omitempty"`
}

// ScheduleResponse is the outbound payload. On success EventStart/EventEnd
// hold the chosen slot; when no feasible slot exists they are empty and Error
// explains why, with the request echo fields intact.
type ScheduleResponse struct {
	RequestID    string           `json:"Request_id" bson:"requestId"`
	Datetime     string           `json:"Datetime" bson:"datetime"`
	Location     string           `json:"Location" bson:"location"`
	From         string           `json:"From" bson:"from"`
	Attendees    []AttendeeEvents `json:"Attendees" bson:"attendees"`
	Subject      string           `json:"Subject" bson:"subject"`
	EmailContent string           `json:"EmailContent" bson:"emailContent"`
	EventStart   string           `json:"EventStart" bson:"eventStart"`
	EventEnd     string           `json:"EventEnd" bson:"eventEnd"`
	DurationMins string           `json:"Duration_mins" bson:"durationMins"`
	MetaData     MetaData         `json:"MetaData" bson:"metaData"`
	Error        string           `json:"error,omitempty" bson:"error,omitempty"`
}
