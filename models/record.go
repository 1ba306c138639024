package models

import "time"

// ScheduleRecord is the archived trace of one processed scheduling request.
type ScheduleRecord struct {
	ID        string           `bson:"id" json:"id"`
	RequestID string           `bson:"requestId" json:"requestId"`
	Request   ScheduleRequest  `bson:"request" json:"request"`
	Response  ScheduleResponse `bson:"response" json:"response"`
	Status    string           `bson:"status" json:"status"` // "scheduled", "not_found" or "error"
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// Schedule record statuses.
const (
	RecordStatusScheduled = "scheduled"
	RecordStatusNotFound  = "not_found"
	RecordStatusError     = "error"
)
