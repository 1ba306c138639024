package calendar

import (
	"context"
	"errors"
	"time"

	"meetwise/models"
)

// ErrUnretrievable marks a participant whose calendar could not be fetched.
// Callers decide the policy; the source never substitutes an empty schedule.
var ErrUnretrievable = errors.New("calendar unretrievable")

// Source yields a participant's raw calendar events in a time range.
type Source interface {
	Events(ctx context.Context, participant string, from, to time.Time) ([]models.RawEvent, error)
}
