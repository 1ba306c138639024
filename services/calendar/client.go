package calendar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"meetwise/models"
)

// GoogleSource fetches events from each participant's primary Google
// Calendar. Authorization uses per-participant OAuth token files named after
// the mailbox local part, e.g. Keys/userone.token for userone@example.com.
type GoogleSource struct {
	keysDirectory string
}

// NewGoogleSource returns a source reading token files from keysDirectory.
func NewGoogleSource(keysDirectory string) *GoogleSource {
	return &GoogleSource{keysDirectory: keysDirectory}
}

// Events lists the participant's events between from and to. Any failure to
// authorize or fetch wraps ErrUnretrievable so callers can apply their
// participant policy.
func (g *GoogleSource) Events(ctx context.Context, participant string, from, to time.Time) ([]models.RawEvent, error) {
	tokenPath := filepath.Join(g.keysDirectory, localPart(participant)+".token")
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading token for %s: %v", ErrUnretrievable, participant, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, gcal.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing credentials for %s: %v", ErrUnretrievable, participant, err)
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("%w: creating calendar service for %s: %v", ErrUnretrievable, participant, err)
	}

	result, err := svc.Events.List("primary").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: listing events for %s: %v", ErrUnretrievable, participant, err)
	}

	events := make([]models.RawEvent, 0, len(result.Items))
	for _, item := range result.Items {
		// All-day events carry only a date; the scheduler works on timed
		// events.
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}

		attendees := make([]string, 0, len(item.Attendees))
		for _, att := range item.Attendees {
			if att.Email != "" {
				attendees = append(attendees, att.Email)
			}
		}
		if len(attendees) == 0 {
			attendees = []string{"SELF"}
		}

		summary := item.Summary
		if summary == "" {
			summary = "No Title"
		}

		events = append(events, models.RawEvent{
			StartTime:    item.Start.DateTime,
			EndTime:      item.End.DateTime,
			NumAttendees: len(attendees),
			Attendees:    attendees,
			Summary:      summary,
		})
	}
	return events, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
