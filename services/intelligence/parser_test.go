package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meetwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGenerator returns a canned response or error.
type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestCleanJSONPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSONPayload(tc.input))
		})
	}
}

func TestParseMeetingIntent(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + `{
		"duration_minutes": 45,
		"time_preference": "Thursday",
		"meeting_type": "status update",
		"urgency": "high"
	}` + "\n```"}
	svc := NewDefaultIntentService(gen, zap.NewNop())

	intent := svc.ParseMeetingIntent(context.Background(), "Let's meet Thursday for 45 minutes.", []string{"a@x.com"}, 30)

	assert.Equal(t, 45, intent.DurationMinutes)
	assert.Equal(t, "Thursday", intent.TimePreference)
	assert.Equal(t, "status update", intent.MeetingType)
	assert.Equal(t, "high", intent.Urgency)

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.Contains(gen.prompts[0], "Let's meet Thursday for 45 minutes."))
}

func TestParseMeetingIntentFallbacks(t *testing.T) {
	defaults := models.MeetingIntent{
		DurationMinutes: 30,
		TimePreference:  "any weekday",
		MeetingType:     "general meeting",
		Urgency:         "medium",
	}

	t.Run("nil generator", func(t *testing.T) {
		svc := NewDefaultIntentService(nil, zap.NewNop())
		got := svc.ParseMeetingIntent(context.Background(), "hello", nil, 30)
		assert.Equal(t, defaults, got)
	})

	t.Run("generator error", func(t *testing.T) {
		svc := NewDefaultIntentService(&stubGenerator{err: errors.New("model unavailable")}, zap.NewNop())
		got := svc.ParseMeetingIntent(context.Background(), "hello", nil, 30)
		assert.Equal(t, defaults, got)
	})

	t.Run("invalid json", func(t *testing.T) {
		svc := NewDefaultIntentService(&stubGenerator{response: "sure, how about Thursday?"}, zap.NewNop())
		got := svc.ParseMeetingIntent(context.Background(), "hello", nil, 30)
		assert.Equal(t, defaults, got)
	})

	t.Run("non-positive duration clamped", func(t *testing.T) {
		svc := NewDefaultIntentService(&stubGenerator{response: `{"duration_minutes": -5, "time_preference": "Monday"}`}, zap.NewNop())
		got := svc.ParseMeetingIntent(context.Background(), "hello", nil, 30)
		assert.Equal(t, 30, got.DurationMinutes)
		assert.Equal(t, "Monday", got.TimePreference)
	})
}

func TestMeetingInsights(t *testing.T) {
	gen := &stubGenerator{response: `{
		"reasoning": "Morning slot clears everyone's calendar",
		"benefits": ["all free", "before lunch"],
		"considerations": ["early for west coast"],
		"confidence_score": "high"
	}`}
	svc := NewDefaultIntentService(gen, zap.NewNop())

	in := models.InsightsInput{
		EmailContent:     "status update",
		Attendees:        []string{"a@x.com", "b@x.com"},
		Slot:             models.ResolvedSlot{Start: time.Date(2025, 7, 24, 10, 30, 0, 0, time.UTC)},
		MeetingCounts:    map[string]int{"a@x.com": 2},
		ConflictsAvoided: []string{"a@x.com: Standup"},
	}
	meta := svc.MeetingInsights(context.Background(), in)

	assert.Equal(t, "Morning slot clears everyone's calendar", meta.Reasoning)
	assert.Equal(t, []string{"all free", "before lunch"}, meta.Benefits)
	assert.Equal(t, "high", meta.ConfidenceScore)

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.Contains(gen.prompts[0], "a@x.com: Standup"))
	assert.True(t, strings.Contains(gen.prompts[0], "2 other meetings"))
}

func TestMeetingInsightsFallbacks(t *testing.T) {
	in := models.InsightsInput{
		Slot: models.ResolvedSlot{Start: time.Date(2025, 7, 24, 10, 30, 0, 0, time.UTC)},
	}

	t.Run("nil generator", func(t *testing.T) {
		svc := NewDefaultIntentService(nil, zap.NewNop())
		meta := svc.MeetingInsights(context.Background(), in)
		assert.Contains(t, meta.Reasoning, "Thursday, July 24 at 10:30")
		assert.Equal(t, "high", meta.ConfidenceScore)
	})

	t.Run("generator error lowers confidence", func(t *testing.T) {
		svc := NewDefaultIntentService(&stubGenerator{err: errors.New("timeout")}, zap.NewNop())
		meta := svc.MeetingInsights(context.Background(), in)
		assert.Equal(t, "medium", meta.ConfidenceScore)
		assert.NotEmpty(t, meta.Reasoning)
	})

	t.Run("invalid json lowers confidence", func(t *testing.T) {
		svc := NewDefaultIntentService(&stubGenerator{response: "no json here"}, zap.NewNop())
		meta := svc.MeetingInsights(context.Background(), in)
		assert.Equal(t, "medium", meta.ConfidenceScore)
	})
}
