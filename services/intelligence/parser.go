package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"meetwise/models"
)

// DefaultIntentService extracts structured meeting intent and phrases
// scheduling insights via a Generator. Every path degrades to deterministic
// defaults: an unreachable or misbehaving model never fails a request.
type DefaultIntentService struct {
	Gen    Generator
	Logger *zap.Logger
}

// NewDefaultIntentService builds an intent service on the given generator.
func NewDefaultIntentService(gen Generator, logger *zap.Logger) *DefaultIntentService {
	return &DefaultIntentService{Gen: gen, Logger: logger}
}

// ParseMeetingIntent extracts duration, day preference, meeting type and
// urgency from the request email.
func (s *DefaultIntentService) ParseMeetingIntent(ctx context.Context, emailContent string, attendees []string, defaultDuration int) models.MeetingIntent {
	fallback := models.MeetingIntent{
		DurationMinutes: defaultDuration,
		TimePreference:  "any weekday",
		MeetingType:     "general meeting",
		Urgency:         "medium",
	}
	if s.Gen == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`You are an EVENT SCHEDULING EXPERT ASSISTANT. Parse the following meeting request and extract key information.

Email Content: %q
Attendees: %s

Extract and return ONLY a JSON object with these fields:
{
  "duration_minutes": <meeting duration in minutes, default %d if not specified>,
  "time_preference": "<day preference like 'Thursday', 'next week', etc.>",
  "meeting_type": "<type of meeting from subject/content>",
  "urgency": "<high/medium/low based on content tone>"
}

Rules:
- If duration not specified, use %d minutes
- Extract day preferences (Monday, Tuesday, etc.)
- Be concise and accurate
- Return ONLY valid JSON, no other text`,
		emailContent, strings.Join(attendees, ", "), defaultDuration, defaultDuration)

	content, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.Logger.Warn("intent extraction failed, using defaults", zap.Error(err))
		return fallback
	}

	var intent models.MeetingIntent
	if err := json.Unmarshal([]byte(CleanJSONPayload(content)), &intent); err != nil {
		s.Logger.Warn("intent extraction returned invalid JSON, using defaults", zap.Error(err))
		return fallback
	}
	if intent.DurationMinutes <= 0 {
		intent.DurationMinutes = defaultDuration
	}
	if intent.TimePreference == "" {
		intent.TimePreference = fallback.TimePreference
	}
	return intent
}

// MeetingInsights phrases why the chosen slot works. The workload and
// conflict inputs are already computed; the model only explains them.
func (s *DefaultIntentService) MeetingInsights(ctx context.Context, in models.InsightsInput) models.MetaData {
	slotTime := in.Slot.Start.Format("Monday, January 2 at 15:04")
	fallback := models.MetaData{
		Reasoning: fmt.Sprintf("Scheduled for %s to accommodate all attendees' availability.", slotTime),
		Benefits: []string{
			"All attendees are available at this time",
			"No conflicts with existing meetings",
		},
		ConfidenceScore: "high",
	}
	if s.Gen == nil {
		return fallback
	}

	var workload strings.Builder
	for email, count := range in.MeetingCounts {
		fmt.Fprintf(&workload, "- %s: %d other meetings on this day\n", email, count)
	}
	conflicts := "- No conflicts detected"
	if len(in.ConflictsAvoided) > 0 {
		conflicts = "- " + strings.Join(in.ConflictsAvoided, "\n- ")
	}

	prompt := fmt.Sprintf(`You are an EVENT SCHEDULING EXPERT ASSISTANT. Analyze this meeting scheduling decision and provide helpful insights.

MEETING DETAILS:
- Email Content: %q
- Attendees: %s
- Scheduled Time: %s

ATTENDEE WORKLOAD:
%s
CONFLICTS AVOIDED:
%s

Format your response as a helpful, concise JSON with these keys:
- "reasoning": Brief explanation of why this time works well
- "benefits": List of 2-3 key benefits
- "considerations": List of 1-2 things to keep in mind
- "confidence_score": Your confidence in this scheduling (high/medium/low)
Return ONLY valid JSON, no other text.`,
		in.EmailContent, strings.Join(in.Attendees, ", "), slotTime, workload.String(), conflicts)

	content, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.Logger.Warn("insight generation failed, using fallback", zap.Error(err))
		fallback.ConfidenceScore = "medium"
		return fallback
	}

	var meta models.MetaData
	if err := json.Unmarshal([]byte(CleanJSONPayload(content)), &meta); err != nil {
		s.Logger.Warn("insight generation returned invalid JSON, using fallback", zap.Error(err))
		fallback.ConfidenceScore = "medium"
		return fallback
	}
	return meta
}

// CleanJSONPayload strips the markdown code fences models like to wrap JSON
// in.
func CleanJSONPayload(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
