package models

// InsightsInput is everything the insight generator needs to explain a
// scheduling decision. All fields are computed by pure code; the generator
// only phrases them.
type InsightsInput struct {
	EmailContent string
	Attendees    []string
	Slot         ResolvedSlot
	// MeetingCounts is each participant's number of other meetings on the
	// chosen day.
	MeetingCounts map[string]int
	// ConflictsAvoided lists "email: summary" for busy intervals the slot had
	// to steer around.
	ConflictsAvoided []string
}
