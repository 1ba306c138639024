package ai

import "context"

// Generator produces text for a prompt. Satisfied by GeminiClient; tests
// substitute a canned implementation.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
