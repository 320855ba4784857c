// Package ai defines the interface for AI-generated report narratives and
// provides Anthropic- and DeepSeek-backed implementations.
package ai

import (
	"context"

	"github.com/wellora/assessment-backend/internal/scoring"
)

// NarrativeInput is everything a Narrator needs to write about one
// assessment. It deliberately excludes raw answers: the narrative is written
// from the scored picture, not from personal responses.
type NarrativeInput struct {
	RiskCategory string
	UserProfile  string
	Sections     []scoring.DomainScore
}

// Narrator is the interface the worker uses to generate report narratives.
// The concrete implementations live in anthropic.go and deepseek.go.
// Tests inject a stub that returns canned responses.
type Narrator interface {
	// GenerateNarrative accepts the scored assessment and returns an
	// AI-authored summary plus per-section narrative text keyed by domain.
	//
	// Implementations must be safe to call concurrently.
	// A non-nil error means the entire call failed; the worker keeps the
	// deterministic template text in that case.
	GenerateNarrative(ctx context.Context, input NarrativeInput) (scoring.Narrative, error)
}
