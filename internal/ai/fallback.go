package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wellora/assessment-backend/internal/scoring"
)

// fallbackNarrator wraps two Narrator implementations. It calls the primary
// first; if that returns an error it logs the failure and tries the
// secondary. This gives you Anthropic as the default with DeepSeek as the
// safety net (or vice versa — the choice is made in main.go).
type fallbackNarrator struct {
	primary   Narrator
	secondary Narrator
	logger    *slog.Logger
}

// NewFallbackNarrator returns a Narrator that calls primary and, on failure,
// falls back to secondary. Either argument may be nil — if primary is nil it
// goes straight to secondary; if secondary is nil and primary fails, the
// primary error is returned directly. With both nil, every call returns an
// error; callers that have no provider at all should skip the narrative step
// instead of constructing a narrator.
func NewFallbackNarrator(primary, secondary Narrator, logger *slog.Logger) Narrator {
	return &fallbackNarrator{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// GenerateNarrative tries the primary Narrator. If it fails and a secondary
// is configured, it logs the primary error and tries the secondary.
func (f *fallbackNarrator) GenerateNarrative(ctx context.Context, input NarrativeInput) (scoring.Narrative, error) {
	if f.primary == nil && f.secondary == nil {
		return scoring.Narrative{}, errors.New("ai: no narrator configured")
	}
	if f.primary != nil {
		result, err := f.primary.GenerateNarrative(ctx, input)
		if err == nil {
			return result, nil
		}
		f.logger.Warn("ai: primary narrator failed, trying secondary",
			"error", err,
			"sections", len(input.Sections),
		)
		if f.secondary == nil {
			return scoring.Narrative{}, fmt.Errorf("ai: primary failed and no secondary configured: %w", err)
		}
	}

	return f.secondary.GenerateNarrative(ctx, input)
}
