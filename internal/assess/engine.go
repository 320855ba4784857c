// Package assess orchestrates a questionnaire submission end to end:
// validation, normalization, content-hash dedup, scoring, and persistence.
// It sits between the HTTP handlers and the scoring/store packages so that
// handlers stay thin and the pipeline is testable without a router.
package assess

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wellora/assessment-backend/internal/db"
	"github.com/wellora/assessment-backend/internal/scoring"
	"github.com/wellora/assessment-backend/internal/store"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrInvalidAnswers is returned when the submitted answer set is empty or
// structurally unusable. Handlers map this to a 400 VALIDATION response.
var ErrInvalidAnswers = errors.New("assess: answer set is empty or invalid")

// ErrConflict is returned when a concurrent identical submission won the
// insert race. The condition is transient: the caller should re-fetch by
// resubmitting the same answers, which will hit the dedup fast path.
var ErrConflict = errors.New("assess: concurrent duplicate submission")

// ErrNotFound is returned when no assessment exists for the requested session.
var ErrNotFound = errors.New("assess: assessment not found")

const maxAnswerKeys = 200

// ─── ENGINE ──────────────────────────────────────────────────────────────────

// Storage is the slice of the store the engine needs: the read-side Querier
// for dedup lookups and report loads, and the atomic submission write.
// *store.Store is the production implementation; tests substitute stubs to
// drive the write path without a database.
type Storage interface {
	Q() db.Querier
	CreateAssessment(ctx context.Context, p store.CreateAssessmentParams) (db.Assessment, error)
}

var _ Storage = (*store.Store)(nil)

// Engine runs the submission pipeline. All fields are required.
type Engine struct {
	store  Storage
	logger *slog.Logger
}

// New creates an Engine.
func New(st Storage, logger *slog.Logger) *Engine {
	return &Engine{store: st, logger: logger}
}

// SubmitParams is one questionnaire submission.
type SubmitParams struct {
	// UserKey identifies the submitter for dedup purposes: a user ID, an
	// anonymous token, or a hashed client IP. Never empty.
	UserKey string

	// Answers is the raw question→answer map as received from the client.
	Answers map[string]string

	// IdempotencyKey, when set, replaces the derived content hash as the
	// dedup key. Callers that track their own submission IDs use this.
	IdempotencyKey string

	// Email, when set, is where the report-ready notification goes.
	Email string
}

// SubmitResult identifies the stored assessment.
type SubmitResult struct {
	SessionID uuid.UUID

	// Cached is true when an identical submission by the same user already
	// existed and its session was returned instead of scoring again.
	Cached bool
}

// Submit runs the full pipeline: validate, normalize, dedup, score, persist.
//
// Identical answers from the same user resolve to the same session ID: a
// sequential duplicate is caught by the read-side pre-check and served with
// Cached=true, and a concurrent duplicate that loses the insert race gets
// ErrConflict and finds the winner's session on retry. The same answers are
// never scored or stored twice.
func (e *Engine) Submit(ctx context.Context, p SubmitParams) (SubmitResult, error) {
	if p.UserKey == "" {
		return SubmitResult{}, fmt.Errorf("%w: missing user key", ErrInvalidAnswers)
	}
	if len(p.Answers) == 0 || len(p.Answers) > maxAnswerKeys {
		return SubmitResult{}, ErrInvalidAnswers
	}

	hash := p.IdempotencyKey
	if hash == "" {
		var err error
		hash, err = ContentHash(p.Answers)
		if err != nil {
			return SubmitResult{}, fmt.Errorf("assess: hash answers: %w", err)
		}
	}

	// Fast path: an identical submission already exists.
	existing, err := e.store.Q().GetSubmissionByUserAndHash(ctx, db.GetSubmissionByUserAndHashParams{
		UserKey:     p.UserKey,
		ContentHash: hash,
	})
	if err == nil {
		e.logger.Info("duplicate submission served from cache",
			"session_id", existing.SessionID, "user_key", p.UserKey)
		return SubmitResult{SessionID: existing.SessionID, Cached: true}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return SubmitResult{}, fmt.Errorf("assess: check existing submission: %w", err)
	}

	normalized := scoring.Normalize(scoring.AnswerSet(p.Answers))
	result := scoring.Evaluate(normalized)

	answersJSON, err := json.Marshal(normalized)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("assess: marshal answers: %w", err)
	}
	reportJSON, err := json.Marshal(result.Report)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("assess: marshal report: %w", err)
	}

	sessionID := uuid.New()
	_, err = e.store.CreateAssessment(ctx, store.CreateAssessmentParams{
		SessionID:           sessionID,
		UserKey:             p.UserKey,
		ContentHash:         hash,
		Email:               p.Email,
		RiskCategory:        string(result.Composite.RiskCategory),
		UserProfile:         string(result.Composite.UserProfile),
		TotalHealthScore:    result.Composite.TotalHealthScore,
		ControllableScore:   result.Composite.ControllableScore,
		UncontrollableScore: result.Composite.UncontrollableScore,
		AnswersJSON:         answersJSON,
		ReportJSON:          reportJSON,
	})
	if errors.Is(err, store.ErrDuplicateSubmission) {
		// Lost the race to a concurrent identical submission. Surface the
		// conflict rather than guessing at partial state; a retry of the same
		// request hits the dedup fast path and gets the winner's session.
		return SubmitResult{}, ErrConflict
	}
	if err != nil {
		return SubmitResult{}, fmt.Errorf("assess: persist assessment: %w", err)
	}

	e.logger.Info("assessment created",
		"session_id", sessionID,
		"risk_category", result.Composite.RiskCategory,
		"total_score", result.Composite.TotalHealthScore)

	return SubmitResult{SessionID: sessionID}, nil
}

// GetReport loads the stored report for a session, overlaying the AI
// narrative when one has been generated.
func (e *Engine) GetReport(ctx context.Context, sessionID uuid.UUID) (scoring.Report, error) {
	assessment, err := e.store.Q().GetAssessmentBySessionID(ctx, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return scoring.Report{}, ErrNotFound
	}
	if err != nil {
		return scoring.Report{}, fmt.Errorf("assess: load assessment: %w", err)
	}

	var report scoring.Report
	if assessment.ReportJson.Valid {
		if err := json.Unmarshal(assessment.ReportJson.RawMessage, &report); err != nil {
			return scoring.Report{}, fmt.Errorf("assess: decode stored report: %w", err)
		}
	}

	if assessment.NarrativeStatus == db.NarrativeStatusReady && assessment.NarrativeJson.Valid {
		var narrative scoring.Narrative
		if err := json.Unmarshal(assessment.NarrativeJson.RawMessage, &narrative); err == nil {
			scoring.ApplyNarrative(&report, &narrative)
		}
	}

	return report, nil
}

// ─── CONTENT HASH ────────────────────────────────────────────────────────────

// ContentHash computes the canonical dedup hash for a raw answer set: empty
// values are dropped, the remainder is JSON-encoded (Go serialises map keys
// in sorted order, so encoding is canonical), and the bytes are SHA-256
// hashed. Key order in the input never changes the hash.
func ContentHash(answers map[string]string) (string, error) {
	filtered := make(map[string]string, len(answers))
	for k, v := range answers {
		if v == "" {
			continue
		}
		filtered[k] = v
	}
	encoded, err := json.Marshal(filtered)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
