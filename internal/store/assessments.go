package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
	"github.com/wellora/assessment-backend/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// CreateAssessmentParams is everything the engine hands to the store once
// scoring is complete: the identity of the submitter, the dedup hash of the
// normalized answers, and the serialised results.
type CreateAssessmentParams struct {
	SessionID           uuid.UUID
	UserKey             string
	ContentHash         string
	Email               string
	RiskCategory        string
	UserProfile         string
	TotalHealthScore    int
	ControllableScore   int
	UncontrollableScore int
	AnswersJSON         []byte
	ReportJSON          []byte
}

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrDuplicateSubmission is returned when a (user_key, content_hash) pair has
// already been recorded. The caller should treat this as idempotent success —
// re-submitting identical answers must not create a second assessment.
var ErrDuplicateSubmission = errors.New("store: duplicate submission for user and content hash")

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// ─── METHODS ─────────────────────────────────────────────────────────────────

// CreateAssessment atomically records a submission guard row and the scored
// assessment it produced.
//
// Race scenario without this guard:
//  1. Two tabs submit the same questionnaire simultaneously.
//  2. Both miss the dedup pre-check (no submission row yet) and both score.
//  3. Both try to write — two assessment rows for one logical submission.
//
// The UNIQUE (user_key, content_hash) constraint on submissions resolves the
// race: the second transaction fails with a unique violation, which is mapped
// to ErrDuplicateSubmission. The handler then re-reads the winning submission
// and returns its session ID — one submission, one assessment, always.
func (s *Store) CreateAssessment(ctx context.Context, p CreateAssessmentParams) (db.Assessment, error) {
	var assessment db.Assessment

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		// 1. Insert the guard row. The unique constraint makes this the single
		//    point of arbitration between concurrent identical submissions.
		if _, err := q.CreateSubmission(ctx, db.CreateSubmissionParams{
			UserKey:     p.UserKey,
			ContentHash: p.ContentHash,
			SessionID:   p.SessionID,
		}); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return ErrDuplicateSubmission
			}
			return fmt.Errorf("CreateAssessment: create submission: %w", err)
		}

		// 2. Persist the assessment. If this fails the whole transaction rolls
		//    back, including the guard row, so the user can retry cleanly.
		created, err := q.CreateAssessment(ctx, db.CreateAssessmentParams{
			SessionID:           p.SessionID,
			UserKey:             p.UserKey,
			Email:               p.Email,
			RiskCategory:        p.RiskCategory,
			UserProfile:         p.UserProfile,
			TotalHealthScore:    int16(p.TotalHealthScore),
			ControllableScore:   int16(p.ControllableScore),
			UncontrollableScore: int16(p.UncontrollableScore),
			AnswersJson: pqtype.NullRawMessage{
				RawMessage: p.AnswersJSON,
				Valid:      len(p.AnswersJSON) > 0,
			},
			ReportJson: pqtype.NullRawMessage{
				RawMessage: p.ReportJSON,
				Valid:      len(p.ReportJSON) > 0,
			},
			NarrativeStatus: db.NarrativeStatusPending,
		})
		if err != nil {
			return fmt.Errorf("CreateAssessment: create assessment: %w", err)
		}

		assessment = created
		return nil
	})

	// Unwrap the sentinel so callers can check with errors.Is without needing
	// to look inside a wrapped error chain.
	if errors.Is(err, ErrDuplicateSubmission) {
		return db.Assessment{}, ErrDuplicateSubmission
	}
	if err != nil {
		return db.Assessment{}, err
	}

	return assessment, nil
}

// SetNarrative attaches the AI narrative and the re-rendered report snapshot
// to an assessment. Single-query write — no transaction needed — but it lives
// here because it is logically part of the assessment lifecycle and the worker
// should not call db.Querier directly for this.
func (s *Store) SetNarrative(ctx context.Context, id uuid.UUID, narrativeJSON, reportJSON []byte) error {
	err := s.q.SetAssessmentNarrative(ctx, db.SetAssessmentNarrativeParams{
		ID: id,
		NarrativeJson: pqtype.NullRawMessage{
			RawMessage: narrativeJSON,
			Valid:      len(narrativeJSON) > 0,
		},
		ReportJson: pqtype.NullRawMessage{
			RawMessage: reportJSON,
			Valid:      len(reportJSON) > 0,
		},
	})
	if err != nil {
		return fmt.Errorf("SetNarrative: %w", err)
	}
	return nil
}

// MarkNarrativeSkipped records that no narrative will be generated (no AI
// provider configured). The template report stands as final.
func (s *Store) MarkNarrativeSkipped(ctx context.Context, id uuid.UUID) error {
	if err := s.q.MarkNarrativeSkipped(ctx, id); err != nil {
		return fmt.Errorf("MarkNarrativeSkipped: %w", err)
	}
	return nil
}

// MarkNarrativeFailed records that narrative generation failed permanently
// (i.e. after exhausting retries). The template report stands as final.
func (s *Store) MarkNarrativeFailed(ctx context.Context, id uuid.UUID) error {
	if err := s.q.MarkNarrativeFailed(ctx, id); err != nil {
		return fmt.Errorf("MarkNarrativeFailed: %w", err)
	}
	return nil
}
