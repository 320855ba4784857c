package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellora/assessment-backend/internal/assess"
)

// ─── POST /api/assessment ────────────────────────────────────────────────────
//
// Accepts the full questionnaire answer set and runs the scoring pipeline.
// Identical answers from the same caller return the original session with
// cached=true rather than scoring again.

type submitAssessmentRequest struct {
	Answers        map[string]string `json:"answers"`
	UserID         string            `json:"user_id,omitempty"`
	IdempotencyKey string            `json:"idempotency_key,omitempty"`
	Email          string            `json:"email,omitempty"`
}

type submitAssessmentResponse struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"session_id"`
	Cached    bool   `json:"cached"`
}

// handleSubmitAssessment validates the payload, resolves the caller's dedup
// key, and hands off to the engine. A stored submission is enqueued for
// narrative generation; enqueue failure is non-fatal because the poller picks
// pending assessments up anyway.
func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req submitAssessmentRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Answers) == 0 {
		respondFail(w, http.StatusBadRequest, codeValidation, "answers must be a non-empty object")
		return
	}

	result, err := s.engine.Submit(r.Context(), assess.SubmitParams{
		UserKey:        s.userKey(r, req.UserID),
		Answers:        req.Answers,
		IdempotencyKey: req.IdempotencyKey,
		Email:          strings.TrimSpace(req.Email),
	})
	switch {
	case errors.Is(err, assess.ErrInvalidAnswers):
		respondFail(w, http.StatusBadRequest, codeValidation, "answers are missing or invalid")
		return
	case errors.Is(err, assess.ErrConflict):
		respondFail(w, http.StatusConflict, codeConflict, "a concurrent identical submission is in progress; retry to fetch it")
		return
	case err != nil:
		s.respondInternalErr(w, r, fmt.Errorf("submit assessment: %w", err))
		return
	}

	if !result.Cached {
		if a, err := s.q.GetAssessmentBySessionID(r.Context(), result.SessionID); err == nil {
			if err := s.worker.Enqueue(r.Context(), a.ID); err != nil {
				s.logger.Warn("enqueue narrative job", "error", err, "assessment_id", a.ID)
			}
		}
	}

	respond(w, http.StatusOK, submitAssessmentResponse{
		OK:        true,
		SessionID: result.SessionID.String(),
		Cached:    result.Cached,
	})
}

// userKey resolves the dedup identity for a request: an authenticated user ID
// from the body, else the anonymous browser token, else a hash of the client
// IP. The raw IP is never stored.
func (s *Server) userKey(r *http.Request, userID string) string {
	if userID = strings.TrimSpace(userID); userID != "" {
		return "user:" + userID
	}
	if token := strings.TrimSpace(r.Header.Get("X-Anon-Token")); token != "" {
		return "anon:" + token
	}
	sum := sha256.Sum256([]byte(r.RemoteAddr))
	return "ip:" + hex.EncodeToString(sum[:16])
}

// ─── GET /api/assessment/:sessionID ──────────────────────────────────────────

// handleGetAssessment serves the stored report. The session UUID is the only
// credential — the link is shared in the delivery email. The AI narrative is
// overlaid when ready; until then the deterministic template text stands.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondFail(w, http.StatusBadRequest, codeValidation, "invalid session_id")
		return
	}

	report, err := s.engine.GetReport(r.Context(), sessionID)
	if errors.Is(err, assess.ErrNotFound) {
		respondFail(w, http.StatusNotFound, codeNotFound, "assessment not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get assessment: %w", err))
		return
	}

	respond(w, http.StatusOK, report)
}
