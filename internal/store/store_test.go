package store_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/wellora/assessment-backend/internal/db"
	"github.com/wellora/assessment-backend/internal/store"
)

// ─── TEST INFRASTRUCTURE ──────────────────────────────────────────────────────

// openTestDB returns a *sql.DB from DATABASE_URL. Skips if the env var is
// not set so the test suite still passes in CI without a Postgres instance.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set — skipping store integration tests")
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := pool.PingContext(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

// cleanupUser deletes everything written for a test user key.
func cleanupUser(t *testing.T, pool *sql.DB, userKey string) {
	t.Helper()
	ctx := context.Background()
	t.Cleanup(func() {
		_, _ = pool.ExecContext(ctx, "DELETE FROM assessments WHERE user_key=$1", userKey)
		_, _ = pool.ExecContext(ctx, "DELETE FROM submissions WHERE user_key=$1", userKey)
	})
}

func testParams(t *testing.T, userKey string) store.CreateAssessmentParams {
	t.Helper()
	answers, _ := json.Marshal(map[string]string{"age": "45", "smoke": "No"})
	report, _ := json.Marshal(map[string]string{"riskScore": "100"})
	return store.CreateAssessmentParams{
		SessionID:           uuid.New(),
		UserKey:             userKey,
		ContentHash:         "hash_" + t.Name(),
		RiskCategory:        "moderate",
		UserProfile:         "premenopausal",
		TotalHealthScore:    72,
		ControllableScore:   68,
		UncontrollableScore: 76,
		AnswersJSON:         answers,
		ReportJSON:          report,
	}
}

// ─── CreateAssessment ─────────────────────────────────────────────────────────

func TestCreateAssessment_FirstCallSucceeds(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	userKey := "user_first_" + t.Name()
	cleanupUser(t, pool, userKey)

	created, err := st.CreateAssessment(ctx, testParams(t, userKey))
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	if created.RiskCategory != "moderate" {
		t.Errorf("risk category: got %q", created.RiskCategory)
	}
	if created.NarrativeStatus != db.NarrativeStatusPending {
		t.Errorf("expected narrative_status=pending, got %s", created.NarrativeStatus)
	}
	if !created.ReportJson.Valid {
		t.Error("expected report_json to be set")
	}

	// The guard row must exist alongside the assessment.
	sub, err := q.GetSubmissionByUserAndHash(ctx, db.GetSubmissionByUserAndHashParams{
		UserKey:     userKey,
		ContentHash: "hash_" + t.Name(),
	})
	if err != nil {
		t.Fatalf("GetSubmissionByUserAndHash: %v", err)
	}
	if sub.SessionID != created.SessionID {
		t.Error("submission session ID mismatch")
	}
}

func TestCreateAssessment_DuplicateHashReturnsErrDuplicateSubmission(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	userKey := "user_dup_" + t.Name()
	cleanupUser(t, pool, userKey)

	params := testParams(t, userKey)
	if _, err := st.CreateAssessment(ctx, params); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Same user, same content hash, new session ID — must be rejected.
	params.SessionID = uuid.New()
	_, err := st.CreateAssessment(ctx, params)
	if !errors.Is(err, store.ErrDuplicateSubmission) {
		t.Errorf("expected ErrDuplicateSubmission, got: %v", err)
	}

	// The rejected transaction must not leave a second assessment behind.
	var count int
	if err := pool.QueryRowContext(ctx, "SELECT count(*) FROM assessments WHERE user_key=$1", userKey).Scan(&count); err != nil {
		t.Fatalf("count assessments: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 assessment, got %d", count)
	}
}

func TestCreateAssessment_DifferentHashCreatesSecondAssessment(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	userKey := "user_two_" + t.Name()
	cleanupUser(t, pool, userKey)

	first := testParams(t, userKey)
	if _, err := st.CreateAssessment(ctx, first); err != nil {
		t.Fatalf("first call: %v", err)
	}

	second := testParams(t, userKey)
	second.SessionID = uuid.New()
	second.ContentHash = first.ContentHash + "_changed"
	if _, err := st.CreateAssessment(ctx, second); err != nil {
		t.Fatalf("second call with new hash: %v", err)
	}
}

// ─── Narrative lifecycle ──────────────────────────────────────────────────────

func TestSetNarrative_MarksReady(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	userKey := "user_narr_" + t.Name()
	cleanupUser(t, pool, userKey)

	created, err := st.CreateAssessment(ctx, testParams(t, userKey))
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}

	narrative := []byte(`{"summary":"A calm, personalised overview."}`)
	report := []byte(`{"riskScore":"100","narrative":true}`)
	if err := st.SetNarrative(ctx, created.ID, narrative, report); err != nil {
		t.Fatalf("SetNarrative: %v", err)
	}

	updated, err := q.GetAssessmentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAssessmentByID: %v", err)
	}
	if updated.NarrativeStatus != db.NarrativeStatusReady {
		t.Errorf("expected narrative_status=ready, got %s", updated.NarrativeStatus)
	}
	if !updated.NarrativeJson.Valid {
		t.Error("expected narrative_json to be set")
	}
}

func TestMarkNarrativeFailed_SetsStatus(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	userKey := "user_nfail_" + t.Name()
	cleanupUser(t, pool, userKey)

	created, err := st.CreateAssessment(ctx, testParams(t, userKey))
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}

	if err := st.MarkNarrativeFailed(ctx, created.ID); err != nil {
		t.Fatalf("MarkNarrativeFailed: %v", err)
	}

	updated, err := q.GetAssessmentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAssessmentByID: %v", err)
	}
	if updated.NarrativeStatus != db.NarrativeStatusFailed {
		t.Errorf("expected narrative_status=failed, got %s", updated.NarrativeStatus)
	}
}
