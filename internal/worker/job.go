package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wellora/assessment-backend/internal/ai"
	"github.com/wellora/assessment-backend/internal/db"
	"github.com/wellora/assessment-backend/internal/email"
	"github.com/wellora/assessment-backend/internal/scoring"
	"github.com/wellora/assessment-backend/internal/store"
)

// Job holds the dependencies for the narrative pipeline.
type Job struct {
	q        db.Querier
	store    *store.Store
	narrator ai.Narrator
	mailer   email.Sender
	logger   *slog.Logger
}

// NewJob constructs a Job with all required dependencies. narrator may be nil
// when no AI provider is configured; affected assessments are marked skipped
// and the template report stands.
func NewJob(
	q db.Querier,
	st *store.Store,
	narrator ai.Narrator,
	mailer email.Sender,
	logger *slog.Logger,
) *Job {
	return &Job{
		q:        q,
		store:    st,
		narrator: narrator,
		mailer:   mailer,
		logger:   logger,
	}
}

// Run executes the narrative pipeline for a single assessment:
//
//  1. Load the stored assessment and its report snapshot.
//  2. Call the AI to generate the narrative from the scored sections.
//  3. Overlay the narrative onto the report and persist both atomically.
//  4. Send the delivery email when the assessment carries an address.
//
// The deterministic report was already stored at submission time, so every
// failure mode here degrades gracefully: a missing or failed narrative leaves
// the template text in place.
func (j *Job) Run(ctx context.Context, assessmentID uuid.UUID) error {
	log := j.logger.With("assessment_id", assessmentID)
	log.Info("job: starting")

	// ── 1. Load the assessment ────────────────────────────────────────────────
	assessment, err := j.q.GetAssessmentByID(ctx, assessmentID)
	if err != nil {
		return fmt.Errorf("job: get assessment: %w", err)
	}

	if assessment.NarrativeStatus != db.NarrativeStatusPending {
		log.Debug("job: narrative already resolved", "status", assessment.NarrativeStatus)
		return nil
	}

	if j.narrator == nil {
		log.Info("job: no AI provider configured, keeping template narrative")
		if err := j.store.MarkNarrativeSkipped(ctx, assessmentID); err != nil {
			return err
		}
		j.sendDeliveryEmail(ctx, assessment, log)
		return nil
	}

	if !assessment.ReportJson.Valid {
		return fmt.Errorf("job: assessment %s has no report snapshot", assessmentID)
	}

	var report scoring.Report
	if err := json.Unmarshal(assessment.ReportJson.RawMessage, &report); err != nil {
		return fmt.Errorf("job: decode report snapshot: %w", err)
	}

	// ── 2. Generate the narrative ─────────────────────────────────────────────
	sections := make([]scoring.DomainScore, 0, len(report.ReportData.SectionAnalysis.SectionBreakdown))
	for _, s := range report.ReportData.SectionAnalysis.SectionBreakdown {
		sections = append(sections, scoring.DomainScore{
			Domain:      scoring.Domain(s.Name),
			Score:       s.Score,
			RiskLevel:   s.RiskLevel,
			FactorCount: len(s.Factors),
			RiskFactors: s.Factors,
		})
	}

	narrative, err := j.narrator.GenerateNarrative(ctx, ai.NarrativeInput{
		RiskCategory: assessment.RiskCategory,
		UserProfile:  assessment.UserProfile,
		Sections:     sections,
	})
	if err != nil {
		return fmt.Errorf("job: generate narrative: %w", err)
	}

	log.Debug("job: narrative generated", "sections", len(narrative.Sections))

	// ── 3. Overlay and persist ────────────────────────────────────────────────
	scoring.ApplyNarrative(&report, &narrative)

	narrativeJSON, err := json.Marshal(narrative)
	if err != nil {
		return fmt.Errorf("job: marshal narrative: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("job: marshal report: %w", err)
	}

	if err := j.store.SetNarrative(ctx, assessmentID, narrativeJSON, reportJSON); err != nil {
		return fmt.Errorf("job: persist narrative: %w", err)
	}

	log.Info("job: narrative persisted")

	// ── 4. Send delivery email ────────────────────────────────────────────────
	j.sendDeliveryEmail(ctx, assessment, log)
	return nil
}

// sendDeliveryEmail sends the report-ready notification when the assessment
// carries an address. Failures are logged, never returned — the report is
// accessible via the session link regardless of email delivery.
func (j *Job) sendDeliveryEmail(ctx context.Context, assessment db.Assessment, log *slog.Logger) {
	if assessment.Email == "" {
		log.Debug("job: assessment has no email address, skipping delivery email")
		return
	}

	if err := j.mailer.SendReportReady(ctx, email.ReportReadyParams{
		To:        assessment.Email,
		SessionID: assessment.SessionID.String(),
	}); err != nil {
		log.Error("job: failed to send report email",
			"to", assessment.Email,
			"error", err,
		)
	}
}
