// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation.
package email

import "context"

// ReportReadyParams holds the data needed to send the report delivery email.
type ReportReadyParams struct {
	To        string // recipient email address
	SessionID string // inserted into the report URL
}

// Sender is the interface the worker uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendReportReady sends the "your assessment is ready" email with the
	// report link. Called by the worker after the narrative is attached (or
	// skipped), for assessments that carry a recipient address.
	SendReportReady(ctx context.Context, p ReportReadyParams) error
}

// noopSender drops all email. Used when no RESEND_API_KEY is configured so
// the rest of the pipeline never has to nil-check the Sender.
type noopSender struct{}

// NewNoopSender returns a Sender that silently discards everything.
func NewNoopSender() Sender {
	return noopSender{}
}

func (noopSender) SendReportReady(context.Context, ReportReadyParams) error {
	return nil
}
