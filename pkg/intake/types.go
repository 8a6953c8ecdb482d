package intake

import (
	"context"
	"time"

	"github.com/rmgdri/go-intake/pkg/schema"
)

// Submission is the accepted record handed to a Writer. Canonical is the
// validated payload; Raw is the client's original payload kept alongside it
// for auditability.
type Submission struct {
	FormKey              string
	FormVersion          int
	NormalizationVersion int
	Canonical            map[string]any
	Raw                  map[string]any
	ApplicantName        string
	ApplicantEmail       string
	ApplicantPhone       string
	ClientID             string
	SubmittedAt          time.Time
}

// Receipt identifies the persisted record and its audit event.
type Receipt struct {
	ApplicationID string
	EventID       string
}

// Writer persists an accepted submission together with one audit event
// recording the none→submitted transition. Implementations must not leave a
// record without its audit event.
type Writer interface {
	Write(ctx context.Context, sub Submission) (Receipt, error)
}

// Status enumerates pipeline outcomes.
type Status int

const (
	// StatusAccepted means the submission was validated and persisted.
	StatusAccepted Status = iota
	// StatusSilentlyAccepted means the honeypot tripped; respond as success,
	// persist nothing.
	StatusSilentlyAccepted
	// StatusRateLimited means the client exceeded its window budget.
	StatusRateLimited
	// StatusMissingRequired means catalog-required raw keys were absent.
	StatusMissingRequired
	// StatusValidationFailed means the canonical payload failed the schema.
	StatusValidationFailed
	// StatusWriteFailed means persistence failed after validation passed.
	StatusWriteFailed
	// StatusNotConfigured means no Writer is wired (e.g. database
	// credentials absent at request time).
	StatusNotConfigured
)

// Result is the terminal outcome of one pipeline run.
type Result struct {
	Status     Status
	Receipt    Receipt
	RetryAfter int
	Missing    []string
	Labels     map[string]string
	Issues     []schema.Issue
	Warnings   []string
	Err        error
}
