package intake

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rmgdri/go-intake/pkg/guard"
)

// Pipeline runs one form's intake stages: abuse guard, raw required-field
// precheck, normalization, schema validation, sanitization, persistence.
// The first terminal stage failure short-circuits; no later stage runs.
type Pipeline struct {
	form      Form
	guard     *guard.Guard
	writer    Writer
	sanitizer *Sanitizer
	logger    *zap.Logger
	now       func() time.Time
}

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithGuard injects a pre-built abuse guard, typically so routes can share a
// limiter.
func WithGuard(g *guard.Guard) Option {
	return func(p *Pipeline) {
		p.guard = g
	}
}

// WithWriter injects the submission writer. A nil writer makes every
// accepted submission terminate with StatusNotConfigured.
func WithWriter(w Writer) Option {
	return func(p *Pipeline) {
		p.writer = w
	}
}

// WithSanitizer overrides the markup sanitizer. Pass nil to disable.
func WithSanitizer(s *Sanitizer) Option {
	return func(p *Pipeline) {
		p.sanitizer = s
	}
}

// WithLogger injects a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// New constructs a pipeline for form. Missing dependencies get built-in
// defaults: a guard from the form's honeypot/rate settings, the strict
// sanitizer, a nop logger.
func New(form Form, options ...Option) *Pipeline {
	p := &Pipeline{
		form:      form,
		sanitizer: NewSanitizer(),
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.guard == nil {
		p.guard = guard.New(form.RateLimit, guard.WithHoneypotField(form.HoneypotField))
	}
	return p
}

// Form returns the pipeline's form descriptor.
func (p *Pipeline) Form() Form {
	return p.form
}

// Admit runs the rate-limit stage. Handlers call it before reading the
// request body so malformed floods still count against the window.
func (p *Pipeline) Admit(clientID string) Result {
	d := p.guard.CheckRate(clientID)
	if d.Verdict == guard.RateLimited {
		p.logger.Warn("rate limit exceeded",
			zap.String("form", p.form.Key),
			zap.String("client", clientID),
			zap.Int("retry_after", d.RetryAfter))
		return Result{Status: StatusRateLimited, RetryAfter: d.RetryAfter}
	}
	return Result{Status: StatusAccepted}
}

// Run executes the remaining stages against a parsed raw payload.
func (p *Pipeline) Run(ctx context.Context, clientID string, raw map[string]any) Result {
	if d := p.guard.CheckHoneypot(raw); d.Verdict == guard.SilentAccept {
		p.logger.Info("honeypot tripped, silently accepting",
			zap.String("form", p.form.Key),
			zap.String("client", clientID))
		return Result{Status: StatusSilentlyAccepted}
	}

	if p.form.Catalog != nil {
		if missing := p.form.Catalog.Missing(raw); len(missing) > 0 {
			return Result{
				Status:  StatusMissingRequired,
				Missing: missing,
				Labels:  p.form.Catalog.Labels(),
			}
		}
	}

	canonical := raw
	var warnings []string
	if p.form.Normalize != nil {
		canonical, warnings = p.form.Normalize(raw)
	}

	canonical, issues := p.form.Schema.Validate(canonical)
	if len(issues) > 0 {
		return Result{Status: StatusValidationFailed, Issues: issues, Warnings: warnings}
	}
	if len(warnings) > 0 {
		// Policy: normalization warnings never block an otherwise valid
		// submission; they are logged for follow-up.
		p.logger.Warn("normalization warnings on accepted submission",
			zap.String("form", p.form.Key),
			zap.Strings("warnings", warnings))
	}

	p.sanitizer.Apply(canonical)

	if p.writer == nil {
		return Result{Status: StatusNotConfigured}
	}

	sub := Submission{
		FormKey:              p.form.Key,
		FormVersion:          p.form.Version,
		NormalizationVersion: p.form.NormalizationVersion,
		Canonical:            canonical,
		Raw:                  raw,
		ApplicantName:        p.applicantName(canonical),
		ApplicantEmail:       stringField(canonical, p.form.EmailField),
		ApplicantPhone:       stringField(canonical, p.form.PhoneField),
		ClientID:             clientID,
		SubmittedAt:          p.now().UTC(),
	}
	receipt, err := p.writer.Write(ctx, sub)
	if err != nil {
		p.logger.Error("submission write failed",
			zap.String("form", p.form.Key),
			zap.Error(err))
		return Result{Status: StatusWriteFailed, Err: err}
	}

	p.logger.Info("submission accepted",
		zap.String("form", p.form.Key),
		zap.String("application_id", receipt.ApplicationID),
		zap.String("event_id", receipt.EventID),
		zap.Int("warnings", len(warnings)))
	return Result{Status: StatusAccepted, Receipt: receipt, Warnings: warnings}
}

func (p *Pipeline) applicantName(canonical map[string]any) string {
	parts := make([]string, 0, len(p.form.NameFields))
	for _, key := range p.form.NameFields {
		if v := stringField(canonical, key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func stringField(m map[string]any, key string) string {
	if key == "" {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}
