package guard

import (
	"net/http"
	"strings"
)

// Verdict is the outcome of the pre-validation abuse checks.
type Verdict int

const (
	// Allow lets the request continue into validation.
	Allow Verdict = iota
	// RateLimited rejects the request with a retry-after hint.
	RateLimited
	// SilentAccept means the honeypot tripped: the caller must answer with a
	// success-shaped response and do nothing else, so automated submitters
	// cannot tell rejection from acceptance.
	SilentAccept
)

// Decision carries the verdict plus the Retry-After seconds for RateLimited.
type Decision struct {
	Verdict    Verdict
	RetryAfter int
}

// Guard bundles the per-endpoint abuse checks: a fixed-window rate limiter
// and a honeypot field inspection.
type Guard struct {
	limiter       *Limiter
	honeypotField string
}

// GuardOption customises a Guard.
type GuardOption func(*Guard)

// WithHoneypotField sets the hidden field name legitimate clients leave
// empty. An empty name disables the honeypot check.
func WithHoneypotField(name string) GuardOption {
	return func(g *Guard) {
		g.honeypotField = name
	}
}

// WithLimiter injects a pre-built limiter, typically shared between routes
// that should count against the same budget.
func WithLimiter(l *Limiter) GuardOption {
	return func(g *Guard) {
		g.limiter = l
	}
}

// New returns a Guard limiting each client to max requests per window.
func New(max int, opts ...GuardOption) *Guard {
	g := &Guard{limiter: NewLimiter(max)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// CheckRate records one request for clientID against the limiter.
func (g *Guard) CheckRate(clientID string) Decision {
	if g == nil || g.limiter == nil {
		return Decision{Verdict: Allow}
	}
	retryAfter, ok := g.limiter.Allow(clientID)
	if !ok {
		return Decision{Verdict: RateLimited, RetryAfter: retryAfter}
	}
	return Decision{Verdict: Allow}
}

// CheckHoneypot inspects the parsed payload for a populated honeypot field.
// The field counts as tripped only when it is a string that is non-empty
// after trimming: an explicitly empty value is what real clients send.
func (g *Guard) CheckHoneypot(payload map[string]any) Decision {
	if g == nil || g.honeypotField == "" {
		return Decision{Verdict: Allow}
	}
	v, ok := payload[g.honeypotField]
	if !ok {
		return Decision{Verdict: Allow}
	}
	s, ok := v.(string)
	if !ok {
		return Decision{Verdict: Allow}
	}
	if strings.TrimSpace(s) != "" {
		return Decision{Verdict: SilentAccept}
	}
	return Decision{Verdict: Allow}
}

// HoneypotField reports the configured honeypot field name.
func (g *Guard) HoneypotField() string {
	if g == nil {
		return ""
	}
	return g.honeypotField
}

// ClientID derives the rate-limit identifier for a request: the first entry
// of X-Forwarded-For, else X-Real-IP, else the literal "unknown".
func ClientID(r *http.Request) string {
	if r == nil {
		return "unknown"
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			if trimmed := strings.TrimSpace(first); trimmed != "" {
				return trimmed
			}
		}
	}
	if xrip := strings.TrimSpace(r.Header.Get("X-Real-IP")); xrip != "" {
		return xrip
	}
	return "unknown"
}
