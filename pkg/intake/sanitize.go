package intake

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from canonical string values before persistence,
// so free-text answers can be rendered verbatim by internal tooling.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer backed by bluemonday's strict policy,
// which removes every HTML element and attribute.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Apply sanitizes payload in place: strings directly, string slices
// element-wise, nested maps recursively. Non-string values pass through.
func (s *Sanitizer) Apply(payload map[string]any) {
	if s == nil || s.policy == nil {
		return
	}
	for key, value := range payload {
		switch v := value.(type) {
		case string:
			payload[key] = s.policy.Sanitize(v)
		case []string:
			for i := range v {
				v[i] = s.policy.Sanitize(v[i])
			}
		case []any:
			for i := range v {
				if str, ok := v[i].(string); ok {
					v[i] = s.policy.Sanitize(str)
				}
			}
		case map[string]any:
			s.Apply(v)
		}
	}
}
