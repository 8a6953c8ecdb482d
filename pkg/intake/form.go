package intake

import (
	"github.com/rmgdri/go-intake/pkg/catalog"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// NormalizeFunc maps a raw payload onto canonical schema keys. It never
// rejects: best-effort transformation plus warnings for anything it could
// not confidently map. Validation afterwards is the sole pass/fail
// authority.
type NormalizeFunc func(raw map[string]any) (canonical map[string]any, warnings []string)

// Form bundles everything the pipeline needs to know about one intake form.
type Form struct {
	// Key is the stable kebab-case form identifier.
	Key string
	// Version is the schema version tag recorded with each submission.
	Version int
	// NormalizationVersion tags the normalizer revision; zero when the form
	// has no normalization stage.
	NormalizationVersion int
	// Catalog drives raw-payload required enforcement. Nil skips the
	// precheck stage.
	Catalog catalog.Catalog
	// Schema validates the canonical payload.
	Schema *schema.Schema
	// Normalize converts raw keys to canonical keys. Nil means the form's
	// raw payload is already canonical.
	Normalize NormalizeFunc
	// HoneypotField names the hidden field bots fill in.
	HoneypotField string
	// RateLimit is the per-client maximum per window for this form's
	// endpoint.
	RateLimit int
	// EmailField, NameFields and PhoneField name canonical keys lifted into
	// the submission's convenience columns.
	EmailField string
	NameFields []string
	PhoneField string
}
