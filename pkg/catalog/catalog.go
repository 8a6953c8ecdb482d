package catalog

import "strings"

// FieldType is the closed set of input kinds a catalog field can declare.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeSelect        FieldType = "select"
	FieldTypeRadio         FieldType = "radio"
	FieldTypeEmail         FieldType = "email"
	FieldTypeCheckboxGroup FieldType = "checkbox-group"
)

// Field is a single declarative entry in a form's catalog. Catalogs drive
// both UI rendering and raw-payload required enforcement, so keys here are
// the keys the client actually posts, which for migrated forms may differ
// from the canonical schema keys.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Type        FieldType `json:"type"`
	Section     string    `json:"section,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// Catalog is the ordered field list for one form. Authored once, immutable
// at runtime.
type Catalog []Field

// Lookup returns the field for key and whether it exists.
func (c Catalog) Lookup(key string) (Field, bool) {
	for _, f := range c {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Required returns the subset of fields marked required, in catalog order.
func (c Catalog) Required() []Field {
	out := make([]Field, 0, len(c))
	for _, f := range c {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Labels returns a key→label map covering every catalog entry. Handlers
// attach it to missing-field rejections so clients can render human-readable
// errors without a second catalog copy.
func (c Catalog) Labels() map[string]string {
	out := make(map[string]string, len(c))
	for _, f := range c {
		out[f.Key] = f.Label
	}
	return out
}

// Sections returns the unique section names in first-appearance order.
func (c Catalog) Sections() []string {
	seen := make(map[string]struct{}, len(c))
	out := make([]string, 0, len(c))
	for _, f := range c {
		if f.Section == "" {
			continue
		}
		if _, ok := seen[f.Section]; ok {
			continue
		}
		seen[f.Section] = struct{}{}
		out = append(out, f.Section)
	}
	return out
}

// Missing computes the required catalog keys whose raw-payload value is
// absent, nil, empty after string coercion and trimming, or an empty array
// for checkbox-group fields. The full list is returned in catalog order;
// there is no first-error short circuit.
//
// This check runs against the raw payload on purpose: it reflects what the
// UI collected, independent of canonical schema typing.
func (c Catalog) Missing(raw map[string]any) []string {
	var missing []string
	for _, f := range c {
		if !f.Required {
			continue
		}
		if isBlank(raw[f.Key]) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}
