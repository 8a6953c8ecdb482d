// Package general declares the lightweight shared intake endpoint used for
// contact-style submissions. Unlike the long-form applications it has no
// field catalog: the payload is discriminated by a type field, with a small
// allowlisted sub-schema per type and everything else carried through.
package general

import (
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// Version tags the schema revision stored alongside submissions.
const Version = 1

// RateLimit is shared across every type on this endpoint.
const RateLimit = 6

// HoneypotField must be empty or absent on legitimate submissions.
const HoneypotField = "website"

// Types is the closed set of intake types this endpoint accepts.
var Types = []string{"adopt", "foster", "volunteer", "surrender", "contact"}

// payloadSchemas holds the per-type allowlist for the nested payload object.
// Numeric and boolean extras (household_size, has_other_pets) are not
// declared and pass through as unknown keys.
var payloadSchemas = map[string]*schema.Schema{
	"adopt": {Fields: []schema.FieldRule{
		schema.OptString("city"),
		schema.OptString("state"),
		schema.OptString("message"),
	}},
	"foster": {Fields: []schema.FieldRule{
		schema.OptEnum("experience_level", "none", "some", "experienced"),
		schema.OptString("city"),
		schema.OptString("state"),
		schema.OptString("message"),
	}},
	"volunteer": {Fields: []schema.FieldRule{
		schema.StringArray("interests"),
		schema.OptString("city"),
		schema.OptString("state"),
		schema.OptString("message"),
	}},
	"surrender": {Fields: []schema.FieldRule{
		schema.OptString("dog_name"),
		schema.OptEnum("urgency", "low", "medium", "high"),
		schema.OptString("city"),
		schema.OptString("state"),
		schema.OptString("message"),
	}},
	"contact": {Fields: []schema.FieldRule{
		schema.OptString("topic"),
		{Key: "message", Kind: schema.KindString, Required: true, MaxLen: 5000},
	}},
}

// baseFields are shared across every type. The honeypot field is declared
// optional so its presence never fails validation; the pipeline inspects it
// separately.
func baseFields(formType string) []schema.FieldRule {
	return []schema.FieldRule{
		schema.Enum("type", formType),
		schema.OptString(HoneypotField),
		{Key: "name", Kind: schema.KindString, MaxLen: 120},
		schema.OptEmail("email"),
		{Key: "phone", Kind: schema.KindString, MaxLen: 40},
	}
}

// Schema returns the full validation schema for one intake type, or nil for
// an unknown type.
func Schema(formType string) *schema.Schema {
	payload, ok := payloadSchemas[formType]
	if !ok {
		return nil
	}
	fields := baseFields(formType)
	// The contact payload carries the only required sub-field, so the
	// payload object itself is required there.
	fields = append(fields, schema.Object("payload", payload, formType == "contact"))
	return &schema.Schema{Fields: fields}
}

// Form returns the pipeline descriptor for one intake type, or false for an
// unknown type. Each type validates against its own sub-schema but all types
// share this endpoint's honeypot and rate limit.
func Form(formType string) (intake.Form, bool) {
	s := Schema(formType)
	if s == nil {
		return intake.Form{}, false
	}
	return intake.Form{
		Key:           "general-" + formType,
		Version:       Version,
		Schema:        s,
		HoneypotField: HoneypotField,
		RateLimit:     RateLimit,
		EmailField:    "email",
		NameFields:    []string{"name"},
		PhoneField:    "phone",
	}, true
}
