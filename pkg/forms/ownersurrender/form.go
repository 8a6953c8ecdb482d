// Package ownersurrender declares the owner surrender intake form: the
// hyphenated raw field catalog the UI posts, the canonical snake_case
// schema, and the normalizer that translates between the two.
//
// This form is mid-migration between naming conventions, which is why
// requiredness is enforced twice: once against the raw catalog keys (what
// the UI actually collected) and once structurally against the canonical
// schema. The two checks are independent on purpose.
package ownersurrender

import "github.com/rmgdri/go-intake/pkg/intake"

// FormKey is the stable identifier recorded with every submission.
const FormKey = "owner-surrender"

// Version tags the schema revision stored alongside submissions.
const Version = 1

// Form returns the pipeline descriptor for this form.
func Form() intake.Form {
	return intake.Form{
		Key:                  FormKey,
		Version:              Version,
		NormalizationVersion: NormalizationVersion,
		Catalog:              FieldMap,
		Schema:               Schema,
		Normalize:            Normalize,
		HoneypotField:        "website",
		RateLimit:            6,
		EmailField:           "owner_email",
		NameFields:           []string{"owner_first_name", "owner_last_name"},
		PhoneField:           "owner_contact_phone_primary",
	}
}
