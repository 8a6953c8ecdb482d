// Package sheltertransfer declares the shelter/rescue transfer intake form:
// its field catalog, canonical schema, and pipeline wiring.
package sheltertransfer

import (
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// FormKey is the stable identifier recorded with every submission.
const FormKey = "shelter-transfer"

// Version tags the schema revision stored alongside submissions.
const Version = 1

// Schema keeps every field optional on purpose: the field map is the
// required-enforcement authority while the form is iterated on, and the
// schema stays forward-compatible with catalog additions. It still rejects
// wrong shapes and malformed emails.
var Schema = &schema.Schema{Fields: []schema.FieldRule{
	// Organization Information
	schema.OptString("org_name"),
	schema.OptString("org_street_address"),
	schema.OptString("org_street_address_2"),
	schema.OptString("org_city"),
	schema.OptString("org_state"),
	schema.OptString("org_zip"),

	// Representative Information
	schema.OptString("rep_name"),
	schema.OptEmail("rep_email"),
	schema.OptString("rep_phone"),
	schema.OptString("rep_phone_alt"),

	// Dog Basic Information
	schema.OptString("dog_name"),
	schema.OptString("dog_dob_age"),
	schema.OptString("rescue_deadline"),
	schema.OptString("breed_status"),
	schema.OptString("mix_breed"),
	schema.OptString("dog_color_markings"),
	schema.OptString("dog_weight"),
	schema.OptString("dog_gender"),
	schema.OptString("spayed_neutered"),
	schema.OptString("microchipped"),
	schema.OptString("microchip_number"),
	schema.OptString("ears"),

	// Intake History
	schema.OptString("intake_reason"),
	schema.OptString("time_in_care"),

	// Medical Information
	schema.OptString("vet_evaluated"),
	schema.OptString("vet_name"),
	schema.OptString("vet_address"),
	schema.OptString("vet_phone"),
	schema.OptString("prior_surgeries"),
	schema.OptString("surgery_details"),
	schema.OptString("vaccinations_current"),
	schema.OptString("heartworm_tested"),
	schema.StringArray("medical_conditions"),
	schema.OptString("medical_conditions_other"),
	schema.OptString("medications_special_diet"),
	schema.OptString("medications_details"),

	// Housebreaking & Training
	schema.OptString("housebroken"),
	schema.OptString("accident_frequency"),
	schema.OptString("housebreaking_notes"),
	schema.OptString("crate_trained"),
	schema.OptString("destructive_free_roam"),
	schema.OptString("leash_behavior"),

	// Behavioral Assessment
	schema.OptString("behavioral_eval"),
	schema.OptString("resource_guarding"),
	schema.OptString("aggression_reactivity"),
	schema.StringArray("temperament_traits"),
	schema.OptString("temperament_other"),
	schema.StringArray("play_style"),
	schema.OptString("play_style_other"),

	// Bite History
	schema.OptString("bitten_human"),
	schema.OptString("bitten_human_details"),
	schema.OptString("bitten_animal"),
	schema.OptString("bitten_animal_details"),

	// Compatibility
	schema.OptString("lived_with_dogs"),
	schema.OptString("lived_with_dogs_details"),
	schema.OptString("lived_with_cats"),
	schema.OptString("lived_with_cats_details"),
	schema.OptString("lived_with_children"),
	schema.OptString("lived_with_children_details"),

	// Fears & Quirks
	schema.StringArray("fears"),
	schema.OptString("fears_other"),
	schema.OptString("escape_history"),
	schema.OptString("escape_details"),
	schema.OptString("quirks"),
	schema.OptString("what_they_love"),

	// Additional Resources
	schema.OptString("additional_resources"),

	// Certification & Signature
	schema.OptString("agree_statement"),
	schema.OptString("representative_signature"),
	schema.OptString("signature_date"),
	schema.OptString("signature_dog_name"),
}}

// Form returns the pipeline descriptor for this form.
func Form() intake.Form {
	return intake.Form{
		Key:           FormKey,
		Version:       Version,
		Catalog:       FieldMap,
		Schema:        Schema,
		HoneypotField: "website_url_hp",
		RateLimit:     5,
		EmailField:    "rep_email",
		NameFields:    []string{"rep_name"},
		PhoneField:    "rep_phone",
	}
}
