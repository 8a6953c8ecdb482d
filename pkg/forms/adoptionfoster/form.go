// Package adoptionfoster declares the adoption / foster application form:
// its field catalog, canonical schema, and pipeline wiring.
package adoptionfoster

import (
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// FormKey is the stable identifier recorded with every submission.
const FormKey = "adopt-foster"

// Version tags the schema revision stored alongside submissions.
const Version = 1

// Schema is the canonical adoption / foster payload contract. Keys are
// stable snake_case for storage and events. The UI posts canonical keys
// directly, so no normalizer is needed here.
var Schema = &schema.Schema{Fields: []schema.FieldRule{
	// Application type
	schema.Enum("application_type", "adopt", "foster", "both"),

	// Acknowledgements
	schema.Enum("ack_application_fee", "yes", "no"),
	schema.Enum("ack_adoption_fee", "yes", "no"),
	schema.Enum("ack_wait_time", "yes", "no"),
	schema.Enum("ack_behavioral_work", "yes", "no"),
	schema.Enum("ack_dane_capabilities", "yes", "no"),
	schema.Enum("ack_transparency", "yes", "no"),

	// Applicant info
	schema.String("applicant_first_name"),
	schema.String("applicant_last_name"),
	schema.OptString("spouse_first_name"),
	schema.OptString("spouse_last_name"),
	schema.String("address_street"),
	schema.OptString("address_street2"),
	schema.String("address_city"),
	schema.String("address_state"),
	schema.String("address_zip"),
	schema.String("phone_primary"),
	schema.OptString("phone_additional"),
	schema.String("email"),

	// Home info
	schema.String("home_type"),
	schema.String("own_or_rent"),
	schema.OptString("landlord_name"),
	schema.OptString("landlord_phone"),
	schema.OptString("landlord_letter"),

	// How heard / breed experience
	schema.OptString("how_heard_about_us"),
	schema.Enum("owned_great_dane_before", "yes", "no"),
	schema.OptString("owned_giant_breed"),
	schema.OptString("giant_breed_details"),
	schema.OptString("dane_experience_if_none"),
	schema.String("dane_knowledge"),
	schema.String("why_interested_in_dane"),

	// Daily life
	schema.String("daily_life_with_dane"),
	schema.String("vacation_pet_care"),
	schema.Enum("aware_kenneling_expensive", "yes", "no"),

	// Household members
	schema.String("household_member_1_name"),
	schema.String("household_member_1_age"),
	schema.String("household_member_1_relationship"),
	schema.OptString("household_member_2_name"),
	schema.OptString("household_member_2_age"),
	schema.OptString("household_member_2_relationship"),
	schema.OptString("household_member_3_name"),
	schema.OptString("household_member_3_age"),
	schema.OptString("household_member_3_relationship"),
	schema.OptString("household_member_4_name"),
	schema.OptString("household_member_4_age"),
	schema.OptString("household_member_4_relationship"),
	schema.OptString("household_member_5_name"),
	schema.OptString("household_member_5_age"),
	schema.OptString("household_member_5_relationship"),
	schema.OptString("additional_household_members"),

	// Children / guests exposure
	schema.OptString("exposed_to_guests_children"),
	schema.OptString("children_ages_outside_family"),

	// Allergies
	schema.Enum("allergies_in_household", "yes", "no"),
	schema.OptString("allergies_handling"),

	// Behavioral preferences
	schema.String("unwilling_behaviors"),
	schema.OptString("age_gender_preferences"),
	schema.String("willing_bite_history"),
	schema.Enum("all_members_want_dane", "yes", "no"),
	schema.Enum("hesitations_concerns", "yes", "no"),
	schema.OptString("hesitations_details"),

	// Daily schedule
	schema.String("hours_alone_per_day"),
	schema.Enum("anyone_home_during_day", "yes", "no"),
	schema.String("where_dog_stays_when_alone"),
	schema.OptString("leave_dog_outside_alone"),

	// Crate
	schema.Enum("crated_before", "yes", "no"),
	schema.Enum("own_dane_sized_crate", "yes", "no"),
	schema.OptString("plan_to_crate"),

	// Training / exercise
	schema.String("collar_leash_type"),
	schema.String("exercise_plan"),

	// Current pets
	schema.OptString("pet_1_name"),
	schema.OptString("pet_1_type"),
	schema.OptString("pet_1_breed"),
	schema.OptString("pet_1_gender"),
	schema.OptString("pet_1_altered"),
	schema.OptString("pet_1_age"),
	schema.OptString("pet_1_temperament"),
	schema.OptString("pet_2_name"),
	schema.OptString("pet_2_type"),
	schema.OptString("pet_2_breed"),
	schema.OptString("pet_2_gender"),
	schema.OptString("pet_2_altered"),
	schema.OptString("pet_2_age"),
	schema.OptString("pet_2_temperament"),
	schema.OptString("pet_3_name"),
	schema.OptString("pet_3_type"),
	schema.OptString("pet_3_breed"),
	schema.OptString("pet_3_gender"),
	schema.OptString("pet_3_altered"),
	schema.OptString("pet_3_age"),
	schema.OptString("pet_3_temperament"),
	schema.OptString("additional_pets"),

	// Vet info
	schema.String("vet_name"),
	schema.String("vet_phone"),
	schema.OptString("vet_address"),

	// Past pet history
	schema.OptString("past_pet_not_kept"),
	schema.OptString("past_pet_reason"),
	schema.OptString("past_pet_surrendered_to_rescue"),

	// Yard / fencing
	schema.Enum("yard_fenced", "yes", "no"),
	schema.OptString("fence_type"),
	schema.OptString("fence_height"),
	schema.OptString("no_fence_exercise_plan"),

	// Specific dog interest
	schema.OptString("specific_dog_interest"),
	schema.OptString("why_this_dog"),

	// Foster-specific questions
	schema.OptString("foster_experience"),
	schema.OptString("foster_duration_comfortable"),
	schema.OptString("foster_willing_to_transport"),

	// References
	schema.String("reference_1_name"),
	schema.String("reference_1_phone"),
	schema.String("reference_1_relationship"),
	schema.OptString("reference_2_name"),
	schema.OptString("reference_2_phone"),
	schema.OptString("reference_2_relationship"),
	schema.OptString("reference_3_name"),
	schema.OptString("reference_3_phone"),
	schema.OptString("reference_3_relationship"),

	// Agreement / signature
	schema.Enum("certify_info_true", "yes"),
	schema.Enum("certify_over_21", "yes"),
	schema.String("electronic_signature"),
	schema.OptString("todays_date"),

	// Additional notes
	schema.OptString("additional_notes"),
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
		EmailField:    "email",
		NameFields:    []string{"applicant_first_name", "applicant_last_name"},
		PhoneField:    "phone_primary",
	}
}
