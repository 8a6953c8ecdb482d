package ownersurrender

import "github.com/rmgdri/go-intake/pkg/schema"

// Schema is the canonical owner-surrender payload contract.
//
// Governance notes:
//   - keys are stable snake_case for storage and events;
//   - strings are trimmed;
//   - multi-select fields are arrays of strings;
//   - dates are accepted as strings (ISO or user-entered) to avoid coercion
//     surprises.
var Schema = &schema.Schema{Fields: []schema.FieldRule{
	// Owner info
	schema.String("owner_first_name"),
	schema.String("owner_last_name"),
	schema.Email("owner_email"),
	schema.String("owner_address_line1"),
	schema.OptString("owner_address_line2"),
	schema.String("owner_city"),
	schema.String("owner_state"),
	schema.String("owner_postal_code"),
	schema.String("owner_contact_phone_primary"),
	schema.OptString("owner_contact_phone_secondary"),

	// Dog basics
	schema.String("dog_name"),
	schema.String("dog_dob_or_age"),
	schema.String("dog_is_great_dane_or_mix"),
	schema.OptString("dog_mix_breed_details"),
	schema.String("dog_weight"),
	schema.String("dog_color"),
	schema.OptString("dog_markings"),
	schema.String("dog_gender"),
	schema.String("dog_spayed_neutered"),
	schema.String("dog_gastropexy_tacked"),
	schema.OptString("dog_microchipped"),

	// Surrender reason/timing
	schema.String("surrender_reason"),
	schema.String("interested_in_resources_to_keep"),
	schema.String("surrender_deadline"),
	schema.OptString("urgency_notes"),
	schema.OptString("attachments_note"),

	// Ownership/history
	schema.String("owned_how_long"),
	schema.String("history_prior_to_owner"),
	schema.String("lived_outside_state"),
	schema.OptString("lived_outside_state_where"),
	schema.String("acquired_from"),
	schema.OptString("breeder_name"),
	schema.OptString("breeder_contact"),

	// Vet care / preventive
	schema.String("seen_vet_annually"),
	schema.String("current_vaccinations"),
	schema.String("on_heartworm_prevention"),
	schema.OptString("spay_neuter_age"),
	schema.String("vet_name"),
	schema.String("vet_office_address"),
	schema.String("vet_office_phone"),
	schema.OptString("multiple_vets_details"),

	// Medical history
	schema.String("required_surgeries"),
	schema.OptString("surgeries_details"),
	schema.StringArray("diagnosed_or_treated_conditions"),
	schema.String("external_abnormalities"),
	schema.OptString("external_abnormalities_details"),
	schema.String("meds_supplements_special_diets"),
	schema.String("current_food_brand"),
	schema.String("feeding_schedule_amount"),
	schema.String("other_medical_notes"),

	// Behavior / temperament
	schema.StringArray("personality_traits"),
	schema.String("anxiety_present"),
	schema.StringArray("play_preferences"),
	schema.OptString("favorite_toys_activities"),
	schema.String("energy_level"),
	schema.String("exercise_routine"),
	schema.OptString("temperament_notes"),

	// Training / handling
	schema.String("leash_behavior"),
	schema.OptString("collar_type"),
	schema.StringArray("training_types"),
	schema.StringArray("basic_commands"),
	schema.OptString("knows_tricks"),

	// Household / environment
	schema.String("household_description"),
	schema.StringArray("home_access_areas"),
	schema.StringArray("where_dog_spends_time"),
	schema.String("yard_fenced"),
	schema.OptString("yard_not_fenced_management"),
	schema.String("repeated_escapes"),
	schema.OptString("escape_how"),
	schema.String("crate_trained"),
	schema.String("destructive_if_left_alone"),
	schema.String("where_left_when_alone"),
	schema.String("hours_unsupervised_per_day"),
	schema.String("sleeping_location"),
	schema.String("people_ages_in_home"),
	schema.String("comfort_with"),

	// Kids / other animals
	schema.String("around_children_regularly"),
	schema.String("children_experience_positive"),
	schema.OptString("children_experience_negative_details"),
	schema.String("exposed_to_other_dogs"),
	schema.String("exposed_to_cats"),
	schema.OptString("cats_interaction"),
	schema.String("bitten_another_animal"),
	schema.OptString("bite_animal_details"),

	// Fears / habits
	schema.StringArray("frightened_by"),
	schema.String("housetrained"),
	schema.String("accidents_frequency"),
	schema.String("chase_behavior"),
	schema.String("barker"),
	schema.OptString("barking_details"),

	// Reactivity/aggression
	schema.StringArray("gets_along_with_other_animals"),
	schema.OptString("animals_not_along_with"),
	schema.String("leash_lunge_dogs"),
	schema.String("leash_lunge_people"),
	schema.OptString("lunge_is_play"),
	schema.String("overprotective"),
	schema.String("tried_to_attack_or_bite_person_or_animal"),
	schema.OptString("attack_bite_details"),

	// Wrap-up
	schema.String("dislikes_habits"),
	schema.String("other_notes_for_success"),
	schema.String("something_you_love"),
	schema.String("heard_about_rmgdri"),

	// Certifications/signature
	schema.String("print_dog_name_cert"),
	schema.String("certify_lawful_owner"),
	schema.String("certify_over_18"),
	schema.String("certify_accept_surrender_agreement"),
	schema.OptString("surrendering_owner_signature"),
	schema.String("release_email_to_new_owner"),
	schema.String("todays_date"),
	schema.String("certify_email_communication_ack"),
}}
