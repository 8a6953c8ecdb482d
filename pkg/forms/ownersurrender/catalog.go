package ownersurrender

import "github.com/rmgdri/go-intake/pkg/catalog"

// FieldMap is the raw-side catalog for the owner surrender form. Keys are
// the hyphenated names the current UI posts (carried over from the hosted
// questionnaire the form replaced); the canonical schema uses snake_case.
// The normalizer owns the translation between the two.
var FieldMap = catalog.Catalog{
	// Owner Information
	{Key: "owner-name", Label: "Your Full Name", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-email", Label: "Email Address", Required: true, Type: catalog.FieldTypeEmail, Section: "Owner Information", Placeholder: "example@example.com"},
	{Key: "owner-phone-primary", Label: "Primary Phone Number", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-phone-secondary", Label: "Secondary Phone Number", Required: false, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-address", Label: "Street Address", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-address-2", Label: "Street Address Line 2", Required: false, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-city", Label: "City", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-state", Label: "State", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},
	{Key: "owner-zip", Label: "Postal / Zip Code", Required: true, Type: catalog.FieldTypeText, Section: "Owner Information"},

	// Dog Basics
	{Key: "dog-name", Label: "Dog's Name", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-age", Label: "Dog's DOB or Approximate Age", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-breed-type", Label: "Is the dog a purebred Great Dane or a Great Dane Mix?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basics", Options: []string{"Great Dane", "Great Dane Mix"}},
	{Key: "dog-mix-details", Label: "If a mix, what breed is the dog mixed with?", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-weight", Label: "Dog's Current Weight", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-color", Label: "Dog's Color", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-markings", Label: "Dog's Markings", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basics"},
	{Key: "dog-sex", Label: "Gender", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basics", Options: []string{"male", "female"}},
	{Key: "dog-altered", Label: "Is the dog spayed or neutered?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basics", Options: []string{"yes", "no", "unknown"}},
	{Key: "dog-gastropexied", Label: "Has the dog had a gastropexy (stomach tack)?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basics", Options: []string{"yes", "no", "unknown"}},
	{Key: "dog-microchipped", Label: "Is the dog microchipped?", Required: false, Type: catalog.FieldTypeRadio, Section: "Dog Basics", Options: []string{"yes", "no", "unknown"}},

	// Surrender Details
	{Key: "surrender-reason", Label: "Why are you surrendering your dog?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Surrender Details"},
	{Key: "keep-resources-interest", Label: "Would resources or support help you keep your dog?", Required: true, Type: catalog.FieldTypeRadio, Section: "Surrender Details", Options: []string{"yes", "no"}},
	{Key: "surrender-deadline", Label: "When does the dog need to be out of your home?", Required: true, Type: catalog.FieldTypeText, Section: "Surrender Details"},
	{Key: "urgency-notes", Label: "Anything we should know about the timeline?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Surrender Details"},

	// Ownership History
	{Key: "ownership-duration", Label: "How long have you owned the dog?", Required: true, Type: catalog.FieldTypeText, Section: "Ownership History"},
	{Key: "prior-history", Label: "What do you know about the dog's history before you?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Ownership History"},
	{Key: "other-states", Label: "Has the dog lived outside this state?", Required: true, Type: catalog.FieldTypeRadio, Section: "Ownership History", Options: []string{"yes", "no"}},
	{Key: "other-states-where", Label: "If yes, where?", Required: false, Type: catalog.FieldTypeText, Section: "Ownership History"},
	{Key: "acquisition-source", Label: "Where did you acquire the dog?", Required: true, Type: catalog.FieldTypeText, Section: "Ownership History"},
	{Key: "breeder-name", Label: "Breeder's Name (if from a breeder)", Required: false, Type: catalog.FieldTypeText, Section: "Ownership History"},
	{Key: "breeder-contact", Label: "Breeder's Contact Information", Required: false, Type: catalog.FieldTypeText, Section: "Ownership History"},

	// Veterinary Care
	{Key: "vet-yearly", Label: "Does the dog see a veterinarian annually?", Required: true, Type: catalog.FieldTypeRadio, Section: "Veterinary Care", Options: []string{"yes", "no"}},
	{Key: "vaccinations-current", Label: "Is the dog current on vaccinations?", Required: true, Type: catalog.FieldTypeRadio, Section: "Veterinary Care", Options: []string{"yes", "no", "unknown"}},
	{Key: "heartworm-prevention", Label: "Is the dog on heartworm prevention?", Required: true, Type: catalog.FieldTypeRadio, Section: "Veterinary Care", Options: []string{"yes", "no", "unknown"}},
	{Key: "vet-name", Label: "Veterinarian's Name", Required: true, Type: catalog.FieldTypeText, Section: "Veterinary Care"},
	{Key: "vet-address", Label: "Veterinary Office Address", Required: true, Type: catalog.FieldTypeText, Section: "Veterinary Care"},
	{Key: "vet-phone", Label: "Veterinary Office Phone", Required: true, Type: catalog.FieldTypeText, Section: "Veterinary Care"},

	// Health & Behavior
	{Key: "medical-conditions", Label: "Has the dog been diagnosed with or treated for any of the following? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Health & Behavior", Options: []string{"Allergies", "Bloat/GDV", "Wobbler's Syndrome", "Organ Failure", "Thyroid Disease", "Epilepsy/Seizures", "DCM", "Hip Dysplasia", "Elbow Dysplasia", "Heartworm", "None", "Other"}},
	{Key: "personality-traits", Label: "How would you describe the dog most of the time? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Health & Behavior", Options: []string{"Very Active", "Couch Potato", "Talkative", "Quiet", "Playful", "Affectionate", "Fearful", "Independent"}},
	{Key: "feeding-schedule", Label: "What food does the dog eat, how much, and how often?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Health & Behavior"},
	{Key: "leash-behavior", Label: "How does the dog walk on a leash?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Health & Behavior"},

	// Wrap-up
	{Key: "referral-source", Label: "How did you hear about RMGDRI?", Required: true, Type: catalog.FieldTypeText, Section: "Wrap-up"},
}
