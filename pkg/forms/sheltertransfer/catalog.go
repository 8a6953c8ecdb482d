package sheltertransfer

import "github.com/rmgdri/go-intake/pkg/catalog"

// FieldMap drives the shelter/rescue transfer form UI and raw required
// enforcement. Derived from the 11-page transfer questionnaire.
var FieldMap = catalog.Catalog{
	// Organization Information
	{Key: "org_name", Label: "Name of Your Rescue or Shelter", Required: true, Type: catalog.FieldTypeText, Section: "Organization Information"},
	{Key: "org_street_address", Label: "Street Address", Required: true, Type: catalog.FieldTypeText, Section: "Organization Information"},
	{Key: "org_street_address_2", Label: "Street Address Line 2", Required: false, Type: catalog.FieldTypeText, Section: "Organization Information"},
	{Key: "org_city", Label: "City", Required: true, Type: catalog.FieldTypeText, Section: "Organization Information"},
	{Key: "org_state", Label: "State / Province", Required: true, Type: catalog.FieldTypeText, Section: "Organization Information"},
	{Key: "org_zip", Label: "Postal / Zip Code", Required: true, Type: catalog.FieldTypeText, Section: "Organization Information"},

	// Representative Information
	{Key: "rep_name", Label: "Name of Rescue or Shelter Representative", Required: true, Type: catalog.FieldTypeText, Section: "Representative Information"},
	{Key: "rep_email", Label: "Representative's Email", Required: true, Type: catalog.FieldTypeEmail, Section: "Representative Information", Placeholder: "example@example.com"},
	{Key: "rep_phone", Label: "Representative's Phone Number", Required: true, Type: catalog.FieldTypeText, Section: "Representative Information"},
	{Key: "rep_phone_alt", Label: "Additional Phone Number", Required: false, Type: catalog.FieldTypeText, Section: "Representative Information"},

	// Dog Basic Information
	{Key: "dog_name", Label: "Dog's Name/Nicknames", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basic Information", Placeholder: "Please only include ONE dog per form"},
	{Key: "dog_dob_age", Label: "Dog's DOB/Approximate Age", Required: true, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "rescue_deadline", Label: "Is there a date that the dog needs to be rescued by, i.e. euthanasia date?", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "breed_status", Label: "Is the dog a purebred Great Dane or a Great Dane Mix?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basic Information", Options: []string{"Dog is purebred Great Dane", "Dog is a Great Dane Mix"}},
	{Key: "mix_breed", Label: "If the dog is a mix, what breed is it mixed with?", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "dog_color_markings", Label: "Dog's Color and Markings", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "dog_weight", Label: "Dog's Current Weight", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "dog_gender", Label: "Gender", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basic Information", Options: []string{"Male", "Female", "I am not sure"}},
	{Key: "spayed_neutered", Label: "Is the dog spayed or neutered?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basic Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "microchipped", Label: "Is the dog microchipped?", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basic Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "microchip_number", Label: "If microchipped, please provide microchip number here:", Required: false, Type: catalog.FieldTypeText, Section: "Dog Basic Information"},
	{Key: "ears", Label: "Ears", Required: true, Type: catalog.FieldTypeRadio, Section: "Dog Basic Information", Options: []string{"Natural", "Cropped", "I am not sure"}},

	// Intake History
	{Key: "intake_reason", Label: "Please explain how this dog came into your care, i.e. why the previous owner surrendered the dog.", Required: true, Type: catalog.FieldTypeTextarea, Section: "Intake History"},
	{Key: "time_in_care", Label: "How long has the dog been in your care?", Required: true, Type: catalog.FieldTypeText, Section: "Intake History"},

	// Medical Information
	{Key: "vet_evaluated", Label: "Has the dog been medically evaluated by a veterinarian within the last year?", Required: true, Type: catalog.FieldTypeRadio, Section: "Medical Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "vet_name", Label: "Veterinarian's Name", Required: false, Type: catalog.FieldTypeText, Section: "Medical Information"},
	{Key: "vet_address", Label: "Veterinarian's Address", Required: false, Type: catalog.FieldTypeText, Section: "Medical Information"},
	{Key: "vet_phone", Label: "Veterinarian's Phone Number", Required: false, Type: catalog.FieldTypeText, Section: "Medical Information"},
	{Key: "prior_surgeries", Label: "Has this dog ever required any surgeries?", Required: true, Type: catalog.FieldTypeRadio, Section: "Medical Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "surgery_details", Label: "If yes, please explain the required surgery/surgeries.", Required: false, Type: catalog.FieldTypeTextarea, Section: "Medical Information"},
	{Key: "vaccinations_current", Label: "Is this dog up to date on vaccinations?", Required: true, Type: catalog.FieldTypeRadio, Section: "Medical Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "heartworm_tested", Label: "Has this dog been tested for heartworm in the last year?", Required: true, Type: catalog.FieldTypeRadio, Section: "Medical Information", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "medical_conditions", Label: "Has this dog ever been diagnosed with, or treated for any of the following? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Medical Information", Options: []string{"Allergies", "Bloat/GDV", "Wobbler's Syndrome", "Organ Failure", "Thyroid Disease", "Epilepsy/Seizures", "DCM", "Hip Dysplasia", "Elbow Dysplasia", "Heartworm", "None", "Other"}},
	{Key: "medical_conditions_other", Label: "If Other, please specify:", Required: false, Type: catalog.FieldTypeText, Section: "Medical Information"},
	{Key: "medications_special_diet", Label: "Does the dog need any medications or special diet?", Required: true, Type: catalog.FieldTypeRadio, Section: "Medical Information", Options: []string{"Yes", "No"}},
	{Key: "medications_details", Label: "If yes, please describe medications or special diet:", Required: false, Type: catalog.FieldTypeTextarea, Section: "Medical Information"},

	// Housebreaking & Training
	{Key: "housebroken", Label: "Is the dog housebroken?", Required: true, Type: catalog.FieldTypeRadio, Section: "Housebreaking & Training", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "accident_frequency", Label: "If the dog is NOT housebroken, how often do they have accidents?", Required: false, Type: catalog.FieldTypeRadio, Section: "Housebreaking & Training", Options: []string{"Once a day", "Once a week", "Every time the dog is inside"}},
	{Key: "housebreaking_notes", Label: "If the dog is NOT housebroken, please explain. Has the dog ever been seen by a veterinarian for this problem?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Housebreaking & Training"},
	{Key: "crate_trained", Label: "Is the dog crate trained?", Required: true, Type: catalog.FieldTypeRadio, Section: "Housebreaking & Training", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "destructive_free_roam", Label: "Is the dog destructive with free roam?", Required: true, Type: catalog.FieldTypeRadio, Section: "Housebreaking & Training", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "leash_behavior", Label: "How does the dog walk on a leash? What sort of collar/leash is being used?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Housebreaking & Training"},

	// Behavioral Assessment
	{Key: "behavioral_eval", Label: "Has this dog been behaviorally evaluated? If so, when was the evaluation and please explain the behavior evaluation and outcomes.", Required: false, Type: catalog.FieldTypeTextarea, Section: "Behavioral Assessment"},
	{Key: "resource_guarding", Label: "Does the dog exhibit any resource guarding or food aggression?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Behavioral Assessment"},
	{Key: "aggression_reactivity", Label: "Does the dog exhibit any form of aggression or reactivity, such as leash aggression/reactivity, kennel aggression, dog aggression/reactivity, human aggression/reactivity, etc?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Behavioral Assessment"},
	{Key: "temperament_traits", Label: "How would you explain the dog most of the time? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Behavioral Assessment", Options: []string{"Very active", "Couch potato", "Talkative", "Quiet", "Playful", "Friendly to family", "Shy to family", "Friendly to visitors", "Shy to visitors", "Affectionate", "Lap dog", "Fearful", "Independent", "Fearless", "Aloof", "Withdrawn", "Other"}},
	{Key: "temperament_other", Label: "If Other temperament, please specify:", Required: false, Type: catalog.FieldTypeText, Section: "Behavioral Assessment"},
	{Key: "play_style", Label: "How does the dog like to play? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Behavioral Assessment", Options: []string{"Plays gently, does not use teeth or claws", "Likes to play rough, may bite or scratch", "Likes to play ball", "Likes stuffed toys", "Likes to learn tricks for treats", "Likes to play in or around water", "Likes to play with dogs of all sizes", "Prefers to play with larger dogs", "Prefers to play with smaller dogs", "Not interested in play", "Other"}},
	{Key: "play_style_other", Label: "If Other play style, please specify:", Required: false, Type: catalog.FieldTypeText, Section: "Behavioral Assessment"},

	// Bite History
	{Key: "bitten_human", Label: "Has the dog ever bitten a human?", Required: true, Type: catalog.FieldTypeRadio, Section: "Bite History", Options: []string{"Yes", "No"}},
	{Key: "bitten_human_details", Label: "If the dog has bitten a human, where on the body and what were the circumstances?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Bite History"},
	{Key: "bitten_animal", Label: "Has the dog ever bitten another animal?", Required: true, Type: catalog.FieldTypeRadio, Section: "Bite History", Options: []string{"Yes", "No"}},
	{Key: "bitten_animal_details", Label: "If the dog has bitten another animal, what kind of animal and what were the circumstances?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Bite History"},

	// Compatibility
	{Key: "lived_with_dogs", Label: "Has the dog ever lived with other dogs?", Required: true, Type: catalog.FieldTypeRadio, Section: "Compatibility", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "lived_with_dogs_details", Label: "If yes, please explain how the dogs got along living together, the age, sex, and breed of each dog the Dane has lived with, if known.", Required: false, Type: catalog.FieldTypeTextarea, Section: "Compatibility"},
	{Key: "lived_with_cats", Label: "Has the dog ever lived with cats?", Required: true, Type: catalog.FieldTypeRadio, Section: "Compatibility", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "lived_with_cats_details", Label: "If yes, please explain how the dog and cat got along.", Required: false, Type: catalog.FieldTypeTextarea, Section: "Compatibility"},
	{Key: "lived_with_children", Label: "Has the dog ever lived with children (under the age of 18)?", Required: true, Type: catalog.FieldTypeRadio, Section: "Compatibility", Options: []string{"Yes", "No", "I am not sure"}},
	{Key: "lived_with_children_details", Label: "If the dog has lived with children, what were the ages of the children and how was their relationship?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Compatibility"},

	// Fears & Quirks
	{Key: "fears", Label: "Is the dog afraid of anything? (Check all that apply)", Required: false, Type: catalog.FieldTypeCheckboxGroup, Section: "Fears & Quirks", Options: []string{"Men", "Women", "Children", "Hats", "Balloons", "Brooms", "Vacuums", "Large trucks", "Sudden loud sounds", "Water", "Fireworks", "Hands", "Feet", "Bicycles", "Other"}},
	{Key: "fears_other", Label: "If Other fears, please specify:", Required: false, Type: catalog.FieldTypeText, Section: "Fears & Quirks"},
	{Key: "escape_history", Label: "Did the dog ever repeatedly escape from a yard?", Required: true, Type: catalog.FieldTypeRadio, Section: "Fears & Quirks", Options: []string{"Yes", "No"}},
	{Key: "escape_details", Label: "If yes, please explain the type of fencing, if known, and how the dog escaped.", Required: false, Type: catalog.FieldTypeTextarea, Section: "Fears & Quirks"},
	{Key: "quirks", Label: "Does the dog have any quirks or anything the previous owners or current caretakers are not fond of?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Fears & Quirks"},
	{Key: "what_they_love", Label: "Is there anything the previous owners or current caretakers truly love(d) about the dog?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Fears & Quirks"},

	// Additional Resources
	{Key: "additional_resources", Label: "If RMGDRI is able to accept this dog, are there any additional resources you may be able to provide for this dog (i.e. transport, food, veterinary care, etc)?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Additional Resources", Placeholder: "Additional resources are not required but always appreciated."},

	// Certification & Signature
	{Key: "agree_statement", Label: "Do you agree with the above statement?", Required: true, Type: catalog.FieldTypeRadio, Section: "Certification & Signature", Options: []string{"Yes", "No"}},
	{Key: "representative_signature", Label: "Representative's Signature (type full name)", Required: true, Type: catalog.FieldTypeText, Section: "Certification & Signature"},
	{Key: "signature_date", Label: "Today's Date", Required: true, Type: catalog.FieldTypeText, Section: "Certification & Signature", Placeholder: "MM/DD/YYYY"},
	{Key: "signature_dog_name", Label: "Dog's Name", Required: true, Type: catalog.FieldTypeText, Section: "Certification & Signature"},
}
