package adoptionfoster

import "github.com/rmgdri/go-intake/pkg/catalog"

// FieldMap drives the adoption / foster application UI and the raw-side
// requiredness check. It was transcribed from the 24-page RMGDRI paper
// application, which is why household members, current pets, and references
// appear as numbered slots rather than repeatable groups.
var FieldMap = catalog.Catalog{
	// Application Type
	{Key: "application_type", Label: "I am applying to", Required: true, Type: catalog.FieldTypeRadio, Section: "Application Type", Options: []string{"adopt", "foster", "both"}},

	// Acknowledgements
	{Key: "ack_application_fee", Label: "I understand that the application fee is required before my application can be processed", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},
	{Key: "ack_adoption_fee", Label: "I understand the adoption fees and that the fee is required at the time of adoption, in full", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},
	{Key: "ack_wait_time", Label: "I understand I may have to wait 3-6+ months to be matched with a Dane", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},
	{Key: "ack_behavioral_work", Label: "I understand I will likely have to work with my Dane after adoption on behavioral issues", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},
	{Key: "ack_dane_capabilities", Label: "I understand Great Danes are capable of reactivity, aggression, and other behavioral issues", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},
	{Key: "ack_transparency", Label: "I understand RMGDRI will share all information about the dog, including bite history", Required: true, Type: catalog.FieldTypeRadio, Section: "Acknowledgements", Options: []string{"yes", "no"}},

	// Your Information
	{Key: "applicant_first_name", Label: "First Name", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "applicant_last_name", Label: "Last Name", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "email", Label: "Email Address", Required: true, Type: catalog.FieldTypeEmail, Section: "Your Information"},
	{Key: "spouse_first_name", Label: "Spouse's First Name (if applicable)", Required: false, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "spouse_last_name", Label: "Spouse's Last Name", Required: false, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "address_street", Label: "Street Address", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "address_street2", Label: "Street Address Line 2", Required: false, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "address_city", Label: "City", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "address_state", Label: "State", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "address_zip", Label: "Zip Code", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "phone_primary", Label: "Phone Number", Required: true, Type: catalog.FieldTypeText, Section: "Your Information"},
	{Key: "phone_additional", Label: "Additional Phone Number", Required: false, Type: catalog.FieldTypeText, Section: "Your Information"},

	// Home Information
	{Key: "home_type", Label: "What type of home do you have?", Required: true, Type: catalog.FieldTypeSelect, Section: "Home Information", Options: []string{"Single Family Home", "Apartment", "Condo/Townhome", "Mobile Home", "Other"}},
	{Key: "own_or_rent", Label: "Do you own or rent/lease?", Required: true, Type: catalog.FieldTypeRadio, Section: "Home Information", Options: []string{"Own", "Rent/Lease"}},
	{Key: "landlord_name", Label: "Landlord's Name (if renting)", Required: false, Type: catalog.FieldTypeText, Section: "Home Information"},
	{Key: "landlord_phone", Label: "Landlord's Phone Number", Required: false, Type: catalog.FieldTypeText, Section: "Home Information"},
	{Key: "landlord_letter", Label: "Landlord Permission Letter Details", Required: false, Type: catalog.FieldTypeTextarea, Section: "Home Information"},

	// Breed Experience
	{Key: "how_heard_about_us", Label: "How did you hear about us?", Required: false, Type: catalog.FieldTypeText, Section: "Breed Experience"},
	{Key: "owned_great_dane_before", Label: "Have you ever owned a Great Dane?", Required: true, Type: catalog.FieldTypeRadio, Section: "Breed Experience", Options: []string{"yes", "no"}},
	{Key: "owned_giant_breed", Label: "Have you owned a Giant Breed?", Required: false, Type: catalog.FieldTypeText, Section: "Breed Experience"},
	{Key: "giant_breed_details", Label: "What giant breed(s) did you own?", Required: false, Type: catalog.FieldTypeText, Section: "Breed Experience"},
	{Key: "dane_experience_if_none", Label: "If no Dane/Giant Breed experience, what experience do you have?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Breed Experience"},
	{Key: "dane_knowledge", Label: "Tell us what you know about Great Danes (temperament, health, daily requirements)", Required: true, Type: catalog.FieldTypeTextarea, Section: "Breed Experience"},
	{Key: "why_interested_in_dane", Label: "Why are you interested in adding a Great Dane to your life?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Breed Experience"},

	// Daily Life
	{Key: "daily_life_with_dane", Label: "Tell us about your daily life and how a new Dane will be incorporated", Required: true, Type: catalog.FieldTypeTextarea, Section: "Daily Life"},
	{Key: "vacation_pet_care", Label: "What do you do with your pets when you go on vacation?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Daily Life"},
	{Key: "aware_kenneling_expensive", Label: "Are you aware that kenneling is more expensive for a Great Dane?", Required: true, Type: catalog.FieldTypeRadio, Section: "Daily Life", Options: []string{"yes", "no"}},

	// Household Members
	{Key: "household_member_1_name", Label: "Member 1: Name", Required: true, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_1_age", Label: "Member 1: Age", Required: true, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_1_relationship", Label: "Member 1: Relationship to Applicant", Required: true, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_2_name", Label: "Member 2: Name", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_2_age", Label: "Member 2: Age", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_2_relationship", Label: "Member 2: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_3_name", Label: "Member 3: Name", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_3_age", Label: "Member 3: Age", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_3_relationship", Label: "Member 3: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_4_name", Label: "Member 4: Name", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_4_age", Label: "Member 4: Age", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_4_relationship", Label: "Member 4: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_5_name", Label: "Member 5: Name", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_5_age", Label: "Member 5: Age", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "household_member_5_relationship", Label: "Member 5: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "additional_household_members", Label: "If more than 5 members, please add them here", Required: false, Type: catalog.FieldTypeTextarea, Section: "Household Members"},
	{Key: "exposed_to_guests_children", Label: "Will the Dane be exposed to guests/family/friends/children? How often?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Household Members"},
	{Key: "children_ages_outside_family", Label: "Ages of children outside the core family the Dane will be exposed to", Required: false, Type: catalog.FieldTypeText, Section: "Household Members"},
	{Key: "allergies_in_household", Label: "Any asthma or allergies in household to dogs or cats?", Required: true, Type: catalog.FieldTypeRadio, Section: "Household Members", Options: []string{"yes", "no"}},
	{Key: "allergies_handling", Label: "If allergies, how are they handled?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Household Members"},

	// Behavioral Preferences
	{Key: "unwilling_behaviors", Label: "What types of behaviors are you NOT willing to consider?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Behavioral Preferences"},
	{Key: "age_gender_preferences", Label: "Do you have any preferences on age range or gender?", Required: false, Type: catalog.FieldTypeText, Section: "Behavioral Preferences"},
	{Key: "willing_bite_history", Label: "Are you willing to adopt a dog with a bite history?", Required: true, Type: catalog.FieldTypeSelect, Section: "Behavioral Preferences", Options: []string{"Yes", "No", "Depends on the information about the bite"}},
	{Key: "all_members_want_dane", Label: "Do all members of the household want to adopt or foster a Great Dane?", Required: true, Type: catalog.FieldTypeRadio, Section: "Behavioral Preferences", Options: []string{"yes", "no"}},
	{Key: "hesitations_concerns", Label: "Does anyone in the home have hesitations or concerns?", Required: true, Type: catalog.FieldTypeRadio, Section: "Behavioral Preferences", Options: []string{"yes", "no"}},
	{Key: "hesitations_details", Label: "If yes, please explain", Required: false, Type: catalog.FieldTypeTextarea, Section: "Behavioral Preferences"},

	// Daily Schedule
	{Key: "hours_alone_per_day", Label: "How many hours per day, on average, will the dog be alone?", Required: true, Type: catalog.FieldTypeText, Section: "Daily Schedule"},
	{Key: "anyone_home_during_day", Label: "Is there anyone home during the day?", Required: true, Type: catalog.FieldTypeRadio, Section: "Daily Schedule", Options: []string{"yes", "no"}},
	{Key: "where_dog_stays_when_alone", Label: "Where will the dog stay during the day when alone?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Daily Schedule"},
	{Key: "leave_dog_outside_alone", Label: "Do you plan on leaving your dog alone outside while you are gone?", Required: false, Type: catalog.FieldTypeText, Section: "Daily Schedule"},

	// Crate & Training
	{Key: "crated_before", Label: "Have you ever crated a dog before?", Required: true, Type: catalog.FieldTypeRadio, Section: "Crate & Training", Options: []string{"yes", "no"}},
	{Key: "own_dane_sized_crate", Label: "Do you own a Dane-sized crate (54\"L x 36\"W x 45\"H)?", Required: true, Type: catalog.FieldTypeRadio, Section: "Crate & Training", Options: []string{"yes", "no"}},
	{Key: "plan_to_crate", Label: "Do you plan on crating the dog when alone?", Required: false, Type: catalog.FieldTypeText, Section: "Crate & Training"},
	{Key: "collar_leash_type", Label: "What collars/leash do you use? (RMGDRI does not condone shock, pinch, or choke collars)", Required: true, Type: catalog.FieldTypeText, Section: "Crate & Training"},
	{Key: "exercise_plan", Label: "What type of exercise do you plan on providing? How often?", Required: true, Type: catalog.FieldTypeTextarea, Section: "Crate & Training"},

	// Current Pets
	{Key: "pet_1_name", Label: "Pet 1: Name", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_type", Label: "Pet 1: Type (cat/dog/etc)", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_breed", Label: "Pet 1: Breed", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_gender", Label: "Pet 1: Gender", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_altered", Label: "Pet 1: Spayed/Neutered?", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_age", Label: "Pet 1: Age", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_1_temperament", Label: "Pet 1: Temperament", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_name", Label: "Pet 2: Name", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_type", Label: "Pet 2: Type", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_breed", Label: "Pet 2: Breed", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_gender", Label: "Pet 2: Gender", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_altered", Label: "Pet 2: Spayed/Neutered?", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_age", Label: "Pet 2: Age", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_2_temperament", Label: "Pet 2: Temperament", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_name", Label: "Pet 3: Name", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_type", Label: "Pet 3: Type", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_breed", Label: "Pet 3: Breed", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_gender", Label: "Pet 3: Gender", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_altered", Label: "Pet 3: Spayed/Neutered?", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_age", Label: "Pet 3: Age", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "pet_3_temperament", Label: "Pet 3: Temperament", Required: false, Type: catalog.FieldTypeText, Section: "Current Pets"},
	{Key: "additional_pets", Label: "Additional pets not listed above", Required: false, Type: catalog.FieldTypeTextarea, Section: "Current Pets"},

	// Veterinarian
	{Key: "vet_name", Label: "Veterinarian Name / Clinic", Required: true, Type: catalog.FieldTypeText, Section: "Veterinarian"},
	{Key: "vet_phone", Label: "Vet Phone Number", Required: true, Type: catalog.FieldTypeText, Section: "Veterinarian"},
	{Key: "vet_address", Label: "Vet Address", Required: false, Type: catalog.FieldTypeText, Section: "Veterinarian"},

	// Past Pet History
	{Key: "past_pet_not_kept", Label: "Have you ever had a pet you could not keep?", Required: false, Type: catalog.FieldTypeText, Section: "Past Pet History"},
	{Key: "past_pet_reason", Label: "If yes, what happened?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Past Pet History"},
	{Key: "past_pet_surrendered_to_rescue", Label: "Have you ever surrendered a pet to a rescue or shelter?", Required: false, Type: catalog.FieldTypeText, Section: "Past Pet History"},

	// Yard & Fencing
	{Key: "yard_fenced", Label: "Is your yard fenced?", Required: true, Type: catalog.FieldTypeRadio, Section: "Yard & Fencing", Options: []string{"yes", "no"}},
	{Key: "fence_type", Label: "Fence type (wood, chain link, vinyl, etc.)", Required: false, Type: catalog.FieldTypeText, Section: "Yard & Fencing"},
	{Key: "fence_height", Label: "Fence height", Required: false, Type: catalog.FieldTypeText, Section: "Yard & Fencing"},
	{Key: "no_fence_exercise_plan", Label: "If no fence, how will you exercise your Dane?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Yard & Fencing"},

	// Specific Dog Interest
	{Key: "specific_dog_interest", Label: "Is there a specific dog you are interested in?", Required: false, Type: catalog.FieldTypeText, Section: "Specific Dog Interest"},
	{Key: "why_this_dog", Label: "Why are you interested in this specific dog?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Specific Dog Interest"},

	// Foster-Specific (shown if foster or both)
	{Key: "foster_experience", Label: "Do you have any foster experience?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Foster-Specific Questions"},
	{Key: "foster_duration_comfortable", Label: "How long are you comfortable fostering?", Required: false, Type: catalog.FieldTypeText, Section: "Foster-Specific Questions"},
	{Key: "foster_willing_to_transport", Label: "Are you willing to transport the foster dog to vet appointments?", Required: false, Type: catalog.FieldTypeText, Section: "Foster-Specific Questions"},

	// References
	{Key: "reference_1_name", Label: "Reference 1: Name", Required: true, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_1_phone", Label: "Reference 1: Phone", Required: true, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_1_relationship", Label: "Reference 1: Relationship to You", Required: true, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_2_name", Label: "Reference 2: Name", Required: false, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_2_phone", Label: "Reference 2: Phone", Required: false, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_2_relationship", Label: "Reference 2: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_3_name", Label: "Reference 3: Name", Required: false, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_3_phone", Label: "Reference 3: Phone", Required: false, Type: catalog.FieldTypeText, Section: "References"},
	{Key: "reference_3_relationship", Label: "Reference 3: Relationship", Required: false, Type: catalog.FieldTypeText, Section: "References"},

	// Certification & Signature
	{Key: "certify_info_true", Label: "I certify that all information provided is true and accurate", Required: true, Type: catalog.FieldTypeRadio, Section: "Certification & Signature", Options: []string{"yes"}},
	{Key: "certify_over_21", Label: "I certify that I am at least 21 years of age", Required: true, Type: catalog.FieldTypeRadio, Section: "Certification & Signature", Options: []string{"yes"}},
	{Key: "electronic_signature", Label: "Electronic Signature (type your full name)", Required: true, Type: catalog.FieldTypeText, Section: "Certification & Signature"},
	{Key: "todays_date", Label: "Today's Date", Required: false, Type: catalog.FieldTypeText, Section: "Certification & Signature", Placeholder: "MM/DD/YYYY"},
	{Key: "additional_notes", Label: "Anything else you would like us to know?", Required: false, Type: catalog.FieldTypeTextarea, Section: "Certification & Signature"},
}
