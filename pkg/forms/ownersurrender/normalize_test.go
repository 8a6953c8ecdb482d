package ownersurrender

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_MapsLegacyKeys(t *testing.T) {
	canonical, warnings := Normalize(map[string]any{
		"dog-name":           "Zeus",
		"dog-age":            "3 years",
		"dog-sex":            "male",
		"owner-phone-primary": "303-555-0101",
		"referral-source":    "Facebook",
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	checks := map[string]string{
		"dog_name":                    "Zeus",
		"dog_dob_or_age":              "3 years",
		"dog_gender":                  "male",
		"owner_contact_phone_primary": "303-555-0101",
		"heard_about_rmgdri":          "Facebook",
	}
	for key, want := range checks {
		if got := canonical[key]; got != want {
			t.Fatalf("%s = %v, want %q", key, got, want)
		}
	}
}

func TestNormalize_SplitsOwnerName(t *testing.T) {
	cases := []struct {
		name  string
		full  string
		first string
		last  string
	}{
		{"two parts", "Jordan Smith", "Jordan", "Smith"},
		{"three parts", "Mary Anne Smith", "Mary Anne", "Smith"},
		{"single token", "Cher", "Cher", ""},
		{"blank", "   ", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			canonical, _ := Normalize(map[string]any{"owner-name": tc.full})
			if canonical["owner_first_name"] != tc.first || canonical["owner_last_name"] != tc.last {
				t.Fatalf("split %q = (%v, %v), want (%q, %q)",
					tc.full, canonical["owner_first_name"], canonical["owner_last_name"], tc.first, tc.last)
			}
		})
	}
}

func TestNormalize_OwnerNameDoesNotClobberCanonicalNames(t *testing.T) {
	canonical, _ := Normalize(map[string]any{
		"owner_first_name": "Jordan",
		"owner_last_name":  "Smith",
		"owner-name":       "Someone Else",
	})
	if canonical["owner_first_name"] != "Jordan" || canonical["owner_last_name"] != "Smith" {
		t.Fatalf("canonical names overwritten: %v %v",
			canonical["owner_first_name"], canonical["owner_last_name"])
	}
}

func TestNormalize_MultiSelectCoercion(t *testing.T) {
	canonical, warnings := Normalize(map[string]any{
		"medical-conditions": "Allergies, Hip Dysplasia",
	})
	want := []string{"Allergies", "Hip Dysplasia"}
	if diff := cmp.Diff(want, canonical["diagnosed_or_treated_conditions"]); diff != "" {
		t.Fatalf("conditions mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 0 {
		t.Fatalf("delimited value should not warn: %v", warnings)
	}

	canonical, warnings = Normalize(map[string]any{
		"medical-conditions": "Allergies",
	})
	if diff := cmp.Diff([]string{"Allergies"}, canonical["diagnosed_or_treated_conditions"]); diff != "" {
		t.Fatalf("scalar coercion mismatch (-want +got):\n%s", diff)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected a missing-delimiter warning, got %v", warnings)
	}
}

func TestNormalize_UnmappedKeysWarnAndCarryThrough(t *testing.T) {
	canonical, warnings := Normalize(map[string]any{
		"mystery-field": "value",
	})
	if canonical["mystery-field"] != "value" {
		t.Fatal("unmapped key dropped")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestNormalize_OutputIsSchemaShapeStable(t *testing.T) {
	canonical, _ := Normalize(map[string]any{})
	for _, f := range Schema.Fields {
		if _, ok := canonical[f.Key]; !ok {
			t.Fatalf("canonical payload missing schema key %q", f.Key)
		}
	}
	if _, ok := canonical["frightened_by"].([]string); !ok {
		t.Fatalf("array field default has wrong type: %T", canonical["frightened_by"])
	}
	if canonical["urgency_notes"] != "" {
		t.Fatalf("scalar default = %v, want empty string", canonical["urgency_notes"])
	}
}

// Normalization must be a no-op on already-canonical input: no value in the
// schema's key set may change.
func TestNormalize_IdempotentOnCanonicalInput(t *testing.T) {
	input := map[string]any{
		"dog_name":                        "Zeus",
		"owner_email":                     "owner@example.com",
		"diagnosed_or_treated_conditions": []any{"Allergies"},
		"personality_traits":              []string{"Playful", "Quiet"},
		"surrender_reason":                "Moving overseas",
	}
	canonical, _ := Normalize(input)
	for key, want := range input {
		if diff := cmp.Diff(want, canonical[key]); diff != "" {
			t.Fatalf("canonical value for %q changed (-want +got):\n%s", key, diff)
		}
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := map[string]any{
		"mystery-a":          "1",
		"mystery-b":          "2",
		"medical-conditions": "Allergies",
		"dog-name":           "Zeus",
	}
	first, firstWarnings := Normalize(raw)
	second, secondWarnings := Normalize(raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("canonical output not deterministic:\n%s", diff)
	}
	if diff := cmp.Diff(firstWarnings, secondWarnings); diff != "" {
		t.Fatalf("warning order not deterministic:\n%s", diff)
	}
}

func TestDiagnose_DeterministicMissingList(t *testing.T) {
	first := Diagnose()
	second := Diagnose()
	if diff := cmp.Diff(first.MissingCanonical, second.MissingCanonical); diff != "" {
		t.Fatalf("missing-key list not reproducible:\n%s", diff)
	}
	if first.Pass {
		// The raw catalog intentionally covers fewer keys than the strict
		// schema while the UI migration is in flight.
		t.Fatal("raw-required-only payload unexpectedly satisfies the strict schema")
	}
	for _, key := range first.MissingCanonical {
		found := false
		for _, req := range first.CanonicalRequired {
			if req == key {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing key %q is not schema-required", key)
		}
	}
}

func TestDiagnose_MappedRequiredKeysReachSchema(t *testing.T) {
	d := Diagnose()
	// Keys the field map collects and the normalizer maps must not be
	// reported missing.
	for _, satisfied := range []string{"dog_name", "owner_email", "surrender_reason", "heard_about_rmgdri"} {
		for _, missing := range d.MissingCanonical {
			if missing == satisfied {
				t.Fatalf("%q collected by the field map but reported missing", satisfied)
			}
		}
	}
}
