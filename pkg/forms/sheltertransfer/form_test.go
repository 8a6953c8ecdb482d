package sheltertransfer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogKeysAreSchemaKeys(t *testing.T) {
	known := make(map[string]bool)
	for _, key := range Schema.Keys() {
		known[key] = true
	}
	for _, f := range FieldMap {
		if !known[f.Key] {
			t.Errorf("catalog key %q has no schema rule", f.Key)
		}
	}
}

func TestSchemaIsFullyOptional(t *testing.T) {
	// Requiredness lives in the field map while this form is iterated on;
	// the schema only polices shape.
	if required := Schema.RequiredKeys(); len(required) != 0 {
		t.Fatalf("schema unexpectedly requires keys: %v", required)
	}
	if _, issues := Schema.Validate(map[string]any{}); len(issues) != 0 {
		t.Fatalf("empty payload rejected: %v", issues)
	}
}

func TestCatalogEnforcesRequired(t *testing.T) {
	missing := FieldMap.Missing(map[string]any{})
	if len(missing) == 0 {
		t.Fatal("empty payload reported no missing required keys")
	}
	for _, key := range []string{"org_name", "rep_name", "rep_email", "dog_name", "intake_reason"} {
		found := false
		for _, m := range missing {
			if m == key {
				found = true
			}
		}
		if !found {
			t.Errorf("required key %q not reported missing", key)
		}
	}
}

func TestSchemaRejectsMalformedEmail(t *testing.T) {
	_, issues := Schema.Validate(map[string]any{"rep_email": "not-an-email"})
	if len(issues) == 0 {
		t.Fatal("malformed rep_email accepted")
	}
	if issues[0].Path != "rep_email" {
		t.Fatalf("issue path = %q, want rep_email", issues[0].Path)
	}
}

func TestSchemaWrapsScalarMultiSelect(t *testing.T) {
	canonical, issues := Schema.Validate(map[string]any{
		"medical_conditions": "Allergies",
	})
	if len(issues) != 0 {
		t.Fatalf("scalar multi-select rejected: %v", issues)
	}
	if diff := cmp.Diff([]string{"Allergies"}, canonical["medical_conditions"]); diff != "" {
		t.Fatalf("medical_conditions mismatch (-want +got):\n%s", diff)
	}
}

func TestFormDescriptor(t *testing.T) {
	f := Form()
	if f.Key != "shelter-transfer" {
		t.Fatalf("form key = %q", f.Key)
	}
	if f.HoneypotField != "website_url_hp" {
		t.Fatalf("honeypot field = %q", f.HoneypotField)
	}
	if f.RateLimit != 5 {
		t.Fatalf("rate limit = %d", f.RateLimit)
	}
}
