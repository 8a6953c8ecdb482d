package general

import (
	"strings"
	"testing"
)

func TestFormCoversEveryType(t *testing.T) {
	for _, formType := range Types {
		f, ok := Form(formType)
		if !ok {
			t.Fatalf("no form for type %q", formType)
		}
		if f.Key != "general-"+formType {
			t.Fatalf("form key = %q", f.Key)
		}
		if f.RateLimit != RateLimit || f.HoneypotField != HoneypotField {
			t.Fatalf("type %q does not share the endpoint guard settings", formType)
		}
	}
	if _, ok := Form("purchase"); ok {
		t.Fatal("unknown type accepted")
	}
}

func TestContactRequiresMessage(t *testing.T) {
	s := Schema("contact")

	_, issues := s.Validate(map[string]any{
		"type":    "contact",
		"payload": map[string]any{"topic": "General"},
	})
	found := false
	for _, issue := range issues {
		if issue.Path == "payload.message" && issue.Message == "required" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing contact message not flagged: %v", issues)
	}

	_, issues = s.Validate(map[string]any{
		"type":    "contact",
		"payload": map[string]any{"message": "Hello"},
	})
	if len(issues) != 0 {
		t.Fatalf("valid contact payload rejected: %v", issues)
	}
}

func TestContactMessageLengthCeiling(t *testing.T) {
	s := Schema("contact")
	_, issues := s.Validate(map[string]any{
		"type":    "contact",
		"payload": map[string]any{"message": strings.Repeat("a", 5001)},
	})
	if len(issues) == 0 {
		t.Fatal("5001-character message accepted")
	}
}

func TestBaseFieldBounds(t *testing.T) {
	s := Schema("adopt")
	_, issues := s.Validate(map[string]any{
		"type":  "adopt",
		"name":  strings.Repeat("n", 121),
		"phone": strings.Repeat("5", 41),
	})
	paths := make(map[string]bool)
	for _, issue := range issues {
		paths[issue.Path] = true
	}
	if !paths["name"] || !paths["phone"] {
		t.Fatalf("oversize name/phone not flagged: %v", issues)
	}
}

func TestTypeMismatchRejected(t *testing.T) {
	s := Schema("adopt")
	_, issues := s.Validate(map[string]any{"type": "contact"})
	if len(issues) == 0 {
		t.Fatal("adopt schema accepted type=contact")
	}
}

func TestPayloadPassthroughExtras(t *testing.T) {
	s := Schema("adopt")
	canonical, issues := s.Validate(map[string]any{
		"type": "adopt",
		"payload": map[string]any{
			"household_size": float64(3),
			"has_other_pets": true,
			"city":           "Denver",
		},
	})
	if len(issues) != 0 {
		t.Fatalf("payload with extras rejected: %v", issues)
	}
	payload, ok := canonical["payload"].(map[string]any)
	if !ok {
		t.Fatalf("payload type = %T", canonical["payload"])
	}
	if payload["household_size"] != float64(3) || payload["has_other_pets"] != true {
		t.Fatalf("undeclared payload keys not carried through: %v", payload)
	}
}

func TestEmailValidatedWhenPresent(t *testing.T) {
	s := Schema("volunteer")
	_, issues := s.Validate(map[string]any{
		"type":  "volunteer",
		"email": "not-an-email",
	})
	if len(issues) == 0 {
		t.Fatal("malformed email accepted")
	}
}
