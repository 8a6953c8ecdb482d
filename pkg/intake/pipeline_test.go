package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rmgdri/go-intake/pkg/catalog"
	"github.com/rmgdri/go-intake/pkg/schema"
)

type stubWriter struct {
	last Submission
	err  error
}

func (w *stubWriter) Write(_ context.Context, sub Submission) (Receipt, error) {
	w.last = sub
	if w.err != nil {
		return Receipt{}, w.err
	}
	return Receipt{ApplicationID: "app-1", EventID: "ev-1"}, nil
}

func testForm() Form {
	return Form{
		Key:           "test-form",
		Version:       1,
		HoneypotField: "website",
		RateLimit:     5,
		Catalog: catalog.Catalog{
			{Key: "name", Label: "Name", Required: true, Type: catalog.FieldTypeText},
			{Key: "email", Label: "Email", Required: true, Type: catalog.FieldTypeEmail},
		},
		Schema: &schema.Schema{Fields: []schema.FieldRule{
			schema.String("name"),
			schema.Email("email"),
		}},
		EmailField: "email",
		NameFields: []string{"name"},
	}
}

func TestPipeline_AcceptedSubmission(t *testing.T) {
	w := &stubWriter{}
	p := New(testForm(), WithWriter(w))

	res := p.Run(context.Background(), "1.2.3.4", map[string]any{
		"name":  "Jordan Smith",
		"email": "jordan@example.com",
	})
	if res.Status != StatusAccepted {
		t.Fatalf("status = %v, want accepted (%+v)", res.Status, res)
	}
	if res.Receipt.ApplicationID != "app-1" || res.Receipt.EventID != "ev-1" {
		t.Fatalf("unexpected receipt: %+v", res.Receipt)
	}
	if w.last.ApplicantName != "Jordan Smith" || w.last.ApplicantEmail != "jordan@example.com" {
		t.Fatalf("applicant fields not lifted: %+v", w.last)
	}
	if w.last.FormKey != "test-form" || w.last.ClientID != "1.2.3.4" {
		t.Fatalf("submission metadata wrong: %+v", w.last)
	}
}

func TestPipeline_MissingRequiredShortCircuitsBeforeSchema(t *testing.T) {
	w := &stubWriter{}
	p := New(testForm(), WithWriter(w))

	// email is both catalog-required and schema-invalid; the precheck must
	// win and the schema stage must never run.
	res := p.Run(context.Background(), "ip", map[string]any{"name": "x"})
	if res.Status != StatusMissingRequired {
		t.Fatalf("status = %v, want missing-required", res.Status)
	}
	if diff := cmp.Diff([]string{"email"}, res.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if res.Labels["email"] != "Email" {
		t.Fatalf("labels not attached: %v", res.Labels)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("schema issues leaked into precheck rejection: %v", res.Issues)
	}
}

func TestPipeline_HoneypotSilentlyAccepts(t *testing.T) {
	w := &stubWriter{}
	p := New(testForm(), WithWriter(w))

	res := p.Run(context.Background(), "ip", map[string]any{
		"website": "https://spam.example",
		// Everything else invalid on purpose: honeypot must win regardless.
	})
	if res.Status != StatusSilentlyAccepted {
		t.Fatalf("status = %v, want silently-accepted", res.Status)
	}
	if w.last.FormKey != "" {
		t.Fatal("honeypot trip must not persist anything")
	}
}

func TestPipeline_EmptyHoneypotDoesNotTrip(t *testing.T) {
	p := New(testForm(), WithWriter(&stubWriter{}))
	res := p.Run(context.Background(), "ip", map[string]any{
		"website": "",
		"name":    "Jordan",
		"email":   "jordan@example.com",
	})
	if res.Status != StatusAccepted {
		t.Fatalf("status = %v, want accepted", res.Status)
	}
}

func TestPipeline_ValidationFailureCarriesWarnings(t *testing.T) {
	form := testForm()
	form.Catalog = nil
	form.Normalize = func(raw map[string]any) (map[string]any, []string) {
		return raw, []string{"unmapped raw key \"extra\""}
	}
	p := New(form, WithWriter(&stubWriter{}))

	res := p.Run(context.Background(), "ip", map[string]any{"email": "bad"})
	if res.Status != StatusValidationFailed {
		t.Fatalf("status = %v, want validation-failed", res.Status)
	}
	if len(res.Issues) == 0 {
		t.Fatal("expected issues")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings not surfaced on failure: %v", res.Warnings)
	}
}

func TestPipeline_AdmitRateLimits(t *testing.T) {
	form := testForm()
	form.RateLimit = 2
	p := New(form, WithWriter(&stubWriter{}))

	p.Admit("ip")
	p.Admit("ip")
	res := p.Admit("ip")
	if res.Status != StatusRateLimited {
		t.Fatalf("status = %v, want rate-limited", res.Status)
	}
	if res.RetryAfter < 1 || res.RetryAfter > 60 {
		t.Fatalf("retry-after out of range: %d", res.RetryAfter)
	}
}

func TestPipeline_WriterErrors(t *testing.T) {
	w := &stubWriter{err: errors.New("db down")}
	p := New(testForm(), WithWriter(w))

	res := p.Run(context.Background(), "ip", map[string]any{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})
	if res.Status != StatusWriteFailed {
		t.Fatalf("status = %v, want write-failed", res.Status)
	}
}

func TestPipeline_NilWriterMeansNotConfigured(t *testing.T) {
	p := New(testForm())
	res := p.Run(context.Background(), "ip", map[string]any{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})
	if res.Status != StatusNotConfigured {
		t.Fatalf("status = %v, want not-configured", res.Status)
	}
}

func TestSanitizer_StripsMarkup(t *testing.T) {
	s := NewSanitizer()
	payload := map[string]any{
		"notes":  `He loves <script>alert("walks")</script> walks`,
		"traits": []string{"<b>Playful</b>"},
		"nested": map[string]any{"city": "<i>Denver</i>"},
		"count":  3,
	}
	s.Apply(payload)

	if payload["notes"] != "He loves  walks" {
		t.Fatalf("notes = %q", payload["notes"])
	}
	if got := payload["traits"].([]string)[0]; got != "Playful" {
		t.Fatalf("traits = %q", got)
	}
	if got := payload["nested"].(map[string]any)["city"]; got != "Denver" {
		t.Fatalf("city = %q", got)
	}
	if payload["count"] != 3 {
		t.Fatal("non-string value changed")
	}
}
