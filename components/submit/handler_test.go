package submit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rmgdri/go-intake/pkg/catalog"
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

type stubWriter struct {
	calls int
	fail  bool
}

func (w *stubWriter) Write(ctx context.Context, sub intake.Submission) (intake.Receipt, error) {
	w.calls++
	if w.fail {
		return intake.Receipt{}, errors.New("db down")
	}
	return intake.Receipt{
		ApplicationID: fmt.Sprintf("app-%d", w.calls),
		EventID:       fmt.Sprintf("ev-%d", w.calls),
	}, nil
}

func testForm() intake.Form {
	return intake.Form{
		Key:     "test-form",
		Version: 1,
		Catalog: catalog.Catalog{
			{Key: "name", Label: "Your Name", Required: true, Type: catalog.FieldTypeText},
			{Key: "email", Label: "Email Address", Required: true, Type: catalog.FieldTypeEmail},
		},
		Schema: &schema.Schema{Fields: []schema.FieldRule{
			schema.String("name"),
			schema.Email("email"),
		}},
		HoneypotField: "website",
		RateLimit:     100,
		EmailField:    "email",
		NameFields:    []string{"name"},
	}
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/forms/test-form/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return m
}

func TestSubmitAccepted(t *testing.T) {
	w := &stubWriter{}
	h := Handler(WithForm(testForm()), WithWriter(w))

	rec := postJSON(t, h, `{"name":"Jordan","email":"jordan@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["ok"] != true || body["application_id"] != "app-1" || body["event_id"] != "ev-1" {
		t.Fatalf("unexpected body: %v", body)
	}
	if w.calls != 1 {
		t.Fatalf("writer calls = %d", w.calls)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := Handler(WithForm(testForm()), WithWriter(&stubWriter{}))
	req := httptest.NewRequest(http.MethodGet, "/api/forms/test-form/submit", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("Allow = %q", allow)
	}
}

func TestInvalidJSON(t *testing.T) {
	h := Handler(WithForm(testForm()), WithWriter(&stubWriter{}))
	rec := postJSON(t, h, `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "invalid_json" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestMissingRequiredIncludesLabels(t *testing.T) {
	w := &stubWriter{}
	h := Handler(WithForm(testForm()), WithWriter(w))

	rec := postJSON(t, h, `{"name":"Jordan"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "missing_required" {
		t.Fatalf("error = %v", body["error"])
	}
	missing, _ := body["missing"].([]any)
	if len(missing) != 1 || missing[0] != "email" {
		t.Fatalf("missing = %v", missing)
	}
	labels, _ := body["labels"].(map[string]any)
	if labels["email"] != "Email Address" {
		t.Fatalf("labels = %v", labels)
	}
	if w.calls != 0 {
		t.Fatal("writer called on rejected submission")
	}
}

func TestValidationFailed(t *testing.T) {
	h := Handler(WithForm(testForm()), WithWriter(&stubWriter{}))
	rec := postJSON(t, h, `{"name":"Jordan","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "validation_failed" {
		t.Fatalf("error = %v", body["error"])
	}
	issues, _ := body["issues"].([]any)
	if len(issues) == 0 {
		t.Fatal("no issues reported")
	}
}

func TestHoneypotAnswersSuccessShape(t *testing.T) {
	w := &stubWriter{}
	h := Handler(WithForm(testForm()), WithWriter(w))

	rec := postJSON(t, h, `{"name":"Bot","email":"bot@example.com","website":"https://spam.example"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
	if body["application_id"] != "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("application_id = %v", body["application_id"])
	}
	if w.calls != 0 {
		t.Fatal("honeypot submission was persisted")
	}
}

func TestRateLimited(t *testing.T) {
	form := testForm()
	form.RateLimit = 2
	h := Handler(WithForm(form), WithWriter(&stubWriter{}))

	for i := 0; i < 2; i++ {
		if rec := postJSON(t, h, `{"name":"J","email":"j@example.com"}`); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec := postJSON(t, h, `{"name":"J","email":"j@example.com"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "rate_limited" {
		t.Fatalf("error = %v", body["error"])
	}
	retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	if err != nil || retryAfter < 1 || retryAfter > 60 {
		t.Fatalf("Retry-After = %q", rec.Header().Get("Retry-After"))
	}
}

func TestNilWriterAnswersNotConfigured(t *testing.T) {
	h := Handler(WithForm(testForm()))
	rec := postJSON(t, h, `{"name":"Jordan","email":"jordan@example.com"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "not_configured" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestWriterFailureAnswersInsertFailed(t *testing.T) {
	h := Handler(WithForm(testForm()), WithWriter(&stubWriter{fail: true}))
	rec := postJSON(t, h, `{"name":"Jordan","email":"jordan@example.com"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "insert_failed" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGeneralContactSubmission(t *testing.T) {
	w := &stubWriter{}
	h := GeneralHandler(WithWriter(w))

	rec := postJSON(t, h, `{"type":"contact","website":"","payload":{"message":"Hello"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["ok"] != true || body["application_id"] == "" || body["event_id"] == "" {
		t.Fatalf("body = %v", body)
	}
	if w.calls != 1 {
		t.Fatalf("writer calls = %d", w.calls)
	}
}

func TestGeneralUnknownType(t *testing.T) {
	h := GeneralHandler(WithWriter(&stubWriter{}))
	rec := postJSON(t, h, `{"type":"purchase","payload":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "validation_failed" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGeneralSharedRateLimitAcrossTypes(t *testing.T) {
	h := GeneralHandler(WithWriter(&stubWriter{}))

	bodies := []string{
		`{"type":"contact","payload":{"message":"hi"}}`,
		`{"type":"adopt","payload":{}}`,
		`{"type":"foster","payload":{}}`,
		`{"type":"volunteer","payload":{}}`,
		`{"type":"surrender","payload":{}}`,
		`{"type":"contact","payload":{"message":"hi again"}}`,
	}
	for i, body := range bodies {
		if rec := postJSON(t, h, body); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, body = %s", i, rec.Code, rec.Body.String())
		}
	}
	rec := postJSON(t, h, `{"type":"adopt","payload":{}}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("seventh request status = %d", rec.Code)
	}
}
