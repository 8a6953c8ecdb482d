package submit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

type acceptedResponse struct {
	OK            bool   `json:"ok"`
	ApplicationID string `json:"application_id"`
	EventID       string `json:"event_id"`
}

type errorResponse struct {
	Error    string            `json:"error"`
	Missing  []string          `json:"missing,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Issues   []schema.Issue    `json:"issues,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed
// Options value. The pipeline (and so the rate-limit window state) is built
// once and shared by every request.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	pipeline := intake.New(opts.Form,
		intake.WithWriter(opts.Writer),
		intake.WithGuard(opts.Guard),
		intake.WithLogger(opts.Logger),
	)
	return handlerForPipeline(pipeline, opts)
}

func handlerForPipeline(pipeline *intake.Pipeline, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method_not_allowed"})
			return
		}

		clientID := opts.ClientID(r)

		// The rate stage runs before the body is read so malformed floods
		// still count against the window.
		if res := pipeline.Admit(clientID); res.Status == intake.StatusRateLimited {
			w.Header().Set("Retry-After", strconv.Itoa(res.RetryAfter))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate_limited"})
			return
		}

		var raw map[string]any
		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
			return
		}

		writeResult(w, pipeline.Run(r.Context(), clientID, raw))
	})
}

func writeResult(w http.ResponseWriter, res intake.Result) {
	switch res.Status {
	case intake.StatusAccepted:
		writeJSON(w, http.StatusOK, acceptedResponse{
			OK:            true,
			ApplicationID: res.Receipt.ApplicationID,
			EventID:       res.Receipt.EventID,
		})
	case intake.StatusSilentlyAccepted:
		// Honeypot tripped: answer with the success shape and nil IDs so
		// bots cannot tell they were caught.
		writeJSON(w, http.StatusOK, acceptedResponse{
			OK:            true,
			ApplicationID: uuid.Nil.String(),
			EventID:       uuid.Nil.String(),
		})
	case intake.StatusMissingRequired:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "missing_required",
			Missing: res.Missing,
			Labels:  res.Labels,
		})
	case intake.StatusValidationFailed:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    "validation_failed",
			Issues:   res.Issues,
			Warnings: res.Warnings,
		})
	case intake.StatusNotConfigured:
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "not_configured"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "insert_failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
