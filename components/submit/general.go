package submit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rmgdri/go-intake/pkg/forms/general"
	"github.com/rmgdri/go-intake/pkg/guard"
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// GeneralRoutePath is the shared contact-style endpoint.
const GeneralRoutePath = "/api/intake/submit"

// GeneralHandler serves the shared intake endpoint: the payload carries a
// type discriminator and each type validates against its own sub-schema, but
// every type counts against one rate-limit window and honeypot.
func GeneralHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	if opts.RoutePath == "" {
		opts.RoutePath = GeneralRoutePath
	}

	shared := guard.New(general.RateLimit, guard.WithHoneypotField(general.HoneypotField))
	if opts.Guard != nil {
		shared = opts.Guard
	}

	pipelines := make(map[string]*intake.Pipeline, len(general.Types))
	for _, formType := range general.Types {
		form, _ := general.Form(formType)
		pipelines[formType] = intake.New(form,
			intake.WithWriter(opts.Writer),
			intake.WithGuard(shared),
			intake.WithLogger(opts.Logger),
		)
	}

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

		if d := shared.CheckRate(clientID); d.Verdict == guard.RateLimited {
			w.Header().Set("Retry-After", strconv.Itoa(d.RetryAfter))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate_limited"})
			return
		}

		var raw map[string]any
		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
			return
		}

		formType, _ := raw["type"].(string)
		pipeline, ok := pipelines[formType]
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:  "validation_failed",
				Issues: []schema.Issue{{Path: "type", Message: "unknown intake type"}},
			})
			return
		}

		// The shared guard already admitted this request; the per-type
		// pipeline only runs the remaining stages.
		writeResult(w, pipeline.Run(r.Context(), clientID, raw))
	})
}

// RegisterGeneralRoutes registers the shared intake handler under basePath.
func RegisterGeneralRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	opts := NewOptions(fns...)
	if opts.RoutePath == "" {
		opts.RoutePath = GeneralRoutePath
	}
	handler := GeneralHandler(func(o *Options) { *o = opts })
	return registerHandler(mux, basePath, opts.RoutePath, handler)
}
