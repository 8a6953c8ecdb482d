package upload

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rmgdri/go-intake/internal/objectstore"
	"github.com/rmgdri/go-intake/pkg/guard"
)

type presignRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

type presignResponse struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

type errorResponse struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Allowed  []string `json:"allowed,omitempty"`
	MaxBytes int64    `json:"max_bytes,omitempty"`
}

const notConfiguredMessage = "Photo uploads are not yet configured. Please contact us to submit photos by email."

// Handler builds the presign handler with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts, guard.NewLimiter(opts.RateLimit))
}

// HandlerWithOptions builds the presign handler from a pre-built Options
// value and a limiter, so the presign and direct routes can share one
// rate-limit window.
func HandlerWithOptions(opts Options, limiter *guard.Limiter) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !admit(w, r, opts, limiter) {
			return
		}
		if opts.Storage == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{
				Error:   "upload_not_configured",
				Message: notConfiguredMessage,
			})
			return
		}

		var req presignRequest
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
			return
		}

		if req.FileName == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing_file_name"})
			return
		}
		if len(req.FileName) > opts.MaxFilenameLen {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file_name_too_long"})
			return
		}
		if req.ContentType == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing_content_type"})
			return
		}
		if !contentTypeAllowed(req.ContentType, opts.AllowedContentTypes) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid_content_type",
				Allowed: opts.AllowedContentTypes,
			})
			return
		}

		key := objectstore.ObjectKey(opts.Folder, req.FileName)
		uploadURL, err := opts.Storage.PresignPut(r.Context(), key, req.ContentType)
		if err != nil {
			opts.Logger.Error("presign failed", zap.String("key", key), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "upload_url_failed",
				Message: "Failed to generate upload URL.",
			})
			return
		}

		writeJSON(w, http.StatusOK, presignResponse{
			UploadURL: uploadURL,
			PublicURL: opts.Storage.PublicURL(key),
			Key:       key,
		})
	})
}

// admit enforces POST-only and the shared rate limit.
func admit(w http.ResponseWriter, r *http.Request, opts Options, limiter *guard.Limiter) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method_not_allowed"})
		return false
	}
	if limiter != nil {
		if retryAfter, ok := limiter.Allow(opts.ClientID(r)); !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate_limited"})
			return false
		}
	}
	return true
}

func contentTypeAllowed(contentType string, allowed []string) bool {
	contentType = strings.ToLower(contentType)
	for _, a := range allowed {
		if contentType == a {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}
