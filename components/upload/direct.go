package upload

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rmgdri/go-intake/internal/objectstore"
	"github.com/rmgdri/go-intake/pkg/guard"
)

type directResponse struct {
	OK        bool   `json:"ok"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
}

// multipartOverhead leaves room for part boundaries and headers on top of
// the file ceiling when bounding the request body.
const multipartOverhead = 1 << 20

// DirectHandler builds the direct upload handler with default options plus
// overrides.
func DirectHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return DirectHandlerWithOptions(opts, guard.NewLimiter(opts.RateLimit))
}

// DirectHandlerWithOptions accepts multipart/form-data with a file field and
// streams the part to object storage. A file of exactly MaxFileBytes is
// accepted; one byte over answers 413.
func DirectHandlerWithOptions(opts Options, limiter *guard.Limiter) http.Handler {
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

		r.Body = http.MaxBytesReader(w, r.Body, opts.MaxFileBytes+multipartOverhead)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_form_data"})
			return
		}
		defer file.Close()

		if header.Size > opts.MaxFileBytes {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error:    "file_too_large",
				MaxBytes: opts.MaxFileBytes,
			})
			return
		}
		if header.Filename == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing_file_name"})
			return
		}
		if len(header.Filename) > opts.MaxFilenameLen {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file_name_too_long"})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing_content_type"})
			return
		}
		if !contentTypeAllowed(contentType, opts.AllowedContentTypes) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid_content_type",
				Allowed: opts.AllowedContentTypes,
			})
			return
		}

		key := objectstore.ObjectKey(opts.Folder, header.Filename)
		if err := opts.Storage.Put(r.Context(), key, contentType, file); err != nil {
			opts.Logger.Error("direct upload failed", zap.String("key", key), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "upload_failed"})
			return
		}

		writeJSON(w, http.StatusOK, directResponse{
			OK:        true,
			Key:       key,
			PublicURL: opts.Storage.PublicURL(key),
		})
	})
}
