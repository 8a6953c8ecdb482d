package upload

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/rmgdri/go-intake/internal/objectstore"
	"github.com/rmgdri/go-intake/pkg/guard"
)

// ClientIDFunc derives the rate-limiting identity for a request.
type ClientIDFunc func(r *http.Request) string

// Storage is the slice of object storage the upload endpoints need. It is
// satisfied by *objectstore.Client. A nil Storage makes the endpoints answer
// 503 upload_not_configured.
type Storage interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	PublicURL(key string) string
}

const (
	// DefaultRateLimit is generous: photos come in batches.
	DefaultRateLimit = 20
	// DefaultMaxFileBytes caps direct uploads at 10 MiB.
	DefaultMaxFileBytes = 10 << 20
	// DefaultMaxFilenameLen bounds client-supplied file names.
	DefaultMaxFilenameLen = 200
)

// DefaultAllowedContentTypes lists the accepted image types.
var DefaultAllowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/heic",
	"image/heif",
}

type Options struct {
	// RoutePath is the presign endpoint; DirectRoutePath accepts the file
	// body itself.
	RoutePath       string
	DirectRoutePath string

	Storage Storage
	// Folder prefixes generated object keys.
	Folder string

	RateLimit           int
	MaxFileBytes        int64
	MaxFilenameLen      int
	AllowedContentTypes []string

	Logger   *zap.Logger
	ClientID ClientIDFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:           "/api/forms/owner-surrender/upload",
		Folder:              objectstore.SurrenderPhotoFolder,
		RateLimit:           DefaultRateLimit,
		MaxFileBytes:        DefaultMaxFileBytes,
		MaxFilenameLen:      DefaultMaxFilenameLen,
		AllowedContentTypes: append([]string{}, DefaultAllowedContentTypes...),
		Logger:              zap.NewNop(),
		ClientID:            guard.ClientID,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/forms/owner-surrender/upload"
	}
	if opts.DirectRoutePath == "" {
		opts.DirectRoutePath = opts.RoutePath + "/direct"
	}
	if opts.Folder == "" {
		opts.Folder = objectstore.SurrenderPhotoFolder
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = DefaultMaxFileBytes
	}
	if opts.MaxFilenameLen <= 0 {
		opts.MaxFilenameLen = DefaultMaxFilenameLen
	}
	if len(opts.AllowedContentTypes) == 0 {
		opts.AllowedContentTypes = append([]string{}, DefaultAllowedContentTypes...)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ClientID == nil {
		opts.ClientID = guard.ClientID
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithDirectRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DirectRoutePath = path
	}
}

func WithStorage(s Storage) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Storage = s
	}
}

func WithFolder(folder string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Folder = folder
	}
}

func WithRateLimit(max int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RateLimit = max
	}
}

func WithMaxFileBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxFileBytes = n
	}
}

func WithMaxFilenameLen(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxFilenameLen = n
	}
}

func WithAllowedContentTypes(types []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if types == nil {
			o.AllowedContentTypes = nil
			return
		}
		o.AllowedContentTypes = append([]string{}, types...)
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithClientIDFunc(fn ClientIDFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if fn != nil {
			o.ClientID = fn
		}
	}
}
