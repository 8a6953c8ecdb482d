package submit

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rmgdri/go-intake/pkg/guard"
	"github.com/rmgdri/go-intake/pkg/intake"
)

// ClientIDFunc derives the rate-limiting identity for a request.
type ClientIDFunc func(r *http.Request) string

// DefaultMaxBodyBytes bounds the JSON body of a submission.
const DefaultMaxBodyBytes = 1 << 20

type Options struct {
	// RoutePath defaults to /api/forms/<form key>/submit.
	RoutePath string
	// Form is the intake form this endpoint serves.
	Form intake.Form
	// Writer persists accepted submissions. Nil makes the endpoint answer
	// 503 not_configured after validation.
	Writer intake.Writer
	// Guard overrides the form's built-in abuse guard, typically to share a
	// limiter between endpoints.
	Guard *guard.Guard

	Logger       *zap.Logger
	MaxBodyBytes int64
	ClientID     ClientIDFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		MaxBodyBytes: DefaultMaxBodyBytes,
		ClientID:     guard.ClientID,
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
	if opts.RoutePath == "" && opts.Form.Key != "" {
		opts.RoutePath = "/api/forms/" + opts.Form.Key + "/submit"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.ClientID == nil {
		opts.ClientID = guard.ClientID
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithForm(form intake.Form) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Form = form
	}
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithWriter(w intake.Writer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Writer = w
	}
}

func WithGuard(g *guard.Guard) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = g
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

func WithMaxBodyBytes(n int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = n
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
