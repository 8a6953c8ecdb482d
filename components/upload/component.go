package upload

import (
	"net/http"

	"github.com/rmgdri/go-intake/pkg/guard"
)

// Component bundles the presign and direct upload handlers behind one shared
// rate-limit window.
type Component struct {
	opts    Options
	presign http.Handler
	direct  http.Handler
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	limiter := guard.NewLimiter(opts.RateLimit)
	return &Component{
		opts:    opts,
		presign: HandlerWithOptions(opts, limiter),
		direct:  DirectHandlerWithOptions(opts, limiter),
	}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the presign handler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return c.presign
}

// DirectHandler returns the direct upload handler.
func (c *Component) DirectHandler() http.Handler {
	if c == nil {
		return DirectHandler()
	}
	return c.direct
}

// RegisterRoutes registers both upload routes under basePath on mux and
// returns the mounted presign pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	pattern, err := registerHandler(mux, basePath, c.opts.RoutePath, c.presign)
	if err != nil {
		return "", err
	}
	if _, err := registerHandler(mux, basePath, c.opts.DirectRoutePath, c.direct); err != nil {
		return "", err
	}
	return pattern, nil
}
