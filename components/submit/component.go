package submit

import "net/http"

// Component is a small, extraction-friendly wrapper around one form's
// submission handler, its configuration, and routing helpers.
type Component struct {
	opts    Options
	handler http.Handler
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, handler: HandlerWithOptions(opts)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns the net/http handler for form submissions. The handler is
// built once, so repeated calls share rate-limit state.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return c.handler
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return registerHandler(mux, basePath, c.opts.RoutePath, c.handler)
}
