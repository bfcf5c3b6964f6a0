package figure

type config struct {
	wrapperClass string
	values       map[string]interface{}
}

type Option func(*config)

// WithWrapperClass sets the class attribute of the element wrapping a figure group.
func WithWrapperClass(class string) Option {
	return func(c *config) {
		c.wrapperClass = class
	}
}

// WithConfig hands free-form settings to the extension. They are kept but
// not interpreted by the figure rule itself.
func WithConfig(values map[string]interface{}) Option {
	return func(c *config) {
		if c.values == nil {
			c.values = make(map[string]interface{}, len(values))
		}

		for k, v := range values {
			c.values[k] = v
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
