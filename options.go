package chainmap

import "go.uber.org/zap"

// Option configures a Map at construction.
type Option func(*config)

type config struct {
	logger *zap.Logger
	name   string
}

// WithLogger sets the logger used for resize diagnostics. Without it the map
// logs to zap.L() as it was when the map was created.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName tags every log entry of the map with map=name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.L()}
	for _, opt := range opts {
		opt(&c)
	}
	c.logger = c.logger.Named("chainmap")
	if c.name != "" {
		c.logger = c.logger.With(zap.String("map", c.name))
	}
	return c
}
