package exchange

import (
	"crypto/tls"

	"github.com/rs/zerolog"
)

type Option func(*Options)

type Options struct {
	Logger    zerolog.Logger
	TLS       *tls.Config
	UserAgent string
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithTLSConfig sets the TLS configuration of the identity client instead of
// loading it from the credentials.
func WithTLSConfig(config *tls.Config) Option {
	return func(o *Options) {
		o.TLS = config
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		o.UserAgent = userAgent
	}
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
