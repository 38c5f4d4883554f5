package validator

import (
	"github.com/rs/zerolog"
)

// Option is a functional option for the engine.
type Option func(options *Options) error

// Options contains the configuration of the engine.
type Options struct {
	// Logger is the logger of the engine.
	Logger *zerolog.Logger
}

// Apply applies the options to the configuration.
func (o *Options) Apply(options ...Option) (*Options, error) {
	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// GetDefaultOptions returns the default options.
func GetDefaultOptions() *Options {
	nopLogger := zerolog.Nop()

	return &Options{
		Logger: &nopLogger,
	}
}

// WithLogger allows to use a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(options *Options) error {
		options.Logger = logger

		return nil
	}
}
