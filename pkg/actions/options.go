package actions

import "github.com/rs/zerolog"

// Options contains the configuration for an action registry.
type Options struct {
	Logger *zerolog.Logger
}

// Option applies a configuration option
// for the execution of an operation.
type Option func(options *Options) error

// Apply applies the option functions to the current set of options.
func (o *Options) Apply(options ...Option) (*Options, error) {
	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// GetDefaultOptions returns the default options
// for all operations of this library.
func GetDefaultOptions() *Options {
	logger := zerolog.Nop()

	return &Options{
		Logger: &logger,
	}
}

// WithLogger allows to use a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(options *Options) error {
		options.Logger = logger
		return nil
	}
}
