package hyperbolic

import (
	"time"

	"github.com/rs/zerolog"
)

// Options contains the configuration for the API client.
type Options struct {
	Logger  *zerolog.Logger
	BaseURL string
	APIKey  string
	Timeout time.Duration
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
		BaseURL: DefaultBaseURL,
		Timeout: time.Second * 30,
		Logger:  &logger,
	}
}

// WithLogger allows to use a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(options *Options) error {
		options.Logger = logger
		return nil
	}
}

// WithBaseURL overrides the default API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(options *Options) error {
		options.BaseURL = baseURL
		return nil
	}
}

// WithAPIKey sets the API key directly instead of reading
// it from the environment.
func WithAPIKey(apiKey string) Option {
	return func(options *Options) error {
		options.APIKey = apiKey
		return nil
	}
}

// WithTimeout allows to set a custom request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(options *Options) error {
		options.Timeout = timeout
		return nil
	}
}
