package ops

import (
	"github.com/hyperboliclabs/agentkit/pkg/sshx"
	"github.com/hyperboliclabs/agentkit/pkg/validator"
)

// Status reports the state of the validator node processes described
// by the configuration file.
func Status(options ...Option) (string, error) {
	// Fetch the options for this operation.
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return "", err
	}

	config, err := validator.LoadConfig(opts.ConfigPath)
	if err != nil {
		return "", err
	}

	client, err := sshx.NewClient(&config.SSH, sshx.WithLogger(opts.Logger))
	if err != nil {
		return "", err
	}

	if err := client.Connect(); err != nil {
		return "", err
	}
	defer client.Disconnect()

	engine, err := validator.New(config, client, validator.WithLogger(opts.Logger))
	if err != nil {
		return "", err
	}

	return engine.Status()
}
