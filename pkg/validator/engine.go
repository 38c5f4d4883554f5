package validator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

// Runner is the transport used to drive the node. It is implemented
// by the sshx client.
type Runner interface {
	Run(command string) (*sshx.Result, error)
	Do(cmd sshx.Cmd) error
	Upload(dst string, src io.Reader) error
}

// Engine provisions and manages an Ethereum validator node.
type Engine struct {
	*Options

	config *Config
	runner Runner
}

// New verifies the configuration and creates a new engine.
func New(config *Config, runner Runner, options ...Option) (*Engine, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	if err := config.Verify(); err != nil {
		return nil, err
	}

	return &Engine{
		Options: opts,
		config:  config,
		runner:  runner,
	}, nil
}

// Write forwards streamed command output to the logger.
func (e *Engine) Write(p []byte) (int, error) {
	if out := strings.TrimSpace(string(p)); out != "" {
		e.Logger.Debug().Msg(out)
	}

	return len(p), nil
}

// SetupEnvironment prepares the data directory and fetches the prysm
// launcher onto the node.
func (e *Engine) SetupEnvironment() error {
	e.Logger.Info().Msg("Setting up node environment")

	return e.do(
		fmt.Sprintf("mkdir -p %s", e.config.DataDir),
		fmt.Sprintf("cd %s && curl -fsSLO https://raw.githubusercontent.com/prysmaticlabs/prysm/master/prysm.sh", e.config.DataDir),
		fmt.Sprintf("chmod +x %s/prysm.sh", e.config.DataDir),
	)
}

// InstallExecutionClient installs geth from the upstream package
// repository.
func (e *Engine) InstallExecutionClient() error {
	e.Logger.Info().Msg("Installing execution client")

	return e.do(
		"sudo add-apt-repository -y ppa:ethereum/ethereum",
		"sudo apt-get update -y",
		"sudo apt-get install -y ethereum",
	)
}

// GenerateJWT creates the secret that authenticates the execution and
// consensus clients to each other and uploads it to the node.
func (e *Engine) GenerateJWT() error {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}

	e.Logger.Info().Msg("Uploading JWT secret")

	dst := path.Join(e.config.DataDir, "jwt.hex")

	return e.runner.Upload(dst, strings.NewReader(hex.EncodeToString(secret)))
}

// SetupDepositor installs the staking deposit CLI used to generate
// validator keys and deposit data.
func (e *Engine) SetupDepositor() error {
	e.Logger.Info().Msg("Installing staking deposit CLI")

	return e.do(
		fmt.Sprintf("cd %s && test -d staking-deposit-cli || git clone https://github.com/ethereum/staking-deposit-cli.git", e.config.DataDir),
		fmt.Sprintf("cd %s/staking-deposit-cli && sudo apt-get install -y python3-pip && pip3 install -r requirements.txt", e.config.DataDir),
	)
}

// StartNode launches the execution and consensus clients in the
// background.
func (e *Engine) StartNode() error {
	e.Logger.Info().Msg("Starting execution and consensus clients")

	datadir := e.config.DataDir

	return e.do(
		fmt.Sprintf("nohup geth --%s --http --http.api eth,net,engine,admin --datadir %s/geth --authrpc.jwtsecret %s/jwt.hex > %s/geth.log 2>&1 &", e.config.Network, datadir, datadir, datadir),
		fmt.Sprintf("cd %s && nohup ./prysm.sh beacon-chain --%s --execution-endpoint=http://localhost:8551 --jwt-secret=jwt.hex --accept-terms-of-use > beacon.log 2>&1 &", datadir, e.config.Network),
	)
}

// StartValidator attaches the validator client to the running beacon
// node.
func (e *Engine) StartValidator() error {
	e.Logger.Info().Msg("Starting validator client")

	return e.do(
		fmt.Sprintf("cd %s && nohup ./prysm.sh validator --%s --wallet-dir %s --accept-terms-of-use > validator.log 2>&1 &", e.config.DataDir, e.config.Network, e.config.KeysPath),
	)
}

// Deploy runs the full provisioning sequence on the node.
func (e *Engine) Deploy() error {
	steps := []func() error{
		e.SetupEnvironment,
		e.InstallExecutionClient,
		e.GenerateJWT,
		e.SetupDepositor,
		e.StartNode,
		e.StartValidator,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

// Status reports which of the node processes are currently running.
func (e *Engine) Status() (string, error) {
	var status strings.Builder

	for _, process := range []string{"geth", "beacon-chain", "validator"} {
		result, err := e.runner.Run(fmt.Sprintf("pgrep -f %s >/dev/null && echo running || echo stopped", process))
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&status, "%s: %s\n", process, strings.TrimSpace(result.Output))
	}

	return status.String(), nil
}

// Stop terminates the node processes.
func (e *Engine) Stop() error {
	e.Logger.Info().Msg("Stopping node processes")

	return e.do(
		"pkill -f validator || true",
		"pkill -f beacon-chain || true",
		"pkill geth || true",
	)
}

// do runs a sequence of commands on the node, streaming output into
// the logger, and stops at the first failure.
func (e *Engine) do(commands ...string) error {
	for _, command := range commands {
		e.Logger.Debug().Str("cmd", command).Msg("Running command")

		if err := e.runner.Do(sshx.Cmd{
			Cmd:    command,
			Shell:  true,
			Stdout: e,
			Stderr: e,
		}); err != nil {
			return fmt.Errorf("command %q failed: %w", command, err)
		}
	}

	return nil
}
