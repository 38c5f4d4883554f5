package actions

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

// runner is the subset of the SSH client driven by the remote actions.
type runner interface {
	Connect() error
	Run(command string) (*sshx.Result, error)
	Disconnect() error
}

// Remote exposes SSH connectivity as agent actions. It holds at most
// one session at a time, mirroring how an agent drives a single
// rented instance. A new connection replaces the previous one.
type Remote struct {
	*Options

	dial   func(config *sshx.Config) (runner, error)
	client runner
	host   string
	user   string
}

// NewRemote creates the holder for the SSH-backed actions.
func NewRemote(options ...Option) (*Remote, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	remote := &Remote{Options: opts}
	remote.dial = func(config *sshx.Config) (runner, error) {
		client, err := sshx.NewClient(config, sshx.WithLogger(remote.Logger))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	return remote, nil
}

// Connect establishes a new session, replacing any previous one.
func (r *Remote) Connect(config *sshx.Config) error {
	// Close the existing session first. A session is terminal once
	// disconnected, so a fresh client is constructed either way.
	r.Disconnect()

	client, err := r.dial(config)
	if err != nil {
		return err
	}
	if err := client.Connect(); err != nil {
		return err
	}

	r.client = client
	r.host = config.Host
	r.user = config.User

	return nil
}

// Execute runs a command on the connected host.
func (r *Remote) Execute(command string) (*sshx.Result, error) {
	if r.client == nil {
		return nil, errors.New("no active SSH connection, use ssh_connect first")
	}
	return r.client.Run(command)
}

// Status describes the current connection.
func (r *Remote) Status() string {
	if r.client == nil {
		return "Not connected"
	}
	return fmt.Sprintf("Connected to %s as %s", r.host, r.user)
}

// Disconnect closes the current session, if any.
func (r *Remote) Disconnect() {
	if r.client != nil {
		r.client.Disconnect()
		r.client = nil
		r.host = ""
		r.user = ""
	}
}

// RegisterRemote adds the SSH connectivity actions.
func RegisterRemote(registry *Registry, remote *Remote) error {
	return registry.Register(
		&Action{
			Name:        "ssh_connect",
			Description: "Connect to a remote server over SSH. Requires host and username plus either password or private_key_path; port defaults to 22.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				host, err := requireArg(args, "host")
				if err != nil {
					return "", err
				}
				username, err := requireArg(args, "username")
				if err != nil {
					return "", err
				}

				config := &sshx.Config{
					Host:     host,
					User:     username,
					Password: args["password"],
					KeyFile:  args["private_key_path"],
				}
				if rawPort := args["port"]; rawPort != "" {
					port, err := strconv.Atoi(rawPort)
					if err != nil {
						return "", fmt.Errorf("port must be a number: %w", err)
					}
					config.Port = port
				}

				if err := remote.Connect(config); err != nil {
					return "", err
				}
				return fmt.Sprintf("Successfully connected to %s as %s", host, username), nil
			},
		},
		&Action{
			Name:        "remote_shell",
			Description: "Execute a shell command on the connected server and return its combined output. Requires an active SSH connection.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				command, err := requireArg(args, "command")
				if err != nil {
					return "", err
				}

				result, err := remote.Execute(command)
				if err != nil {
					return "", err
				}
				if result.ExitCode != 0 {
					return fmt.Sprintf("%s\n[command exited with code %d]", result.Output, result.ExitCode), nil
				}
				return result.Output, nil
			},
		},
		&Action{
			Name:        "ssh_status",
			Description: "Show whether an SSH connection is currently active and to which host.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				return remote.Status(), nil
			},
		},
		&Action{
			Name:        "ssh_disconnect",
			Description: "Close the active SSH connection, if any.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				remote.Disconnect()
				return "Disconnected", nil
			},
		},
	)
}
