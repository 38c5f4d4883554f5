package sshx

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"

	"golang.org/x/crypto/ssh"
)

// Config is a flat configuration for an SSH connection.
type Config struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	KeyFile     string `yaml:"key-file"`
	Key         string `yaml:"key"`
	Passphrase  string `yaml:"passphrase"`
	Fingerprint string `yaml:"fingerprint"`
}

// state tracks the lifecycle of a client. A client starts out
// unconnected, connects at most once and ends up either failed or
// disconnected. Both final states are terminal.
type state int

const (
	stateUnconnected state = iota
	stateConnected
	stateFailed
	stateDisconnected
)

// Result is the outcome of a single remote command. The output holds
// stdout and stderr merged in the order the chunks arrived.
type Result struct {
	Output   string
	ExitCode int
}

// Client executes commands on a single remote host. A client owns
// exactly one connection and one output buffer per command, so a
// caller invoking it from multiple goroutines must serialize the
// calls itself.
type Client struct {
	*Options

	address      string
	clientConfig *ssh.ClientConfig

	client  *ssh.Client
	session *ssh.Session
	state   state
}

// NewClient validates the connection configuration and returns an
// unconnected client. The private key file, if any, is read at this
// point, so missing credentials surface before any network activity.
func NewClient(config *Config, options ...Option) (*Client, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	client := &Client{
		Options: opts,
	}

	// Set default connection options.
	if config.Port == 0 {
		config.Port = 22
	}
	if config.Port < 1 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", config.Port)
	}
	if config.User == "" {
		config.User = "root"
	}

	client.clientConfig, err = client.normalizeConfig(config)
	if err != nil {
		return nil, err
	}
	client.address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	return client, nil
}

// Connect establishes the connection to the remote host. It is never
// retried internally. On failure the client is unusable and only
// Disconnect may still be called.
func (client *Client) Connect() error {
	if client.state != stateUnconnected {
		return &ConnectionError{Err: errors.New("client is not in unconnected state")}
	}

	sshClient, err := ssh.Dial("tcp", client.address, client.clientConfig)
	if err != nil {
		client.state = stateFailed
		return &ConnectionError{Err: err}
	}

	client.client = sshClient
	client.state = stateConnected
	client.Logger.Debug().Str("address", client.address).Msg("Connected")

	return nil
}

// Run executes a single command on the connected host and collects
// stdout and stderr into one buffer in arrival order. Callers that
// need the streams separated must not use this method. A non-zero
// exit status of the remote command is reported via the result, not
// as an error.
func (client *Client) Run(command string) (*Result, error) {
	if client.state != stateConnected {
		return nil, &CommandExecutionError{Err: errors.New("no active SSH connection, connect first")}
	}

	session, err := client.client.NewSession()
	if err != nil {
		return nil, &CommandExecutionError{Err: err}
	}

	client.session = session
	defer func() {
		session.Close()
		client.session = nil
	}()

	output, err := session.CombinedOutput(command)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return &Result{
				Output:   string(output),
				ExitCode: exitErr.ExitStatus(),
			}, nil
		}

		return nil, &CommandExecutionError{Err: err}
	}

	return &Result{Output: string(output)}, nil
}

// Do executes a command and streams its output into the writers of
// the command. It is intended for long-running provisioning commands
// where buffering the output is undesirable.
func (client *Client) Do(cmd Cmd) error {
	if client.state != stateConnected {
		return &CommandExecutionError{Err: errors.New("no active SSH connection, connect first")}
	}

	session, err := client.client.NewSession()
	if err != nil {
		return &CommandExecutionError{Err: err}
	}

	client.session = session
	defer func() {
		session.Close()
		client.session = nil
	}()

	session.Stdin = cmd.Stdin
	session.Stdout = cmd.Stdout
	session.Stderr = cmd.Stderr

	return session.Run(cmd.String())
}

// Connected indicates whether the client currently holds an open
// connection.
func (client *Client) Connected() bool {
	return client.state == stateConnected
}

// Disconnect closes any open execution channel and then the
// connection itself. It is safe to call on every path, including
// after a failed Connect, and may be called more than once.
func (client *Client) Disconnect() error {
	if client.session != nil {
		client.session.Close()
		client.session = nil
	}

	var err error
	if client.client != nil {
		err = client.client.Close()
		client.client = nil
	}

	client.state = stateDisconnected

	return err
}

// normalizeConfig creates a new client config that is compatible with the standard library.
func (client *Client) normalizeConfig(config *Config) (*ssh.ClientConfig, error) {
	// Load the private key. A key that is specified directly takes
	// precedence over a key file.
	key := config.Key
	if key == "" && config.KeyFile != "" {
		// Resolve the home directory if necessary.
		if config.KeyFile[0] == '~' {
			userInfo, err := user.Current()
			if err != nil {
				return nil, err
			}
			config.KeyFile = userInfo.HomeDir + config.KeyFile[1:]
		}

		keyBytes, err := os.ReadFile(config.KeyFile)
		if err != nil {
			return nil, err
		}
		key = string(keyBytes)
	}

	// Configure the authentication method, which may either be a
	// password, a private key or an encrypted private key. Please
	// note that a private key will always take precedence over a
	// password.
	var authMethod ssh.AuthMethod
	if key != "" {
		// Use passphrase to decrypt the private key.
		if config.Passphrase != "" {
			signer, err := ssh.ParsePrivateKeyWithPassphrase([]byte(key), []byte(config.Passphrase))
			if err != nil {
				return nil, err
			}
			authMethod = ssh.PublicKeys(signer)
		} else {
			signer, err := ssh.ParsePrivateKey([]byte(key))
			if err != nil {
				return nil, err
			}
			authMethod = ssh.PublicKeys(signer)
		}
	} else if config.Password != "" {
		// Fall back to password authentication.
		authMethod = ssh.Password(config.Password)
		client.Logger.Warn().Msg("Using password authentication is insecure!")
		client.Logger.Warn().Msg("Please consider using public key authentication!")
	} else {
		return nil, errors.New("no authentication method specified")
	}

	// Configure host key verification.
	var hostKeyCallback ssh.HostKeyCallback
	if config.Fingerprint != "" {
		hostKeyCallback = func(hostname string, remote net.Addr, pubKey ssh.PublicKey) error {
			fingerprint := ssh.FingerprintSHA256(pubKey)
			if config.Fingerprint != fingerprint {
				return fmt.Errorf("fingerprint mismatch: server fingerprint: %s", fingerprint)
			}
			return nil
		}
	} else {
		client.Logger.Warn().Msg("Skipping host key verification is insecure!")
		client.Logger.Warn().Msg("This allows for person-in-the-middle attacks!")
		client.Logger.Warn().Msg("Please consider using fingerprint verification!")
		hostKeyCallback = ssh.InsecureIgnoreHostKey()
	}

	return &ssh.ClientConfig{
		Auth:            []ssh.AuthMethod{authMethod},
		HostKeyCallback: hostKeyCallback,
		User:            config.User,
		Timeout:         client.Timeout,
	}, nil
}
