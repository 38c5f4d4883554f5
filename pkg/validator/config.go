package validator

import (
	"errors"
	"os"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

var (
	// Networks is a list of the supported Ethereum networks.
	Networks = []string{"mainnet", "holesky", "hoodi"}
)

// Clients selects the Ethereum clients that run on the node.
type Clients struct {
	Execution string `yaml:"execution"`
	Consensus string `yaml:"consensus"`
}

// Config describes the desired state of a validator node.
type Config struct {
	// Network is the Ethereum network the node joins.
	Network string `yaml:"network"`

	// DataDir holds chain data and secrets on the node, relative
	// to the home directory of the SSH user.
	DataDir string `yaml:"data-dir"`

	// KeysPath is the wallet directory holding the validator keys
	// on the node.
	KeysPath string `yaml:"keys-path"`

	// Clients selects the execution and consensus clients.
	Clients Clients `yaml:"clients"`

	// SSH describes the connection to the node.
	SSH sshx.Config `yaml:"ssh"`
}

// DefaultConfig returns the defaults merged into every loaded
// configuration file.
func DefaultConfig() *Config {
	return &Config{
		Network:  "holesky",
		DataDir:  "ethereum",
		KeysPath: "~/.ethvalidator/keys",
		Clients: Clients{
			Execution: "geth",
			Consensus: "prysm",
		},
	}
}

// Verify verifies the configuration file.
func (c *Config) Verify() error {
	if c == nil {
		return errors.New("configuration empty")
	}

	networkValid := false
	for _, network := range Networks {
		if network == c.Network {
			networkValid = true
			break
		}
	}
	if !networkValid {
		return errors.New("unsupported network must be one of: " + strings.Join(Networks, ", "))
	}

	if c.SSH.Host == "" {
		return errors.New("no node specified")
	}

	if c.Clients.Execution != "geth" {
		return errors.New("unimplemented execution client: " + c.Clients.Execution)
	}
	if c.Clients.Consensus != "prysm" {
		return errors.New("unimplemented consensus client: " + c.Clients.Consensus)
	}

	return nil
}

// LoadConfig loads the configuration file and fills unset fields with
// the defaults.
func LoadConfig(configFile string) (*Config, error) {
	configBytes, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	// Parse YAML config into struct.
	config := new(Config)
	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return nil, err
	}

	if err := mergo.Merge(config, DefaultConfig()); err != nil {
		return nil, err
	}

	return config, nil
}
