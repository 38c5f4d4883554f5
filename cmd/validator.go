package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/ops"
)

var validatorCmd = &cobra.Command{
	Use:   "validator",
	Short: "Manage an Ethereum validator node",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var validatorUpCmd = &cobra.Command{
	Use:   "up [config]",
	Short: "Deploy a validator node",
	Long: `Deploy an Ethereum validator node on the machine
described by the configuration file.

By default the command expects a "validator.yml"
config file in the current directory. You may
override this by passing a path to the configuration
file as a CLI argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		opts := []ops.Option{
			ops.WithLogger(&logger),
		}

		// Use manual override for config path if provided.
		if len(args) == 1 {
			opts = append(opts, ops.WithConfigPath(args[0]))
		}

		return ops.Deploy(opts...)
	},
}

var validatorDownCmd = &cobra.Command{
	Use:   "down [config]",
	Short: "Stop a validator node",
	Long: `Stop the node processes of an Ethereum validator.
Chain data is left in place, so the node can be
deployed again later without a full resync.

By default the command expects a "validator.yml"
config file in the current directory. You may
override this by passing a path to the configuration
file as a CLI argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		opts := []ops.Option{
			ops.WithLogger(&logger),
		}

		// Use manual override for config path if provided.
		if len(args) == 1 {
			opts = append(opts, ops.WithConfigPath(args[0]))
		}

		return ops.Teardown(opts...)
	},
}

var validatorStatusCmd = &cobra.Command{
	Use:   "status [config]",
	Short: "Show the state of a validator node",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		opts := []ops.Option{
			ops.WithLogger(&logger),
		}

		// Use manual override for config path if provided.
		if len(args) == 1 {
			opts = append(opts, ops.WithConfigPath(args[0]))
		}

		status, err := ops.Status(opts...)
		if err != nil {
			return err
		}

		fmt.Print(status)

		return nil
	},
}

func init() {
	validatorCmd.AddCommand(validatorUpCmd)
	validatorCmd.AddCommand(validatorDownCmd)
	validatorCmd.AddCommand(validatorStatusCmd)

	rootCmd.AddCommand(validatorCmd)
}
