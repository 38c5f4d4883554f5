package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var terminateCmd = &cobra.Command{
	Use:   "terminate [instance]",
	Short: "Terminate a rented GPU instance",
	Long: `Terminate a rented GPU instance. Use with caution as
this will destroy all data stored on the instance and
cannot be undone.

The instance name can be obtained from the "instances"
command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		if err := client.Terminate(context.Background(), args[0]); err != nil {
			return err
		}

		logger.Info().Str("instance", args[0]).Msg("Instance terminated")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(terminateCmd)
}
