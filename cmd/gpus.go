package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var gpusCmd = &cobra.Command{
	Use:   "gpus",
	Short: "List available GPUs on the marketplace",
	Long: `List the GPU nodes that are currently available for
rent on the Hyperbolic marketplace, including their
hardware model and pricing.

The command reads the API key from the environment
variable HYPERBOLIC_API_KEY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		nodes, err := client.AvailableGPUs(context.Background())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(gpusCmd)
}
