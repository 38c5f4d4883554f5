package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var rentGPUCount int

var rentCmd = &cobra.Command{
	Use:   "rent [cluster] [node]",
	Short: "Rent a GPU node from the marketplace",
	Long: `Rent a GPU node from the Hyperbolic marketplace. The
cluster and node names can be obtained from the
"gpus" command.

The command reads the API key from the environment
variable HYPERBOLIC_API_KEY.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		resp, err := client.Rent(context.Background(), hyperbolic.RentRequest{
			ClusterName: args[0],
			NodeName:    args[1],
			GPUCount:    rentGPUCount,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rentCmd.Flags().IntVarP(&rentGPUCount, "gpu-count", "g", 1, "number of GPUs to rent on the node")

	rootCmd.AddCommand(rentCmd)
}
