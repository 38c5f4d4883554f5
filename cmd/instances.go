package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List rented GPU instances",
	Long: `List the GPU instances currently rented by your
Hyperbolic account together with their status and
SSH access details.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		instances, err := client.Instances(context.Background())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(instances, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(instancesCmd)
}
