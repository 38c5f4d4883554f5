package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/actions"
	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed to agents",
	Long: `List the names and descriptions of the tools that this
toolkit exposes to agent frameworks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		registry, err := actions.NewRegistry(actions.WithLogger(&logger))
		if err != nil {
			return err
		}

		// The listing does not call the API, so a placeholder key
		// is fine when none is configured.
		client, err := hyperbolic.NewClient(hyperbolic.WithAPIKey("unused"), hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		remote, err := actions.NewRemote(actions.WithLogger(&logger))
		if err != nil {
			return err
		}

		if err := actions.RegisterHyperbolic(registry, client); err != nil {
			return err
		}
		if err := actions.RegisterRemote(registry, remote); err != nil {
			return err
		}
		if err := actions.RegisterWallet(registry); err != nil {
			return err
		}

		for _, action := range registry.All() {
			fmt.Printf("%-24s %s\n", action.Name, action.Description)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
