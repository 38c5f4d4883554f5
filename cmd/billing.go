package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the platform credit balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		balance, err := client.CurrentBalance(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("$%.2f\n", balance.USD())

		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the GPU rental spend history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		history, err := client.SpendHistory(context.Background())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(history, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
}
