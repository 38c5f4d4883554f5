package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
	"github.com/hyperboliclabs/agentkit/pkg/wallet"
)

var walletRPC string

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the Ethereum wallet",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var walletNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new Ethereum account",
	Long: `Generate a new Ethereum account and print its address
and private key. The private key is only printed once
and never stored, so save it securely.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := wallet.NewAccount()
		if err != nil {
			return err
		}

		fmt.Printf("Address:     %s\n", account.Address)
		fmt.Printf("Private key: %s\n", account.PrivateKey)

		return nil
	},
}

var walletBalanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the balance of an Ethereum address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := wallet.NewClient(walletRPC, wallet.WithLogger(&logger))
		if err != nil {
			return err
		}
		defer client.Close()

		balance, err := client.Balance(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s wei\n", balance)

		return nil
	},
}

var walletAttachCmd = &cobra.Command{
	Use:   "attach [address]",
	Short: "Attach an Ethereum address to the Hyperbolic account",
	Long: `Attach an Ethereum address to your Hyperbolic account
so that crypto deposits to the platform can be
credited to you.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		client, err := hyperbolic.NewClient(hyperbolic.WithLogger(&logger))
		if err != nil {
			return err
		}

		resp, err := client.AttachWallet(context.Background(), args[0])
		if err != nil {
			return err
		}

		logger.Info().Str("address", args[0]).Str("status", resp.Status).Msg("Wallet attached")

		return nil
	},
}

func init() {
	walletBalanceCmd.Flags().StringVarP(&walletRPC, "rpc", "r", "https://ethereum-rpc.publicnode.com", "Ethereum JSON-RPC endpoint")

	walletCmd.AddCommand(walletNewCmd)
	walletCmd.AddCommand(walletBalanceCmd)
	walletCmd.AddCommand(walletAttachCmd)

	rootCmd.AddCommand(walletCmd)
}
