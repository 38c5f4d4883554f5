package actions

import (
	"context"
	"fmt"

	"github.com/hyperboliclabs/agentkit/pkg/wallet"
)

// RegisterWallet adds the Ethereum account actions.
func RegisterWallet(registry *Registry) error {
	return registry.Register(
		&Action{
			Name:        "generate_eth_key",
			Description: "Generate a new Ethereum keypair for funding staking deposits. Ask the user for approval before running this, the key cannot be recovered if lost.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				account, err := wallet.NewAccount()
				if err != nil {
					return "", err
				}

				return fmt.Sprintf("Generated new Ethereum account:\nAddress: %s\nPrivate Key: %s\n\nIMPORTANT: Save this private key securely. It cannot be recovered if lost.",
					account.Address, account.PrivateKey), nil
			},
		},
	)
}
