package hyperbolic

import (
	"context"
	"errors"
	"net/http"
)

// AttachWalletResponse is the API response to linking a wallet
// address to the account.
type AttachWalletResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AttachWallet links an Ethereum wallet address to the account
// identified by the API key.
func (c *Client) AttachWallet(ctx context.Context, address string) (*AttachWalletResponse, error) {
	if address == "" {
		return nil, errors.New("wallet address is required")
	}

	payload := map[string]string{"address": address}

	response := new(AttachWalletResponse)
	if err := c.do(ctx, http.MethodPost, "/settings/crypto-address", payload, response); err != nil {
		return nil, err
	}

	return response, nil
}
