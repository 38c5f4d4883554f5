// Package wallet provides Ethereum account helpers for funding and
// activating staking validators.
package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
)

// DepositAmount is the stake required to activate a single validator.
var DepositAmount = new(big.Int).Mul(big.NewInt(32), big.NewInt(params.Ether))

// depositGasLimit covers the deposit contract execution with headroom.
const depositGasLimit = 500000

// Account is a freshly generated Ethereum keypair. The private key is
// hex-encoded with a 0x prefix and is never logged.
type Account struct {
	Address    string
	PrivateKey string
}

// NewAccount generates a new secp256k1 keypair and derives its
// address. The caller is responsible for storing the key securely, it
// cannot be recovered if lost.
func NewAccount() (*Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}

	return &Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: "0x" + hex.EncodeToString(crypto.FromECDSA(key)),
	}, nil
}

// Client performs on-chain operations against a single RPC endpoint.
type Client struct {
	*Options
	eth *ethclient.Client
}

// NewClient dials the configured RPC endpoint.
func NewClient(rpcURL string, options ...Option) (*Client, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	if rpcURL == "" {
		return nil, errors.New("no RPC endpoint specified")
	}

	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		Options: opts,
		eth:     eth,
	}, nil
}

// Close releases the connection to the RPC endpoint.
func (c *Client) Close() {
	c.eth.Close()
}

// Balance returns the current balance of an address in wei.
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address: %s", address)
	}

	return c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
}

// Deposit signs and broadcasts a staking deposit transaction to the
// deposit contract and returns the transaction hash. The deposit data
// must have been generated with the staking deposit tooling
// beforehand.
func (c *Client) Deposit(ctx context.Context, privateKey, contract string, amount *big.Int, depositData []byte) (string, error) {
	if !common.IsHexAddress(contract) {
		return "", fmt.Errorf("invalid contract address: %s", contract)
	}
	if amount == nil || amount.Sign() < 1 {
		return "", errors.New("deposit amount must be positive")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := c.eth.PendingNonceAt(ctx, from)
	if err != nil {
		return "", err
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", err
	}
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return "", err
	}

	to := common.HexToAddress(contract)
	tx := types.NewTransaction(nonce, to, amount, depositGasLimit, gasPrice, depositData)

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return "", err
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return "", err
	}

	c.Logger.Info().Str("tx", signed.Hash().Hex()).Str("from", from.Hex()).Msg("Broadcast deposit transaction")

	return signed.Hash().Hex(), nil
}
