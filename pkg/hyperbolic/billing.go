package hyperbolic

import (
	"context"
	"net/http"
)

// Balance is the current account balance. Credits are tracked in
// USD cents.
type Balance struct {
	Credits int64 `json:"credits"`
}

// USD returns the balance in dollars.
func (b Balance) USD() float64 {
	return float64(b.Credits) / 100
}

// SpendEntry is a single entry of the instance spend history.
type SpendEntry struct {
	InstanceName string   `json:"instance_name"`
	StartedAt    string   `json:"started_at"`
	TerminatedAt string   `json:"terminated_at"`
	Price        float64  `json:"price"`
	GPUCount     int      `json:"gpu_count"`
	Hardware     Hardware `json:"hardware"`
}

// CurrentBalance returns the remaining credits of the account.
func (c *Client) CurrentBalance(ctx context.Context) (*Balance, error) {
	balance := new(Balance)
	if err := c.do(ctx, http.MethodGet, "/billing/get_current_balance", nil, balance); err != nil {
		return nil, err
	}

	return balance, nil
}

// SpendHistory returns the rental history of the account, including
// terminated instances.
func (c *Client) SpendHistory(ctx context.Context) ([]SpendEntry, error) {
	var response struct {
		InstanceHistory []SpendEntry `json:"instance_history"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/marketplace/instances/history", nil, &response); err != nil {
		return nil, err
	}

	return response.InstanceHistory, nil
}
