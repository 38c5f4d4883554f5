package hyperbolic

import (
	"context"
	"errors"
	"net/http"
)

// GPU describes a single GPU of a marketplace node.
type GPU struct {
	Model string `json:"model"`
	RAM   int    `json:"ram"`
}

// Pricing describes the hourly price of a marketplace node.
type Pricing struct {
	Price struct {
		Amount float64 `json:"amount"`
		Period string  `json:"period"`
	} `json:"price"`
}

// Hardware describes the hardware of a marketplace node.
type Hardware struct {
	GPUs []GPU `json:"gpus"`
}

// MarketplaceNode is a rentable node in the GPU marketplace.
type MarketplaceNode struct {
	ID           string   `json:"id"`
	ClusterName  string   `json:"cluster_name"`
	Reserved     bool     `json:"reserved"`
	Hardware     Hardware `json:"hardware"`
	Pricing      Pricing  `json:"pricing"`
	GPUsTotal    int      `json:"gpus_total"`
	GPUsReserved int      `json:"gpus_reserved"`
}

// Instance is a rented compute instance.
type Instance struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	StartedAt string `json:"start"`
	// SSHCommand is the ready-made command to reach the instance,
	// e.g. "ssh ubuntu@host -p 31337".
	SSHCommand string `json:"sshCommand"`
	Instance   struct {
		Status   string   `json:"status"`
		Hardware Hardware `json:"hardware"`
	} `json:"instance"`
}

// RentRequest describes which node to rent and how many GPUs to
// reserve on it.
type RentRequest struct {
	ClusterName string `json:"cluster_name"`
	NodeName    string `json:"node_name"`
	GPUCount    int    `json:"gpu_count"`
}

// RentResponse is the API response to a rental request.
type RentResponse struct {
	Status       string `json:"status"`
	InstanceName string `json:"instance_name"`
}

// AvailableGPUs lists the nodes currently rentable in the GPU
// marketplace.
func (c *Client) AvailableGPUs(ctx context.Context) ([]MarketplaceNode, error) {
	payload := map[string]any{"filters": map[string]any{}}

	var response struct {
		Instances []MarketplaceNode `json:"instances"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/marketplace", payload, &response); err != nil {
		return nil, err
	}

	return response.Instances, nil
}

// Instances lists the compute instances rented by the account.
func (c *Client) Instances(ctx context.Context) ([]Instance, error) {
	var response struct {
		Instances []Instance `json:"instances"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/marketplace/instances", nil, &response); err != nil {
		return nil, err
	}

	return response.Instances, nil
}

// Rent reserves GPUs on a marketplace node and starts an instance.
func (c *Client) Rent(ctx context.Context, request RentRequest) (*RentResponse, error) {
	if request.ClusterName == "" {
		return nil, errors.New("cluster_name is required")
	}
	if request.NodeName == "" {
		return nil, errors.New("node_name is required")
	}
	if request.GPUCount < 1 {
		return nil, errors.New("gpu_count must be at least 1")
	}

	response := new(RentResponse)
	if err := c.do(ctx, http.MethodPost, "/v1/marketplace/instances/create", request, response); err != nil {
		return nil, err
	}

	return response, nil
}

// Terminate shuts down a rented instance. The name must be the exact
// name used when the instance was created.
func (c *Client) Terminate(ctx context.Context, instanceName string) error {
	if instanceName == "" {
		return errors.New("instance name is required")
	}

	payload := map[string]string{"id": instanceName}

	return c.do(ctx, http.MethodPost, "/v1/marketplace/instances/terminate", payload, nil)
}
