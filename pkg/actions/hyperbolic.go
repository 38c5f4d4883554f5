package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hyperboliclabs/agentkit/pkg/hyperbolic"
)

// RegisterHyperbolic adds the GPU marketplace, billing and account
// settings actions backed by the platform API client.
func RegisterHyperbolic(registry *Registry, client *hyperbolic.Client) error {
	return registry.Register(
		&Action{
			Name:        "get_available_gpus",
			Description: "List the GPUs currently rentable in the Hyperbolic marketplace, including model, cluster and pricing.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				nodes, err := client.AvailableGPUs(ctx)
				if err != nil {
					return "", err
				}
				return formatJSON(nodes)
			},
		},
		&Action{
			Name:        "get_gpu_status",
			Description: "Show the status of the compute instances rented by this account, including SSH access details.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				instances, err := client.Instances(ctx)
				if err != nil {
					return "", err
				}
				return formatJSON(instances)
			},
		},
		&Action{
			Name:        "rent_compute",
			Description: "Rent GPUs on a marketplace node. Requires cluster_name, node_name and gpu_count.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				cluster, err := requireArg(args, "cluster_name")
				if err != nil {
					return "", err
				}
				node, err := requireArg(args, "node_name")
				if err != nil {
					return "", err
				}
				rawCount, err := requireArg(args, "gpu_count")
				if err != nil {
					return "", err
				}
				count, err := strconv.Atoi(rawCount)
				if err != nil {
					return "", fmt.Errorf("gpu_count must be a number: %w", err)
				}

				response, err := client.Rent(ctx, hyperbolic.RentRequest{
					ClusterName: cluster,
					NodeName:    node,
					GPUCount:    count,
				})
				if err != nil {
					return "", err
				}
				return formatJSON(response)
			},
		},
		&Action{
			Name:        "terminate_compute",
			Description: "Terminate a rented instance. Requires instance_name, the exact name used when the instance was created.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				name, err := requireArg(args, "instance_name")
				if err != nil {
					return "", err
				}
				if err := client.Terminate(ctx, name); err != nil {
					return "", err
				}
				return fmt.Sprintf("Terminated instance %s", name), nil
			},
		},
		&Action{
			Name:        "get_current_balance",
			Description: "Show the remaining credits of this account in USD.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				balance, err := client.CurrentBalance(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Your current Hyperbolic platform balance is $%.2f.", balance.USD()), nil
			},
		},
		&Action{
			Name:        "get_spend_history",
			Description: "Show the rental history of this account, including terminated instances and their cost.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				history, err := client.SpendHistory(ctx)
				if err != nil {
					return "", err
				}
				return formatJSON(history)
			},
		},
		&Action{
			Name:        "attach_wallet_address",
			Description: "Link an Ethereum wallet address to this account. Requires wallet_address.",
			Func: func(ctx context.Context, args map[string]string) (string, error) {
				address, err := requireArg(args, "wallet_address")
				if err != nil {
					return "", err
				}
				response, err := client.AttachWallet(ctx, address)
				if err != nil {
					return "", err
				}
				return formatJSON(response)
			},
		},
	)
}
