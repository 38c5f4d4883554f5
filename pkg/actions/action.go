// Package actions exposes the capabilities of the toolkit as named
// tools that an AI agent framework can discover and invoke.
package actions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Action is a single callable tool. Arguments are flat string
// key-value pairs as produced by the agent framework.
type Action struct {
	Name        string
	Description string
	Func        func(ctx context.Context, args map[string]string) (string, error)
}

// Registry holds the set of actions available to an agent. Actions
// are registered during startup and the registry is read-only
// afterwards.
type Registry struct {
	*Options
	actions map[string]*Action
	order   []string
}

// NewRegistry creates an empty action registry.
func NewRegistry(options ...Option) (*Registry, error) {
	opts, err := GetDefaultOptions().Apply(options...)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Options: opts,
		actions: map[string]*Action{},
	}, nil
}

// Register adds actions to the registry. Action names must be unique.
func (r *Registry) Register(actions ...*Action) error {
	for _, action := range actions {
		if action.Name == "" {
			return fmt.Errorf("action without a name")
		}
		if _, exists := r.actions[action.Name]; exists {
			return fmt.Errorf("duplicate action: %s", action.Name)
		}

		r.actions[action.Name] = action
		r.order = append(r.order, action.Name)
	}

	return nil
}

// Get returns the action with the given name.
func (r *Registry) Get(name string) (*Action, bool) {
	action, ok := r.actions[name]
	return action, ok
}

// All returns the actions in registration order.
func (r *Registry) All() []*Action {
	actions := make([]*Action, 0, len(r.order))
	for _, name := range r.order {
		actions = append(actions, r.actions[name])
	}
	return actions
}

// Run invokes a single action by name. Every invocation is tagged
// with a unique ID for correlation in the logs.
func (r *Registry) Run(ctx context.Context, name string, args map[string]string) (string, error) {
	action, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown action: %s", name)
	}

	logger := r.Logger.With().Str("action", name).Str("invocation", uuid.NewString()).Logger()
	logger.Debug().Msg("Running action")

	output, err := action.Func(ctx, args)
	if err != nil {
		logger.Error().Err(err).Msg("Action failed")
		return "", err
	}

	return output, nil
}

// requireArg fetches a mandatory argument.
func requireArg(args map[string]string, name string) (string, error) {
	value := args[name]
	if value == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

// formatJSON renders an API response for consumption by the agent.
func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
