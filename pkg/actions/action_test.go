package actions

import (
	"context"
	"strings"
	"testing"
)

func newAction(name string, output string) *Action {
	return &Action{
		Name:        name,
		Description: name,
		Func: func(ctx context.Context, args map[string]string) (string, error) {
			return output, nil
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := registry.Register(newAction("first", "a"), newAction("second", "b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := registry.Register(newAction("first", "a")); err == nil {
		t.Error("expected error for duplicate action name")
	}
	if err := registry.Register(&Action{}); err == nil {
		t.Error("expected error for unnamed action")
	}

	all := registry.All()
	if len(all) != 2 || all[0].Name != "first" || all[1].Name != "second" {
		t.Errorf("unexpected registration order: %+v", all)
	}
}

func TestRegistryRun(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Register(newAction("echo", "hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := registry.Run(context.Background(), "echo", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "hello" {
		t.Errorf("unexpected output: %q", output)
	}

	_, err = registry.Run(context.Background(), "missing", nil)
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func TestRequireArg(t *testing.T) {
	if _, err := requireArg(map[string]string{}, "command"); err == nil {
		t.Error("expected error for missing argument")
	}

	value, err := requireArg(map[string]string{"command": "ls -la"}, "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "ls -la" {
		t.Errorf("unexpected value: %q", value)
	}
}
