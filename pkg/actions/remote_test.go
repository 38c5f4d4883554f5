package actions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

type fakeRunner struct {
	connectErr   error
	results      map[string]*sshx.Result
	commands     []string
	disconnected bool
}

func (f *fakeRunner) Connect() error {
	return f.connectErr
}

func (f *fakeRunner) Run(command string) (*sshx.Result, error) {
	f.commands = append(f.commands, command)
	if result, ok := f.results[command]; ok {
		return result, nil
	}
	return &sshx.Result{}, nil
}

func (f *fakeRunner) Disconnect() error {
	f.disconnected = true
	return nil
}

func newTestRemote(t *testing.T, fake *fakeRunner) (*Registry, *Remote) {
	t.Helper()

	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	remote, err := NewRemote()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	remote.dial = func(config *sshx.Config) (runner, error) {
		return fake, nil
	}
	if err := RegisterRemote(registry, remote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return registry, remote
}

func TestRemoteShellRequiresConnection(t *testing.T) {
	registry, _ := newTestRemote(t, &fakeRunner{})

	_, err := registry.Run(context.Background(), "remote_shell", map[string]string{"command": "ls -la"})
	if err == nil || !strings.Contains(err.Error(), "no active SSH connection") {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestRemoteConnectAndShell(t *testing.T) {
	runner := &fakeRunner{
		results: map[string]*sshx.Result{
			"ls -la": {Output: "test outputtest error"},
		},
	}
	registry, _ := newTestRemote(t, runner)

	output, err := registry.Run(context.Background(), "ssh_connect", map[string]string{
		"host":     "test-host",
		"username": "test-user",
		"password": "test-password",
		"port":     "22",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "Successfully connected to test-host as test-user" {
		t.Errorf("unexpected output: %q", output)
	}

	output, err = registry.Run(context.Background(), "remote_shell", map[string]string{"command": "ls -la"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "test outputtest error" {
		t.Errorf("unexpected output: %q", output)
	}
	if len(runner.commands) != 1 || runner.commands[0] != "ls -la" {
		t.Errorf("unexpected commands: %v", runner.commands)
	}
}

func TestRemoteShellReportsExitCode(t *testing.T) {
	runner := &fakeRunner{
		results: map[string]*sshx.Result{
			"false": {Output: "boom", ExitCode: 1},
		},
	}
	registry, remote := newTestRemote(t, runner)

	if err := remote.Connect(&sshx.Config{Host: "test-host", User: "test-user"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := registry.Run(context.Background(), "remote_shell", map[string]string{"command": "false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "boom") || !strings.Contains(output, "exited with code 1") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestRemoteStatusAndDisconnect(t *testing.T) {
	runner := &fakeRunner{}
	registry, remote := newTestRemote(t, runner)

	output, err := registry.Run(context.Background(), "ssh_status", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "Not connected" {
		t.Errorf("unexpected status: %q", output)
	}

	if err := remote.Connect(&sshx.Config{Host: "test-host", User: "test-user"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, _ = registry.Run(context.Background(), "ssh_status", nil)
	if output != "Connected to test-host as test-user" {
		t.Errorf("unexpected status: %q", output)
	}

	if _, err := registry.Run(context.Background(), "ssh_disconnect", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runner.disconnected {
		t.Error("expected the underlying client to be disconnected")
	}
	if remote.Status() != "Not connected" {
		t.Errorf("unexpected status after disconnect: %q", remote.Status())
	}
}

func TestRemoteConnectFailure(t *testing.T) {
	runner := &fakeRunner{connectErr: errors.New("Connection failed")}
	registry, _ := newTestRemote(t, runner)

	_, err := registry.Run(context.Background(), "ssh_connect", map[string]string{
		"host":     "test-host",
		"username": "test-user",
		"password": "test-password",
	})
	if err == nil || !strings.Contains(err.Error(), "Connection failed") {
		t.Errorf("expected upstream failure to surface, got %v", err)
	}
}
