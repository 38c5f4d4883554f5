package validator

import (
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/hyperboliclabs/agentkit/pkg/sshx"
)

type fakeRunner struct {
	commands []string
	uploads  map[string]string
	outputs  map[string]string
}

func (f *fakeRunner) Run(command string) (*sshx.Result, error) {
	f.commands = append(f.commands, command)

	return &sshx.Result{Output: f.outputs[command]}, nil
}

func (f *fakeRunner) Do(cmd sshx.Cmd) error {
	f.commands = append(f.commands, cmd.Cmd)

	return nil
}

func (f *fakeRunner) Upload(dst string, src io.Reader) error {
	content, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	if f.uploads == nil {
		f.uploads = make(map[string]string)
	}
	f.uploads[dst] = string(content)

	return nil
}

func newTestEngine(t *testing.T) (*Engine, *fakeRunner) {
	t.Helper()

	config := DefaultConfig()
	config.SSH.Host = "node.example.com"

	runner := &fakeRunner{}

	engine, err := New(config, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return engine, runner
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(DefaultConfig(), &fakeRunner{}); err == nil {
		t.Error("expected error for config without node")
	}
}

func TestGenerateJWT(t *testing.T) {
	engine, runner := newTestEngine(t)

	if err := engine.GenerateJWT(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	secret, ok := runner.uploads["ethereum/jwt.hex"]
	if !ok {
		t.Fatalf("expected upload to ethereum/jwt.hex, got %v", runner.uploads)
	}

	decoded, err := hex.DecodeString(secret)
	if err != nil {
		t.Fatalf("expected hex-encoded secret: %v", err)
	}
	if len(decoded) != 32 {
		t.Errorf("expected 32 byte secret, got %d", len(decoded))
	}
}

func TestDeployRunsAllSteps(t *testing.T) {
	engine, runner := newTestEngine(t)

	if err := engine.Deploy(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runner.uploads) != 1 {
		t.Errorf("expected the JWT secret to be uploaded, got %v", runner.uploads)
	}

	joined := strings.Join(runner.commands, "\n")
	for _, want := range []string{
		"mkdir -p ethereum",
		"prysm.sh",
		"apt-get install -y ethereum",
		"staking-deposit-cli",
		"nohup geth --holesky",
		"beacon-chain --holesky",
		"validator --holesky",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected a command containing %q, got:\n%s", want, joined)
		}
	}
}

func TestStatus(t *testing.T) {
	engine, runner := newTestEngine(t)
	runner.outputs = map[string]string{
		"pgrep -f geth >/dev/null && echo running || echo stopped":         "running\n",
		"pgrep -f beacon-chain >/dev/null && echo running || echo stopped": "running\n",
		"pgrep -f validator >/dev/null && echo running || echo stopped":    "stopped\n",
	}

	status, err := engine.Status()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "geth: running\nbeacon-chain: running\nvalidator: stopped\n"
	if status != want {
		t.Errorf("expected %q, got %q", want, status)
	}
}

func TestStop(t *testing.T) {
	engine, runner := newTestEngine(t)

	if err := engine.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(runner.commands, "\n")
	for _, process := range []string{"validator", "beacon-chain", "geth"} {
		if !strings.Contains(joined, process) {
			t.Errorf("expected %s to be stopped, got:\n%s", process, joined)
		}
	}
}
