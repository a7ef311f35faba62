// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/codalab/clkit/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Capture runs the command and returns its stdout. Stderr goes straight
// to this process's stderr so the wrapped tool's own diagnostics reach
// the user unmodified.
func (c *Client) Capture(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	var stdout bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = os.Stderr
	if err := execCmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Interactive runs a command with stdin/stdout/stderr connected to the terminal.
func (c *Client) Interactive(cmd *domain.ExecCommand) error {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}
