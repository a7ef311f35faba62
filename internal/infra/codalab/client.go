// Package codalab wraps the CodaLab `cl` command-line client.
// cl's output is opaque text; this client only builds argument vectors,
// trims trailing newlines, and propagates exit codes.
package codalab

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/codalab/clkit/internal/domain"
)

// Client invokes the cl binary through a CommandExecutor.
type Client struct {
	executor domain.CommandExecutor
	clBin    string
}

// NewClient creates a new cl client. clBin is the binary name or path.
func NewClient(clBin string, executor domain.CommandExecutor) *Client {
	return &Client{
		clBin:    clBin,
		executor: executor,
	}
}

// Ensure Client implements domain.BundleClient interface.
var _ domain.BundleClient = (*Client)(nil)

// FieldValue returns the value of a single bundle field.
// Runs: cl info -f <field> <spec>
func (c *Client) FieldValue(ctx context.Context, spec, field string) (string, error) {
	cmd := domain.NewCommand(c.clBin, []string{"info", "-f", field, spec}, "")
	out, err := c.executor.Capture(ctx, cmd)
	if err != nil {
		return "", c.wrap("info", err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Search returns the uuids of bundles matching the keywords.
// Runs: cl search <keyword>... -u
func (c *Client) Search(ctx context.Context, keywords []string) ([]string, error) {
	args := append([]string{"search"}, keywords...)
	args = append(args, "-u")
	cmd := domain.NewCommand(c.clBin, args, "")
	out, err := c.executor.Capture(ctx, cmd)
	if err != nil {
		return nil, c.wrap("search", err)
	}

	var uuids []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		uuids = append(uuids, line)
	}
	return uuids, nil
}

// RunWithArgs invokes cl with the target subcommand plus extra trailing
// arguments, stdio inherited from this process.
func (c *Client) RunWithArgs(target, extra []string) error {
	args := make([]string, 0, len(target)+len(extra))
	args = append(args, target...)
	args = append(args, extra...)

	cmd := domain.NewCommand(c.clBin, args, "")
	if err := c.executor.Interactive(cmd); err != nil {
		return c.wrap("run", err)
	}
	return nil
}

// wrap converts executor errors into domain errors. Exit statuses become
// ExitError so main can propagate them; a missing binary becomes
// ErrCLNotFound.
func (c *Client) wrap(op string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ExitError{Code: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrCLNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
