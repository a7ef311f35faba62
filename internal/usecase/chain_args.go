package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/codalab/clkit/internal/domain"
)

// ChainArgsInput contains the parameters for argument chaining.
type ChainArgsInput struct {
	Input  io.Reader        // Source of the tokens (usually stdin)
	Target []string         // cl subcommand and fixed args; empty uses the default
	Split  domain.SplitMode // How to tokenize the input
}

// ChainArgsOutput reports what was appended.
type ChainArgsOutput struct {
	Args []string
}

// ChainArgs is the use case behind the xcl alias: it forwards tokens read
// from one invocation's output as trailing positional arguments to a cl
// invocation. All semantics, including failures on malformed input, belong
// to cl.
type ChainArgs struct {
	bundles domain.BundleClient
}

// NewChainArgs creates a new ChainArgs use case.
func NewChainArgs(bundles domain.BundleClient) *ChainArgs {
	return &ChainArgs{bundles: bundles}
}

// Execute reads and tokenizes the input, then invokes cl with the tokens
// appended. Empty input invokes cl with no appended arguments.
func (uc *ChainArgs) Execute(_ context.Context, in ChainArgsInput) (*ChainArgsOutput, error) {
	data, err := io.ReadAll(in.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	tokens := domain.SplitFields(string(data), in.Split)

	target := in.Target
	if len(target) == 0 {
		target = domain.DefaultChainTarget()
	}

	if err := uc.bundles.RunWithArgs(target, tokens); err != nil {
		return nil, err
	}
	return &ChainArgsOutput{Args: tokens}, nil
}
