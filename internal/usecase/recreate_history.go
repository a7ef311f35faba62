package usecase

import (
	"context"
	"fmt"

	"github.com/codalab/clkit/internal/domain"
)

// RecreateHistoryInput contains the parameters for history injection.
type RecreateHistoryInput struct {
	BundleSpec string // Bundle identifier (required)
	PrintOnly  bool   // Return the line without touching history
}

// RecreateHistoryOutput contains the reconstructed command line.
type RecreateHistoryOutput struct {
	Line string
}

// RecreateHistory is the use case for re-injecting a bundle's creation
// command into the shell history. The line is reconstructed from what
// `cl info -f args` reports and is never executed.
type RecreateHistory struct {
	bundles domain.BundleClient
	history domain.HistoryWriter
	clBin   string
}

// NewRecreateHistory creates a new RecreateHistory use case.
func NewRecreateHistory(bundles domain.BundleClient, history domain.HistoryWriter, clBin string) *RecreateHistory {
	return &RecreateHistory{
		bundles: bundles,
		history: history,
		clBin:   clBin,
	}
}

// Execute queries the bundle's creation arguments and appends the
// reconstructed line to the history file. If cl fails, the error (and its
// exit status) propagates and history is left untouched.
func (uc *RecreateHistory) Execute(ctx context.Context, in RecreateHistoryInput) (*RecreateHistoryOutput, error) {
	args, err := uc.bundles.FieldValue(ctx, in.BundleSpec, domain.FieldArgs)
	if err != nil {
		return nil, err
	}

	line := domain.RecreateLine(uc.clBin, args)
	if !in.PrintOnly {
		if err := uc.history.Append(line); err != nil {
			return nil, fmt.Errorf("append history: %w", err)
		}
	}

	return &RecreateHistoryOutput{Line: line}, nil
}
