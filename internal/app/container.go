// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/infra/codalab"
	"github.com/codalab/clkit/internal/infra/config"
	"github.com/codalab/clkit/internal/infra/executor"
	"github.com/codalab/clkit/internal/infra/history"
	"github.com/codalab/clkit/internal/infra/logging"
	"github.com/codalab/clkit/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Bundles      domain.BundleClient
	Executor     domain.CommandExecutor
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock

	// Pointer fields
	ConfigManager *config.Manager
	Logger        *slog.Logger
	Config        *domain.Config
}

// New creates a new Container for the given working directory.
func New(workDir string) (*Container, error) {
	configLoader := config.NewLoader(workDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	exec := executor.NewClient()

	return &Container{
		Bundles:       codalab.NewClient(cfg.CLBin, exec),
		Executor:      exec,
		ConfigLoader:  configLoader,
		Clock:         domain.RealClock{},
		ConfigManager: config.NewManager(),
		Logger:        logging.New(cfg.Log, config.DefaultGlobalConfigDir()),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, bundles domain.BundleClient, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Bundles: bundles,
		Clock:   clock,
		Logger:  logger,
		Config:  cfg,
	}
}

// HistoryWriter resolves the shell and history file from flags, config,
// and environment, and returns a writer for them.
func (c *Container) HistoryWriter(shellOverride, fileOverride string) (domain.HistoryWriter, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return history.Resolve(history.ResolveOptions{
		Shell:  shellOverride,
		File:   fileOverride,
		Config: c.Config.History,
		Env:    os.Getenv,
		Home:   home,
	}, c.Clock)
}

// UseCase factory methods

// RecreateHistoryUseCase returns a new RecreateHistory use case bound to
// the given history writer.
func (c *Container) RecreateHistoryUseCase(writer domain.HistoryWriter) *usecase.RecreateHistory {
	return usecase.NewRecreateHistory(c.Bundles, writer, c.Config.CLBin)
}

// ChainArgsUseCase returns a new ChainArgs use case.
func (c *Container) ChainArgsUseCase() *usecase.ChainArgs {
	return usecase.NewChainArgs(c.Bundles)
}

// ShowBundleUseCase returns a new ShowBundle use case.
func (c *Container) ShowBundleUseCase() *usecase.ShowBundle {
	return usecase.NewShowBundle(c.Bundles)
}

// SearchBundlesUseCase returns a new SearchBundles use case.
func (c *Container) SearchBundlesUseCase() *usecase.SearchBundles {
	return usecase.NewSearchBundles(c.Bundles, c.Config.CLBin)
}
