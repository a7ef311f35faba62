// Package main is the entry point for the clkit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/cli"
	"github.com/codalab/clkit/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		// cl failures have already written their diagnostics to stderr;
		// just propagate the exit status.
		if code, ok := domain.ExitStatus(err); ok {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(argsFor(filepath.Base(os.Args[0]), os.Args[1:]))
	return rootCmd.Execute()
}

// argsFor maps the invocation name onto the right subcommand. A symlink
// named xcl makes the binary behave as the chaining alias directly.
func argsFor(invokedAs string, args []string) []string {
	if invokedAs == "xcl" {
		return append([]string{"chain"}, args...)
	}
	return args
}
