package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/codalab/clkit/internal/app"
	"github.com/codalab/clkit/internal/domain"
	"github.com/spf13/cobra"
)

// fakeBundleClient is an in-memory stand-in for the cl client.
type fakeBundleClient struct {
	fields    map[string]map[string]string // spec -> field -> value
	searchRes []string
	runErr    error

	runTarget []string
	runExtra  []string
	runCalls  int
}

func newFakeBundleClient() *fakeBundleClient {
	return &fakeBundleClient{fields: make(map[string]map[string]string)}
}

func (f *fakeBundleClient) setField(spec, field, value string) {
	if f.fields[spec] == nil {
		f.fields[spec] = make(map[string]string)
	}
	f.fields[spec][field] = value
}

func (f *fakeBundleClient) FieldValue(_ context.Context, spec, field string) (string, error) {
	if values, ok := f.fields[spec]; ok {
		return values[field], nil
	}
	return "", &domain.ExitError{Code: 1}
}

func (f *fakeBundleClient) Search(_ context.Context, _ []string) ([]string, error) {
	return f.searchRes, nil
}

func (f *fakeBundleClient) RunWithArgs(target, extra []string) error {
	f.runCalls++
	f.runTarget = target
	f.runExtra = extra
	return f.runErr
}

// newTestContainer builds a container around a fake cl client.
func newTestContainer(bundles domain.BundleClient) *app.Container {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewWithDeps(domain.NewDefaultConfig(), bundles, domain.RealClock{}, logger)
}

// execute runs the root command with args and returns captured stdout.
func execute(root *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
