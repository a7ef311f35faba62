package usecase

import (
	"context"

	"github.com/codalab/clkit/internal/domain"
)

// mockBundleClient is an in-memory fake of the cl client. Unknown bundle
// specs behave like cl does: a non-zero exit carried as ExitError.
type mockBundleClient struct {
	fields    map[string]map[string]string // spec -> field -> value
	fieldErr  error
	searchRes []string
	searchErr error
	runErr    error

	searchKeywords []string
	runTarget      []string
	runExtra       []string
	runCalls       int
}

func newMockBundleClient() *mockBundleClient {
	return &mockBundleClient{
		fields: make(map[string]map[string]string),
	}
}

func (m *mockBundleClient) setField(spec, field, value string) {
	if m.fields[spec] == nil {
		m.fields[spec] = make(map[string]string)
	}
	m.fields[spec][field] = value
}

func (m *mockBundleClient) FieldValue(_ context.Context, spec, field string) (string, error) {
	if m.fieldErr != nil {
		return "", m.fieldErr
	}
	if values, ok := m.fields[spec]; ok {
		return values[field], nil
	}
	return "", &domain.ExitError{Code: 1}
}

func (m *mockBundleClient) Search(_ context.Context, keywords []string) ([]string, error) {
	m.searchKeywords = keywords
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchRes, nil
}

func (m *mockBundleClient) RunWithArgs(target, extra []string) error {
	m.runCalls++
	m.runTarget = target
	m.runExtra = extra
	return m.runErr
}

// mockHistoryWriter records appended lines.
type mockHistoryWriter struct {
	lines []string
	err   error
}

func (m *mockHistoryWriter) Append(line string) error {
	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, line)
	return nil
}
