package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codalab/clkit/internal/domain"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchTestClient() *fakeBundleClient {
	bundles := newFakeBundleClient()
	bundles.searchRes = []string{"0xaaaa", "0xbbbb"}
	bundles.setField("0xaaaa", domain.FieldName, "mnist-data")
	bundles.setField("0xaaaa", domain.FieldArgs, "upload mnist.zip")
	bundles.setField("0xbbbb", domain.FieldName, "train")
	bundles.setField("0xbbbb", domain.FieldArgs, "run :mnist-data 'python train.py'")
	return bundles
}

func TestSearchCommand_List(t *testing.T) {
	c := newTestContainer(searchTestClient())

	root := NewRootCommand(c, "test")
	out, err := execute(root, "search", "mnist")

	require.NoError(t, err)
	assert.Contains(t, out, "0xaaaa")
	assert.Contains(t, out, "mnist-data")
	assert.Contains(t, out, "cl upload mnist.zip")
	assert.Contains(t, out, "cl run :mnist-data 'python train.py'")
}

func TestSearchCommand_NoMatches(t *testing.T) {
	c := newTestContainer(newFakeBundleClient())

	root := NewRootCommand(c, "test")
	_, err := execute(root, "search", "nothing")

	assert.ErrorIs(t, err, domain.ErrNoMatches)
}

func TestSearchCommand_PickRequiresTerminal(t *testing.T) {
	originalIsTerminal := isTerminalFunc
	t.Cleanup(func() { isTerminalFunc = originalIsTerminal })
	isTerminalFunc = func() bool { return false }

	c := newTestContainer(searchTestClient())

	root := NewRootCommand(c, "test")
	_, err := execute(root, "search", "mnist", "--pick")

	assert.ErrorIs(t, err, domain.ErrNotTerminal)
}

func TestSearchCommand_PickInjectsSelection(t *testing.T) {
	originalIsTerminal := isTerminalFunc
	originalRunPicker := runPickerFunc
	t.Cleanup(func() {
		isTerminalFunc = originalIsTerminal
		runPickerFunc = originalRunPicker
	})
	isTerminalFunc = func() bool { return true }

	var offered []usecase.SearchMatch
	runPickerFunc = func(matches []usecase.SearchMatch) (usecase.SearchMatch, bool, error) {
		offered = matches
		return matches[1], true, nil
	}

	c := newTestContainer(searchTestClient())
	histFile := filepath.Join(t.TempDir(), ".bash_history")

	root := NewRootCommand(c, "test")
	_, err := execute(root, "search", "mnist", "--pick", "--shell", "bash", "--histfile", histFile)

	require.NoError(t, err)
	assert.Len(t, offered, 2)

	data, err := os.ReadFile(histFile)
	require.NoError(t, err)
	assert.Equal(t, "cl run :mnist-data 'python train.py'\n", string(data))
}

func TestSearchCommand_PickDismissed(t *testing.T) {
	originalIsTerminal := isTerminalFunc
	originalRunPicker := runPickerFunc
	t.Cleanup(func() {
		isTerminalFunc = originalIsTerminal
		runPickerFunc = originalRunPicker
	})
	isTerminalFunc = func() bool { return true }
	runPickerFunc = func(_ []usecase.SearchMatch) (usecase.SearchMatch, bool, error) {
		return usecase.SearchMatch{}, false, nil
	}

	c := newTestContainer(searchTestClient())
	histFile := filepath.Join(t.TempDir(), ".bash_history")

	root := NewRootCommand(c, "test")
	_, err := execute(root, "search", "mnist", "--pick", "--shell", "bash", "--histfile", histFile)

	require.NoError(t, err)
	assert.NoFileExists(t, histFile)
}
