package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arrayproc/internal/session"
)

// newRunCommandForTest wires a run command to scripted stdin and captured
// output, with run IDs taken from ids.
func newRunCommandForTest(rootOpts *RootOptions, input string, ids ...string) (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	exec := func(args ...string) error {
		cmd := newRunCommand(rootOpts, session.NewFixedGenerator(ids...))
		cmd.SetIn(strings.NewReader(input))
		cmd.SetOut(out)
		cmd.SetErr(errOut)
		cmd.SetArgs(args)
		return cmd.Execute()
	}
	return out, errOut, exec
}

func TestRunManualText(t *testing.T) {
	out, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "4\n3\n0\n1\n2\n3\n4\n", "run-1")

	require.NoError(t, exec())
	assert.Equal(t,
		"Enter the array size: Enter the number k: Fill the array with random numbers? (1 - yes, 0 - no): "+
			"Enter element 1: Enter element 2: Enter element 3: Enter element 4: "+
			"Array:\n1 2 3 4\nProduct of even elements: 8\n"+
			"There are positive numbers with remainder 2.\nArray after processing:\n1 1 3 9\n",
		out.String())
}

func TestRunJSONKeepsStdoutClean(t *testing.T) {
	out, errOut, exec := newRunCommandForTest(&RootOptions{Format: "json"}, "3\n3\n0\n5\n7\n-1\n", "run-json")

	require.NoError(t, exec())

	var resp struct {
		Status  string         `json:"status"`
		Data    session.Report `json:"data"`
		TraceID string         `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-json", resp.TraceID)
	assert.True(t, resp.Data.HasRemainder)
	assert.False(t, resp.Data.HasEven)
	assert.Equal(t, int64(-1), resp.Data.EvenProduct)
	assert.Contains(t, errOut.String(), "Enter the array size: ")
}

func TestRunRandomWithSeed(t *testing.T) {
	out, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "5\n4\n1\n-5\n5\n", "run-a")
	require.NoError(t, exec("--seed", "42"))
	first := out.String()

	out2, _, exec2 := newRunCommandForTest(&RootOptions{Format: "text"}, "5\n4\n1\n-5\n5\n", "run-b")
	require.NoError(t, exec2("--seed", "42"))

	assert.Equal(t, first, out2.String())
	assert.Contains(t, first, "Array after processing:")
}

func TestRunZeroDivisor(t *testing.T) {
	out, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "2\n0\n0\n2\n4\n", "run-1")

	require.NoError(t, exec())
	assert.Contains(t, out.String(), "Product of even elements: 8")
	assert.Contains(t, out.String(), "The number k is zero; the remainder check was skipped.")
	assert.Contains(t, out.String(), "2 1\n")
}

func TestRunInputClosed(t *testing.T) {
	_, errOut, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "3\n")

	err := exec()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no valid input")
	assert.Contains(t, errOut.String(), "Error [E005]")
}

func TestRunMaxAttempts(t *testing.T) {
	_, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "a\nb\nc\n4\n")

	err := exec("--max-attempts", "2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "too many invalid attempts")
}

func TestRunNegativeMaxAttempts(t *testing.T) {
	_, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "")

	err := exec("--max-attempts", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunAllocationFailure(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "arrayproc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_size: 3\n"), 0o644))

	out, errOut, exec := newRunCommandForTest(&RootOptions{Format: "text", ConfigPath: cfgPath}, "4\n3\n")

	err := exec()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to allocate array")
	assert.NotContains(t, out.String(), "Memory allocation error")
	assert.Equal(t, 1, strings.Count(errOut.String(), "Memory allocation error"))
	assert.Contains(t, errOut.String(), "Error [E004]: Memory allocation error")
}

func TestRunConfigLanguage(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "arrayproc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("lang: ru\n"), 0o644))

	out, _, exec := newRunCommandForTest(&RootOptions{Format: "text", ConfigPath: cfgPath}, "1\n3\n0\n5\n", "run-1")

	require.NoError(t, exec())
	assert.Contains(t, out.String(), "Введите размер массива: ")
	assert.Contains(t, out.String(), "Есть положительные числа с остатком 2.")
}

func TestRunLangFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "arrayproc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("lang: ru\n"), 0o644))

	out, _, exec := newRunCommandForTest(&RootOptions{Format: "text", ConfigPath: cfgPath, Lang: "en"}, "1\n3\n0\n5\n", "run-1")

	require.NoError(t, exec())
	assert.Contains(t, out.String(), "Enter the array size: ")
}

func TestRunInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "arrayproc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_attempts: -2\n"), 0o644))

	_, errOut, exec := newRunCommandForTest(&RootOptions{Format: "text", ConfigPath: cfgPath}, "")

	err := exec()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut.String(), "Error [E002]")
}

func TestRunMalformedFlag(t *testing.T) {
	_, errOut, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "")

	err := exec("--max-attempts", "many")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut.String(), "Error [E003]")
}

func TestRunRejectsArgs(t *testing.T) {
	_, _, exec := newRunCommandForTest(&RootOptions{Format: "text"}, "")

	err := exec("extra")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown command")
}
