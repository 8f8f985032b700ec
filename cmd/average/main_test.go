package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/born-ml/average/average"
	"github.com/born-ml/average/tensor"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	orig := buildLogger
	buildLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { buildLogger = orig })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestMeanCmd_Literal(t *testing.T) {
	out, err := execute(t, "", "mean", "[1.0, 2.0, 3.0, 4.0]")
	require.NoError(t, err)
	assert.Equal(t, "2.5\n", out)
}

func TestMeanCmd_Multidimensional(t *testing.T) {
	out, err := execute(t, "", "mean", "[[1.0, 2.0], [3.0, 4.0]]")
	require.NoError(t, err)
	assert.Equal(t, "2.5\n", out)
}

func TestMeanCmd_Stdin(t *testing.T) {
	out, err := execute(t, "[[1, 2, 3], [4, 5, 6]]\n", "mean")
	require.NoError(t, err)
	assert.Equal(t, "3.5\n", out)
}

func TestMeanCmd_YAMLBlockList(t *testing.T) {
	out, err := execute(t, "- 2\n- 4\n", "mean", "--file", "-")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestMeanCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tensor.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[10], [20], [60]]`), 0o600))

	out, err := execute(t, "", "mean", "--file", path, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)
}

func TestMeanCmd_Empty(t *testing.T) {
	_, err := execute(t, "", "mean", "[]")
	require.Error(t, err)
	assert.ErrorIs(t, err, average.ErrInvalidArgument)
	assert.EqualError(t, err, "Cannot compute the average of an empty tensor.")
}

func TestMeanCmd_Ragged(t *testing.T) {
	_, err := execute(t, "", "mean", "[[1, 2], [3]]")
	assert.ErrorIs(t, err, tensor.ErrRagged)
}

func TestMeanCmd_NotNumeric(t *testing.T) {
	_, err := execute(t, "", "mean", `[1, "two"]`)
	assert.ErrorIs(t, err, tensor.ErrNotNumeric)
}

func TestMeanCmd_NoInput(t *testing.T) {
	_, err := execute(t, "", "mean")
	assert.ErrorIs(t, err, errNoInput)
}

func TestMeanCmd_MultipleDocuments(t *testing.T) {
	_, err := execute(t, "[1, 2]\n---\n[]\n", "mean")
	assert.ErrorIs(t, err, errMultiDocuments)

	_, err = execute(t, "[1, 2]\n---\n[3]\n", "mean")
	assert.ErrorIs(t, err, errMultiDocuments)
}

func TestMeanCmd_LeadingDocumentMarker(t *testing.T) {
	out, err := execute(t, "---\n[1, 2]\n", "mean")
	require.NoError(t, err)
	assert.Equal(t, "1.5\n", out)
}

func TestMeanCmd_InvalidYAML(t *testing.T) {
	_, err := execute(t, "", "mean", "[1, 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse tensor literal")
}

func TestMeanCmd_LiteralAndFile(t *testing.T) {
	_, err := execute(t, "", "mean", "[1]", "--file", "x.json")
	assert.Error(t, err)
}

func TestMeanCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "", "mean", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "average "+version+"\n", out)
}
