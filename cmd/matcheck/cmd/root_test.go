// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlinalg/internal/check"
	"github.com/katalvlaran/lvlinalg/internal/config"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestDetBigRat(t *testing.T) {
	out, err := run(t, "det", "--order", "4", "--trials", "5")
	require.NoError(t, err)
	require.Contains(t, out, "det: calc=bigrat order=4 seed=1 trials=5 skipped=0 failures=0")
}

func TestDetFloat64(t *testing.T) {
	out, err := run(t, "det", "--calc", "float64", "--order", "5", "--trials", "5", "--seed", "9")
	require.NoError(t, err)
	require.Contains(t, out, "det: calc=float64 order=5 seed=9 trials=5")
}

func TestDetIntegral(t *testing.T) {
	for _, c := range []string{"int64", "bigint"} {
		out, err := run(t, "det", "--calc", c, "--order", "5", "--trials", "5")
		require.NoError(t, err)
		require.Contains(t, out, "det: calc="+c+" order=5 seed=1 trials=5 skipped=0 failures=0")
	}
}

func TestInverse(t *testing.T) {
	out, err := run(t, "inverse", "--order", "3", "--trials", "6")
	require.NoError(t, err)
	require.Contains(t, out, "inverse: calc=bigrat order=3")
	require.Contains(t, out, "failures=0")
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "det", "--calc", "complex")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "inverse", "--calc", "int64")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "det", "--order", "12")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "inverse", "--trials=-1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "det", "extra")
	require.Error(t, err)
}

func TestConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matcheck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[check]\norder = 3\ntrials = 50\nseed = 7\n"), 0o600))

	out, err := run(t, "det", "--config", path, "--trials", "2")
	require.NoError(t, err)
	require.Contains(t, out, "det: calc=bigrat order=3 seed=7 trials=2")

	_, err = run(t, "det", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestInverseMaxTries(t *testing.T) {
	dir := t.TempDir()
	once := filepath.Join(dir, "once.toml")
	require.NoError(t, os.WriteFile(once, []byte("[check]\norder = 2\ntrials = 20\nlow = 0\nhigh = 1\nmax_tries = 1\n"), 0o600))
	retry := filepath.Join(dir, "retry.toml")
	require.NoError(t, os.WriteFile(retry, []byte("[check]\norder = 2\ntrials = 20\nlow = 0\nhigh = 1\nmax_tries = 100\n"), 0o600))

	out, err := run(t, "inverse", "--config", once)
	require.NoError(t, err)
	require.NotContains(t, out, "skipped=0 ")

	out, err = run(t, "inverse", "--config", retry)
	require.NoError(t, err)
	require.Contains(t, out, "trials=20 skipped=0 failures=0")
}

func TestExecuteReportsMismatch(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	cfg := config.Default()
	opts := &options{verbose: true}

	failing := func(context.Context, *config.Config) (check.Report, error) {
		return check.Report{Trials: 1, Failures: []check.Failure{{Trial: 0, Matrix: "[1]\n", Detail: "boom"}}}, nil
	}
	err := execute(root, opts, "det", cfg, failing)
	require.ErrorIs(t, err, ErrMismatch)
	require.Contains(t, out.String(), "trial 0: boom")
	require.Contains(t, out.String(), "[1]\n")
}
