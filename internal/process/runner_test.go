package process

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecCapturesOutput(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	res, err := NewExec(nil).Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	require.True(t, res.Success())
	require.Equal(t, "out\n", string(res.Stdout))
	require.Equal(t, "err\n", string(res.Stderr))
	require.NoError(t, res.ExitError("sh"))
}

func TestExecNonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	res, err := NewExec(nil).Run(context.Background(), "sh", "-c", "echo partial; exit 3")
	require.NoError(t, err)
	require.False(t, res.Success())
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "partial\n", string(res.Stdout))

	var exitErr *dnerrors.ExitError
	require.ErrorAs(t, res.ExitError("sh"), &exitErr)
	require.Equal(t, 3, exitErr.Code)
}

func TestExecSpawnFailure(t *testing.T) {
	t.Parallel()

	_, err := NewExec(nil).Run(context.Background(), "dnvm-definitely-missing-binary", "--version")

	var spawnErr *dnerrors.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	require.Equal(t, "dnvm-definitely-missing-binary", spawnErr.Name)
}

func TestExecHonorsCallerContext(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExec(nil).Run(ctx, "sh", "-c", "echo never")

	var spawnErr *dnerrors.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	require.ErrorIs(t, err, context.Canceled)
}
