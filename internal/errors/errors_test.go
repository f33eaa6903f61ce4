package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{&ConfigError{Setting: "HOME", Err: ErrHomeNotSet}, "config: HOME: home directory is not set"},
		{&NetworkError{URL: "https://example/x.sh", StatusCode: 404}, "network: GET https://example/x.sh: unexpected status 404"},
		{&IOError{Op: "remove", Path: "x.sh", Err: os.ErrPermission}, "io: remove x.sh: permission denied"},
		{&ExitError{Name: "dotnet", Code: 2, Stderr: " boom \n"}, "exec: dotnet exited with code 2: boom"},
		{&ExitError{Name: "dotnet", Code: 1}, "exec: dotnet exited with code 1"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.err.Error())
	}
}

func TestUnwrapChains(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("use: %w", &ConfigError{Setting: "USERPROFILE", Err: ErrHomeNotSet})
	require.ErrorIs(t, err, ErrHomeNotSet)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "USERPROFILE", cfgErr.Setting)

	spawn := &SpawnError{Name: "bash", Err: os.ErrNotExist}
	require.ErrorIs(t, spawn, os.ErrNotExist)
}

func TestIsFatal(t *testing.T) {
	t.Parallel()

	require.False(t, IsFatal(nil))
	require.False(t, IsFatal(&ExitError{Name: "dotnet", Code: 1}))
	require.False(t, IsFatal(fmt.Errorf("wrapped: %w", &ExitError{Name: "dotnet", Code: 1})))
	require.True(t, IsFatal(&SpawnError{Name: "dotnet", Err: os.ErrNotExist}))
	require.True(t, IsFatal(&NetworkError{URL: "u", StatusCode: 500}))
}
