package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestForOSSelectsImplementation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "windows", ForOS("windows", nil).Name())
	require.Equal(t, "unix", ForOS("linux", nil).Name())
	require.Equal(t, "unix", ForOS("darwin", nil).Name())
}

func TestHomeDirUsesPlatformVariable(t *testing.T) {
	t.Parallel()

	env := envOf(map[string]string{"HOME": "/home/u", "USERPROFILE": `C:\Users\u`})

	home, err := ForOS("linux", env).HomeDir()
	require.NoError(t, err)
	require.Equal(t, "/home/u", home)

	home, err = ForOS("windows", env).HomeDir()
	require.NoError(t, err)
	require.Equal(t, `C:\Users\u`, home)
}

func TestHomeDirKeptAsGiven(t *testing.T) {
	t.Parallel()

	home, err := ForOS("linux", envOf(map[string]string{"HOME": " /tmp/x "})).HomeDir()
	require.NoError(t, err)
	require.Equal(t, " /tmp/x ", home)

	home, err = ForOS("windows", envOf(map[string]string{"USERPROFILE": "   "})).HomeDir()
	require.NoError(t, err)
	require.Equal(t, "   ", home)
}

func TestHomeDirMissing(t *testing.T) {
	t.Parallel()

	// windows 分支不读取 HOME
	_, err := ForOS("windows", envOf(map[string]string{"HOME": "/home/u"})).HomeDir()
	require.ErrorIs(t, err, dnerrors.ErrHomeNotSet)

	var cfgErr *dnerrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "USERPROFILE", cfgErr.Setting)

	_, err = ForOS("linux", envOf(nil)).HomeDir()
	require.ErrorIs(t, err, dnerrors.ErrHomeNotSet)
}

func TestScriptLocations(t *testing.T) {
	t.Parallel()

	unix := ForOS("linux", nil)
	require.Equal(t, "dotnet-install.sh", unix.ScriptFileName())
	require.Equal(t, "https://dotnet.microsoft.com/download/dotnet/scripts/v1/dotnet-install.sh", unix.ScriptURL())

	win := ForOS("windows", nil)
	require.Equal(t, "dotnet-install.ps1", win.ScriptFileName())
	require.Equal(t, "https://dotnet.microsoft.com/download/dotnet/scripts/v1/dotnet-install.ps1", win.ScriptURL())
}

func TestScriptInvocation(t *testing.T) {
	t.Parallel()

	name, args := ForOS("linux", nil).ScriptInvocation("dotnet-install.sh", []string{"-Channel", "LTS"})
	require.Equal(t, "bash", name)
	require.Equal(t, []string{"dotnet-install.sh", "-Channel", "LTS"}, args)

	name, args = ForOS("windows", nil).ScriptInvocation("dotnet-install.ps1", nil)
	require.Equal(t, "powershell", name)
	require.Equal(t, []string{"-ExecutionPolicy", "Bypass", "-File", "dotnet-install.ps1"}, args)
}

func TestUnixPrepareScriptMarksExecutable(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}

	path := filepath.Join(t.TempDir(), "dotnet-install.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\n"), 0o644))

	require.NoError(t, ForOS("linux", nil).PrepareScript(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Mode().Perm()&0o100)
}

func TestUnixPrepareScriptMissingFile(t *testing.T) {
	t.Parallel()

	err := ForOS("linux", nil).PrepareScript(filepath.Join(t.TempDir(), "missing.sh"))

	var ioErr *dnerrors.IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "chmod", ioErr.Op)
}
