package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvBinary:    " /opt/dotnet/dotnet ",
		EnvScriptURL: "https://mirror.example/dotnet-install.sh",
		EnvVerbose:   "true",
	}
	cfg := ConfigFromEnv(Config{WorkDir: "/tmp/work"}, func(key string) string { return env[key] })

	require.Equal(t, "/opt/dotnet/dotnet", cfg.Binary)
	require.Equal(t, "https://mirror.example/dotnet-install.sh", cfg.ScriptURL)
	require.Equal(t, "/tmp/work", cfg.WorkDir)
	require.True(t, cfg.Verbose)
}

func TestConfigFromEnvIgnoresInvalidVerbose(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromEnv(Config{Verbose: true}, func(key string) string {
		if key == EnvVerbose {
			return "loud"
		}
		return ""
	})
	require.True(t, cfg.Verbose)
}

func TestConfigBinaryDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dotnet", Config{}.BinaryOrDefault())
	require.Equal(t, "dotnet8", Config{Binary: "dotnet8"}.BinaryOrDefault())
	require.Equal(t, Config{}, ConfigFromEnv(Config{}, nil))
}
