package platform

import (
	"os"
	"runtime"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
)

const (
	unixScriptURL    = "https://dotnet.microsoft.com/download/dotnet/scripts/v1/dotnet-install.sh"
	windowsScriptURL = "https://dotnet.microsoft.com/download/dotnet/scripts/v1/dotnet-install.ps1"

	unixScriptName    = "dotnet-install.sh"
	windowsScriptName = "dotnet-install.ps1"
)

// Ops 封装与操作系统相关的差异：主目录、安装脚本及其解释器。
type Ops interface {
	Name() string
	HomeDir() (string, error)
	ScriptURL() string
	ScriptFileName() string
	PrepareScript(path string) error
	ScriptInvocation(path string, args []string) (string, []string)
}

// Detect 按当前 runtime.GOOS 选择实现。
func Detect() Ops {
	return ForOS(runtime.GOOS, os.Getenv)
}

// ForOS 返回指定操作系统的实现，windows 之外一律按 Unix 处理。
func ForOS(goos string, getenv func(string) string) Ops {
	if getenv == nil {
		getenv = os.Getenv
	}
	if goos == "windows" {
		return &windowsOps{getenv: getenv}
	}
	return &unixOps{getenv: getenv}
}

type unixOps struct {
	getenv func(string) string
}

func (u *unixOps) Name() string { return "unix" }

func (u *unixOps) HomeDir() (string, error) {
	return lookupHome(u.getenv, "HOME")
}

func (u *unixOps) ScriptURL() string      { return unixScriptURL }
func (u *unixOps) ScriptFileName() string { return unixScriptName }

// PrepareScript 为下载的脚本加上可执行权限。
func (u *unixOps) PrepareScript(path string) error {
	if err := os.Chmod(path, 0o755); err != nil {
		return &dnerrors.IOError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}

func (u *unixOps) ScriptInvocation(path string, args []string) (string, []string) {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, path)
	argv = append(argv, args...)
	return "bash", argv
}

type windowsOps struct {
	getenv func(string) string
}

func (w *windowsOps) Name() string { return "windows" }

func (w *windowsOps) HomeDir() (string, error) {
	return lookupHome(w.getenv, "USERPROFILE")
}

func (w *windowsOps) ScriptURL() string      { return windowsScriptURL }
func (w *windowsOps) ScriptFileName() string { return windowsScriptName }

func (w *windowsOps) PrepareScript(string) error { return nil }

// ScriptInvocation 以绕过执行策略的方式调用 PowerShell。
func (w *windowsOps) ScriptInvocation(path string, args []string) (string, []string) {
	argv := make([]string, 0, len(args)+4)
	argv = append(argv, "-ExecutionPolicy", "Bypass", "-File", path)
	argv = append(argv, args...)
	return "powershell", argv
}

func lookupHome(getenv func(string) string, key string) (string, error) {
	home := getenv(key)
	if home == "" {
		return "", &dnerrors.ConfigError{Setting: key, Err: dnerrors.ErrHomeNotSet}
	}
	return home, nil
}
