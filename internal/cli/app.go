package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
	"github.com/liangyou/dnvm/internal/install"
	"github.com/liangyou/dnvm/pkg/models"
)

// VersionService 描述本机 dotnet 版本查询能力。
type VersionService interface {
	CurrentVersion(ctx context.Context) (string, error)
	ListSDKs(ctx context.Context) ([]string, error)
}

// PinService 描述写入 global.json 的能力。
type PinService interface {
	Write(version string) (string, error)
}

// InstallService 描述探测与安装能力。
type InstallService interface {
	Probe(ctx context.Context) (install.State, string)
	RunScript(ctx context.Context, opts install.Options) (install.Result, error)
}

// App 负责 CLI 命令解析与分发。
type App struct {
	out       io.Writer
	errOut    io.Writer
	version   string
	versions  VersionService
	pins      PinService
	installer InstallService
	log       *slog.Logger
	logLevel  *slog.LevelVar
}

// Option 配置 App。
type Option func(*App)

// WithLogger 设置日志记录器。
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.log = logger
		}
	}
}

// WithLogLevel 设置 --verbose 控制的日志级别。
func WithLogLevel(level *slog.LevelVar) Option {
	return func(a *App) {
		a.logLevel = level
	}
}

// NewApp 创建 CLI 应用实例。
func NewApp(out, errOut io.Writer, versions VersionService, pins PinService, installer InstallService, version string, opts ...Option) *App {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	a := &App{
		out:       out,
		errOut:    errOut,
		version:   version,
		versions:  versions,
		pins:      pins,
		installer: installer,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run 解析参数并执行命令。
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Dispatch 执行已解析的命令。
func (a *App) Dispatch(ctx context.Context, cmd models.Command) error {
	switch c := cmd.(type) {
	case models.CurrentCommand:
		return a.handleCurrent(ctx)
	case models.ListCommand:
		return a.handleList(ctx)
	case models.UseCommand:
		return a.handleUse(c.Version)
	case models.InstallCommand:
		return a.handleInstall(ctx, c)
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

func (a *App) handleCurrent(ctx context.Context) error {
	if a.versions == nil {
		return errors.New("current version query is unavailable")
	}
	v, err := a.versions.CurrentVersion(ctx)
	if err != nil {
		if dnerrors.IsFatal(err) {
			return err
		}
		a.log.Debug("current version query failed", "error", err)
		a.diagnostic("Failed to get current dotnet version")
		return nil
	}
	fmt.Fprintf(a.out, "Current dotnet version: %s\n", v)
	return nil
}

func (a *App) handleList(ctx context.Context) error {
	if a.versions == nil {
		return errors.New("sdk listing is unavailable")
	}
	sdks, err := a.versions.ListSDKs(ctx)
	if err != nil {
		if dnerrors.IsFatal(err) {
			return err
		}
		a.log.Debug("sdk listing failed", "error", err)
		a.diagnostic("Failed to list SDK versions")
		return nil
	}
	for _, sdk := range sdks {
		fmt.Fprintln(a.out, sdk)
	}
	return nil
}

func (a *App) handleUse(version string) error {
	if a.pins == nil {
		return errors.New("use command is unavailable")
	}
	path, err := a.pins.Write(version)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "SDK version set to %s in %s\n", version, path)
	return nil
}

func (a *App) handleInstall(ctx context.Context, c models.InstallCommand) error {
	if a.installer == nil {
		return errors.New("install command is unavailable")
	}

	state, version := a.installer.Probe(ctx)
	a.log.Debug("probe finished", "state", state.String())

	switch state {
	case install.AlreadyInstalled:
		fmt.Fprintln(a.out, "dotnet is already installed on your system.")
		fmt.Fprintf(a.out, "Current version: %s\n", version)
		return nil
	case install.NeedsInstall:
		fmt.Fprintln(a.out, "dotnet is not installed. Installing now...")
		res, err := a.installer.RunScript(ctx, install.Options{LTS: c.LTS, Version: c.Version})
		if err != nil {
			return err
		}
		if res.ScriptExitCode != 0 {
			a.warn(fmt.Sprintf("warning: install script exited with code %d", res.ScriptExitCode))
		}
		fmt.Fprintln(a.out, "dotnet installation completed.")
		return nil
	default:
		return fmt.Errorf("unknown install state %s", state)
	}
}

func (a *App) newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "dnvm",
		Short:         "dnvm manages the dotnet SDK",
		Long:          "dnvm reports the active dotnet version, lists installed SDKs, pins an SDK version in global.json and installs dotnet with the official install script.",
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && a.logLevel != nil {
				a.logLevel.Set(slog.LevelDebug)
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newCurrentCommand(),
		a.newListCommand(),
		a.newUseCommand(),
		a.newInstallCommand(),
	)
	return root
}
