package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
	"github.com/liangyou/dnvm/internal/platform"
	"github.com/liangyou/dnvm/internal/process"
	"github.com/liangyou/dnvm/internal/toolchain"
	"github.com/liangyou/dnvm/pkg/models"
)

// State 表示探测 dotnet 后所处的安装状态。
type State int

const (
	// NeedsInstall 表示 dotnet 无法启动或返回非零状态。
	NeedsInstall State = iota
	// AlreadyInstalled 表示 dotnet --version 执行成功。
	AlreadyInstalled
)

func (s State) String() string {
	switch s {
	case AlreadyInstalled:
		return "already-installed"
	case NeedsInstall:
		return "needs-install"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options 控制安装脚本的渠道或版本参数，LTS 优先于 Version。
type Options struct {
	LTS     bool
	Version *string
}

// Result 描述一次安装脚本执行的结果。
type Result struct {
	ScriptExitCode int
}

// ScriptDownloader 用于获取安装脚本。
type ScriptDownloader interface {
	Download(ctx context.Context, url, dest string) error
}

// Installer 在本机缺少 dotnet 时下载并执行官方安装脚本。
type Installer struct {
	ops        platform.Ops
	runner     process.Runner
	downloader ScriptDownloader
	binary     string
	scriptURL  string
	workDir    string
	statusOut  io.Writer
	log        *slog.Logger
}

// Option 配置 Installer。
type Option func(*Installer)

// WithStatusWriter 指定安装脚本输出的转发位置。
func WithStatusWriter(w io.Writer) Option {
	return func(i *Installer) {
		i.statusOut = w
	}
}

// WithLogger 指定日志记录器。
func WithLogger(logger *slog.Logger) Option {
	return func(i *Installer) {
		if logger != nil {
			i.log = logger
		}
	}
}

// NewInstaller 创建 Installer。
func NewInstaller(ops platform.Ops, runner process.Runner, downloader ScriptDownloader, cfg models.Config, opts ...Option) *Installer {
	i := &Installer{
		ops:        ops,
		runner:     runner,
		downloader: downloader,
		binary:     cfg.BinaryOrDefault(),
		scriptURL:  cfg.ScriptURL,
		workDir:    cfg.WorkDir,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SelectorArgs 返回传给安装脚本的渠道或版本参数。
func SelectorArgs(opts Options) []string {
	switch {
	case opts.LTS:
		return []string{"-Channel", "LTS"}
	case opts.Version != nil:
		return []string{"-Version", *opts.Version}
	default:
		return nil
	}
}

// Probe 执行 dotnet --version 判断是否已安装。
// 无法启动与非零退出都视为未安装。
func (i *Installer) Probe(ctx context.Context) (State, string) {
	if i.runner == nil {
		return NeedsInstall, ""
	}
	res, err := i.runner.Run(ctx, i.binary, "--version")
	if err != nil {
		i.log.Debug("probe failed to start", "binary", i.binary, "error", err)
		return NeedsInstall, ""
	}
	if !res.Success() {
		i.log.Debug("probe exited non-zero", "binary", i.binary, "exit_code", res.ExitCode)
		return NeedsInstall, ""
	}
	return AlreadyInstalled, toolchain.FirstLine(string(res.Stdout))
}

// RunScript 下载并执行安装脚本，执行结束后无论成败都删除脚本。
// 安装脚本的非零退出不视为错误，退出码记录在 Result 中。
func (i *Installer) RunScript(ctx context.Context, opts Options) (Result, error) {
	if i.ops == nil || i.runner == nil || i.downloader == nil {
		return Result{}, errors.New("installer: missing dependencies")
	}

	url := i.scriptURL
	if url == "" {
		url = i.ops.ScriptURL()
	}
	path := filepath.Join(i.workDir, i.ops.ScriptFileName())
	var result Result

	if err := i.downloader.Download(ctx, url, path); err != nil {
		return result, err
	}
	if err := i.ops.PrepareScript(path); err != nil {
		return result, errors.Join(err, i.removeScript(path))
	}

	name, args := i.ops.ScriptInvocation(path, SelectorArgs(opts))
	i.log.Debug("running install script", "interpreter", name, "args", args)
	res, runErr := i.runner.Run(ctx, name, args...)
	if runErr == nil {
		i.relay(res.Stdout)
	}

	removeErr := i.removeScript(path)
	if runErr != nil {
		return result, errors.Join(runErr, removeErr)
	}
	result.ScriptExitCode = res.ExitCode
	if removeErr != nil {
		return result, removeErr
	}
	if !res.Success() {
		i.log.Debug("install script exited non-zero", "exit_code", res.ExitCode)
	}
	return result, nil
}

func (i *Installer) removeScript(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &dnerrors.IOError{Op: "remove", Path: path, Err: err}
	}
	i.log.Debug("install script removed", "path", path)
	return nil
}

func (i *Installer) relay(out []byte) {
	if i.statusOut == nil || len(out) == 0 {
		return
	}
	_, _ = i.statusOut.Write(out)
	if !bytes.HasSuffix(out, []byte("\n")) {
		_, _ = io.WriteString(i.statusOut, "\n")
	}
}
