package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
)

// Result 保存一次进程执行的输出与退出码。
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success 判断进程是否以 0 退出。
func (r Result) Success() bool { return r.ExitCode == 0 }

// ExitError 将非零退出转换为 ExitError，成功时返回 nil。
func (r Result) ExitError(name string) error {
	if r.Success() {
		return nil
	}
	return &dnerrors.ExitError{Name: name, Code: r.ExitCode, Stderr: string(r.Stderr)}
}

// Runner 运行外部命令。进程无法启动时返回 SpawnError，非零退出只体现在 Result.ExitCode 中。
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

var execCommand = exec.CommandContext

// Exec 基于 os/exec 实现 Runner。
type Exec struct {
	log *slog.Logger
}

// NewExec 创建 Exec，logger 为空时丢弃日志。
func NewExec(logger *slog.Logger) *Exec {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Exec{log: logger}
}

// Run 执行命令并收集 stdout 与 stderr。
func (e *Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	e.log.Debug("running command", "name", name, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := execCommand(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		e.log.Debug("command exited", "name", name, "exit_code", result.ExitCode)
		return result, nil
	}

	e.log.Debug("command failed to start", "name", name, "error", err)
	return result, &dnerrors.SpawnError{Name: name, Err: err}
}
