package toolchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/liangyou/dnvm/internal/process"
	"github.com/liangyou/dnvm/pkg/models"
)

// Client 通过 dotnet 命令查询本机版本信息。
type Client struct {
	runner process.Runner
	binary string
	log    *slog.Logger
}

// Option 用于配置 Client。
type Option func(*Client)

// WithLogger 设置日志记录器。
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// NewClient 创建 Client。
func NewClient(runner process.Runner, cfg models.Config, opts ...Option) *Client {
	c := &Client{
		runner: runner,
		binary: cfg.BinaryOrDefault(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentVersion 执行 dotnet --version 并返回第一行输出。
// 非零退出时返回 ExitError。
func (c *Client) CurrentVersion(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return FirstLine(out), nil
}

// ListSDKs 执行 dotnet --list-sdks 并返回每行的版本号。
func (c *Client) ListSDKs(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "--list-sdks")
	if err != nil {
		return nil, err
	}
	return ParseSDKList(out), nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c.runner == nil {
		return "", errors.New("toolchain: runner is required")
	}
	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return "", err
	}
	if exitErr := res.ExitError(c.binary); exitErr != nil {
		c.log.Debug("dotnet returned non-zero exit", "args", args, "exit_code", res.ExitCode)
		return "", exitErr
	}
	return string(res.Stdout), nil
}

// FirstLine 返回去除首尾空白后的第一行。
func FirstLine(out string) string {
	trimmed := strings.TrimSpace(out)
	if idx := strings.IndexAny(trimmed, "\r\n"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	return trimmed
}

// ParseSDKList 从 --list-sdks 的输出中提取每行第一个字段，空白行被忽略。
func ParseSDKList(out string) []string {
	versions := []string{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		versions = append(versions, fields[0])
	}
	return versions
}
