package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/liangyou/dnvm/internal/cli"
	"github.com/liangyou/dnvm/internal/install"
	"github.com/liangyou/dnvm/internal/platform"
	"github.com/liangyou/dnvm/internal/process"
	"github.com/liangyou/dnvm/internal/storage"
	"github.com/liangyou/dnvm/internal/toolchain"
	"github.com/liangyou/dnvm/pkg/models"
)

// appVersion 由构建时 -ldflags 注入。
var appVersion = "dev"

func main() {
	cfg := models.ConfigFromEnv(models.Config{}, os.Getenv)

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ops := platform.Detect()
	runner := process.NewExec(logger)
	client := toolchain.NewClient(runner, cfg, toolchain.WithLogger(logger))
	pins := storage.NewPinWriter(ops)
	downloader := install.NewDownloader(install.WithDownloadLogger(logger))
	installer := install.NewInstaller(ops, runner, downloader, cfg,
		install.WithStatusWriter(os.Stdout),
		install.WithLogger(logger),
	)

	app := cli.NewApp(os.Stdout, os.Stderr, client, pins, installer, appVersion,
		cli.WithLogger(logger),
		cli.WithLogLevel(level),
	)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
