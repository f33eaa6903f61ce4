package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
)

// HTTPClient 定义 Downloader 所需的 HTTP 客户端能力。
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Downloader 负责下载安装脚本。
type Downloader struct {
	httpClient HTTPClient
	log        *slog.Logger
}

// DownloaderOption 配置 Downloader。
type DownloaderOption func(*Downloader)

// WithHTTPClient 指定自定义 HTTP 客户端。
func WithHTTPClient(client HTTPClient) DownloaderOption {
	return func(d *Downloader) {
		if client != nil {
			d.httpClient = client
		}
	}
}

// WithDownloadLogger 指定日志记录器。
func WithDownloadLogger(logger *slog.Logger) DownloaderOption {
	return func(d *Downloader) {
		if logger != nil {
			d.log = logger
		}
	}
}

// NewDownloader 创建 Downloader。
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		httpClient: http.DefaultClient,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Download 将 url 的响应体写入 dest。先写入同目录的临时文件，成功后再重命名，
// 中途失败不会在 dest 留下残缺文件。
func (d *Downloader) Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &dnerrors.NetworkError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}

	d.log.Debug("downloading install script", "url", url)
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &dnerrors.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &dnerrors.NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	tempFile, err := os.CreateTemp(filepath.Dir(dest), ".dnvm-download-*.tmp")
	if err != nil {
		return &dnerrors.IOError{Op: "create", Path: filepath.Dir(dest), Err: err}
	}
	tempPath := tempFile.Name()
	defer func() {
		tempFile.Close()
		os.Remove(tempPath)
	}()

	written, err := io.Copy(tempFile, resp.Body)
	if err != nil {
		return &dnerrors.NetworkError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := tempFile.Close(); err != nil {
		return &dnerrors.IOError{Op: "write", Path: tempPath, Err: err}
	}

	if err := os.Remove(dest); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &dnerrors.IOError{Op: "remove", Path: dest, Err: err}
	}
	if err := os.Rename(tempPath, dest); err != nil {
		return &dnerrors.IOError{Op: "rename", Path: dest, Err: err}
	}

	d.log.Debug("install script downloaded", "path", dest, "bytes", written)
	return nil
}
