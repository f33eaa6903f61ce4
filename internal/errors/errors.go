// Package errors 定义 dnvm 的错误类型。
//
// ConfigError、NetworkError、IOError、SpawnError 属于致命错误，会一路返回到 main；
// ExitError 表示外部进程已启动但以非零状态退出，调用方只做提示，不作为失败处理。
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DnvmError 是所有 dnvm 错误类型的公共接口。
type DnvmError interface {
	error
	IsDnvmError() bool
}

var (
	_ DnvmError = (*ConfigError)(nil)
	_ DnvmError = (*NetworkError)(nil)
	_ DnvmError = (*IOError)(nil)
	_ DnvmError = (*SpawnError)(nil)
	_ DnvmError = (*ExitError)(nil)
)

// ErrHomeNotSet 表示无法从环境变量中解析用户主目录。
var ErrHomeNotSet = errors.New("home directory is not set")

// ConfigError 表示运行配置缺失或无效。
type ConfigError struct {
	Setting string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Setting, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsDnvmError implements DnvmError.
func (e *ConfigError) IsDnvmError() bool { return true }

// NetworkError 表示下载请求失败或响应状态异常。
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("network: GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("network: GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsDnvmError implements DnvmError.
func (e *NetworkError) IsDnvmError() bool { return true }

// IOError 表示文件创建、写入或删除失败。
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsDnvmError implements DnvmError.
func (e *IOError) IsDnvmError() bool { return true }

// SpawnError 表示外部进程无法启动。
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("exec: start %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// IsDnvmError implements DnvmError.
func (e *SpawnError) IsDnvmError() bool { return true }

// ExitError 表示外部进程以非零状态退出。
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("exec: %s exited with code %d", e.Name, e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// IsDnvmError implements DnvmError.
func (e *ExitError) IsDnvmError() bool { return true }

// IsFatal 判断 err 是否应终止进程。ExitError 与 nil 都不是致命错误。
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *ExitError
	return !errors.As(err, &exitErr)
}
