package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	dnerrors "github.com/liangyou/dnvm/internal/errors"
	"github.com/liangyou/dnvm/pkg/models"
)

// ErrVersionNotUTF8 表示版本号不是合法的 UTF-8 字符串。
var ErrVersionNotUTF8 = errors.New("version is not valid UTF-8")

// HomeResolver 返回用户主目录。
type HomeResolver interface {
	HomeDir() (string, error)
}

// PinWriter 将 SDK 版本写入主目录下的 global.json。
type PinWriter struct {
	home HomeResolver
}

// NewPinWriter 创建 PinWriter。
func NewPinWriter(home HomeResolver) *PinWriter {
	return &PinWriter{home: home}
}

// Path 返回 global.json 的完整路径。
func (w *PinWriter) Path() (string, error) {
	if w.home == nil {
		return "", errors.New("storage: home resolver is required")
	}
	home, err := w.home.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, models.PinFileName), nil
}

// Write 覆盖写入 global.json 并返回文件路径。版本号原样写入，不做语义校验，也不合并旧内容；
// 只拒绝无法原样编码进 JSON 的非 UTF-8 字符串，此时不会触碰已有文件。
func (w *PinWriter) Write(version string) (string, error) {
	if !utf8.ValidString(version) {
		return "", &dnerrors.ConfigError{Setting: "version", Err: ErrVersionNotUTF8}
	}

	path, err := w.Path()
	if err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", &dnerrors.IOError{Op: "create", Path: path, Err: err}
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(models.NewPinFile(version)); err != nil {
		return "", &dnerrors.IOError{Op: "write", Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return "", &dnerrors.IOError{Op: "close", Path: path, Err: err}
	}
	return path, nil
}
