package models

import (
	"strconv"
	"strings"
)

// 环境变量名，用于覆盖默认配置。
const (
	EnvBinary    = "DNVM_DOTNET"
	EnvScriptURL = "DNVM_SCRIPT_URL"
	EnvWorkDir   = "DNVM_WORKDIR"
	EnvVerbose   = "DNVM_VERBOSE"
)

// Config 保存 dnvm 的运行配置，零值表示使用默认值。
type Config struct {
	Binary    string // dotnet 可执行文件，默认 dotnet
	ScriptURL string // 安装脚本地址，为空时按平台选择官方地址
	WorkDir   string // 安装脚本临时存放目录，默认当前目录
	Verbose   bool   // 是否输出调试日志
}

// ConfigFromEnv 在 cfg 基础上叠加环境变量中的覆盖项。
func ConfigFromEnv(cfg Config, getenv func(string) string) Config {
	if getenv == nil {
		return cfg
	}
	if v := strings.TrimSpace(getenv(EnvBinary)); v != "" {
		cfg.Binary = v
	}
	if v := strings.TrimSpace(getenv(EnvScriptURL)); v != "" {
		cfg.ScriptURL = v
	}
	if v := strings.TrimSpace(getenv(EnvWorkDir)); v != "" {
		cfg.WorkDir = v
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(EnvVerbose))); err == nil {
		cfg.Verbose = v
	}
	return cfg
}

// BinaryOrDefault 返回配置的 dotnet 可执行文件名。
func (c Config) BinaryOrDefault() string {
	if c.Binary == "" {
		return "dotnet"
	}
	return c.Binary
}
