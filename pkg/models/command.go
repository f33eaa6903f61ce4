package models

// Command 表示一次调用解析出的子命令，只能是下面四种之一。
type Command interface {
	isCommand()
}

// CurrentCommand 查询当前 dotnet 版本。
type CurrentCommand struct{}

// ListCommand 列出已安装的 SDK。
type ListCommand struct{}

// UseCommand 将 SDK 版本写入 global.json。
type UseCommand struct {
	Version string
}

// InstallCommand 在未安装 dotnet 时执行官方安装脚本。
type InstallCommand struct {
	LTS     bool
	Version *string // nil 表示未指定 --version
}

func (CurrentCommand) isCommand() {}
func (ListCommand) isCommand()    {}
func (UseCommand) isCommand()     {}
func (InstallCommand) isCommand() {}
