package models

// PinFileName 是写入用户主目录的 SDK 固定文件名。
const PinFileName = "global.json"

// PinFile 表示 global.json 的结构。
type PinFile struct {
	SDK PinSDK `json:"sdk"`
}

// PinSDK 描述被固定的 SDK。
type PinSDK struct {
	Version string `json:"version"`
}

// NewPinFile 用原样的版本字符串构造 PinFile。
func NewPinFile(version string) PinFile {
	return PinFile{SDK: PinSDK{Version: version}}
}
