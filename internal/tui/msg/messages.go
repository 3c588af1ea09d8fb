package msg

import (
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
)

// PaletteOp 調色板操作類型
type PaletteOp int

const (
	OpCreate PaletteOp = iota
	OpAppend
	OpDelete
	OpDeleteColors
)

// PaletteResultMsg 調色板持久化結果
type PaletteResultMsg struct {
	Op    PaletteOp
	Name  string
	Count int
	Err   error
}

// ConfigUpdateMsg 配置更新消息
type ConfigUpdateMsg struct {
	Config  *domainConfig.Config
	Message string
	Err     error
}
