package handlers

import (
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// Config 用於初始化 Handlers 的配置結構體
type Config struct {
	Log       *zap.Logger
	StateMgr  *state.Manager
	ConfigSvc *application.ConfigService
	Palettes  *application.PaletteService
}
