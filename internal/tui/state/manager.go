package state

import (
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/pkg/delay"
)

// Config 初始化配置
type Config struct {
	Log           *zap.Logger
	InitialConfig *domainConfig.Config
	Color         *colorstate.State
	Engine        *valuesync.Engine
	Lookup        *application.LookupService
	Palettes      *application.PaletteService
	Scheduler     *delay.Scheduler
}

// Manager 狀態管理器 (State Container)
type Manager struct {
	log *zap.Logger

	ui     *UIState
	lookup *LookupState
	list   *ListState
	config *ConfigState

	color     *colorstate.State
	engine    *valuesync.Engine
	lookupSvc *application.LookupService
	palettes  *application.PaletteService
	scheduler *delay.Scheduler

	// 狀態欄自動清除的計時器
	statusTimer delay.Handle
}

// NewManager 創建狀態管理器
func NewManager(cfg *Config) *Manager {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = delay.NewScheduler()
	}

	m := &Manager{
		log:       log,
		color:     cfg.Color,
		engine:    cfg.Engine,
		lookupSvc: cfg.Lookup,
		palettes:  cfg.Palettes,
		scheduler: scheduler,
	}

	m.ui = NewUIState()
	m.config = NewConfigState(cfg.InitialConfig)
	m.lookup = NewLookupState(m.config.GetConfig().UI.DetachValues)
	m.list = NewListState()

	return m
}

// Getters 訪問器

func (m *Manager) UI() *UIState { return m.ui }
func (m *Manager) Lookup() *LookupState { return m.lookup }
func (m *Manager) List() *ListState { return m.list }
func (m *Manager) Config() *ConfigState { return m.config }
func (m *Manager) Color() *colorstate.State { return m.color }
func (m *Manager) Engine() *valuesync.Engine { return m.engine }
func (m *Manager) LookupService() *application.LookupService { return m.lookupSvc }
func (m *Manager) Palettes() *application.PaletteService { return m.palettes }
func (m *Manager) Scheduler() *delay.Scheduler { return m.scheduler }
func (m *Manager) Log() *zap.Logger { return m.log }

// StatusTimer 替換狀態欄計時器，舊的計時器被取消
func (m *Manager) StatusTimer(h delay.Handle) {
	m.statusTimer.Cancel()
	m.statusTimer = h
}

// IsStatusTimer 是否是當前狀態欄計時器
func (m *Manager) IsStatusTimer(msg delay.FiredMsg) bool {
	return m.statusTimer.ID() == msg.ID
}
