package model

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/pkg/delay"
	"github.com/Yat-Muk/colorstk/internal/tui/handlers"
	"github.com/Yat-Muk/colorstk/internal/tui/msg"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// Router 事件路由器
type Router struct {
	stateMgr     *state.Manager
	keyHandler   *handlers.KeyHandler
	mouseHandler *handlers.MouseHandler
	log          *zap.Logger
}

// NewRouter 創建路由器
func NewRouter(cfg *handlers.Config) *Router {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	// 1. 初始化 CommandBuilder
	cmdBuilder := handlers.NewCommandBuilder(log, cfg.ConfigSvc, cfg.Palettes)

	// 2. 初始化按鍵與鼠標處理器
	keyHandler := handlers.NewKeyHandler(cfg.StateMgr, cmdBuilder)

	return &Router{
		stateMgr:     cfg.StateMgr,
		keyHandler:   keyHandler,
		mouseHandler: handlers.NewMouseHandler(keyHandler),
		log:          log,
	}
}

// InitModel 用於 Model.Init 調用
func (r *Router) InitModel() tea.Cmd {
	return r.stateMgr.UI().TextInput.Focus()
}

// Update 適配 bubbletea 的 Update 簽名
func (r *Router) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	return nil, r.routeMessage(message)
}

// View 適配 bubbletea 的 View 簽名
func (r *Router) View() string {
	return r.stateMgr.Render()
}

// routeMessage 內部路由邏輯
func (r *Router) routeMessage(message tea.Msg) tea.Cmd {
	m := r.stateMgr

	switch msgType := message.(type) {

	case tea.WindowSizeMsg:
		m.UI().UpdateSize(msgType.Width, msgType.Height)
		return nil

	case tea.KeyMsg:
		_, cmd := r.keyHandler.Handle(msgType, m)
		return cmd

	case tea.MouseMsg:
		return r.mouseHandler.Handle(msgType, m)

	case delay.FiredMsg:
		if ok, cmd := r.mouseHandler.Fire(msgType, m); ok {
			return cmd
		}
		// 狀態欄自動清除：只處理最新的計時器
		if m.Scheduler().Accept(msgType) && m.IsStatusTimer(msgType) {
			m.UI().ClearStatus()
		}
		return nil

	case msg.PaletteResultMsg:
		return handlers.HandlePaletteResult(m, msgType)

	case msg.ConfigUpdateMsg:
		return handlers.HandleConfigUpdate(m, msgType)
	}

	// 其餘消息交給輸入框（光標閃爍等）
	return m.UI().UpdateInput(message)
}
