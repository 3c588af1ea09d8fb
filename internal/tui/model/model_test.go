package model

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	infraConfig "github.com/Yat-Muk/colorstk/internal/infra/config"
	infraPalette "github.com/Yat-Muk/colorstk/internal/infra/palette"
	"github.com/Yat-Muk/colorstk/internal/tui/constants"
	"github.com/Yat-Muk/colorstk/internal/tui/handlers"
	"github.com/Yat-Muk/colorstk/internal/tui/msg"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// setupTestRouter 初始化測試用的 Router
func setupTestRouter(t *testing.T) *Router {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()
	defaultCfg := domainConfig.DefaultConfig()

	color := colorstate.New(colorspace.FromInts(255, 0, 0, colorspace.D65))
	spaces, err := defaultCfg.Spaces()
	require.NoError(t, err)
	engine := valuesync.NewEngine(color, spaces, valuesync.Range255, logger)
	lookup := application.NewLookupService(color, colorspace.D65, colorspace.ModeRYB, rand.New(rand.NewSource(1)), logger)
	palettes := application.NewPaletteService(infraPalette.NewFileRepository(filepath.Join(dir, "palettes.json"), logger), logger)
	t.Cleanup(func() {
		engine.Close()
		lookup.Close()
	})

	// 1. 構建 State Config
	stateMgr := state.NewManager(&state.Config{
		Log:           logger,
		InitialConfig: defaultCfg,
		Color:         color,
		Engine:        engine,
		Lookup:        lookup,
		Palettes:      palettes,
	})

	// 2. 構建 Handler Config
	handlerCfg := &handlers.Config{
		Log:       logger,
		StateMgr:  stateMgr,
		ConfigSvc: application.NewConfigService(infraConfig.NewFileRepository(filepath.Join(dir, "config.yaml"), logger), logger),
		Palettes:  palettes,
	}

	// 3. 創建 Router
	return NewRouter(handlerCfg)
}

func TestRouter_Init(t *testing.T) {
	r := setupTestRouter(t)
	assert.NotNil(t, r.InitModel(), "InitModel 應返回光標閃爍命令")
}

func TestRouter_WindowSize(t *testing.T) {
	r := setupTestRouter(t)
	r.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, r.stateMgr.UI().Width)
	assert.Equal(t, 40, r.stateMgr.UI().Height)
}

func TestRouter_Update_KeyMsg(t *testing.T) {
	r := setupTestRouter(t)
	require.Equal(t, state.LookupView, r.stateMgr.UI().CurrentView)

	r.stateMgr.UI().TextInput.SetValue(constants.KeyGlobal_Palettes)
	r.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, state.PaletteListView, r.stateMgr.UI().CurrentView)
}

func TestRouter_StatusTimer(t *testing.T) {
	r := setupTestRouter(t)
	m := r.stateMgr
	m.UI().SetStatus(state.StatusSuccess, "✓ 已保存", "")

	stale, staleCmd := m.Scheduler().Schedule(time.Millisecond, "status")
	m.StatusTimer(stale)
	current, cmd := m.Scheduler().Schedule(time.Millisecond, "status")
	m.StatusTimer(current)

	// 被替換的計時器到期時不清除
	r.Update(staleCmd())
	assert.Equal(t, state.StatusSuccess, m.UI().Status.Type)

	r.Update(cmd())
	assert.Equal(t, state.StatusReady, m.UI().Status.Type)
}

func TestRouter_Update_CustomMsg(t *testing.T) {
	r := setupTestRouter(t)
	m := r.stateMgr

	r.Update(msg.PaletteResultMsg{Op: msg.OpAppend, Name: "warm", Err: errors.New("disk full")})
	assert.Equal(t, state.StatusError, m.UI().Status.Type)
	assert.Contains(t, m.UI().StatusText(), "disk full")

	cfg := domainConfig.DefaultConfig()
	cfg.Color.SchemeMode = colorspace.ModeRGB.String()
	cfg.UI.DetachValues = true
	r.Update(msg.ConfigUpdateMsg{Config: cfg, Message: "色輪模式 RGB"})

	assert.Equal(t, state.StatusSuccess, m.UI().Status.Type)
	assert.Equal(t, colorspace.ModeRGB, m.LookupService().SchemeMode())
	assert.True(t, m.Lookup().Detach)
	assert.Equal(t, cfg, m.Config().GetConfig())
}

func TestModel_View(t *testing.T) {
	r := setupTestRouter(t)
	model := NewModel(r)

	out := model.View()
	assert.NotEmpty(t, out)
	assert.NotEmpty(t, r.stateMgr.UI().Zones, "渲染後記錄可點擊區域")

	next, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Same(t, model, next)
}
