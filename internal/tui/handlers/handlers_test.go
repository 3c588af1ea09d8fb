package handlers

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	infraConfig "github.com/Yat-Muk/colorstk/internal/infra/config"
	infraPalette "github.com/Yat-Muk/colorstk/internal/infra/palette"
	"github.com/Yat-Muk/colorstk/internal/tui/msg"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

type testEnv struct {
	keys  *KeyHandler
	mouse *MouseHandler
	m     *state.Manager
}

// setupTestEnv 用臨時目錄中的真實倉庫搭建完整的狀態，初始顏色為紅色
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	log := zap.NewNop()

	cfg := domainConfig.DefaultConfig()
	configSvc := application.NewConfigService(infraConfig.NewFileRepository(filepath.Join(dir, "config.yaml"), log), log)
	palettes := application.NewPaletteService(infraPalette.NewFileRepository(filepath.Join(dir, "palettes.json"), log), log)
	require.NoError(t, palettes.Load(context.Background()))

	color := colorstate.New(colorspace.FromInts(255, 0, 0, colorspace.D65))
	spaces, err := cfg.Spaces()
	require.NoError(t, err)
	engine := valuesync.NewEngine(color, spaces, valuesync.Range255, log)
	lookup := application.NewLookupService(color, colorspace.D65, colorspace.ModeRYB, rand.New(rand.NewSource(1)), log)
	t.Cleanup(func() {
		engine.Close()
		lookup.Close()
	})

	m := state.NewManager(&state.Config{
		Log:           log,
		InitialConfig: cfg,
		Color:         color,
		Engine:        engine,
		Lookup:        lookup,
		Palettes:      palettes,
	})
	keys := NewKeyHandler(m, NewCommandBuilder(log, configSvc, palettes))
	return &testEnv{keys: keys, mouse: NewMouseHandler(keys), m: m}
}

// submit 模擬輸入一行並按下 Enter
func (e *testEnv) submit(input string) tea.Cmd {
	e.m.UI().TextInput.SetValue(input)
	_, cmd := e.keys.Handle(tea.KeyMsg{Type: tea.KeyEnter}, e.m)
	return cmd
}

func (e *testEnv) press(k tea.KeyType) tea.Cmd {
	_, cmd := e.keys.Handle(tea.KeyMsg{Type: k}, e.m)
	return cmd
}

// settle 執行命令中的異步 I/O 並把結果送回處理函數；計時器類命令不等待
func (e *testEnv) settle(cmd tea.Cmd) {
	for _, message := range collect(cmd) {
		switch r := message.(type) {
		case msg.PaletteResultMsg:
			e.settle(HandlePaletteResult(e.m, r))
		case msg.ConfigUpdateMsg:
			e.settle(HandleConfigUpdate(e.m, r))
		}
	}
}

// collect 執行命令（展開 Batch），超時未返回的命令被忽略
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case message := <-ch:
		if batch, ok := message.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{message}
	case <-time.After(300 * time.Millisecond):
		return nil
	}
}
