package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
	"github.com/Yat-Muk/colorstk/internal/tui/constants"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// 數值編輯：<行號>[分量] <值>，例如 "2r 255"、"1 #ff8800"
var reValueEdit = regexp.MustCompile(`^(\d+)([A-Za-z]?)\s+(.+)$`)

// KeyHandler 核心處理器：負責全局導航和請求分發
type KeyHandler struct {
	stateMgr   *state.Manager
	cmdBuilder *CommandBuilder
}

func NewKeyHandler(stateMgr *state.Manager, cmdBuilder *CommandBuilder) *KeyHandler {
	return &KeyHandler{
		stateMgr:   stateMgr,
		cmdBuilder: cmdBuilder,
	}
}

// Handle 處理全局按鍵
func (h *KeyHandler) Handle(msg tea.KeyMsg, m *state.Manager) (*state.Manager, tea.Cmd) {
	keys := m.UI().Keys

	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	// 致命錯誤只允許退出
	if m.UI().Status.Type == state.StatusFatal {
		return m, nil
	}

	currentView := m.UI().CurrentView

	if currentView == state.LookupView {
		switch {
		case key.Matches(msg, keys.NextTab):
			m.Lookup().Cycle(1)
			return m, nil
		case key.Matches(msg, keys.PrevTab):
			m.Lookup().Cycle(-1)
			return m, nil
		case key.Matches(msg, keys.Undo):
			return m, h.undo(m)
		case key.Matches(msg, keys.Redo):
			return m, h.redo(m)
		}
	}

	switch {
	case key.Matches(msg, keys.Submit):
		return h.handleInputSubmit(m, currentView)
	case key.Matches(msg, keys.Back):
		return h.handleInputEscape(m, currentView)
	default:
		return m, m.UI().UpdateInput(msg)
	}
}

// ========================================
// 核心分發邏輯 (Enter 觸發)
// ========================================

func (h *KeyHandler) handleInputSubmit(m *state.Manager, v state.View) (*state.Manager, tea.Cmd) {
	input := strings.TrimSpace(m.UI().GetInputBuffer())
	m.UI().ClearInput()

	// 新建對話框允許空輸入（使用默認名稱）
	if input == "" && v != state.PaletteCreateView {
		return m, nil
	}

	switch v {
	case state.LookupView:
		return h.submitLookup(m, input)
	case state.PaletteListView:
		return h.submitPaletteList(m, input)
	case state.PaletteCreateView:
		return h.submitPaletteCreate(m, input)
	case state.PaletteColorsView:
		return h.submitPaletteColors(m, input)
	case state.SettingsView:
		return h.submitSettings(m, input)
	}
	return m, nil
}

func (h *KeyHandler) handleInputEscape(m *state.Manager, v state.View) (*state.Manager, tea.Cmd) {
	m.UI().ClearInput()
	if n := m.Scheduler().CancelTag(tagLongPress); n > 0 {
		m.List().Press = state.PressState{}
		m.Log().Debug("取消長按", zap.Int("count", n))
	}

	switch v {
	case state.PaletteListView:
		mode := m.List().Mode
		m.List().Reset()
		if mode == view.ModeSelect {
			return m, nil
		}
		return m, m.UI().SwitchView(state.LookupView)

	case state.PaletteCreateView:
		return m, m.UI().SwitchView(state.PaletteListView)

	case state.PaletteColorsView:
		if m.List().Mode == view.ModeSelect {
			m.List().Reset()
			return m, nil
		}
		m.List().Reset()
		return m, m.UI().SwitchView(state.PaletteListView)

	case state.SettingsView:
		return m, m.UI().SwitchView(state.LookupView)
	}
	return m, nil
}

// ========================================
// 查色界面
// ========================================

func (h *KeyHandler) submitLookup(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	svc := m.LookupService()

	// 全局命令
	switch input {
	case constants.KeyGlobal_Undo:
		return m, h.undo(m)
	case constants.KeyGlobal_Redo:
		return m, h.redo(m)
	case constants.KeyGlobal_Random:
		c := svc.Random()
		return m, StatusCmd(m, state.StatusInfo, "隨機顏色 "+c.HTML(), "")
	case constants.KeyGlobal_Palettes:
		m.List().Reset()
		return m, m.UI().SwitchView(state.PaletteListView)
	case constants.KeyGlobal_AddTo:
		m.List().SetMode(view.ModeAdd)
		return m, m.UI().SwitchView(state.PaletteListView)
	case constants.KeyGlobal_Settings:
		return m, m.UI().SwitchView(state.SettingsView)
	case constants.KeyGlobal_Quit:
		return m, tea.Quit
	}

	// 數值編輯優先：帶空格的輸入只可能是編輯
	if m.Lookup().ValuesVisible() && reValueEdit.MatchString(input) {
		return m, h.applyValueEdit(m, input)
	}

	switch m.Lookup().Active {
	case view.TabInfo:
		return m, h.submitInfo(m, input)
	case view.TabSchemes:
		return m, h.submitSchemes(m, input)
	case view.TabTools:
		return m, h.submitTools(m, input)
	}

	return m, StatusCmd(m, state.StatusWarn, "⚠ 無法識別的命令: "+input, "")
}

func (h *KeyHandler) undo(m *state.Manager) tea.Cmd {
	if !m.LookupService().Undo() {
		return StatusCmd(m, state.StatusWarn, "⚠ 沒有可以撤銷的記錄", "")
	}
	return nil
}

func (h *KeyHandler) redo(m *state.Manager) tea.Cmd {
	if !m.LookupService().Redo() {
		return StatusCmd(m, state.StatusWarn, "⚠ 沒有可以重做的記錄", "")
	}
	return nil
}

func (h *KeyHandler) applyValueEdit(m *state.Manager, input string) tea.Cmd {
	parts := reValueEdit.FindStringSubmatch(input)
	row, _ := strconv.Atoi(parts[1])
	label, raw := parts[2], parts[3]

	displays := m.Engine().Displays()
	if row < 1 || row > len(displays) {
		return StatusCmd(m, state.StatusError, fmt.Sprintf("✗ 沒有第 %d 行", row), "")
	}
	space := displays[row-1].Space

	index, err := fieldIndex(space, label)
	if err != nil {
		return StatusCmd(m, state.StatusError, "✗ "+err.Error(), "")
	}

	applied, err := m.Engine().ApplyEdit(space, index, raw)
	switch {
	case err == nil:
		return StatusCmd(m, state.StatusSuccess, fmt.Sprintf("✓ %s 已更新為 %s", space, applied.Color.HTML()), "")
	case stderrors.Is(err, errors.ErrIllegalColor):
		return StatusCmd(m, state.StatusError, "✗ 超出 sRGB 色域，已還原", "")
	default:
		return StatusCmd(m, state.StatusWarn, "⚠ 輸入無效，數值未改變", "")
	}
}

// fieldIndex 按分量短名稱找序號；單分量空間可以省略
func fieldIndex(space colorspace.Space, label string) (int, error) {
	labels := space.FieldLabels()
	if label == "" {
		if len(labels) == 1 {
			return 0, nil
		}
		return 0, fmt.Errorf("%s 需要指定分量 (%s)", space, strings.Join(labels, "/"))
	}
	for i, l := range labels {
		if strings.EqualFold(l, label) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s 沒有分量 %s", space, label)
}

func (h *KeyHandler) submitInfo(m *state.Manager, input string) tea.Cmd {
	svc := m.LookupService()
	info := svc.Info()

	switch input {
	case constants.KeyInfo_Websafe:
		svc.JumpTo(info.Websafe)
		return nil
	case constants.KeyInfo_Greyscale:
		svc.JumpTo(info.Greyscale)
		return nil
	case constants.KeyInfo_Complementary:
		svc.JumpTo(info.Complementary)
		return nil
	}

	if name, ok := strings.CutPrefix(input, constants.KeyInfo_Named+" "); ok {
		name = strings.ToLower(strings.TrimSpace(name))
		c, found := colorspace.Named(name, svc.WhiteRef())
		if !found {
			return StatusCmd(m, state.StatusWarn, "⚠ 沒有名為 "+name+" 的顏色", "")
		}
		svc.JumpTo(c)
		return nil
	}

	return StatusCmd(m, state.StatusWarn, "⚠ 無法識別的命令: "+input, "")
}

func (h *KeyHandler) submitSchemes(m *state.Manager, input string) tea.Cmd {
	flat := view.FlattenSchemes(m.LookupService().Schemes())
	idx, ok := parseIndex(input, len(flat))
	if !ok {
		return StatusCmd(m, state.StatusWarn, fmt.Sprintf("⚠ 請輸入 1-%d", len(flat)), "")
	}
	m.LookupService().JumpTo(flat[idx])
	return nil
}

func (h *KeyHandler) submitTools(m *state.Manager, input string) tea.Cmd {
	svc := m.LookupService()

	switch input {
	case constants.KeyTools_Slot1, constants.KeyTools_Slot2:
		i, _ := strconv.Atoi(input)
		return h.tapSlot(m, i-1)
	case constants.KeyTools_Blend:
		c, ok := svc.Blend()
		if !ok {
			return StatusCmd(m, state.StatusWarn, "⚠ 需要先填滿兩個選色槽", "")
		}
		return StatusCmd(m, state.StatusSuccess, "✓ 混合結果 "+c.HTML(), "")
	}

	if rest, ok := strings.CutPrefix(input, constants.KeyTools_Recall); ok {
		if i, ok := parseIndex(rest, application.SlotCount); ok {
			return h.holdSlot(m, i)
		}
	}

	return StatusCmd(m, state.StatusWarn, "⚠ 無法識別的命令: "+input, "")
}

// tapSlot 單擊：存入當前顏色
func (h *KeyHandler) tapSlot(m *state.Manager, i int) tea.Cmd {
	if !m.LookupService().StoreSlot(i) {
		return nil
	}
	return StatusCmd(m, state.StatusInfo, fmt.Sprintf("已存入選色槽 %d", i+1), "")
}

// holdSlot 長按：取出選色槽中的顏色
func (h *KeyHandler) holdSlot(m *state.Manager, i int) tea.Cmd {
	if !m.LookupService().RecallSlot(i) {
		return StatusCmd(m, state.StatusWarn, fmt.Sprintf("⚠ 選色槽 %d 是空的", i+1), "")
	}
	return nil
}

// ========================================
// 調色板
// ========================================

func (h *KeyHandler) submitPaletteList(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	list := m.List()
	names := m.Palettes().Names()

	switch list.Mode {
	case view.ModeSelect:
		switch input {
		case constants.KeyPalette_All:
			list.ToggleAll(len(names))
			return m, nil
		case constants.KeyPalette_Delete:
			return m, h.deleteMarkedPalettes(m)
		}
	default:
		switch input {
		case constants.KeyPalette_New:
			return m, m.UI().SwitchView(state.PaletteCreateView)
		case constants.KeyPalette_Select:
			list.EnterSelect(-1)
			return m, nil
		}
	}

	idx, ok := parseIndex(input, len(names))
	if !ok {
		return m, StatusCmd(m, state.StatusWarn, "⚠ 無效的序號: "+input, "")
	}
	return m, h.tapPalette(m, idx)
}

// tapPalette 單擊調色板行：按模式打開、加入或標記
func (h *KeyHandler) tapPalette(m *state.Manager, idx int) tea.Cmd {
	list := m.List()
	names := m.Palettes().Names()
	if idx < 0 || idx >= len(names) {
		return nil
	}
	name := names[idx]

	switch list.Mode {
	case view.ModeSelect:
		list.Toggle(idx)
		return nil

	case view.ModeAdd:
		rgb := palette.FromColor(m.Color().Current())
		list.Reset()
		return tea.Batch(
			m.UI().SwitchView(state.LookupView),
			h.cmdBuilder.AppendColorCmd(name, rgb),
		)

	default:
		list.Reset()
		list.Palette = name
		return m.UI().SwitchView(state.PaletteColorsView)
	}
}

func (h *KeyHandler) deleteMarkedPalettes(m *state.Manager) tea.Cmd {
	names := m.Palettes().Names()
	var targets []string
	for _, i := range m.List().MarkedIndexes() {
		if i < len(names) {
			targets = append(targets, names[i])
		}
	}
	m.List().Reset()
	if len(targets) == 0 {
		return StatusCmd(m, state.StatusWarn, "⚠ 沒有標記任何調色板", "")
	}
	return h.cmdBuilder.DeletePalettesCmd(targets)
}

func (h *KeyHandler) submitPaletteCreate(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	name := input
	if name == "" {
		name = m.Palettes().DefaultName()
	}
	return m, h.cmdBuilder.CreatePaletteCmd(name)
}

func (h *KeyHandler) submitPaletteColors(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	list := m.List()
	pal, err := m.Palettes().Get(list.Palette)
	if err != nil {
		list.Reset()
		return m, tea.Batch(
			m.UI().SwitchView(state.PaletteListView),
			StatusCmd(m, state.StatusError, "✗ "+err.Error(), ""),
		)
	}

	if list.Mode == view.ModeSelect {
		switch input {
		case constants.KeyPalette_All:
			list.ToggleAll(len(pal.Colors))
			return m, nil
		case constants.KeyPalette_Delete:
			return m, h.deleteMarkedColors(m, pal)
		}
	} else if input == constants.KeyPalette_Select {
		list.EnterSelect(-1)
		return m, nil
	}

	idx, ok := parseIndex(input, len(pal.Colors))
	if !ok {
		return m, StatusCmd(m, state.StatusWarn, "⚠ 無效的序號: "+input, "")
	}
	return m, h.tapColor(m, idx)
}

// tapColor 單擊顏色行：選擇模式下標記，否則跳轉
func (h *KeyHandler) tapColor(m *state.Manager, idx int) tea.Cmd {
	list := m.List()
	pal, err := m.Palettes().Get(list.Palette)
	if err != nil || idx < 0 || idx >= len(pal.Colors) {
		return nil
	}

	if list.Mode == view.ModeSelect {
		list.Toggle(idx)
		return nil
	}

	m.LookupService().JumpToRGB(pal.Colors[idx])
	list.Reset()
	return m.UI().SwitchView(state.LookupView)
}

func (h *KeyHandler) deleteMarkedColors(m *state.Manager, pal palette.Palette) tea.Cmd {
	var colors []palette.RGB
	for _, i := range m.List().MarkedIndexes() {
		if i < len(pal.Colors) {
			colors = append(colors, pal.Colors[i])
		}
	}
	name := m.List().Palette
	m.List().Reset()
	m.List().Palette = name
	if len(colors) == 0 {
		return StatusCmd(m, state.StatusWarn, "⚠ 沒有標記任何顏色", "")
	}
	return h.cmdBuilder.DeleteColorsCmd(pal.Name, colors)
}

// ========================================
// 設置
// ========================================

type configSetter func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error)

func (h *KeyHandler) submitSettings(m *state.Manager, input string) (*state.Manager, tea.Cmd) {
	cfg := m.Config().GetConfig()

	var desc string
	var set configSetter

	switch input {
	case constants.KeySettings_WhitePoint:
		next := application.NextOption(colorspace.WhitePointNames(), cfg.Color.WhitePoint)
		desc = "白點 " + next
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.SetWhitePoint(ctx, next)
		}

	case constants.KeySettings_Observer:
		next := application.NextOption([]string{colorspace.Observer1931, colorspace.Observer1964}, cfg.Color.ObserverAngle)
		desc = "觀察者視角 " + next
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.SetObserverAngle(ctx, next)
		}

	case constants.KeySettings_SchemeMode:
		next, _ := colorspace.ParseSchemeMode(application.NextOption([]string{"RYB", "RGB"}, cfg.Color.SchemeMode))
		desc = "色輪模式 " + next.String()
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.SetSchemeMode(ctx, next)
		}

	case constants.KeySettings_ValueRange:
		next := nextValueRange(cfg.UI.ValueRange)
		desc = "sRGB 數值範圍 " + next.String()
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.SetValueRange(ctx, next)
		}

	case constants.KeySettings_Detach:
		next := !cfg.UI.DetachValues
		desc = "數值面板獨立顯示"
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.SetDetachValues(ctx, next)
		}

	default:
		n, err := strconv.Atoi(input)
		all := colorspace.AllSpaces()
		i := n - constants.SettingsSpaceOffset
		if err != nil || i < 0 || i >= len(all) {
			return m, StatusCmd(m, state.StatusWarn, "⚠ 無效的序號: "+input, "")
		}
		space := all[i]
		desc = "色彩空間 " + space.String()
		set = func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error) {
			return svc.ToggleColorSpace(ctx, space)
		}
	}

	return m, h.cmdBuilder.UpdateConfigCmd(desc, set)
}

// parseIndex 1 起始的序號轉為 0 起始
func parseIndex(input string, n int) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
