package handlers

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/tui/constants"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

func TestKeyHandler_ValueEdit(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()

	e.submit("2g 255")
	assert.Equal(t, "#ffff00", svc.Current().HTML())
	assert.Equal(t, state.StatusSuccess, e.m.UI().Status.Type)
	assert.Equal(t, "", e.m.UI().GetInputBuffer(), "提交後清空輸入")

	e.submit("1 #00ff00")
	assert.Equal(t, "#00ff00", svc.Current().HTML())

	// 多分量空間必須指定分量
	e.submit("2 10")
	assert.Equal(t, state.StatusError, e.m.UI().Status.Type)
	assert.Equal(t, "#00ff00", svc.Current().HTML())

	e.submit("9r 1")
	assert.Equal(t, state.StatusError, e.m.UI().Status.Type)

	e.submit("2r abc")
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type)
	assert.Equal(t, "#00ff00", svc.Current().HTML())
}

func TestKeyHandler_IllegalEditReverts(t *testing.T) {
	e := setupTestEnv(t)
	color := e.m.Color()
	before := len(color.History())

	// 第 6 行是 CIE-LAB，亮度 150 超出 sRGB
	e.submit("6l 150")
	assert.Equal(t, state.StatusError, e.m.UI().Status.Type)
	assert.Equal(t, "#ff0000", color.Current().HTML())
	assert.Len(t, color.History(), before)
}

func TestKeyHandler_UndoRedo(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()

	e.submit("1 #123456")
	require.Equal(t, "#123456", svc.Current().HTML())

	e.submit(constants.KeyGlobal_Undo)
	assert.Equal(t, "#ff0000", svc.Current().HTML())

	e.press(tea.KeyCtrlY)
	assert.Equal(t, "#123456", svc.Current().HTML())

	e.press(tea.KeyCtrlZ)
	assert.Equal(t, "#ff0000", svc.Current().HTML())

	e.submit(constants.KeyGlobal_Undo)
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type, "沒有歷史時提示")
}

func TestKeyHandler_Random(t *testing.T) {
	e := setupTestEnv(t)
	e.submit(constants.KeyGlobal_Random)
	assert.True(t, e.m.Color().CanUndo())
	assert.Equal(t, state.StatusInfo, e.m.UI().Status.Type)
}

func TestKeyHandler_Tabs(t *testing.T) {
	e := setupTestEnv(t)
	assert.Equal(t, view.TabValues, e.m.Lookup().Active)

	e.press(tea.KeyTab)
	assert.Equal(t, view.TabInfo, e.m.Lookup().Active)

	e.press(tea.KeyShiftTab)
	e.press(tea.KeyShiftTab)
	assert.Equal(t, view.TabTools, e.m.Lookup().Active)
}

func TestKeyHandler_InfoTab(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()
	e.m.Lookup().Active = view.TabInfo

	comp := svc.Info().Complementary.HTML()
	e.submit(constants.KeyInfo_Complementary)
	assert.Equal(t, comp, svc.Current().HTML())

	e.submit(constants.KeyInfo_Named + " White")
	assert.Equal(t, "#ffffff", svc.Current().HTML())

	e.submit(constants.KeyInfo_Greyscale)
	assert.Equal(t, "#ffffff", svc.Current().HTML())

	e.submit(constants.KeyInfo_Named + " nosuchcolor")
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type)

	// 數值頁不可見時數字輸入不是編輯
	e.submit("2r 10")
	assert.Equal(t, "#ffffff", svc.Current().HTML())
}

func TestKeyHandler_SchemesTab(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()
	e.m.Lookup().Active = view.TabSchemes

	flat := view.FlattenSchemes(svc.Schemes())
	require.NotEmpty(t, flat)
	target := flat[len(flat)-1].HTML()

	e.submit("11")
	assert.Equal(t, target, svc.Current().HTML())

	e.submit("99")
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type)
}

func TestKeyHandler_ToolsTab(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()
	e.m.Lookup().Active = view.TabTools

	e.submit(constants.KeyTools_Blend)
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type)

	e.submit(constants.KeyTools_Slot1)
	assert.True(t, svc.SlotFilled(0))

	svc.JumpTo(colorspace.FromInts(0, 0, 255, colorspace.D65))
	e.submit(constants.KeyTools_Slot2)

	e.submit(constants.KeyTools_Blend)
	assert.Equal(t, "#800080", svc.Current().HTML())

	e.submit(constants.KeyTools_Recall + "1")
	assert.Equal(t, "#ff0000", svc.Current().HTML())
}

func TestKeyHandler_PaletteFlow(t *testing.T) {
	e := setupTestEnv(t)
	ui := e.m.UI()
	palettes := e.m.Palettes()

	e.submit(constants.KeyGlobal_Palettes)
	require.Equal(t, state.PaletteListView, ui.CurrentView)

	e.submit(constants.KeyPalette_New)
	require.Equal(t, state.PaletteCreateView, ui.CurrentView)

	// 空名稱使用默認名稱
	e.settle(e.submit(""))
	assert.Equal(t, []string{"palette1"}, palettes.Names())
	assert.Equal(t, state.PaletteListView, ui.CurrentView, "新建成功後回到列表")

	e.press(tea.KeyEsc)
	require.Equal(t, state.LookupView, ui.CurrentView)

	// 把當前顏色加入調色板
	e.submit(constants.KeyGlobal_AddTo)
	require.Equal(t, view.ModeAdd, e.m.List().Mode)
	e.settle(e.submit("1"))
	assert.Equal(t, state.LookupView, ui.CurrentView)

	pal, err := palettes.Get("palette1")
	require.NoError(t, err)
	require.Len(t, pal.Colors, 1)
	assert.Equal(t, "#ff0000", pal.Colors[0].Color(colorspace.D65).HTML())

	// 打開調色板並跳轉到顏色
	e.m.LookupService().Random()
	e.submit(constants.KeyGlobal_Palettes)
	e.submit("1")
	require.Equal(t, state.PaletteColorsView, ui.CurrentView)
	assert.Equal(t, "palette1", e.m.List().Palette)

	e.submit("1")
	assert.Equal(t, state.LookupView, ui.CurrentView)
	assert.Equal(t, "#ff0000", e.m.LookupService().Current().HTML())
}

func TestKeyHandler_CreateDuplicate(t *testing.T) {
	e := setupTestEnv(t)
	e.submit(constants.KeyGlobal_Palettes)
	e.submit(constants.KeyPalette_New)
	e.settle(e.submit("warm"))

	e.submit(constants.KeyPalette_New)
	e.settle(e.submit("warm"))
	assert.Equal(t, state.PaletteCreateView, e.m.UI().CurrentView, "重名時留在對話框")
	assert.Equal(t, state.StatusError, e.m.UI().Status.Type)
	assert.Equal(t, []string{"warm"}, e.m.Palettes().Names())
}

func TestKeyHandler_PaletteChangesApplyInUpdate(t *testing.T) {
	e := setupTestEnv(t)
	palettes := e.m.Palettes()
	e.submit(constants.KeyGlobal_Palettes)
	e.submit(constants.KeyPalette_New)

	// 結果消息送達前連續提交兩次默認名稱
	first := e.submit("")
	second := e.submit("")
	assert.Equal(t, []string{"palette1", "palette2"}, palettes.Names())

	e.settle(first)
	e.settle(second)
	assert.Equal(t, state.StatusSuccess, e.m.UI().Status.Type)

	e.press(tea.KeyEsc)
	require.Equal(t, state.LookupView, e.m.UI().CurrentView)
	e.submit(constants.KeyGlobal_AddTo)
	e.submit("2")
	pal, err := palettes.Get("palette2")
	require.NoError(t, err)
	assert.Len(t, pal.Colors, 1, "加入顏色不必等待命令執行")

	e.submit(constants.KeyGlobal_Palettes)
	e.submit(constants.KeyPalette_Select)
	e.submit("1")
	e.submit(constants.KeyPalette_Delete)
	assert.Equal(t, []string{"palette2"}, palettes.Names())
}

func TestKeyHandler_DeletePalettes(t *testing.T) {
	e := setupTestEnv(t)
	e.submit(constants.KeyGlobal_Palettes)
	for _, name := range []string{"a", "b", "c"} {
		e.submit(constants.KeyPalette_New)
		e.settle(e.submit(name))
	}
	require.Len(t, e.m.Palettes().Names(), 3)

	e.submit(constants.KeyPalette_Select)
	require.Equal(t, view.ModeSelect, e.m.List().Mode)
	e.submit("1")
	e.submit("3")
	assert.Equal(t, []int{0, 2}, e.m.List().MarkedIndexes())

	e.settle(e.submit(constants.KeyPalette_Delete))
	assert.Equal(t, []string{"b"}, e.m.Palettes().Names())
	assert.Equal(t, view.ModeNormal, e.m.List().Mode)

	// 全選後取消
	e.submit(constants.KeyPalette_Select)
	e.submit(constants.KeyPalette_All)
	assert.Len(t, e.m.List().Marked, 1)
	e.press(tea.KeyEsc)
	assert.Equal(t, view.ModeNormal, e.m.List().Mode)
	assert.Equal(t, state.PaletteListView, e.m.UI().CurrentView, "Esc 先退出選擇模式")
}

func TestKeyHandler_DeleteColors(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()
	e.submit(constants.KeyGlobal_Palettes)
	e.submit(constants.KeyPalette_New)
	e.settle(e.submit("p"))
	e.press(tea.KeyEsc)

	for _, c := range []colorspace.Color{
		colorspace.FromInts(255, 0, 0, colorspace.D65),
		colorspace.FromInts(0, 255, 0, colorspace.D65),
	} {
		svc.JumpTo(c)
		e.submit(constants.KeyGlobal_AddTo)
		e.settle(e.submit("1"))
	}

	e.submit(constants.KeyGlobal_Palettes)
	e.submit("1")
	require.Equal(t, state.PaletteColorsView, e.m.UI().CurrentView)

	e.submit(constants.KeyPalette_Select)
	e.submit("1")
	e.settle(e.submit(constants.KeyPalette_Delete))

	pal, err := e.m.Palettes().Get("p")
	require.NoError(t, err)
	require.Len(t, pal.Colors, 1)
	assert.Equal(t, "#00ff00", pal.Colors[0].Color(colorspace.D65).HTML())
	assert.Equal(t, "p", e.m.List().Palette)
}

func TestKeyHandler_Settings(t *testing.T) {
	e := setupTestEnv(t)
	svc := e.m.LookupService()

	e.submit(constants.KeyGlobal_Settings)
	require.Equal(t, state.SettingsView, e.m.UI().CurrentView)

	e.settle(e.submit(constants.KeySettings_SchemeMode))
	assert.Equal(t, colorspace.ModeRGB, svc.SchemeMode())
	assert.Equal(t, "RGB", e.m.Config().GetConfig().Color.SchemeMode)
	assert.Equal(t, "#00ffff", svc.Info().Complementary.HTML())

	e.settle(e.submit(constants.KeySettings_ValueRange))
	assert.Equal(t, valuesync.RangeUnit, e.m.Engine().ValueRange())

	e.settle(e.submit(constants.KeySettings_Detach))
	assert.True(t, e.m.Lookup().Detach)

	e.settle(e.submit(constants.KeySettings_WhitePoint))
	assert.NotEqual(t, colorspace.D65, svc.WhiteRef())
	assert.Equal(t, svc.WhiteRef(), svc.Current().WhiteRef())

	// 6 起是色彩空間開關，第一個是 Hex
	before := len(e.m.Engine().Spaces())
	e.settle(e.submit("6"))
	assert.Len(t, e.m.Engine().Spaces(), before-1)
	assert.False(t, e.m.Config().GetConfig().UI.HasSpace("Hex"))

	e.submit("42")
	assert.Equal(t, state.StatusWarn, e.m.UI().Status.Type)

	e.press(tea.KeyEsc)
	assert.Equal(t, state.LookupView, e.m.UI().CurrentView)
}

func TestKeyHandler_Quit(t *testing.T) {
	e := setupTestEnv(t)

	cmd := e.press(tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	cmd = e.submit(constants.KeyGlobal_Quit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestKeyHandler_FatalBlocksInput(t *testing.T) {
	e := setupTestEnv(t)
	e.m.UI().SetStatus(state.StatusFatal, "調色板文件損壞", "")

	e.submit(constants.KeyGlobal_Random)
	assert.False(t, e.m.Color().CanUndo())
}

func TestFieldIndex(t *testing.T) {
	i, err := fieldIndex(colorspace.CMYK, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	i, err = fieldIndex(colorspace.Hex, "")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = fieldIndex(colorspace.HSL, "")
	assert.Error(t, err)
	_, err = fieldIndex(colorspace.HSL, "q")
	assert.Error(t, err)
}
