package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/tui/constants"
	"github.com/Yat-Muk/colorstk/internal/tui/style"
)

// RenderSettings 渲染設置界面：每個選項輸入序號循環切換
func RenderSettings(cfg *config.Config, ti textinput.Model, status, help string) Frame {
	onOff := func(b bool) string {
		if b {
			return "[開]"
		}
		return "(關)"
	}

	items := []MenuItem{
		{Num: constants.KeySettings_WhitePoint, Text: "白點", Desc: "[" + cfg.Color.WhitePoint + "]"},
		{Num: constants.KeySettings_Observer, Text: "觀察者視角", Desc: "[" + cfg.Color.ObserverAngle + "]"},
		{Num: constants.KeySettings_SchemeMode, Text: "色輪模式", Desc: "[" + cfg.Color.SchemeMode + "]"},
		{Num: constants.KeySettings_ValueRange, Text: "sRGB 數值範圍", Desc: "[" + cfg.UI.ValueRange + "]"},
		{Num: constants.KeySettings_Detach, Text: "數值面板獨立顯示", Desc: onOff(cfg.UI.DetachValues)},
		{},
	}
	for i, name := range colorspace.SpaceNames() {
		items = append(items, MenuItem{
			Num:       strconv.Itoa(constants.SettingsSpaceOffset + i),
			Text:      name,
			Desc:      onOff(cfg.UI.HasSpace(name)),
			TextColor: style.Primary,
		})
	}

	var f Frame
	f.Add(RenderHeader("設置"))
	f.Add(style.MutedText(fmt.Sprintf(" 輸入序號切換，Esc 返回 (已顯示 %d 個色彩空間)", len(cfg.UI.ColorSpaces))))
	f.Add(renderMenuWithAlignment(items))
	renderFooter(&f, status, ti, help)
	return f
}
