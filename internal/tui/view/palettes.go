package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/tui/style"
)

// ListMode 列表界面的交互模式
type ListMode int

const (
	ModeNormal ListMode = iota
	ModeAdd             // 選擇調色板以加入當前顏色
	ModeSelect          // 多選刪除
)

// 列表中每個調色板最多預覽的顏色數
const previewColors = 8

// ListProps 調色板列表 / 顏色列表的渲染輸入
type ListProps struct {
	Mode     ListMode
	Marked   map[int]bool
	Input    textinput.Model
	Status   string
	Help     string
	WhiteRef colorspace.WhiteRef
}

func modeBadge(mode ListMode) string {
	switch mode {
	case ModeAdd:
		return " " + style.RenderBadge("加入模式", style.BadgeInfo)
	case ModeSelect:
		return " " + style.RenderBadge("選擇模式", style.BadgeWarning)
	}
	return ""
}

func markPrefix(p ListProps, i int) string {
	if p.Mode != ModeSelect {
		return ""
	}
	if p.Marked[i] {
		return style.MarkedStyle.Render("● ")
	}
	return style.MutedText("○ ")
}

// RenderPaletteList 渲染調色板列表
func RenderPaletteList(palettes []palette.Palette, p ListProps) Frame {
	var f Frame
	f.Add(RenderHeader("調色板") + modeBadge(p.Mode))

	switch p.Mode {
	case ModeAdd:
		f.Add(style.MutedText(" 選擇要加入當前顏色的調色板"))
	case ModeSelect:
		f.Add(style.MutedText(" 輸入序號標記，d 刪除已標記，* 全選，Esc 退出"))
	default:
		f.Add(style.MutedText(" 輸入序號打開，n 新建，v 選擇模式 (長按也可進入)"))
	}

	nameWidth := 0
	for _, pal := range palettes {
		if w := runewidth.StringWidth(pal.Name); w > nameWidth {
			nameWidth = w
		}
	}

	numStyle := lipgloss.NewStyle().Foreground(style.Secondary)
	for i, pal := range palettes {
		preview := ""
		for j, c := range pal.Colors {
			if j == previewColors {
				preview += style.MutedText("…")
				break
			}
			preview += style.Swatch(c.Color(p.WhiteRef).HTML(), 2)
		}
		f.AddZone(ZonePalette, i, fmt.Sprintf(" %s %s%s %s %s",
			numStyle.Render(fmt.Sprintf("%2d.", i+1)),
			markPrefix(p, i),
			style.SnowText(runewidth.FillRight(pal.Name, nameWidth)),
			style.MutedText(fmt.Sprintf("(%d 色)", len(pal.Colors))),
			preview,
		))
	}
	if len(palettes) == 0 {
		f.Add(style.MutedText(" (還沒有調色板，輸入 n 新建)"))
	}

	renderFooter(&f, p.Status, p.Input, p.Help)
	return f
}

// RenderPaletteColors 渲染單個調色板的顏色
func RenderPaletteColors(pal palette.Palette, p ListProps) Frame {
	var f Frame
	f.Add(RenderHeader("調色板 » "+pal.Name) + modeBadge(p.Mode))

	if p.Mode == ModeSelect {
		f.Add(style.MutedText(" 輸入序號標記，d 刪除已標記，* 全選，Esc 退出"))
	} else {
		f.Add(style.MutedText(" 輸入序號跳轉到該顏色，v 選擇模式 (長按也可進入)"))
	}

	numStyle := lipgloss.NewStyle().Foreground(style.Secondary)
	for i, rgb := range pal.Colors {
		c := rgb.Color(p.WhiteRef)
		html := c.HTML()
		ints := c.Ints()
		f.AddZone(ZoneColor, i, fmt.Sprintf(" %s %s%s %s %s",
			numStyle.Render(fmt.Sprintf("%2d.", i+1)),
			markPrefix(p, i),
			style.Swatch(html, 6),
			style.SnowText(html),
			style.MutedText(fmt.Sprintf("(%d, %d, %d)", ints[0], ints[1], ints[2])),
		))
	}
	if len(pal.Colors) == 0 {
		f.Add(style.MutedText(" (空調色板，在查色界面輸入 a 加入顏色)"))
	}

	renderFooter(&f, p.Status, p.Input, p.Help)
	return f
}

// RenderPaletteCreate 新建調色板對話框
func RenderPaletteCreate(defaultName string, ti textinput.Model, status, help string) Frame {
	var f Frame
	f.Add(RenderHeader("新建調色板"))
	f.Add(fmt.Sprintf(" 名稱 (直接回車使用 %s)", style.PrimaryText(defaultName)))
	renderFooter(&f, status, ti, help)
	return f
}
