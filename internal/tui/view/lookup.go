package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/tui/style"
)

// Tab 查色界面的標籤頁
type Tab int

const (
	TabValues Tab = iota
	TabInfo
	TabSchemes
	TabTools
)

func (t Tab) Title() string {
	switch t {
	case TabValues:
		return "數值"
	case TabInfo:
		return "信息"
	case TabSchemes:
		return "配色"
	case TabTools:
		return "工具"
	}
	return "?"
}

// LookupProps 查色界面的渲染輸入
type LookupProps struct {
	Current    colorspace.Color
	Info       application.ColorInfo
	Schemes    colorspace.Schemes
	Displays   []valuesync.Display
	Slots      [application.SlotCount]colorspace.Color
	Filled     [application.SlotCount]bool
	Tabs       []Tab
	Active     Tab
	Detach     bool
	SchemeMode colorspace.SchemeMode
	ValueRange valuesync.ValueRange
	CanUndo    bool
	CanRedo    bool
	Input      textinput.Model
	Status     string
	Help       string
}

// SchemeGroup 配色分組與序號（序號從 1 開始，跨組連續）
type SchemeGroup struct {
	Title  string
	Colors []colorspace.Color
}

// SchemeGroups 按顯示順序排列四組配色
func SchemeGroups(s colorspace.Schemes) []SchemeGroup {
	return []SchemeGroup{
		{Title: "單色", Colors: s.Monochrome},
		{Title: "三角", Colors: s.Triadic},
		{Title: "四角", Colors: s.Tetradic},
		{Title: "類似", Colors: s.Analogous},
	}
}

// FlattenSchemes 按序號取配色
func FlattenSchemes(s colorspace.Schemes) []colorspace.Color {
	var out []colorspace.Color
	for _, g := range SchemeGroups(s) {
		out = append(out, g.Colors...)
	}
	return out
}

// RenderLookupView 渲染查色界面
func RenderLookupView(p LookupProps) Frame {
	var f Frame
	f.Add(RenderHeader("查色"))
	f.Add(renderCurrent(p))

	if p.Detach {
		f.Add(renderValues(p.Displays))
		f.Add("")
	}

	f.AddZone(ZoneTab, 0, renderTabBar(p.Tabs, p.Active))

	switch p.Active {
	case TabValues:
		f.Add(renderValues(p.Displays))
	case TabInfo:
		f.Add(renderInfo(p.Info))
	case TabSchemes:
		renderSchemes(&f, p.Schemes, p.SchemeMode)
	case TabTools:
		renderTools(&f, p)
	}

	renderFooter(&f, p.Status, p.Input, p.Help)
	return f
}

func renderCurrent(p LookupProps) string {
	html := p.Current.HTML()
	swatch := style.LabeledSwatch(html, html, 16)

	name := p.Info.Name
	history := lipgloss.NewStyle().Foreground(style.Snow3)
	undo := history.Render("u 撤銷")
	if p.CanUndo {
		undo = style.InfoText("u 撤銷")
	}
	redo := history.Render("r 重做")
	if p.CanRedo {
		redo = style.InfoText("r 重做")
	}

	return fmt.Sprintf(" %s  %s  %s %s", swatch, style.SnowText(name), undo, redo)
}

func renderTabBar(tabs []Tab, active Tab) string {
	var parts []string
	for _, t := range tabs {
		if t == active {
			parts = append(parts, style.ActiveTabStyle.Render(t.Title()))
		} else {
			parts = append(parts, style.TabStyle.Render(t.Title()))
		}
	}
	return " " + lipgloss.JoinHorizontal(lipgloss.Top, parts...) + style.MutedText("  (Tab 或點擊切換)")
}

// renderValues 每行一個色彩空間：序號、名稱、各分量
func renderValues(displays []valuesync.Display) string {
	nameWidth := 0
	for _, d := range displays {
		if w := runewidth.StringWidth(d.Space.String()); w > nameWidth {
			nameWidth = w
		}
	}

	numStyle := lipgloss.NewStyle().Foreground(style.Secondary)
	labelStyle := lipgloss.NewStyle().Foreground(style.Snow3)

	var rows []string
	for i, d := range displays {
		labels := d.Space.FieldLabels()
		var fields []string
		for j, text := range d.Text {
			label := ""
			if j < len(labels) && d.Space != colorspace.Hex {
				label = labelStyle.Render(labels[j]) + " "
			}
			fields = append(fields, label+style.SnowText(runewidth.FillRight(text, 7)))
		}
		rows = append(rows, fmt.Sprintf(" %s %s  %s",
			numStyle.Render(fmt.Sprintf("%2d.", i+1)),
			style.PrimaryText(runewidth.FillRight(d.Space.String(), nameWidth)),
			strings.Join(fields, " "),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, style.MutedText(" (沒有顯示的色彩空間)"))
	}
	rows = append(rows, style.MutedText(" 輸入 <行號><分量> <值> 修改，例如 2r 255"))
	return strings.Join(rows, "\n")
}

func renderInfo(info application.ColorInfo) string {
	line := func(key, title string, c colorspace.Color) string {
		html := c.HTML()
		return fmt.Sprintf(" %s %s %s %s",
			lipgloss.NewStyle().Foreground(style.Secondary).Render(key+"."),
			runewidth.FillRight(title, 8),
			style.Swatch(html, 4),
			style.SnowText(html),
		)
	}

	rows := []string{
		fmt.Sprintf("    %s %s", runewidth.FillRight("名稱", 8), style.SnowText(info.Name)),
		line("w", "Web 安全", info.Websafe),
		line("g", "灰度", info.Greyscale),
		line("c", "互補色", info.Complementary),
		fmt.Sprintf("    %s %s", runewidth.FillRight("RYB 色相", 8), style.SnowText(valuesync.FormatNumber(info.RYBHue))),
		style.MutedText(" n <名稱> 按 SVG 顏色名跳轉"),
	}
	return strings.Join(rows, "\n")
}

func renderSchemes(f *Frame, s colorspace.Schemes, mode colorspace.SchemeMode) {
	f.Add(style.MutedText(fmt.Sprintf(" 色輪: %s  (輸入序號或點擊跳轉)", mode)))
	idx := 0
	for _, g := range SchemeGroups(s) {
		f.Add(" " + style.PrimaryText(g.Title))
		for _, c := range g.Colors {
			idx++
			html := c.HTML()
			f.AddZone(ZoneScheme, idx-1, fmt.Sprintf("  %s %s %s",
				lipgloss.NewStyle().Foreground(style.Secondary).Render(fmt.Sprintf("%2d.", idx)),
				style.Swatch(html, 6),
				style.SnowText(html),
			))
		}
	}
}

func renderTools(f *Frame, p LookupProps) {
	f.Add(style.MutedText(" 單擊 / 輸入 1、2 存入；長按 / 輸入 l1、l2 取出"))
	for i := range p.Slots {
		var body string
		if p.Filled[i] {
			html := p.Slots[i].HTML()
			body = style.Swatch(html, 6) + " " + style.SnowText(html)
		} else {
			body = style.EmptySwatch(6) + " " + style.MutedText("空")
		}
		f.AddZone(ZoneSlot, i, fmt.Sprintf(" %s %s",
			lipgloss.NewStyle().Foreground(style.Secondary).Render(fmt.Sprintf("%d.", i+1)),
			body,
		))
	}

	if p.Filled[0] && p.Filled[1] {
		mixed := p.Slots[0].Blend(p.Slots[1]).HTML()
		f.Add(fmt.Sprintf(" %s %s %s", style.InfoText("b 混合"), style.Swatch(mixed, 6), style.SnowText(mixed)))
	} else {
		f.Add(style.MutedText(" b 混合 (需要兩個選色槽)"))
	}
	f.Add(style.InfoText(" x 隨機顏色"))
}
