package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/colorstk/internal/tui/style"
)

// 畫面寬度（分隔線、狀態欄）
const frameWidth = 50

// MenuItem 菜單項結構
type MenuItem struct {
	Num       string         // 序號 (如 "1", "s")
	Text      string         // 選項名稱
	Desc      string         // 描述/提示，(..) 渲染為灰色，[..] 渲染為黃色
	TextColor lipgloss.Color // Text 的顏色
}

// renderMenuWithAlignment 渲染自動對齊的菜單列表，描述列按最長名稱對齊
func renderMenuWithAlignment(items []MenuItem) string {
	maxNumWidth := 0
	maxTextWidth := 0
	for _, item := range items {
		if item.Num == "" && item.Text == "" {
			continue
		}
		if w := runewidth.StringWidth(item.Num); w > maxNumWidth {
			maxNumWidth = w
		}
		if w := runewidth.StringWidth(item.Text); w > maxTextWidth {
			maxTextWidth = w
		}
	}

	numStyle := lipgloss.NewStyle().Foreground(style.Secondary)
	dotStyle := lipgloss.NewStyle().Foreground(style.Snow3)

	var rows []string
	for _, item := range items {
		// 分隔線
		if item.Num == "" && item.Text == "" {
			rows = append(rows, lipgloss.NewStyle().
				Foreground(style.Snow2).
				Render(" "+strings.Repeat("┄", frameWidth-2)))
			continue
		}

		color := item.TextColor
		if color == "" {
			color = style.Snow1
		}
		textStyle := lipgloss.NewStyle().Foreground(color)

		gap := maxTextWidth + 2 - runewidth.StringWidth(item.Text)
		if gap < 1 {
			gap = 1
		}

		rows = append(rows, fmt.Sprintf(" %s%s %s%s%s",
			numStyle.Render(runewidth.FillLeft(item.Num, maxNumWidth)),
			dotStyle.Render("."),
			textStyle.Render(item.Text),
			strings.Repeat(" ", gap),
			colorizeDescription(item.Desc),
		))
	}

	return strings.Join(rows, "\n")
}

// colorizeDescription 默認著色邏輯：括號變灰，中括號變黃
func colorizeDescription(desc string) string {
	if desc == "" {
		return ""
	}

	yellowStyle := lipgloss.NewStyle().Foreground(style.StatusYellow)
	greyStyle := lipgloss.NewStyle().Foreground(style.Snow3)

	var result strings.Builder
	runes := []rune(desc)
	n := len(runes)

	for i := 0; i < n; i++ {
		switch runes[i] {
		case '[':
			start := i
			for i < n && runes[i] != ']' {
				i++
			}
			if i < n {
				result.WriteString(yellowStyle.Render(string(runes[start : i+1])))
			} else {
				result.WriteString(greyStyle.Render(string(runes[start:])))
			}
		default:
			start := i
			for i < n && runes[i] != '[' {
				i++
			}
			result.WriteString(greyStyle.Render(string(runes[start:i])))
			i--
		}
	}
	return result.String()
}

// RenderLogo 單行漸變標題
func RenderLogo() string {
	gradient := []lipgloss.Color{
		lipgloss.Color("#FF007F"),
		lipgloss.Color("#FC7B00"),
		lipgloss.Color("#FFDC65"),
		lipgloss.Color("#B2FF00"),
		lipgloss.Color("#1AAEFC"),
		lipgloss.Color("#B477ED"),
		lipgloss.Color("#DDAAFF"),
		lipgloss.Color("#DEDEF8"),
	}

	var sb strings.Builder
	for i, r := range "colorstk" {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(gradient[i%len(gradient)]).
			Bold(true).
			Render(string(r)))
	}
	return " " + sb.String()
}

// RenderHeader 標題行 + 子標題 + 雙線分隔
func RenderHeader(subTitle string) string {
	subTitleLine := lipgloss.NewStyle().
		Foreground(style.Primary).
		Render(fmt.Sprintf(" »»» %s «««", subTitle))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderLogo()+subTitleLine,
		separator("═"),
	)
}

func separator(ch string) string {
	return lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(strings.Repeat(ch, frameWidth))
}

// RenderStatusMessage 底部狀態欄，按關鍵字決定顏色
func RenderStatusMessage(msg string) string {
	if msg == "" {
		return " "
	}

	baseColor := style.Secondary
	switch {
	case strings.Contains(msg, "⚠") || strings.Contains(msg, "警告"):
		baseColor = style.StatusYellow
	case strings.Contains(msg, "失敗") ||
		strings.Contains(msg, "錯誤") ||
		strings.Contains(msg, "無效") ||
		strings.Contains(msg, "✗"):
		baseColor = style.StatusRed
	case strings.Contains(msg, "成功") ||
		strings.Contains(msg, "完成") ||
		strings.Contains(msg, "✓"):
		baseColor = style.StatusGreen
	}

	return lipgloss.NewStyle().
		Foreground(baseColor).
		PaddingLeft(1).
		Width(frameWidth + 2).
		Render(msg)
}

// RenderTextInput 只渲染輸入行
func RenderTextInput(ti textinput.Model) string {
	prompt := lipgloss.NewStyle().
		Foreground(style.Snow2).
		Render(" ❯ 請輸入: ")

	return lipgloss.JoinHorizontal(lipgloss.Left, prompt, ti.View())
}

// renderFooter 狀態欄、輸入行與按鍵提示
func renderFooter(f *Frame, status string, ti textinput.Model, help string) {
	f.Add(separator("─"))
	f.Add(RenderStatusMessage(status))
	f.Add(RenderTextInput(ti))
	if help != "" {
		f.Add(style.HelpStyle.Render(help))
	}
}

// RenderLoading 渲染加載頁面
func RenderLoading(message string) string {
	loadingStyle := lipgloss.NewStyle().Foreground(style.Primary)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHeader("加載中"),
		"",
		loadingStyle.Render(fmt.Sprintf(" ⏳ %s...", message)),
	)
}
