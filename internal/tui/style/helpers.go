package style

import "github.com/charmbracelet/lipgloss"

func fg(c lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// InfoText 可輸入的命令提示
func InfoText(s string) string { return fg(Secondary, s) }

// MutedText 說明文字
func MutedText(s string) string { return fg(Snow3, s) }

func PrimaryText(s string) string { return fg(Primary, s) }

func SnowText(s string) string { return fg(Snow1, s) }
