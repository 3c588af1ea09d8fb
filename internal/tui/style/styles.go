package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// 標籤頁
	TabStyle = lipgloss.NewStyle().
			Foreground(Snow3).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Polar1).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// 選擇模式下已標記的行
	MarkedStyle = lipgloss.NewStyle().
			Foreground(StatusYellow).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Snow3).
			PaddingLeft(1)
)
