package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch 純色塊，width 為字符寬度
func Swatch(hex string, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}

// LabeledSwatch 在色塊上寫字，前景色按亮度取黑或白
func LabeledSwatch(hex, label string, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(ContrastText(hex)).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// EmptySwatch 空槽
func EmptySwatch(width int) string {
	return lipgloss.NewStyle().
		Foreground(Snow3).
		Render(strings.Repeat("░", max(width, 1)))
}

// ContrastText 亮色背景用深色字，暗色背景用淺色字
func ContrastText(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Snow1
	}
	l, _, _ := c.Clamped().Lab()
	if l > 0.6 {
		return Polar1
	}
	return Snow1
}
