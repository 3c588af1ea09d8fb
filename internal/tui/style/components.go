package style

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeKind 列表模式徽章
type BadgeKind int

const (
	BadgeInfo BadgeKind = iota
	BadgeWarning
)

var badgeStyle = lipgloss.NewStyle().
	Foreground(Polar1).
	Padding(0, 1).
	Bold(true)

// RenderBadge 渲染徽章
func RenderBadge(text string, kind BadgeKind) string {
	bg := Secondary
	if kind == BadgeWarning {
		bg = StatusYellow
	}
	return badgeStyle.Background(bg).Render(text)
}
