package style

import "github.com/charmbracelet/lipgloss"

// 界面配色，按用途命名；色塊本身的顏色來自用戶數據，不在此列
var (
	Primary   = lipgloss.Color("#1AAEFC") // 標題、選中的標籤頁、色彩空間名
	Secondary = lipgloss.Color("#DDAAFF") // 序號、命令提示

	Snow1 = lipgloss.Color("#F3F3F0") // 主要文字
	Snow2 = lipgloss.Color("#C0C0C0") // 分隔線、輸入提示
	Snow3 = lipgloss.Color("#8A8783") // 弱化文字

	// 淺色背景上的文字
	Polar1 = lipgloss.Color("#1A1A1A")

	StatusGreen  = lipgloss.Color("#B2FF00")
	StatusYellow = lipgloss.Color("#FFDC65")
	StatusRed    = lipgloss.Color("#FF007F")
)
