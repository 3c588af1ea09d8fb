package view

import "strings"

// ZoneKind 可點擊區域的類型
type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneSlot
	ZoneScheme
	ZonePalette
	ZoneColor
	ZoneTab
)

// Zone 一段可點擊的行區間 [Top, Bottom]
type Zone struct {
	Kind   ZoneKind
	Index  int
	Top    int
	Bottom int
}

// Frame 逐行拼裝的畫面，同時記錄可點擊區域的行號
type Frame struct {
	lines []string
	zones []Zone
}

// Add 追加一段內容（可以多行）
func (f *Frame) Add(block string) {
	f.lines = append(f.lines, strings.Split(block, "\n")...)
}

// AddZone 追加內容並登記為可點擊區域
func (f *Frame) AddZone(kind ZoneKind, index int, block string) {
	top := len(f.lines)
	f.Add(block)
	f.zones = append(f.zones, Zone{Kind: kind, Index: index, Top: top, Bottom: len(f.lines) - 1})
}

// Height 已有行數
func (f *Frame) Height() int { return len(f.lines) }

// Zones 可點擊區域
func (f *Frame) Zones() []Zone {
	return append([]Zone(nil), f.zones...)
}

func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

// HitTest 找出第 y 行所在的區域
func HitTest(zones []Zone, y int) (Zone, bool) {
	for _, z := range zones {
		if y >= z.Top && y <= z.Bottom {
			return z, true
		}
	}
	return Zone{}, false
}
