package state

import (
	"sort"

	"github.com/Yat-Muk/colorstk/internal/pkg/delay"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// PressState 鼠標按下到鬆開之間的長按跟蹤
type PressState struct {
	Handle delay.Handle
	Zone   view.Zone
	View   View
	Active bool
	Fired  bool
}

// ListState 調色板列表與顏色列表共用的模式與標記
type ListState struct {
	Mode    view.ListMode
	Marked  map[int]bool
	Palette string // 打開的調色板
	Press   PressState
}

// NewListState 創建列表狀態
func NewListState() *ListState {
	return &ListState{Marked: make(map[int]bool)}
}

// SetMode 切換模式並清空標記
func (s *ListState) SetMode(mode view.ListMode) {
	s.Mode = mode
	s.Marked = make(map[int]bool)
}

// EnterSelect 進入選擇模式並標記第一項
func (s *ListState) EnterSelect(first int) {
	s.SetMode(view.ModeSelect)
	if first >= 0 {
		s.Marked[first] = true
	}
}

// Toggle 切換標記
func (s *ListState) Toggle(i int) {
	if s.Marked[i] {
		delete(s.Marked, i)
		return
	}
	s.Marked[i] = true
}

// ToggleAll 全部已標記時清空，否則全選
func (s *ListState) ToggleAll(n int) {
	if len(s.Marked) == n {
		s.Marked = make(map[int]bool)
		return
	}
	for i := 0; i < n; i++ {
		s.Marked[i] = true
	}
}

// MarkedIndexes 已標記的序號（升序）
func (s *ListState) MarkedIndexes() []int {
	out := make([]int, 0, len(s.Marked))
	for i := range s.Marked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Reset 回到普通模式，放棄未觸發的長按
func (s *ListState) Reset() {
	s.SetMode(view.ModeNormal)
	s.Press.Handle.Cancel()
	s.Press = PressState{}
}
