package state

import "github.com/Yat-Muk/colorstk/internal/tui/view"

// LookupState 查色界面的標籤頁狀態
type LookupState struct {
	Active view.Tab
	Detach bool
}

// NewLookupState 默認停在數值頁
func NewLookupState(detach bool) *LookupState {
	s := &LookupState{Active: view.TabValues}
	s.SetDetach(detach)
	return s
}

// Tabs 獨立顯示數值面板時不再有數值頁
func (s *LookupState) Tabs() []view.Tab {
	if s.Detach {
		return []view.Tab{view.TabInfo, view.TabSchemes, view.TabTools}
	}
	return []view.Tab{view.TabValues, view.TabInfo, view.TabSchemes, view.TabTools}
}

// SetDetach 切換佈局，當前頁不存在時回到第一頁
func (s *LookupState) SetDetach(detach bool) {
	s.Detach = detach
	for _, t := range s.Tabs() {
		if t == s.Active {
			return
		}
	}
	s.Active = s.Tabs()[0]
}

// ValuesVisible 數值面板是否可見（可以編輯）
func (s *LookupState) ValuesVisible() bool {
	return s.Detach || s.Active == view.TabValues
}

// Cycle 向前或向後切換標籤頁
func (s *LookupState) Cycle(step int) {
	tabs := s.Tabs()
	idx := 0
	for i, t := range tabs {
		if t == s.Active {
			idx = i
			break
		}
	}
	idx = ((idx+step)%len(tabs) + len(tabs)) % len(tabs)
	s.Active = tabs[idx]
}
