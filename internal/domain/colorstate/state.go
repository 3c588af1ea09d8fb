package colorstate

import (
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
)

// HistoryCapacity 歷史記錄上限，超出時淘汰最舊的一條
const HistoryCapacity = 30

// Listener 顏色變更回調
type Listener func(c colorspace.Color)

// State 當前顏色的唯一來源，負責撤銷/重做時間線
//
// 不變量：
//   - history 與 redo 不相交，current 不在兩者之中
//   - 記錄歷史的 SetColor 會清空 redo（SetColorKeepRedo 除外）
//   - 通知在修改方法返回前同步完成，按訂閱順序執行
type State struct {
	current colorspace.Color
	history []colorspace.Color // 棧頂在末尾
	redo    []colorspace.Color // 棧頂在末尾

	listeners []*subscription
}

type subscription struct {
	fn Listener
}

// New 創建狀態
func New(initial colorspace.Color) *State {
	return &State{current: initial}
}

// Current 當前顏色
func (s *State) Current() colorspace.Color {
	return s.current
}

// Subscribe 註冊監聽器，返回取消函數
func (s *State) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn}
	s.listeners = append(s.listeners, sub)
	return func() {
		for i, l := range s.listeners {
			if l == sub {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetColor 設置新顏色並記錄歷史，清空重做棧
func (s *State) SetColor(c colorspace.Color) {
	s.pushHistory(s.current)
	s.redo = s.redo[:0]
	s.set(c)
}

// SetColorKeepRedo 記錄歷史但保留重做棧
// 用於數值編輯：合法性確認之前不能丟棄重做記錄
func (s *State) SetColorKeepRedo(c colorspace.Color) {
	s.pushHistory(s.current)
	s.set(c)
}

// Replace 替換當前顏色，不記錄歷史
func (s *State) Replace(c colorspace.Color) {
	s.set(c)
}

// ClearRedo 清空重做棧
func (s *State) ClearRedo() {
	s.redo = s.redo[:0]
}

// Undo 回到上一個顏色；歷史為空時返回 false
func (s *State) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.redo = append(s.redo, s.current)
	prev := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.set(prev)
	return true
}

// Redo 前進到下一個顏色；重做棧為空時返回 false
func (s *State) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.pushHistory(s.current)
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.set(next)
	return true
}

// RevertIllegalEdit 撤銷剛應用的非法顏色，並丟棄其重做記錄，
// 使非法顏色無法通過 Redo 再次到達
func (s *State) RevertIllegalEdit() {
	if !s.Undo() {
		return
	}
	s.redo = s.redo[:len(s.redo)-1]
}

func (s *State) CanUndo() bool { return len(s.history) > 0 }
func (s *State) CanRedo() bool { return len(s.redo) > 0 }

// History 歷史快照（最舊在前）
func (s *State) History() []colorspace.Color {
	out := make([]colorspace.Color, len(s.history))
	copy(out, s.history)
	return out
}

// RedoStack 重做棧快照（棧頂在末尾）
func (s *State) RedoStack() []colorspace.Color {
	out := make([]colorspace.Color, len(s.redo))
	copy(out, s.redo)
	return out
}

func (s *State) pushHistory(c colorspace.Color) {
	if len(s.history) >= HistoryCapacity {
		n := copy(s.history, s.history[len(s.history)-HistoryCapacity+1:])
		s.history = s.history[:n]
	}
	s.history = append(s.history, c)
}

// set 非法顏色不廣播：監聽者只會看到合法顏色的投影
func (s *State) set(c colorspace.Color) {
	s.current = c
	if !c.IsLegal() {
		return
	}
	for _, l := range append([]*subscription(nil), s.listeners...) {
		l.fn(c)
	}
}
