package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// View 定義視圖枚舉
type View int

const (
	LookupView View = iota
	PaletteListView
	PaletteCreateView
	PaletteColorsView
	SettingsView
)

// StatusType 狀態類型
type StatusType int

const (
	StatusReady StatusType = iota
	StatusSuccess
	StatusError
	StatusFatal
	StatusInfo
	StatusWarn
)

// StatusMsg 狀態欄消息
type StatusMsg struct {
	Type    StatusType
	Message string
	Detail  string
}

// UIState UI 核心狀態
type UIState struct {
	CurrentView  View
	PreviousView View
	TextInput    textinput.Model
	Help         help.Model
	Keys         KeyMap
	Width        int
	Height       int
	Status       StatusMsg

	// 上一次渲染的可點擊區域
	Zones []view.Zone
}

// NewUIState 創建 UI 狀態
func NewUIState() *UIState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	return &UIState{
		CurrentView: LookupView,
		TextInput:   ti,
		Help:        help.New(),
		Keys:        DefaultKeyMap(),
		Width:       80,
		Height:      24,
		Status:      StatusMsg{Type: StatusReady},
	}
}

// SwitchView 切換視圖
func (s *UIState) SwitchView(v View) tea.Cmd {
	s.PreviousView = s.CurrentView
	s.CurrentView = v
	s.TextInput.Reset()
	s.TextInput.Placeholder = ""

	// 切換視圖時重置狀態欄（錯誤狀態保留給用戶看）
	if s.Status.Type != StatusError && s.Status.Type != StatusFatal {
		s.Status = StatusMsg{Type: StatusReady}
	}

	return s.TextInput.Focus()
}

// SetStatus 設置狀態欄消息
func (s *UIState) SetStatus(t StatusType, msg, detail string) {
	s.Status = StatusMsg{Type: t, Message: msg, Detail: detail}
}

// ClearStatus 清空狀態欄（致命錯誤除外）
func (s *UIState) ClearStatus() {
	if s.Status.Type == StatusFatal {
		return
	}
	s.Status = StatusMsg{Type: StatusReady}
}

// StatusText 狀態欄顯示的文字
func (s *UIState) StatusText() string {
	if s.Status.Detail != "" {
		return s.Status.Message + "\n" + s.Status.Detail
	}
	return s.Status.Message
}

// UpdateInput 更新輸入框
func (s *UIState) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd
}

func (s *UIState) GetInputBuffer() string {
	return s.TextInput.Value()
}

func (s *UIState) ClearInput() {
	s.TextInput.Reset()
}

// UpdateSize 更新尺寸
func (s *UIState) UpdateSize(w, h int) {
	s.Width = w
	s.Height = h
	s.Help.Width = w
}

// HelpLine 當前視圖的按鍵提示
func (s *UIState) HelpLine() string {
	return s.Help.ShortHelpView(s.Keys.ForView(s.CurrentView))
}
