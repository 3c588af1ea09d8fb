package state

import "github.com/charmbracelet/bubbles/key"

// KeyMap 不經過輸入框的快捷鍵
type KeyMap struct {
	Submit  key.Binding
	Back    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Undo    key.Binding
	Redo    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap 默認快捷鍵
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "確認")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "返回")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "下一頁")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "上一頁")),
		Undo:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "撤銷")),
		Redo:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "重做")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "退出")),
	}
}

// ForView 各視圖顯示的提示
func (k KeyMap) ForView(v View) []key.Binding {
	if v == LookupView {
		return []key.Binding{k.Submit, k.NextTab, k.Undo, k.Redo, k.Quit}
	}
	return []key.Binding{k.Submit, k.Back, k.Quit}
}
