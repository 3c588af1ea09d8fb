package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/tui/msg"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// HandlePaletteResult 調色板持久化完成
//
// 失敗時內存修改已經生效，只提示用戶
func HandlePaletteResult(m *state.Manager, r msg.PaletteResultMsg) tea.Cmd {
	text := paletteOpText(r)
	if r.Err != nil {
		return StatusCmd(m, state.StatusError, "✗ "+text+"失敗", r.Err.Error())
	}

	cmd := StatusCmd(m, state.StatusSuccess, "✓ "+text, "")
	if r.Op == msg.OpCreate && m.UI().CurrentView == state.PaletteCreateView {
		return tea.Batch(m.UI().SwitchView(state.PaletteListView), cmd)
	}
	return cmd
}

// HandleConfigUpdate 設置保存完成後應用到運行中的服務
func HandleConfigUpdate(m *state.Manager, r msg.ConfigUpdateMsg) tea.Cmd {
	if r.Err != nil {
		return StatusCmd(m, state.StatusError, "✗ "+r.Message+" 保存失敗", r.Err.Error())
	}
	if r.Config == nil {
		return nil
	}
	if err := ApplyConfig(m, r.Config); err != nil {
		m.Log().Error("應用配置失敗", zap.Error(err))
		return StatusCmd(m, state.StatusError, "✗ 配置無效", err.Error())
	}
	return StatusCmd(m, state.StatusSuccess, "✓ "+r.Message, "")
}

func paletteOpText(r msg.PaletteResultMsg) string {
	switch r.Op {
	case msg.OpCreate:
		return fmt.Sprintf("新建調色板 %s", r.Name)
	case msg.OpAppend:
		return fmt.Sprintf("加入調色板 %s", r.Name)
	case msg.OpDelete:
		if r.Name != "" {
			return fmt.Sprintf("刪除調色板 %s", r.Name)
		}
		return fmt.Sprintf("刪除 %d 個調色板", r.Count)
	case msg.OpDeleteColors:
		return fmt.Sprintf("從 %s 刪除 %d 個顏色", r.Name, r.Count)
	}
	return "調色板操作"
}
