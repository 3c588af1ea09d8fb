package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/pkg/delay"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// 長按計時器的標籤
const tagLongPress = "longpress"

// MouseHandler 鼠標點擊與長按
//
// 按下時登記長按計時器；計時器先到期則執行長按動作，
// 先鬆開則取消計時器並按單擊處理
type MouseHandler struct {
	keys *KeyHandler
}

func NewMouseHandler(keys *KeyHandler) *MouseHandler {
	return &MouseHandler{keys: keys}
}

// Handle 處理鼠標消息，只關心左鍵
func (h *MouseHandler) Handle(msg tea.MouseMsg, m *state.Manager) tea.Cmd {
	if m.UI().Status.Type == state.StatusFatal {
		return nil
	}
	// 拖動時按鍵可能報告為 MouseButtonNone
	if msg.Action == tea.MouseActionMotion {
		h.motion(m, msg.Y)
		return nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return h.press(m, msg.Y)
	case tea.MouseActionRelease:
		return h.release(m, msg.Y)
	}
	return nil
}

// motion 指針移出按下的區域時放棄長按
func (h *MouseHandler) motion(m *state.Manager, y int) {
	press := &m.List().Press
	if !press.Active || press.Fired {
		return
	}
	if zone, ok := view.HitTest(m.UI().Zones, y); ok && sameZone(zone, press.Zone) {
		return
	}
	press.Handle.Cancel()
	*press = state.PressState{}
}

func sameZone(a, b view.Zone) bool {
	return a.Kind == b.Kind && a.Index == b.Index
}

func (h *MouseHandler) press(m *state.Manager, y int) tea.Cmd {
	press := &m.List().Press
	// 上一次按下沒有收到鬆開
	press.Handle.Cancel()
	*press = state.PressState{}

	zone, ok := view.HitTest(m.UI().Zones, y)
	if !ok {
		return nil
	}

	// 沒有長按動作的區域按下即生效
	if !hasHold(zone.Kind) {
		return h.tap(m, zone)
	}

	handle, cmd := m.Scheduler().Schedule(delay.LongPress, tagLongPress)
	*press = state.PressState{
		Handle: handle,
		Zone:   zone,
		View:   m.UI().CurrentView,
		Active: true,
	}
	return cmd
}

func (h *MouseHandler) release(m *state.Manager, y int) tea.Cmd {
	press := m.List().Press
	m.List().Press = state.PressState{}

	if !press.Active || press.Fired {
		return nil
	}
	if !press.Handle.Cancel() {
		return nil
	}
	if press.View != m.UI().CurrentView {
		return nil
	}
	// 拖出原區域鬆開視為放棄
	zone, ok := view.HitTest(m.UI().Zones, y)
	if !ok || !sameZone(zone, press.Zone) {
		return nil
	}
	return h.tap(m, press.Zone)
}

// Fire 長按計時器到期；返回 false 表示不是當前長按
func (h *MouseHandler) Fire(msg delay.FiredMsg, m *state.Manager) (bool, tea.Cmd) {
	press := &m.List().Press
	if msg.Tag != tagLongPress || !press.Active || press.Handle.ID() != msg.ID {
		return false, nil
	}
	if !m.Scheduler().Accept(msg) {
		return true, nil
	}
	press.Fired = true

	if press.View != m.UI().CurrentView {
		return true, nil
	}
	m.Log().Debug("長按", zap.Int("kind", int(press.Zone.Kind)), zap.Int("index", press.Zone.Index))
	return true, h.hold(m, press.Zone)
}

func hasHold(kind view.ZoneKind) bool {
	switch kind {
	case view.ZoneSlot, view.ZonePalette, view.ZoneColor:
		return true
	}
	return false
}

func (h *MouseHandler) tap(m *state.Manager, z view.Zone) tea.Cmd {
	switch z.Kind {
	case view.ZoneTab:
		m.Lookup().Cycle(1)
		return nil
	case view.ZoneScheme:
		flat := view.FlattenSchemes(m.LookupService().Schemes())
		if z.Index >= 0 && z.Index < len(flat) {
			m.LookupService().JumpTo(flat[z.Index])
		}
		return nil
	case view.ZoneSlot:
		return h.keys.tapSlot(m, z.Index)
	case view.ZonePalette:
		return h.keys.tapPalette(m, z.Index)
	case view.ZoneColor:
		return h.keys.tapColor(m, z.Index)
	}
	return nil
}

// hold 長按：選色槽取色，列表進入選擇模式並標記該項
func (h *MouseHandler) hold(m *state.Manager, z view.Zone) tea.Cmd {
	switch z.Kind {
	case view.ZoneSlot:
		return h.keys.holdSlot(m, z.Index)
	case view.ZonePalette, view.ZoneColor:
		list := m.List()
		if list.Mode == view.ModeSelect {
			list.Toggle(z.Index)
		} else {
			list.EnterSelect(z.Index)
		}
		return nil
	}
	return nil
}
