package state

import (
	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/tui/view"
)

// Render 渲染當前視圖，並記錄可點擊區域供鼠標命中測試
func (m *Manager) Render() string {
	if m.ui.Status.Type == StatusFatal {
		return view.RenderLoading(m.ui.StatusText())
	}

	var frame view.Frame
	status := m.ui.StatusText()
	help := m.ui.HelpLine()
	ti := m.ui.TextInput

	switch m.ui.CurrentView {
	case LookupView:
		frame = view.RenderLookupView(m.lookupProps(status, help))

	case PaletteListView:
		frame = view.RenderPaletteList(m.palettes.List(), m.listProps(status, help))

	case PaletteCreateView:
		frame = view.RenderPaletteCreate(m.palettes.DefaultName(), ti, status, help)

	case PaletteColorsView:
		pal, err := m.palettes.Get(m.list.Palette)
		if err != nil {
			pal = palette.Palette{Name: m.list.Palette}
		}
		frame = view.RenderPaletteColors(pal, m.listProps(status, help))

	case SettingsView:
		frame = view.RenderSettings(m.config.GetConfig(), ti, status, help)

	default:
		frame.Add(view.RenderLoading("未知視圖"))
	}

	m.ui.Zones = frame.Zones()
	return frame.String()
}

func (m *Manager) lookupProps(status, help string) view.LookupProps {
	svc := m.lookupSvc
	p := view.LookupProps{
		Current:    m.color.Current(),
		Info:       svc.Info(),
		Schemes:    svc.Schemes(),
		Displays:   m.engine.Displays(),
		Tabs:       m.lookup.Tabs(),
		Active:     m.lookup.Active,
		Detach:     m.lookup.Detach,
		SchemeMode: svc.SchemeMode(),
		ValueRange: m.engine.ValueRange(),
		CanUndo:    m.color.CanUndo(),
		CanRedo:    m.color.CanRedo(),
		Input:      m.ui.TextInput,
		Status:     status,
		Help:       help,
	}
	for i := 0; i < application.SlotCount; i++ {
		p.Slots[i], _ = svc.Slot(i)
		p.Filled[i] = svc.SlotFilled(i)
	}
	return p
}

func (m *Manager) listProps(status, help string) view.ListProps {
	return view.ListProps{
		Mode:     m.list.Mode,
		Marked:   m.list.Marked,
		Input:    m.ui.TextInput,
		Status:   status,
		Help:     help,
		WhiteRef: m.lookupSvc.WhiteRef(),
	}
}
