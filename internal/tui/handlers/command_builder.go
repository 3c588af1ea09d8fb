package handlers

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/application"
	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/pkg/delay"
	"github.com/Yat-Muk/colorstk/internal/tui/msg"
	"github.com/Yat-Muk/colorstk/internal/tui/state"
)

// 單次磁盤操作的超時
const ioTimeout = 5 * time.Second

// CommandBuilder 構建需要磁盤 I/O 的命令，結果以消息返回事件循環
//
// 調色板修改在調用時即完成；設置保存在命令中異步執行
type CommandBuilder struct {
	log       *zap.Logger
	configSvc *application.ConfigService
	palettes  *application.PaletteService
}

// NewCommandBuilder 創建命令構建器
func NewCommandBuilder(log *zap.Logger, configSvc *application.ConfigService, palettes *application.PaletteService) *CommandBuilder {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandBuilder{log: log, configSvc: configSvc, palettes: palettes}
}

// paletteCmd 在 Update 中同步修改調色板，命令只負責把結果送回事件循環
func (b *CommandBuilder) paletteCmd(op msg.PaletteOp, name string, count int, fn func(ctx context.Context) error) tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	err := fn(ctx)
	if err != nil {
		b.log.Warn("調色板操作失敗", zap.String("palette", name), zap.Error(err))
	}
	result := msg.PaletteResultMsg{Op: op, Name: name, Count: count, Err: err}
	return func() tea.Msg { return result }
}

// CreatePaletteCmd 新建調色板
func (b *CommandBuilder) CreatePaletteCmd(name string) tea.Cmd {
	return b.paletteCmd(msg.OpCreate, name, 0, func(ctx context.Context) error {
		return b.palettes.Create(ctx, name)
	})
}

// AppendColorCmd 把顏色加入調色板
func (b *CommandBuilder) AppendColorCmd(name string, c palette.RGB) tea.Cmd {
	return b.paletteCmd(msg.OpAppend, name, 1, func(ctx context.Context) error {
		return b.palettes.Append(ctx, name, c)
	})
}

// DeletePalettesCmd 批量刪除調色板
func (b *CommandBuilder) DeletePalettesCmd(names []string) tea.Cmd {
	label := ""
	if len(names) == 1 {
		label = names[0]
	}
	return b.paletteCmd(msg.OpDelete, label, len(names), func(ctx context.Context) error {
		return b.palettes.DeleteMany(ctx, names)
	})
}

// DeleteColorsCmd 批量刪除調色板中的顏色
func (b *CommandBuilder) DeleteColorsCmd(name string, colors []palette.RGB) tea.Cmd {
	return b.paletteCmd(msg.OpDeleteColors, name, len(colors), func(ctx context.Context) error {
		return b.palettes.DeleteColors(ctx, name, colors)
	})
}

// UpdateConfigCmd 保存一項設置
func (b *CommandBuilder) UpdateConfigCmd(desc string, fn func(ctx context.Context, svc *application.ConfigService) (*domainConfig.Config, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		cfg, err := fn(ctx, b.configSvc)
		if err != nil {
			b.log.Warn("設置保存失敗", zap.String("setting", desc), zap.Error(err))
			return msg.ConfigUpdateMsg{Err: err, Message: desc}
		}
		return msg.ConfigUpdateMsg{Config: cfg, Message: desc}
	}
}

// StatusCmd 設置狀態欄並在一段時間後自動清除
func StatusCmd(m *state.Manager, t state.StatusType, text, detail string) tea.Cmd {
	m.UI().SetStatus(t, text, detail)
	h, cmd := m.Scheduler().Schedule(delay.StatusClear, "status")
	m.StatusTimer(h)
	return cmd
}

// ApplyConfig 把保存成功的配置應用到運行中的服務
func ApplyConfig(m *state.Manager, cfg *domainConfig.Config) error {
	if err := m.Config().UpdateConfig(cfg); err != nil {
		return err
	}
	wref, err := cfg.WhiteRef()
	if err != nil {
		return err
	}
	mode, err := cfg.SchemeMode()
	if err != nil {
		return err
	}
	vrange, err := cfg.ValueRange()
	if err != nil {
		return err
	}
	spaces, err := cfg.Spaces()
	if err != nil {
		return err
	}

	svc := m.LookupService()
	if svc.WhiteRef() != wref {
		svc.SetWhiteRef(wref)
	}
	if svc.SchemeMode() != mode {
		svc.SetSchemeMode(mode)
	}
	if m.Engine().ValueRange() != vrange {
		m.Engine().SetValueRange(vrange)
	}
	if !sameSpaces(m.Engine().Spaces(), spaces) {
		m.Engine().SetSpaces(spaces)
	}
	m.Lookup().SetDetach(cfg.UI.DetachValues)
	return nil
}

func sameSpaces(a, b []colorspace.Space) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// nextValueRange 0-255 與 0-1 之間切換
func nextValueRange(current string) valuesync.ValueRange {
	if current == valuesync.Range255.String() {
		return valuesync.RangeUnit
	}
	return valuesync.Range255
}
