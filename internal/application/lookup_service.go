package application

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
)

// SlotCount 選色槽數量
const SlotCount = 2

// ColorInfo 當前顏色的派生信息
type ColorInfo struct {
	Name          string
	Websafe       colorspace.Color
	Greyscale     colorspace.Color
	Complementary colorspace.Color
	RYBHue        float64
}

// Schemes 按色輪模式生成四組配色
func Schemes(c colorspace.Color, mode colorspace.SchemeMode) colorspace.Schemes {
	return c.MakeSchemes(mode)
}

// Info 計算顏色的派生信息
func Info(c colorspace.Color, mode colorspace.SchemeMode) ColorInfo {
	return ColorInfo{
		Name:          c.Name(),
		Websafe:       c.Websafe(),
		Greyscale:     c.Greyscale(),
		Complementary: c.Complementary(mode),
		RYBHue:        c.RYBHue(),
	}
}

// LookupService 查色界面的業務邏輯：配色、信息、工具與選色槽
//
// 配色與信息隨顏色廣播重新計算
type LookupService struct {
	state  *colorstate.State
	logger *zap.Logger
	rng    *rand.Rand

	wref colorspace.WhiteRef
	mode colorspace.SchemeMode

	schemes colorspace.Schemes
	info    ColorInfo
	slots   [SlotCount]colorspace.Color

	cancel func()
}

// NewLookupService 創建服務並訂閱顏色狀態；rng 為 nil 時使用全局隨機源
func NewLookupService(
	state *colorstate.State,
	wref colorspace.WhiteRef,
	mode colorspace.SchemeMode,
	rng *rand.Rand,
	logger *zap.Logger,
) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &LookupService{
		state:  state,
		logger: logger,
		rng:    rng,
		wref:   wref,
		mode:   mode,
	}
	// 空槽：黑色、alpha 為 0
	for i := range s.slots {
		s.slots[i] = colorspace.FromRGB(0, 0, 0, wref).WithAlpha(0)
	}
	s.refresh(state.Current())
	s.cancel = state.Subscribe(s.refresh)
	return s
}

// Close 取消訂閱
func (s *LookupService) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *LookupService) refresh(c colorspace.Color) {
	s.schemes = Schemes(c, s.mode)
	s.info = Info(c, s.mode)
}

func (s *LookupService) Current() colorspace.Color { return s.state.Current() }
func (s *LookupService) Schemes() colorspace.Schemes { return s.schemes }
func (s *LookupService) Info() ColorInfo { return s.info }
func (s *LookupService) SchemeMode() colorspace.SchemeMode { return s.mode }
func (s *LookupService) WhiteRef() colorspace.WhiteRef { return s.wref }

// SetSchemeMode 切換色輪並重新生成配色
func (s *LookupService) SetSchemeMode(mode colorspace.SchemeMode) {
	s.mode = mode
	s.refresh(s.state.Current())
}

// SetWhiteRef 切換白點：之後創建的顏色使用新白點，當前顏色就地換白點（不記錄歷史）
func (s *LookupService) SetWhiteRef(w colorspace.WhiteRef) {
	s.wref = w
	s.state.Replace(s.state.Current().WithWhiteRef(w))
	s.logger.Debug("白點已切換", zap.Float64s("wref", w[:]))
}

// JumpTo 切換到指定顏色（配色方塊、調色板顏色），記錄歷史
func (s *LookupService) JumpTo(c colorspace.Color) {
	s.state.SetColor(c.WithWhiteRef(s.wref))
}

// JumpToRGB 從調色板記錄切換顏色
func (s *LookupService) JumpToRGB(rgb palette.RGB) {
	s.JumpTo(rgb.Color(s.wref))
}

// Random 隨機顏色，記錄歷史
func (s *LookupService) Random() colorspace.Color {
	c := colorspace.Random(s.rng, s.wref)
	s.state.SetColor(c)
	return c
}

// Undo / Redo 歷史導航
func (s *LookupService) Undo() bool { return s.state.Undo() }
func (s *LookupService) Redo() bool { return s.state.Redo() }

// Slot 選色槽內容
func (s *LookupService) Slot(i int) (colorspace.Color, bool) {
	if i < 0 || i >= SlotCount {
		return colorspace.Color{}, false
	}
	return s.slots[i], true
}

// SlotFilled 選色槽是否已存入顏色（alpha 非零）
func (s *LookupService) SlotFilled(i int) bool {
	c, ok := s.Slot(i)
	return ok && c.Alpha() != 0
}

// StoreSlot 把當前顏色存入選色槽
func (s *LookupService) StoreSlot(i int) bool {
	if i < 0 || i >= SlotCount {
		return false
	}
	s.slots[i] = s.state.Current()
	return true
}

// RecallSlot 切換到選色槽中的顏色；空槽不做任何事
func (s *LookupService) RecallSlot(i int) bool {
	if !s.SlotFilled(i) {
		return false
	}
	s.state.SetColor(s.slots[i])
	return true
}

// Blend 兩個選色槽都有顏色時混合並切換
func (s *LookupService) Blend() (colorspace.Color, bool) {
	if !s.SlotFilled(0) || !s.SlotFilled(1) {
		return colorspace.Color{}, false
	}
	c := s.slots[0].Blend(s.slots[1])
	s.state.SetColor(c)
	return c, true
}
