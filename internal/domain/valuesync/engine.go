package valuesync

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

// Display 一個色彩空間的數值行
type Display struct {
	Space colorspace.Space
	Text  []string
}

// Applied 一次成功編輯的結果
type Applied struct {
	Space colorspace.Space
	Color colorspace.Color
}

// Engine 保持各數值顯示與當前顏色一致，並把用戶編輯轉換回顏色
type Engine struct {
	state  *colorstate.State
	log    *zap.Logger
	vrange ValueRange
	spaces []colorspace.Space

	displays []Display
	cancel   func()
}

// NewEngine 創建引擎並訂閱顏色狀態
func NewEngine(state *colorstate.State, spaces []colorspace.Space, vrange ValueRange, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		state:  state,
		log:    log,
		vrange: vrange,
		spaces: append([]colorspace.Space(nil), spaces...),
	}
	e.rebuild(state.Current())
	e.cancel = state.Subscribe(e.rebuild)
	return e
}

// Close 取消訂閱
func (e *Engine) Close() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Project 當前顏色在指定空間下的投影
func (e *Engine) Project(space colorspace.Space) (Projection, error) {
	return ProjectColor(e.state.Current(), space, e.vrange)
}

// Displays 當前所有數值行（副本）
func (e *Engine) Displays() []Display {
	out := make([]Display, len(e.displays))
	for i, d := range e.displays {
		out[i] = Display{Space: d.Space, Text: append([]string(nil), d.Text...)}
	}
	return out
}

// Display 指定空間的數值行
func (e *Engine) Display(space colorspace.Space) (Display, bool) {
	for _, d := range e.displays {
		if d.Space == space {
			return Display{Space: d.Space, Text: append([]string(nil), d.Text...)}, true
		}
	}
	return Display{}, false
}

func (e *Engine) Spaces() []colorspace.Space {
	return append([]colorspace.Space(nil), e.spaces...)
}

func (e *Engine) ValueRange() ValueRange { return e.vrange }

// SetSpaces 整體重建顯示集合
func (e *Engine) SetSpaces(spaces []colorspace.Space) {
	e.spaces = append([]colorspace.Space(nil), spaces...)
	e.rebuild(e.state.Current())
	e.log.Debug("數值顯示已重建", zap.Int("count", len(e.spaces)))
}

// SetValueRange 切換 sRGB 範圍並重新投影
func (e *Engine) SetValueRange(r ValueRange) {
	if r == e.vrange {
		return
	}
	e.vrange = r
	e.rebuild(e.state.Current())
}

// ApplyEdit 處理單個字段的提交
//
//  1. 空輸入或與顯示值相同：拒絕
//  2. 語法校驗，失敗則拒絕
//  3. 截斷到取值範圍
//  4. 用該空間的全部字段逆轉換出新顏色
//  5. 保留重做棧地寫入狀態；非法則回退並返回 ErrIllegalColor
//
// 被拒絕時狀態不變，調用方應把字段文本恢復為 Displays 中的值
func (e *Engine) ApplyEdit(space colorspace.Space, index int, raw string) (Applied, error) {
	cd, err := lookupCodec(space)
	if err != nil {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
	}
	if index < 0 || index >= cd.arity {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput,
			fmt.Sprintf("%s 沒有第 %d 個字段", space, index))
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, "輸入為空")
	}

	current := e.state.Current()
	fields := cd.project(current, e.vrange)
	if raw == FormatValue(fields[index]) {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, "數值未變化")
	}

	field, err := cd.parse(space, index, raw, e.vrange)
	if err != nil {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
	}
	// Hex 只有一個字段，整組替換
	fields[index] = field

	next, err := cd.inverse(fields, e.vrange, current.WhiteRef())
	if err != nil {
		return Applied{}, errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
	}
	next = next.WithAlpha(current.Alpha())

	e.state.SetColorKeepRedo(next)
	if !next.IsLegal() {
		e.state.RevertIllegalEdit()
		e.log.Debug("非法顏色已回退",
			zap.String("space", space.String()),
			zap.Int("index", index),
			zap.String("input", raw))
		return Applied{}, errors.Wrap(errors.ErrIllegalColor, errors.CodeIllegalColor,
			fmt.Sprintf("%s 超出 sRGB 色域", space))
	}
	e.state.ClearRedo()

	return Applied{Space: space, Color: next}, nil
}

// rebuild 由狀態廣播觸發，按當前配置重算全部數值行
func (e *Engine) rebuild(c colorspace.Color) {
	displays := make([]Display, 0, len(e.spaces))
	for _, sp := range e.spaces {
		p, err := ProjectColor(c, sp, e.vrange)
		if err != nil {
			e.log.Warn("跳過未知的色彩空間", zap.String("space", sp.String()))
			continue
		}
		displays = append(displays, Display{Space: sp, Text: p.Formatted()})
	}
	e.displays = displays
}
