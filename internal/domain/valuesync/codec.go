package valuesync

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
)

// 十六進制輸入：可選 #，3 位或 6 位
var reHex = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// bounds 字段取值範圍
type bounds struct {
	lo, hi float64
}

var (
	unit = bounds{lo: 0, hi: 1}
	hue  = bounds{lo: 0, hi: 359}
)

// codec 單個色彩空間的投影、逆轉換與輸入規則
type codec struct {
	arity   int
	project func(c colorspace.Color, r ValueRange) []Field
	inverse func(f []Field, r ValueRange, w colorspace.WhiteRef) (colorspace.Color, error)
	bounds  func(index int, r ValueRange) bounds // nil 表示不截斷
}

// codecs 色彩空間分派表，包初始化時構建一次
var codecs = map[colorspace.Space]codec{
	colorspace.Hex: {
		arity: 1,
		project: func(c colorspace.Color, _ ValueRange) []Field {
			return []Field{TextField(c.HTML())}
		},
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromHTML(f[0].Text, w)
		},
	},
	colorspace.SRGB: {
		arity: 3,
		project: func(c colorspace.Color, r ValueRange) []Field {
			if r == RangeUnit {
				return nums3(c.RGB())
			}
			ints := c.Ints()
			return nums3([3]float64{float64(ints[0]), float64(ints[1]), float64(ints[2])})
		},
		inverse: func(f []Field, r ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			scale := r.Max()
			return colorspace.FromRGB(f[0].Num/scale, f[1].Num/scale, f[2].Num/scale, w), nil
		},
		bounds: func(_ int, r ValueRange) bounds {
			return bounds{lo: 0, hi: r.Max()}
		},
	},
	colorspace.HSL: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.HSL()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromHSL(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
		bounds: hueThenUnit,
	},
	colorspace.HSV: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.HSV()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromHSV(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
		bounds: hueThenUnit,
	},
	colorspace.YIQ: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.YIQ()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromYIQ(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
	},
	colorspace.YUV: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.YUV()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromYUV(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
	},
	colorspace.XYZ: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.XYZ()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromXYZ(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
	},
	colorspace.LAB: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.LAB()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromLAB(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
	},
	colorspace.CMY: {
		arity:   3,
		project: func(c colorspace.Color, _ ValueRange) []Field { return nums3(c.CMY()) },
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromCMY(f[0].Num, f[1].Num, f[2].Num, w), nil
		},
		bounds: allUnit,
	},
	colorspace.CMYK: {
		arity: 4,
		project: func(c colorspace.Color, _ ValueRange) []Field {
			v := c.CMYK()
			return []Field{NumField(v[0]), NumField(v[1]), NumField(v[2]), NumField(v[3])}
		},
		inverse: func(f []Field, _ ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
			return colorspace.FromCMYK(f[0].Num, f[1].Num, f[2].Num, f[3].Num, w), nil
		},
		bounds: allUnit,
	},
}

func nums3(v [3]float64) []Field {
	return []Field{NumField(v[0]), NumField(v[1]), NumField(v[2])}
}

func hueThenUnit(index int, _ ValueRange) bounds {
	if index == 0 {
		return hue
	}
	return unit
}

func allUnit(int, ValueRange) bounds { return unit }

func lookupCodec(space colorspace.Space) (codec, error) {
	c, ok := codecs[space]
	if !ok {
		return codec{}, fmt.Errorf("不支持的色彩空間: %s", space)
	}
	return c, nil
}

// parse 語法校驗並截斷到取值範圍
func (c codec) parse(space colorspace.Space, index int, raw string, r ValueRange) (Field, error) {
	if space == colorspace.Hex {
		if !reHex.MatchString(raw) {
			return Field{}, fmt.Errorf("十六進制需要 3 或 6 位: %q", raw)
		}
		return TextField("#" + strings.ToLower(strings.TrimPrefix(raw, "#"))), nil
	}

	// 溢出時返回 ±Inf 與 ErrRange，有取值範圍的字段照常截斷
	v, err := strconv.ParseFloat(raw, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(v) {
		return Field{}, fmt.Errorf("不是有效的數字: %q", raw)
	}

	if c.bounds == nil {
		if math.IsInf(v, 0) {
			return Field{}, fmt.Errorf("數值溢出: %q", raw)
		}
		return NumField(v), nil
	}
	b := c.bounds(index, r)
	return NumField(math.Max(b.lo, math.Min(b.hi, v))), nil
}

// ProjectColor 把顏色投影到指定色彩空間的字段序列
func ProjectColor(c colorspace.Color, space colorspace.Space, r ValueRange) (Projection, error) {
	cd, err := lookupCodec(space)
	if err != nil {
		return Projection{}, err
	}
	return Projection{Space: space, Fields: cd.project(c, r)}, nil
}

// Construct 由完整字段序列逆轉換出顏色
func Construct(space colorspace.Space, fields []Field, r ValueRange, w colorspace.WhiteRef) (colorspace.Color, error) {
	cd, err := lookupCodec(space)
	if err != nil {
		return colorspace.Color{}, err
	}
	if len(fields) != cd.arity {
		return colorspace.Color{}, fmt.Errorf("%s 需要 %d 個字段，實際 %d 個", space, cd.arity, len(fields))
	}
	return cd.inverse(fields, r, w)
}

// ParseFields 逐個解析文本字段（含截斷），用於命令行一次性輸入整組數值
func ParseFields(space colorspace.Space, raw []string, r ValueRange) ([]Field, error) {
	cd, err := lookupCodec(space)
	if err != nil {
		return nil, err
	}
	if len(raw) != cd.arity {
		return nil, fmt.Errorf("%s 需要 %d 個字段，實際 %d 個", space, cd.arity, len(raw))
	}
	out := make([]Field, len(raw))
	for i, text := range raw {
		f, err := cd.parse(space, i, strings.TrimSpace(text), r)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Arity 色彩空間的字段數
func Arity(space colorspace.Space) int {
	return codecs[space].arity
}

// Projection 一個色彩空間下的字段值
type Projection struct {
	Space  colorspace.Space
	Fields []Field
}

// Formatted 格式化後的顯示文本
func (p Projection) Formatted() []string {
	out := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		out[i] = FormatValue(f)
	}
	return out
}
