package colorspace

import (
	"fmt"
	"math"
	"strings"
)

// SchemeMode 配色使用的色輪
type SchemeMode int

const (
	ModeRYB SchemeMode = iota
	ModeRGB
)

func (m SchemeMode) String() string {
	if m == ModeRGB {
		return "RGB"
	}
	return "RYB"
}

// ParseSchemeMode 解析 "RGB" / "RYB"（大小寫不敏感）
func ParseSchemeMode(s string) (SchemeMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RYB":
		return ModeRYB, nil
	case "RGB":
		return ModeRGB, nil
	}
	return ModeRYB, fmt.Errorf("未知的配色模式: %q", s)
}

// SchemeAngle 類似色與四色配色的默認夾角
const SchemeAngle = 30

// Schemes 一組配色結果
type Schemes struct {
	Monochrome []Color
	Triadic    []Color
	Tetradic   []Color
	Analogous  []Color
}

// MakeSchemes 一次生成全部配色
func (c Color) MakeSchemes(mode SchemeMode) Schemes {
	return Schemes{
		Monochrome: c.MonochromeScheme(),
		Triadic:    c.TriadicScheme(mode),
		Tetradic:   c.TetradicScheme(SchemeAngle, mode),
		Analogous:  c.AnalogousScheme(SchemeAngle, mode),
	}
}

// MonochromeScheme 同色相，調整飽和度與亮度，返回 4 個顏色
func (c Color) MonochromeScheme() []Color {
	hsl := c.HSL()
	h, s, l := hsl[0], hsl[1], hsl[2]

	wrap := func(x, base, thres, plus float64) float64 {
		if x-base < thres {
			return x + plus
		}
		return x - base
	}

	s1 := wrap(s, 0.3, 0.1, 0.3)
	l1 := wrap(l, 0.5, 0.2, 0.3)
	l2 := wrap(l, 0.2, 0.2, 0.6)
	l3 := math.Max(0.2, l+(1-l)*0.2)
	l4 := wrap(l, 0.5, 0.2, 0.3)

	return []Color{
		c.fromHSLKeep(h, s1, l1),
		c.fromHSLKeep(h, s, l2),
		c.fromHSLKeep(h, s1, l3),
		c.fromHSLKeep(h, s, l4),
	}
}

// TriadicScheme 色輪上相隔 120° 的兩個顏色
func (c Color) TriadicScheme(mode SchemeMode) []Color {
	return []Color{
		c.rotateHue(120, mode),
		c.rotateHue(240, mode),
	}
}

// TetradicScheme 以 angle 為夾角的矩形配色，返回 3 個顏色
func (c Color) TetradicScheme(angle float64, mode SchemeMode) []Color {
	return []Color{
		c.rotateHue(angle, mode),
		c.rotateHue(180, mode),
		c.rotateHue(180+angle, mode),
	}
}

// AnalogousScheme 左右各偏 angle 的兩個顏色
func (c Color) AnalogousScheme(angle float64, mode SchemeMode) []Color {
	return []Color{
		c.rotateHue(angle, mode),
		c.rotateHue(-angle, mode),
	}
}

// rotateHue RYB 模式下先映射到 RYB 色輪旋轉，再映射回來
func (c Color) rotateHue(delta float64, mode SchemeMode) Color {
	hsl := c.HSL()
	h := hsl[0]
	if mode == ModeRYB {
		h = RGBToRYBHue(h)
	}
	h = normalizeHue(h + delta)
	if mode == ModeRYB {
		h = RYBToRGBHue(h)
	}
	return c.fromHSLKeep(h, hsl[1], hsl[2])
}

func (c Color) fromHSLKeep(h, s, l float64) Color {
	return FromHSL(h, s, l, c.wref).WithAlpha(c.alpha)
}
