package colorspace

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/image/colornames"
)

// 色輪換算表：每 15° 一個節點
var (
	rybWheel = [25]float64{
		0, 26, 52,
		83, 120, 130,
		141, 151, 162,
		177, 190, 204,
		218, 232, 246,
		261, 275, 288,
		303, 317, 330,
		338, 345, 352,
		360,
	}
	rgbWheel = [25]float64{
		0, 8, 17,
		26, 34, 41,
		48, 54, 60,
		81, 103, 123,
		138, 155, 171,
		187, 204, 219,
		234, 251, 267,
		282, 298, 329,
		360,
	}
)

// RGBToRYBHue 將 RGB 色輪上的色相映射到 RYB 色輪
func RGBToRYBHue(hue float64) float64 {
	return wheelLerp(rybWheel, hue)
}

// RYBToRGBHue 將 RYB 色輪上的色相映射回 RGB 色輪
func RYBToRGBHue(hue float64) float64 {
	return wheelLerp(rgbWheel, hue)
}

func wheelLerp(wheel [25]float64, hue float64) float64 {
	hue = normalizeHue(hue)
	i := int(hue / 15)
	d := math.Mod(hue, 15)
	x0, x1 := wheel[i], wheel[i+1]
	return x0 + (x1-x0)*d/15
}

// Websafe 每個分量取最近的 web 安全值（0.2 的倍數）
func (c Color) Websafe() Color {
	rgb := c.rgb.Clamped()
	out := FromRGB(websafeComponent(rgb.R), websafeComponent(rgb.G), websafeComponent(rgb.B), c.wref)
	return out.WithAlpha(c.alpha)
}

func websafeComponent(v float64) float64 {
	sc := v * 100
	d := math.Mod(sc, 20)
	if d == 0 {
		return v
	}
	lower := sc - d
	upper := lower + 20
	if sc-lower >= upper-sc {
		return upper / 100
	}
	return lower / 100
}

// Greyscale 分量取算術平均
func (c Color) Greyscale() Color {
	rgb := c.RGB()
	v := (rgb[0] + rgb[1] + rgb[2]) / 3
	return FromRGB(v, v, v, c.wref).WithAlpha(c.alpha)
}

// Complementary 在指定色輪上旋轉 180°
func (c Color) Complementary(mode SchemeMode) Color {
	return c.rotateHue(180, mode)
}

// RYBHue 當前色相在 RYB 色輪上的位置（保留三位小數）
func (c Color) RYBHue() float64 {
	return math.Round(RGBToRYBHue(c.HSLHue())*1000) / 1000
}

// Blend 與另一個顏色各取一半（含 alpha）
func (c Color) Blend(o Color) Color {
	out := newColor(c.rgb.BlendRgb(o.rgb, 0.5), c.wref)
	return out.WithAlpha((c.alpha + o.alpha) / 2)
}

// Random 生成一個隨機顏色
func Random(rng *rand.Rand, wref WhiteRef) Color {
	if rng == nil {
		return FromRGB(rand.Float64(), rand.Float64(), rand.Float64(), wref)
	}
	return FromRGB(rng.Float64(), rng.Float64(), rng.Float64(), wref)
}

// html -> SVG 顏色名；同色多名時取字母序第一個
var namedByHTML = func() map[string]string {
	m := make(map[string]string, len(colornames.Names))
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		key := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
		if _, exists := m[key]; !exists {
			m[key] = name
		}
	}
	return m
}()

// Name 返回 SVG 顏色名，無匹配時返回 "N/A"
func (c Color) Name() string {
	if name, ok := namedByHTML[c.HTML()]; ok {
		return name
	}
	return "N/A"
}

// Named 按名稱查找 SVG 顏色
func Named(name string, wref WhiteRef) (Color, bool) {
	rgba, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromInts(int(rgba.R), int(rgba.G), int(rgba.B), wref), true
}
