package colorspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Yat-Muk/colorstk/internal/domain/validator"
)

// legalEpsilon 判定合法性時允許的浮點誤差
const legalEpsilon = 1e-9

// equalTolerance Color 值相等的比較容差
const equalTolerance = 1e-6

// Color 不可變的顏色值
// 以 sRGB 為錨點存儲（不做截斷，允許表示色域外的點），附帶 alpha 與白點
type Color struct {
	rgb   colorful.Color
	alpha float64
	wref  WhiteRef
}

// FromRGB 由 [0,1] 範圍的 RGB 分量創建顏色
func FromRGB(r, g, b float64, wref WhiteRef) Color {
	return newColor(colorful.Color{R: r, G: g, B: b}, wref)
}

// FromInts 由 0-255 整數分量創建顏色
func FromInts(r, g, b int, wref WhiteRef) Color {
	return FromRGB(float64(r)/255, float64(g)/255, float64(b)/255, wref)
}

// FromHTML 解析 3 位或 6 位十六進制顏色（可帶 #）
func FromHTML(text string, wref WhiteRef) (Color, error) {
	text = strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(text) != 3 && len(text) != 6 {
		return Color{}, fmt.Errorf("無效的十六進制顏色 %q: 需要 3 或 6 位", text)
	}
	if !validator.IsHexDigits(text) {
		return Color{}, fmt.Errorf("無效的十六進制顏色 %q: 含非十六進制字符", text)
	}
	c, err := colorful.Hex("#" + strings.ToLower(text))
	if err != nil {
		return Color{}, fmt.Errorf("無效的十六進制顏色 %q: %w", text, err)
	}
	return newColor(c, wref), nil
}

// FromHSL 色相單位為度，飽和度與亮度為 [0,1]
func FromHSL(h, s, l float64, wref WhiteRef) Color {
	return newColor(colorful.Hsl(normalizeHue(h), s, l), wref)
}

// FromHSV 色相單位為度，飽和度與明度為 [0,1]
func FromHSV(h, s, v float64, wref WhiteRef) Color {
	return newColor(colorful.Hsv(normalizeHue(h), s, v), wref)
}

// FromXYZ CIE-XYZ，Y 歸一化為 1
func FromXYZ(x, y, z float64, wref WhiteRef) Color {
	return newColor(colorful.Xyz(x, y, z), wref)
}

// FromLAB CIE-LAB，L 範圍 [0,100]，使用顏色自身的白點
func FromLAB(l, a, b float64, wref WhiteRef) Color {
	return newColor(colorful.LabWhiteRef(l/100, a/100, b/100, [3]float64(wref)), wref)
}

// FromYIQ NTSC YIQ
func FromYIQ(y, i, q float64, wref WhiteRef) Color {
	r, g, b := applyMatrix(yiqInverse, y, i, q)
	return FromRGB(r, g, b, wref)
}

// FromYUV YUV (BT.601)
func FromYUV(y, u, v float64, wref WhiteRef) Color {
	r, g, b := applyMatrix(yuvInverse, y, u, v)
	return FromRGB(r, g, b, wref)
}

// FromCMY 減色 CMY，分量 [0,1]
func FromCMY(c, m, y float64, wref WhiteRef) Color {
	return FromRGB(1-c, 1-m, 1-y, wref)
}

// FromCMYK 減色 CMYK，分量 [0,1]
func FromCMYK(c, m, y, k float64, wref WhiteRef) Color {
	mk := 1 - k
	return FromCMY(c*mk+k, m*mk+k, y*mk+k, wref)
}

// newColor 吸收浮點誤差：落在合法範圍邊緣的分量收回到 [0,1]
func newColor(c colorful.Color, wref WhiteRef) Color {
	c.R, c.G, c.B = snap(c.R), snap(c.G), snap(c.B)
	return Color{rgb: c, alpha: 1, wref: wref}
}

func snap(v float64) float64 {
	switch {
	case v < 0 && v > -legalEpsilon:
		return 0
	case v > 1 && v < 1+legalEpsilon:
		return 1
	}
	return v
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// 極小的負數加 360 後可能恰好等於 360
	if h >= 360 {
		return 0
	}
	return h
}

// WithAlpha 返回替換 alpha 的副本
func (c Color) WithAlpha(a float64) Color {
	c.alpha = a
	return c
}

// WithWhiteRef 返回替換白點的副本（RGB 不變）
func (c Color) WithWhiteRef(w WhiteRef) Color {
	c.wref = w
	return c
}

func (c Color) Alpha() float64     { return c.alpha }
func (c Color) WhiteRef() WhiteRef { return c.wref }

// RGB 浮點 RGB 分量
func (c Color) RGB() [3]float64 {
	return [3]float64{c.rgb.R, c.rgb.G, c.rgb.B}
}

// Ints 0-255 整數 RGB（色域外分量先截斷）
func (c Color) Ints() [3]int {
	cl := c.rgb.Clamped()
	return [3]int{
		int(math.Round(cl.R * 255)),
		int(math.Round(cl.G * 255)),
		int(math.Round(cl.B * 255)),
	}
}

// HTML 小寫 #rrggbb
func (c Color) HTML() string {
	return c.rgb.Clamped().Hex()
}

func (c Color) HSL() [3]float64 {
	h, s, l := c.rgb.Hsl()
	return [3]float64{h, s, l}
}

// HSLHue 單獨取色相，用於色輪換算
func (c Color) HSLHue() float64 {
	h, _, _ := c.rgb.Hsl()
	return h
}

func (c Color) HSV() [3]float64 {
	h, s, v := c.rgb.Hsv()
	return [3]float64{h, s, v}
}

func (c Color) XYZ() [3]float64 {
	x, y, z := c.rgb.Xyz()
	return [3]float64{x, y, z}
}

// LAB L 範圍 [0,100]
func (c Color) LAB() [3]float64 {
	l, a, b := c.rgb.LabWhiteRef([3]float64(c.wref))
	return [3]float64{l * 100, a * 100, b * 100}
}

func (c Color) YIQ() [3]float64 {
	y, i, q := applyMatrix(yiqForward, c.rgb.R, c.rgb.G, c.rgb.B)
	return [3]float64{y, i, q}
}

func (c Color) YUV() [3]float64 {
	y, u, v := applyMatrix(yuvForward, c.rgb.R, c.rgb.G, c.rgb.B)
	return [3]float64{y, u, v}
}

func (c Color) CMY() [3]float64 {
	return [3]float64{1 - c.rgb.R, 1 - c.rgb.G, 1 - c.rgb.B}
}

func (c Color) CMYK() [4]float64 {
	cmy := c.CMY()
	k := math.Min(cmy[0], math.Min(cmy[1], cmy[2]))
	if k >= 1 {
		return [4]float64{0, 0, 0, 1}
	}
	mk := 1 - k
	return [4]float64{(cmy[0] - k) / mk, (cmy[1] - k) / mk, (cmy[2] - k) / mk, k}
}

// IsLegal RGB 分量是否全部位於 [0,1]
func (c Color) IsLegal() bool {
	for _, v := range c.RGB() {
		if math.IsNaN(v) || v < -legalEpsilon || v > 1+legalEpsilon {
			return false
		}
	}
	return true
}

// Equal RGB、alpha、白點在容差內一致
func (c Color) Equal(o Color) bool {
	a, b := c.RGB(), o.RGB()
	for i := range a {
		if math.Abs(a[i]-b[i]) > equalTolerance {
			return false
		}
	}
	if math.Abs(c.alpha-o.alpha) > equalTolerance {
		return false
	}
	for i := range c.wref {
		if math.Abs(c.wref[i]-o.wref[i]) > equalTolerance {
			return false
		}
	}
	return true
}

func (c Color) String() string {
	return c.HTML()
}
