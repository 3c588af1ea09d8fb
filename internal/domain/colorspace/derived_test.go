package colorspace

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheel(t *testing.T) {
	assert.InDelta(t, 0, RGBToRYBHue(0), 1e-9)
	assert.InDelta(t, 120, RGBToRYBHue(60), 1e-9)
	assert.InDelta(t, 60, RYBToRGBHue(120), 1e-9)
	// 節點之間線性插值
	assert.InDelta(t, 13, RGBToRYBHue(7.5), 1e-9)
	// 超出 360 的角度先歸一化
	assert.InDelta(t, RGBToRYBHue(10), RGBToRYBHue(370), 1e-9)

	// 略小於 0 的角度落在 [0, 360) 內
	assert.Equal(t, 0.0, normalizeHue(-1e-15))
	assert.NotPanics(t, func() { RGBToRYBHue(-1e-15) })
	assert.NotPanics(t, func() { RYBToRGBHue(-1e-15) })
	assert.InDelta(t, 0, RGBToRYBHue(-1e-15), 1e-9)
}

func TestComplementary(t *testing.T) {
	red := FromInts(255, 0, 0, D65)
	assert.Equal(t, "#00ffff", red.Complementary(ModeRGB).HTML())

	ryb := red.Complementary(ModeRYB)
	assert.InDelta(t, 138, ryb.HSLHue(), 1e-6)
}

func TestWebsafe(t *testing.T) {
	c := FromRGB(0.55, 0.1, 0.95, D65).Websafe()
	rgb := c.RGB()
	assert.InDelta(t, 0.6, rgb[0], 1e-9)
	assert.InDelta(t, 0.2, rgb[1], 1e-9)
	assert.InDelta(t, 1.0, rgb[2], 1e-9)
}

func TestGreyscale(t *testing.T) {
	g := FromRGB(0.3, 0.6, 0.9, D65).Greyscale()
	for _, v := range g.RGB() {
		assert.InDelta(t, 0.6, v, 1e-9)
	}
}

func TestBlend(t *testing.T) {
	black := FromRGB(0, 0, 0, D65)
	white := FromRGB(1, 1, 1, D65).WithAlpha(0)
	mid := black.Blend(white)
	for _, v := range mid.RGB() {
		assert.InDelta(t, 0.5, v, 1e-9)
	}
	assert.InDelta(t, 0.5, mid.Alpha(), 1e-9)
}

func TestName(t *testing.T) {
	assert.Equal(t, "red", FromInts(255, 0, 0, D65).Name())
	assert.Equal(t, "black", FromInts(0, 0, 0, D65).Name())
	assert.Equal(t, "N/A", FromInts(1, 2, 3, D65).Name())

	c, ok := Named("navy", D65)
	require.True(t, ok)
	assert.Equal(t, "#000080", c.HTML())

	_, ok = Named("not-a-colour", D65)
	assert.False(t, ok)
}

func TestRYBHue(t *testing.T) {
	yellow := FromInts(255, 255, 0, D65)
	assert.InDelta(t, 120, yellow.RYBHue(), 1e-9)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.True(t, Random(rng, D65).IsLegal())
	}
	assert.True(t, Random(nil, D65).IsLegal())
}

func TestSchemes(t *testing.T) {
	c := FromInts(30, 120, 200, D65)

	for _, mode := range []SchemeMode{ModeRGB, ModeRYB} {
		s := c.MakeSchemes(mode)
		assert.Len(t, s.Monochrome, 4)
		assert.Len(t, s.Triadic, 2)
		assert.Len(t, s.Tetradic, 3)
		assert.Len(t, s.Analogous, 2)

		for _, group := range [][]Color{s.Monochrome, s.Triadic, s.Tetradic, s.Analogous} {
			for _, sc := range group {
				assert.Equal(t, c.WhiteRef(), sc.WhiteRef())
			}
		}
	}

	// RGB 模式下三角配色色相相差 120°
	hue := c.HSLHue()
	tri := c.TriadicScheme(ModeRGB)
	assert.InDelta(t, normalizeHue(hue+120), tri[0].HSLHue(), 1e-6)
	assert.InDelta(t, normalizeHue(hue+240), tri[1].HSLHue(), 1e-6)
}

func TestParseSchemeMode(t *testing.T) {
	m, err := ParseSchemeMode("rgb")
	require.NoError(t, err)
	assert.Equal(t, ModeRGB, m)
	assert.Equal(t, "RGB", m.String())

	m, err = ParseSchemeMode("RYB")
	require.NoError(t, err)
	assert.Equal(t, ModeRYB, m)

	_, err = ParseSchemeMode("CMY")
	assert.Error(t, err)
}
