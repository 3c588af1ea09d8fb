package application

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	"github.com/Yat-Muk/colorstk/internal/domain/palette"
)

func newLookup(t *testing.T, initial colorspace.Color) (*LookupService, *colorstate.State) {
	t.Helper()
	state := colorstate.New(initial)
	svc := NewLookupService(state, colorspace.D65, colorspace.ModeRYB, rand.New(rand.NewSource(1)), zap.NewNop())
	t.Cleanup(svc.Close)
	return svc, state
}

func TestLookupService_FollowsBroadcast(t *testing.T) {
	svc, state := newLookup(t, colorspace.FromInts(255, 0, 0, colorspace.D65))

	assert.Equal(t, "red", svc.Info().Name)
	assert.Len(t, svc.Schemes().Triadic, 2)

	state.SetColor(colorspace.FromInts(0, 0, 0, colorspace.D65))
	assert.Equal(t, "black", svc.Info().Name)
	assert.Equal(t, "#000000", svc.Info().Greyscale.HTML())

	state.SetColor(colorspace.FromInts(1, 2, 3, colorspace.D65))
	assert.Equal(t, "N/A", svc.Info().Name)
}

func TestLookupService_SetSchemeMode(t *testing.T) {
	svc, _ := newLookup(t, colorspace.FromInts(255, 0, 0, colorspace.D65))

	rybComp := svc.Info().Complementary.HTML()
	svc.SetSchemeMode(colorspace.ModeRGB)
	assert.Equal(t, colorspace.ModeRGB, svc.SchemeMode())
	assert.Equal(t, "#00ffff", svc.Info().Complementary.HTML())
	assert.NotEqual(t, rybComp, svc.Info().Complementary.HTML())
}

func TestLookupService_Random(t *testing.T) {
	svc, state := newLookup(t, colorspace.FromInts(0, 0, 0, colorspace.D65))

	c := svc.Random()
	assert.True(t, c.IsLegal())
	assert.Equal(t, colorspace.D65, c.WhiteRef())
	assert.True(t, state.CanUndo(), "隨機顏色記錄歷史")
	assert.True(t, svc.Current().Equal(c))

	require.True(t, svc.Undo())
	assert.Equal(t, "#000000", svc.Current().HTML())
	require.True(t, svc.Redo())
	assert.True(t, svc.Current().Equal(c))
}

func TestLookupService_Jump(t *testing.T) {
	svc, state := newLookup(t, colorspace.FromInts(0, 0, 0, colorspace.D65))

	svc.JumpToRGB(palette.RGB{0, 1, 0})
	assert.Equal(t, "#00ff00", svc.Current().HTML())
	assert.Len(t, state.History(), 1)

	svc.JumpTo(svc.Schemes().Triadic[0])
	assert.Len(t, state.History(), 2)
}

func TestLookupService_SetWhiteRef(t *testing.T) {
	svc, state := newLookup(t, colorspace.FromInts(10, 20, 30, colorspace.D65))

	d50, err := colorspace.LookupWhiteRef("D50", colorspace.Observer1931)
	require.NoError(t, err)

	svc.SetWhiteRef(d50)
	assert.False(t, state.CanUndo(), "切換白點不記錄歷史")
	assert.Equal(t, d50, svc.Current().WhiteRef())
	assert.Equal(t, "#0a141e", svc.Current().HTML())

	// 之後生成的顏色使用新白點
	assert.Equal(t, d50, svc.Random().WhiteRef())
}

func TestLookupService_Slots(t *testing.T) {
	red := colorspace.FromInts(255, 0, 0, colorspace.D65)
	blue := colorspace.FromInts(0, 0, 255, colorspace.D65)
	svc, state := newLookup(t, red)

	for i := 0; i < SlotCount; i++ {
		assert.False(t, svc.SlotFilled(i))
	}
	_, ok := svc.Blend()
	assert.False(t, ok, "空槽不能混合")
	assert.False(t, svc.RecallSlot(0))
	assert.False(t, svc.StoreSlot(SlotCount))

	require.True(t, svc.StoreSlot(0))
	_, ok = svc.Blend()
	assert.False(t, ok, "只有一個槽有顏色")

	state.SetColor(blue)
	require.True(t, svc.StoreSlot(1))
	assert.True(t, svc.SlotFilled(1))

	before := len(state.History())
	mixed, ok := svc.Blend()
	require.True(t, ok)
	rgb := mixed.RGB()
	assert.InDelta(t, 0.5, rgb[0], 1e-9)
	assert.InDelta(t, 0, rgb[1], 1e-9)
	assert.InDelta(t, 0.5, rgb[2], 1e-9)
	assert.Equal(t, 1.0, mixed.Alpha())
	assert.Len(t, state.History(), before+1)

	require.True(t, svc.RecallSlot(0))
	assert.Equal(t, "#ff0000", svc.Current().HTML())
	assert.Len(t, state.History(), before+2)
}
