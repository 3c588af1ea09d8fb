package valuesync

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/colorstate"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

var defaultSpaces = []colorspace.Space{
	colorspace.Hex, colorspace.SRGB, colorspace.HSL, colorspace.HSV, colorspace.XYZ, colorspace.LAB,
}

func newEngine(t *testing.T, initial colorspace.Color) (*colorstate.State, *Engine) {
	t.Helper()
	s := colorstate.New(initial)
	e := NewEngine(s, defaultSpaces, Range255, zap.NewNop())
	t.Cleanup(e.Close)
	return s, e
}

func rowText(t *testing.T, e *Engine, space colorspace.Space) []string {
	t.Helper()
	d, ok := e.Display(space)
	require.True(t, ok, "缺少 %s 行", space)
	return d.Text
}

func TestApplyEdit_SRGB(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 0, 0, colorspace.D65))

	applied, err := e.ApplyEdit(colorspace.SRGB, 0, "255")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", applied.Color.HTML())
	assert.Equal(t, "#ff0000", s.Current().HTML())

	assert.Equal(t, []string{"#ff0000"}, rowText(t, e, colorspace.Hex))
	assert.Equal(t, []string{"255", "0", "0"}, rowText(t, e, colorspace.SRGB))
	assert.Equal(t, []string{"0", "1", "0.5"}, rowText(t, e, colorspace.HSL))
}

func TestApplyEdit_ClampsBelowRange(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(255, 0, 0, colorspace.D65))

	_, err := e.ApplyEdit(colorspace.SRGB, 0, "-10")
	require.NoError(t, err)
	assert.Equal(t, "#000000", s.Current().HTML())
	assert.Equal(t, []string{"0", "0", "0"}, rowText(t, e, colorspace.SRGB))
}

func TestApplyEdit_OverflowClamps(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 255, 0, colorspace.D65))

	_, err := e.ApplyEdit(colorspace.SRGB, 0, "1e400")
	require.NoError(t, err)
	assert.Equal(t, "#ffff00", s.Current().HTML())

	_, err = e.ApplyEdit(colorspace.SRGB, 1, "-1e400")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", s.Current().HTML())
}

func TestApplyEdit_HueClamp(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(255, 0, 0, colorspace.D65))

	_, err := e.ApplyEdit(colorspace.HSL, 0, "400")
	require.NoError(t, err)
	assert.InDelta(t, 359, s.Current().HSLHue(), 1e-6)
}

func TestApplyEdit_Rejected(t *testing.T) {
	start := colorspace.FromInts(255, 0, 0, colorspace.D65)

	tests := []struct {
		name  string
		space colorspace.Space
		index int
		raw   string
	}{
		{"空輸入", colorspace.SRGB, 1, "   "},
		{"數值未變化", colorspace.SRGB, 0, "255"},
		{"十六進制位數不對", colorspace.Hex, 0, "12"},
		{"十六進制非法字符", colorspace.Hex, 0, "#ggg"},
		{"不是數字", colorspace.HSV, 2, "abc"},
		{"NaN", colorspace.XYZ, 0, "NaN"},
		{"無界字段溢出", colorspace.LAB, 1, "1e400"},
		{"無界字段無窮大", colorspace.YIQ, 0, "-inf"},
		{"字段越界", colorspace.SRGB, 3, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := newEngine(t, start)
			before := e.Displays()

			_, err := e.ApplyEdit(tt.space, tt.index, tt.raw)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.ErrRejectedInput))
			assert.Equal(t, errors.CodeRejectedInput, errors.CodeOf(err))

			assert.True(t, s.Current().Equal(start))
			assert.False(t, s.CanUndo(), "被拒絕的輸入不應記錄歷史")
			assert.Equal(t, before, e.Displays())
		})
	}
}

func TestApplyEdit_HexReplacesWholeGroup(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 0, 0, colorspace.D65))

	_, err := e.ApplyEdit(colorspace.Hex, 0, "0F0")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", s.Current().HTML())
	assert.Equal(t, []string{"#00ff00"}, rowText(t, e, colorspace.Hex))

	_, err = e.ApplyEdit(colorspace.Hex, 0, "#1E90FF")
	require.NoError(t, err)
	assert.Equal(t, "#1e90ff", s.Current().HTML())
}

func TestApplyEdit_IllegalColorReverted(t *testing.T) {
	grey := colorspace.FromInts(119, 119, 119, colorspace.D65)
	white := colorspace.FromInts(255, 255, 255, colorspace.D65)

	s, e := newEngine(t, grey)
	s.SetColor(white)
	require.True(t, s.Undo())
	require.Len(t, s.RedoStack(), 1)
	before := e.Displays()

	_, err := e.ApplyEdit(colorspace.LAB, 1, "120")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrIllegalColor))
	assert.Equal(t, errors.CodeIllegalColor, errors.CodeOf(err))

	assert.True(t, s.Current().Equal(grey), "當前顏色應保持不變")
	assert.Equal(t, before, e.Displays())

	redo := s.RedoStack()
	require.Len(t, redo, 1, "原有的重做記錄應保留，且不能多出非法顏色")
	assert.True(t, redo[0].Equal(white))

	require.True(t, s.Redo())
	assert.True(t, s.Current().Equal(white))
}

func TestApplyEdit_LegalEditClearsRedo(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 0, 0, colorspace.D65))
	s.SetColor(colorspace.FromInts(255, 255, 255, colorspace.D65))
	require.True(t, s.Undo())

	_, err := e.ApplyEdit(colorspace.SRGB, 2, "128")
	require.NoError(t, err)
	assert.Empty(t, s.RedoStack())
	assert.True(t, s.CanUndo())
}

func TestApplyEdit_KeepsAlpha(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 0, 0, colorspace.D65).WithAlpha(0))

	_, err := e.ApplyEdit(colorspace.SRGB, 0, "10")
	require.NoError(t, err)
	assert.InDelta(t, 0, s.Current().Alpha(), 1e-9)
}

func TestEngine_FollowsState(t *testing.T) {
	s, e := newEngine(t, colorspace.FromInts(0, 0, 0, colorspace.D65))

	s.SetColor(colorspace.FromInts(0, 0, 255, colorspace.D65))
	assert.Equal(t, []string{"#0000ff"}, rowText(t, e, colorspace.Hex))

	s.Undo()
	assert.Equal(t, []string{"#000000"}, rowText(t, e, colorspace.Hex))

	e.Close()
	s.Redo()
	assert.Equal(t, []string{"#000000"}, rowText(t, e, colorspace.Hex), "取消訂閱後不再更新")
}

func TestEngine_SetSpacesAndRange(t *testing.T) {
	_, e := newEngine(t, colorspace.FromInts(255, 0, 0, colorspace.D65))

	e.SetSpaces([]colorspace.Space{colorspace.CMYK, colorspace.SRGB})
	displays := e.Displays()
	require.Len(t, displays, 2)
	assert.Equal(t, colorspace.CMYK, displays[0].Space)
	assert.Equal(t, []string{"0", "1", "1", "0"}, displays[0].Text)
	_, ok := e.Display(colorspace.Hex)
	assert.False(t, ok)

	e.SetValueRange(RangeUnit)
	assert.Equal(t, RangeUnit, e.ValueRange())
	assert.Equal(t, []string{"1", "0", "0"}, rowText(t, e, colorspace.SRGB))

	// 0-1 模式下同樣截斷
	_, err := e.ApplyEdit(colorspace.SRGB, 1, "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "0"}, rowText(t, e, colorspace.SRGB))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{255, "255"},
		{0.123456, "0.123"},
		{123.456, "123"},
		{1234.5, "1.23e+03"},
		{-0.0001, "0"},
		{-12.3456, "-12.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestFormatValue_Idempotent(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.333333, 1, 42.4242, 95.047, 108.883, 359, 1234.5, -86.18} {
		once := FormatNumber(v)
		parsed, err := strconv.ParseFloat(once, 64)
		require.NoError(t, err)
		assert.Equal(t, once, FormatNumber(parsed), "輸入 %v", v)
	}
	assert.Equal(t, "#abcdef", FormatValue(TextField("#abcdef")))
}

func TestParseFieldsAndConstruct(t *testing.T) {
	fields, err := ParseFields(colorspace.HSV, []string{"120", "1", "1"}, Range255)
	require.NoError(t, err)
	c, err := Construct(colorspace.HSV, fields, Range255, colorspace.D65)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.HTML())

	_, err = ParseFields(colorspace.SRGB, []string{"1", "2"}, Range255)
	assert.Error(t, err)

	_, err = Construct(colorspace.CMYK, fields, Range255, colorspace.D65)
	assert.Error(t, err)
	assert.Equal(t, 4, Arity(colorspace.CMYK))
}

func TestProjectColor_Formatted(t *testing.T) {
	p, err := ProjectColor(colorspace.FromInts(255, 255, 255, colorspace.D65), colorspace.CMY, Range255)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0", "0"}, p.Formatted())
}

func TestParseValueRange(t *testing.T) {
	r, err := ParseValueRange("0-1")
	require.NoError(t, err)
	assert.Equal(t, RangeUnit, r)
	assert.Equal(t, "0-1", r.String())

	r, err = ParseValueRange("0-255")
	require.NoError(t, err)
	assert.Equal(t, Range255, r)

	_, err = ParseValueRange("0-100")
	assert.Error(t, err)
}
