package colorspace

import (
	"fmt"
	"strings"
)

// Space 色彩空間標識（封閉枚舉）
type Space int

const (
	Hex Space = iota
	SRGB
	HSL
	HSV
	YIQ
	YUV
	XYZ
	LAB
	CMY
	CMYK
)

var spaceNames = [...]string{
	Hex:  "Hex",
	SRGB: "sRGB",
	HSL:  "HSL",
	HSV:  "HSV",
	YIQ:  "YIQ",
	YUV:  "YUV",
	XYZ:  "CIE-XYZ",
	LAB:  "CIE-LAB",
	CMY:  "CMY",
	CMYK: "CMYK",
}

// AllSpaces 按固定順序返回全部色彩空間
func AllSpaces() []Space {
	return []Space{Hex, SRGB, HSL, HSV, YIQ, YUV, XYZ, LAB, CMY, CMYK}
}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// Valid 是否為已知的色彩空間
func (s Space) Valid() bool {
	return s >= Hex && s <= CMYK
}

// ParseSpace 由名稱解析色彩空間（大小寫不敏感）
func ParseSpace(name string) (Space, error) {
	name = strings.TrimSpace(name)
	for i, n := range spaceNames {
		if strings.EqualFold(n, name) {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("未知的色彩空間: %q", name)
}

// ParseSpaces 解析名稱列表，保持傳入順序並去重
func ParseSpaces(names []string) ([]Space, error) {
	seen := make(map[Space]bool, len(names))
	out := make([]Space, 0, len(names))
	for _, n := range names {
		s, err := ParseSpace(n)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}

// SpaceNames 返回全部色彩空間名稱
func SpaceNames() []string {
	out := make([]string, len(spaceNames))
	copy(out, spaceNames[:])
	return out
}

var fieldLabels = [...][]string{
	Hex:  {"#"},
	SRGB: {"R", "G", "B"},
	HSL:  {"H", "S", "L"},
	HSV:  {"H", "S", "V"},
	YIQ:  {"Y", "I", "Q"},
	YUV:  {"Y", "U", "V"},
	XYZ:  {"X", "Y", "Z"},
	LAB:  {"L", "a", "b"},
	CMY:  {"C", "M", "Y"},
	CMYK: {"C", "M", "Y", "K"},
}

// FieldLabels 各分量的短名稱
func (s Space) FieldLabels() []string {
	if !s.Valid() {
		return nil
	}
	return append([]string(nil), fieldLabels[s]...)
}
