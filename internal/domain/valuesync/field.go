package valuesync

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDigits 數值顯示的有效位數
const FormatDigits = 3

// Field 一個可編輯字段：數值，或 Hex 的整串文本
type Field struct {
	Num    float64
	Text   string
	IsText bool
}

func NumField(v float64) Field { return Field{Num: v} }
func TextField(s string) Field { return Field{Text: s, IsText: true} }
func (f Field) String() string { return FormatValue(f) }

// FormatValue 文本原樣返回；數值先四捨五入到 3 位小數，再按 3 位有效數字格式化
func FormatValue(f Field) string {
	if f.IsText {
		return f.Text
	}
	return FormatNumber(f.Num)
}

// FormatNumber 對已格式化的結果再次格式化，結果不變
func FormatNumber(v float64) string {
	pow := math.Pow(10, FormatDigits)
	r := math.Round(v*pow) / pow
	if r == 0 {
		r = 0 // 消除 -0
	}
	return strconv.FormatFloat(r, 'g', FormatDigits, 64)
}

// ValueRange sRGB 的顯示範圍
type ValueRange int

const (
	Range255 ValueRange = iota // 0-255 整數
	RangeUnit                  // 0-1 浮點
)

func (r ValueRange) String() string {
	if r == RangeUnit {
		return "0-1"
	}
	return "0-255"
}

// Max sRGB 分量上限
func (r ValueRange) Max() float64 {
	if r == RangeUnit {
		return 1
	}
	return 255
}

// ParseValueRange 解析 "0-255" / "0-1"
func ParseValueRange(s string) (ValueRange, error) {
	switch strings.TrimSpace(s) {
	case "0-255":
		return Range255, nil
	case "0-1":
		return RangeUnit, nil
	}
	return Range255, fmt.Errorf("未知的數值範圍: %q", s)
}
