package colorspace

import "fmt"

// WhiteRef CIE 白點參考 (X, Y, Z)，Y 歸一化為 1
type WhiteRef [3]float64

// 觀察者視角
const (
	Observer1931 = "CIE 1931" // 2° 標準觀察者
	Observer1964 = "CIE 1964" // 10° 補充觀察者
)

// D65 默認白點 (CIE 1931)
var D65 = standardWhite["D65"]

// CIE 1931 2° 標準觀察者
var standardWhite = map[string]WhiteRef{
	"A":   {1.09847, 1.00000, 0.35582},
	"B":   {0.99093, 1.00000, 0.85313},
	"C":   {0.98071, 1.00000, 1.18225},
	"D50": {0.96421, 1.00000, 0.82519},
	"D55": {0.95680, 1.00000, 0.92148},
	"D65": {0.95043, 1.00000, 1.08890},
	"D75": {0.94972, 1.00000, 1.22639},
	"E":   {1.00000, 1.00000, 1.00000},
	"F1":  {0.92834, 1.00000, 1.03665},
	"F2":  {0.99145, 1.00000, 0.67316},
	"F3":  {1.03753, 1.00000, 0.49861},
	"F4":  {1.09147, 1.00000, 0.38813},
	"F5":  {0.90872, 1.00000, 0.98723},
	"F6":  {0.97309, 1.00000, 0.60191},
	"F7":  {0.95017, 1.00000, 1.08630},
	"F8":  {0.96413, 1.00000, 0.82333},
	"F9":  {1.00365, 1.00000, 0.67868},
	"F10": {0.96174, 1.00000, 0.81712},
	"F11": {1.00899, 1.00000, 0.64262},
	"F12": {1.08046, 1.00000, 0.39228},
}

// CIE 1964 10° 補充觀察者
var supplementaryWhite = map[string]WhiteRef{
	"A":   {1.11142, 1.00000, 0.35200},
	"B":   {0.99178, 1.00000, 0.84349},
	"C":   {0.97286, 1.00000, 1.16145},
	"D50": {0.96721, 1.00000, 0.81428},
	"D55": {0.95797, 1.00000, 0.90925},
	"D65": {0.94810, 1.00000, 1.07305},
	"D75": {0.94417, 1.00000, 1.20643},
	"E":   {1.00000, 1.00000, 1.00000},
	"F1":  {0.94791, 1.00000, 1.03191},
	"F2":  {1.03245, 1.00000, 0.68990},
	"F3":  {1.08968, 1.00000, 0.51965},
	"F4":  {1.14961, 1.00000, 0.40963},
	"F5":  {0.93369, 1.00000, 0.98636},
	"F6":  {1.02148, 1.00000, 0.62074},
	"F7":  {0.95780, 1.00000, 1.07618},
	"F8":  {0.97115, 1.00000, 0.81135},
	"F9":  {1.02116, 1.00000, 0.67826},
	"F10": {0.99001, 1.00000, 0.83134},
	"F11": {1.03820, 1.00000, 0.65555},
	"F12": {1.11428, 1.00000, 0.40353},
}

// LookupWhiteRef 根據白點名稱與觀察者視角查找白點
func LookupWhiteRef(point, observer string) (WhiteRef, error) {
	var table map[string]WhiteRef
	switch observer {
	case Observer1931:
		table = standardWhite
	case Observer1964:
		table = supplementaryWhite
	default:
		return WhiteRef{}, fmt.Errorf("未知的觀察者視角: %q", observer)
	}

	ref, ok := table[point]
	if !ok {
		return WhiteRef{}, fmt.Errorf("未知的白點: %q", point)
	}
	return ref, nil
}

// 白點的顯示順序
var whitePointOrder = []string{
	"A", "B", "C", "D50", "D55", "D65", "D75", "E",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
}

// WhitePointNames 返回可用白點名稱（A, B, C, D50 ... F12）
func WhitePointNames() []string {
	out := make([]string, len(whitePointOrder))
	copy(out, whitePointOrder)
	return out
}
