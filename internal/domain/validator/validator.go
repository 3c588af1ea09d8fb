package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxPaletteName 調色板名稱最大長度（按字符計）
const MaxPaletteName = 64

// ValidatePaletteName 驗證調色板名稱：去掉首尾空白後不能為空，不能含控制字符
func ValidatePaletteName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("調色板名稱不能為空")
	}

	if !utf8.ValidString(name) {
		return "", errors.New("調色板名稱不是有效的 UTF-8")
	}

	if n := utf8.RuneCountInString(name); n > MaxPaletteName {
		return "", fmt.Errorf("調色板名稱過長（最多 %d 字符，當前 %d 字符）", MaxPaletteName, n)
	}

	// 換行、製表符等會破壞列表排版與存儲文件
	for _, r := range name {
		if unicode.IsControl(r) {
			return "", errors.New("調色板名稱不能包含控制字符")
		}
	}

	return name, nil
}

// IsHexDigits 是否全部為十六進制數字
func IsHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return false
		}
	}
	return true
}
