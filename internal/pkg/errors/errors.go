package errors

import (
	"errors"
	"fmt"
)

// 預定義錯誤類型
var (
	// 數值編輯相關：只在編輯邊界內處理，不向上傳播
	ErrRejectedInput = errors.New("input rejected")
	ErrIllegalColor  = errors.New("color is outside the legal rgb range")

	// 調色板相關
	ErrPaletteExists   = errors.New("palette already exists")
	ErrPaletteNotFound = errors.New("palette not found")
	ErrColorNotFound   = errors.New("color not found in palette")

	// 持久化相關：唯一會上浮到展示層的錯誤
	ErrPersistence = errors.New("persistence failure")

	// 配置相關
	ErrConfigInvalid     = errors.New("configuration is invalid")
	ErrConfigParseFailed = errors.New("failed to parse configuration")
)

// 錯誤碼
const (
	CodeRejectedInput = "REJECTED_INPUT"
	CodeIllegalColor  = "ILLEGAL_COLOR"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeNotFound      = "NOT_FOUND"
	CodePersistence   = "PERSISTENCE"
	CodeConfig        = "CONFIG"
)

// Error 自定義錯誤類型
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建新錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 包裝錯誤
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf 取出錯誤鏈上第一個錯誤碼，沒有則返回空字符串
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
