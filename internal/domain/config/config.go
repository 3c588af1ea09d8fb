package config

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

// Repository 配置倉庫接口
type Repository interface {
	// Load 加載配置
	Load(ctx context.Context) (*Config, error)

	// Save 保存配置
	Save(ctx context.Context, cfg *Config) error
}

// Config 主配置結構
type Config struct {
	Version int         `yaml:"version"`
	Color   ColorConfig `yaml:"color"`
	UI      UIConfig    `yaml:"ui"`
	Log     LogConfig   `yaml:"log"`
}

// ColorConfig 顏色計算相關
type ColorConfig struct {
	WhitePoint    string `yaml:"white_point"`    // A, B, C, D50 ... F12
	ObserverAngle string `yaml:"observer_angle"` // CIE 1931 / CIE 1964
	SchemeMode    string `yaml:"scheme_mode"`    // RGB / RYB
}

// UIConfig 界面相關
type UIConfig struct {
	ValueRange   string   `yaml:"value_range"` // 0-255 / 0-1
	ColorSpaces  []string `yaml:"color_spaces"`
	DetachValues bool     `yaml:"detach_values"`
}

// LogConfig 日誌配置
type LogConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// DefaultColorSpaces 默認顯示的色彩空間
var DefaultColorSpaces = []string{"Hex", "sRGB", "HSL", "HSV", "CIE-XYZ", "CIE-LAB"}

// DefaultConfig 返回默認配置
func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersionLatest,
		Color: ColorConfig{
			WhitePoint:    "D65",
			ObserverAngle: colorspace.Observer1931,
			SchemeMode:    colorspace.ModeRYB.String(),
		},
		UI: UIConfig{
			ValueRange:   valuesync.Range255.String(),
			ColorSpaces:  append([]string(nil), DefaultColorSpaces...),
			DetachValues: false,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}

// Validate 驗證配置
func (c *Config) Validate() error {
	if _, err := c.WhiteRef(); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, err.Error())
	}
	if _, err := c.SchemeMode(); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, err.Error())
	}
	if _, err := c.ValueRange(); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, err.Error())
	}
	spaces, err := c.Spaces()
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, err.Error())
	}
	if len(spaces) == 0 {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, "至少需要顯示一個色彩空間")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig,
			fmt.Sprintf("未知的日誌級別: %q", c.Log.Level))
	}
	return nil
}

// DeepCopy 深拷貝配置：序列化回環，新增字段無需維護
func (c *Config) DeepCopy() *Config {
	if c == nil {
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		panic(fmt.Errorf("DeepCopy 序列化失敗: %w", err))
	}

	var newCfg Config
	if err := yaml.Unmarshal(data, &newCfg); err != nil {
		panic(fmt.Errorf("DeepCopy 反序列化失敗: %w", err))
	}

	return &newCfg
}

// FillDefaults 填充缺失字段（舊文件或手寫文件可能不完整）
func (c *Config) FillDefaults() {
	def := DefaultConfig()

	if c.Color.WhitePoint == "" {
		c.Color.WhitePoint = def.Color.WhitePoint
	}
	if c.Color.ObserverAngle == "" {
		c.Color.ObserverAngle = def.Color.ObserverAngle
	}
	if c.Color.SchemeMode == "" {
		c.Color.SchemeMode = def.Color.SchemeMode
	}
	if c.UI.ValueRange == "" {
		c.UI.ValueRange = def.UI.ValueRange
	}
	if len(c.UI.ColorSpaces) == 0 {
		c.UI.ColorSpaces = def.UI.ColorSpaces
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = def.Log.MaxSize
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = def.Log.MaxAge
	}
}

// WhiteRef 由白點名稱與觀察者角度查表
func (c *Config) WhiteRef() (colorspace.WhiteRef, error) {
	return colorspace.LookupWhiteRef(c.Color.WhitePoint, c.Color.ObserverAngle)
}

func (c *Config) SchemeMode() (colorspace.SchemeMode, error) {
	return colorspace.ParseSchemeMode(c.Color.SchemeMode)
}

func (c *Config) ValueRange() (valuesync.ValueRange, error) {
	return valuesync.ParseValueRange(c.UI.ValueRange)
}

// Spaces 顯示順序的色彩空間列表（去重）
func (c *Config) Spaces() ([]colorspace.Space, error) {
	return colorspace.ParseSpaces(c.UI.ColorSpaces)
}

// ToggleSpace 切換某個色彩空間的顯示；新加入的追加在末尾
func (c *UIConfig) ToggleSpace(name string) {
	for i, s := range c.ColorSpaces {
		if strings.EqualFold(s, name) {
			c.ColorSpaces = append(c.ColorSpaces[:i], c.ColorSpaces[i+1:]...)
			return
		}
	}
	c.ColorSpaces = append(c.ColorSpaces, name)
}

// HasSpace 是否顯示該色彩空間
func (c *UIConfig) HasSpace(name string) bool {
	for _, s := range c.ColorSpaces {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
