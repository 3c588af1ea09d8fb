package config

import (
	"fmt"
	"strings"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
)

const (
	// ConfigVersionLatest 最新配置版本
	ConfigVersionLatest = 1

	// ConfigVersionLegacy 無版本號的手寫配置
	ConfigVersionLegacy = 0
)

// Migrator 配置遷移器
type Migrator struct{}

// NewMigrator 創建遷移器
func NewMigrator() *Migrator {
	return &Migrator{}
}

// MigrateToLatest 自動遷移到最新版本
func (m *Migrator) MigrateToLatest(cfg *Config) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置為空，無法遷移")
	}

	if cfg.Version == ConfigVersionLatest {
		return cfg, nil
	}

	if cfg.Version > ConfigVersionLatest {
		return nil, fmt.Errorf("配置版本過高 (v%d)，當前程序僅支持 v%d", cfg.Version, ConfigVersionLatest)
	}

	return m.migrateLegacy(cfg), nil
}

// migrateLegacy 規整手寫配置中常見的寫法
func (m *Migrator) migrateLegacy(oldCfg *Config) *Config {
	newCfg := oldCfg.DeepCopy()
	newCfg.Version = ConfigVersionLatest

	// 1. 觀察者角度允許簡寫 "1931" / "2" / "1964" / "10"
	switch strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(newCfg.Color.ObserverAngle), "CIE")) {
	case "1931", "2":
		newCfg.Color.ObserverAngle = colorspace.Observer1931
	case "1964", "10":
		newCfg.Color.ObserverAngle = colorspace.Observer1964
	}

	// 2. 配色模式統一大寫
	newCfg.Color.SchemeMode = strings.ToUpper(strings.TrimSpace(newCfg.Color.SchemeMode))

	// 3. 白點名稱去掉 std_/sup_ 前綴並大寫
	wp := strings.TrimSpace(newCfg.Color.WhitePoint)
	for _, prefix := range []string{"std_", "sup_"} {
		wp = strings.TrimPrefix(wp, prefix)
	}
	newCfg.Color.WhitePoint = strings.ToUpper(wp)

	// 4. 未知的色彩空間名稱直接丟棄
	spaces := newCfg.UI.ColorSpaces[:0]
	for _, name := range newCfg.UI.ColorSpaces {
		if sp, err := colorspace.ParseSpace(name); err == nil {
			spaces = append(spaces, sp.String())
		}
	}
	newCfg.UI.ColorSpaces = spaces

	newCfg.FillDefaults()
	return newCfg
}

// NeedsMigration 檢查是否需要遷移
func (m *Migrator) NeedsMigration(cfg *Config) bool {
	if cfg == nil {
		return false
	}
	return cfg.Version < ConfigVersionLatest
}
