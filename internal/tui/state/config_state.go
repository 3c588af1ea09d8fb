package state

import (
	domainConfig "github.com/Yat-Muk/colorstk/internal/domain/config"
)

// ConfigState 當前生效的配置快照（設置界面顯示用）
type ConfigState struct {
	container *domainConfig.AtomicContainer
}

// NewConfigState 構造函數
func NewConfigState(cfg *domainConfig.Config) *ConfigState {
	if cfg == nil {
		cfg = domainConfig.DefaultConfig()
	}
	return &ConfigState{container: domainConfig.NewAtomicContainer(cfg)}
}

// GetConfig 只讀快照，修改必須通過 ConfigService 保存後再 UpdateConfig
func (s *ConfigState) GetConfig() *domainConfig.Config {
	return s.container.Get()
}

// UpdateConfig 更新配置 (保存成功後調用)，驗證失敗時保持舊快照
func (s *ConfigState) UpdateConfig(cfg *domainConfig.Config) error {
	if cfg == nil {
		cfg = domainConfig.DefaultConfig()
	}
	return s.container.Update(func(c *domainConfig.Config) error {
		*c = *cfg.DeepCopy()
		return nil
	})
}
