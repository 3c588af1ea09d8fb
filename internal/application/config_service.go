package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
	"github.com/Yat-Muk/colorstk/internal/domain/config"
	"github.com/Yat-Muk/colorstk/internal/domain/valuesync"
)

// ConfigService 配置服務
type ConfigService struct {
	repo     config.Repository
	migrator *config.Migrator
	logger   *zap.Logger
	mu       sync.Mutex
}

// NewConfigService 創建配置服務
func NewConfigService(repo config.Repository, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{
		repo:     repo,
		migrator: config.NewMigrator(),
		logger:   logger,
	}
}

// GetConfig 獲取當前配置
func (s *ConfigService) GetConfig(ctx context.Context) (*config.Config, error) {
	return s.repo.Load(ctx)
}

// UpdateConfig 原子更新配置
// 邏輯：Lock -> Load -> DeepCopy -> Modify -> Validate -> Save -> Unlock
// 返回保存後的配置
func (s *ConfigService) UpdateConfig(ctx context.Context, modifier func(*config.Config) error) (*config.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currentCfg, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("加載配置失敗: %w", err)
	}

	newCfg := currentCfg.DeepCopy()

	if err := modifier(newCfg); err != nil {
		return nil, fmt.Errorf("應用配置修改失敗: %w", err)
	}

	if err := newCfg.Validate(); err != nil {
		return nil, fmt.Errorf("新配置驗證失敗: %w", err)
	}

	if err := s.repo.Save(ctx, newCfg); err != nil {
		return nil, fmt.Errorf("保存配置失敗: %w", err)
	}

	s.logger.Info("配置已更新並保存")
	return newCfg, nil
}

// LoadWithMigration 加載配置，必要時遷移並回寫
func (s *ConfigService) LoadWithMigration(ctx context.Context) (*config.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("加載配置失敗: %w", err)
	}

	if !s.migrator.NeedsMigration(cfg) {
		cfg.FillDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	oldVersion := cfg.Version
	s.logger.Info("開始配置遷移",
		zap.Int("from_version", oldVersion),
		zap.Int("to_version", config.ConfigVersionLatest),
	)

	newCfg, err := s.migrator.MigrateToLatest(cfg)
	if err != nil {
		return nil, fmt.Errorf("遷移失敗: %w", err)
	}
	if err := newCfg.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, newCfg); err != nil {
		return nil, fmt.Errorf("保存遷移後配置失敗: %w", err)
	}

	s.logger.Info("配置遷移完成",
		zap.Int("old_version", oldVersion),
		zap.Int("new_version", newCfg.Version),
	)
	return newCfg, nil
}

// 設置面板的各個選項

func (s *ConfigService) SetWhitePoint(ctx context.Context, name string) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.Color.WhitePoint = name
		return nil
	})
}

func (s *ConfigService) SetObserverAngle(ctx context.Context, angle string) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.Color.ObserverAngle = angle
		return nil
	})
}

func (s *ConfigService) SetSchemeMode(ctx context.Context, mode colorspace.SchemeMode) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.Color.SchemeMode = mode.String()
		return nil
	})
}

func (s *ConfigService) SetValueRange(ctx context.Context, r valuesync.ValueRange) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.UI.ValueRange = r.String()
		return nil
	})
}

// ToggleColorSpace 顯示或隱藏一個色彩空間；不允許隱藏最後一個
func (s *ConfigService) ToggleColorSpace(ctx context.Context, space colorspace.Space) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.UI.ToggleSpace(space.String())
		return nil
	})
}

func (s *ConfigService) SetDetachValues(ctx context.Context, detach bool) (*config.Config, error) {
	return s.UpdateConfig(ctx, func(c *config.Config) error {
		c.UI.DetachValues = detach
		return nil
	})
}

// NextOption 在選項列表中循環取下一個，未知值回到第一個
func NextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
