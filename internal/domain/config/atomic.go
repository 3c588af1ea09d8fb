package config

import (
	"sync"
	"sync/atomic"
)

// AtomicContainer 配置快照容器：讀取無鎖，寫入串行
type AtomicContainer struct {
	store atomic.Value // *Config
	mu    sync.Mutex
}

// NewAtomicContainer 初始化時存一份深拷貝
func NewAtomicContainer(cfg *Config) *AtomicContainer {
	c := &AtomicContainer{}
	c.store.Store(cfg.DeepCopy())
	return c
}

// Get 當前配置快照，只讀，修改必須走 Update
func (c *AtomicContainer) Get() *Config {
	return c.store.Load().(*Config)
}

// Update 寫時複製：複製、修改、驗證、替換
func (c *AtomicContainer) Update(fn func(*Config) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	newCfg := c.store.Load().(*Config).DeepCopy()

	if err := fn(newCfg); err != nil {
		return err
	}

	if err := newCfg.Validate(); err != nil {
		return err
	}

	c.store.Store(newCfg)
	return nil
}
