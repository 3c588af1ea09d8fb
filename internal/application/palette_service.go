package application

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	"github.com/Yat-Muk/colorstk/internal/domain/validator"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

// PaletteService 調色板存儲
//
// 內存中的列表是權威數據：寫盤失敗時錯誤會返回給調用方，但內存修改保留
type PaletteService struct {
	repo   palette.Repository
	logger *zap.Logger
	mu     sync.RWMutex

	names    []string
	palettes map[string]*palette.Palette
}

// NewPaletteService 創建調色板服務
func NewPaletteService(repo palette.Repository, logger *zap.Logger) *PaletteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaletteService{
		repo:     repo,
		logger:   logger,
		palettes: make(map[string]*palette.Palette),
	}
}

// Load 啟動時一次性讀取整個存儲
func (s *PaletteService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.names = s.names[:0]
	s.palettes = make(map[string]*palette.Palette, len(list))
	for _, p := range list {
		cp := p.Clone()
		s.names = append(s.names, p.Name)
		s.palettes[p.Name] = &cp
	}

	s.logger.Info("調色板已加載", zap.Int("count", len(list)))
	return nil
}

// Names 全部調色板名稱，按創建順序
func (s *PaletteService) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...)
}

// List 全部調色板的副本
func (s *PaletteService) List() []palette.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]palette.Palette, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.palettes[n].Clone())
	}
	return out
}

// Get 單個調色板的副本
func (s *PaletteService) Get(name string) (palette.Palette, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.palettes[name]
	if !ok {
		return palette.Palette{}, notFound(name)
	}
	return p.Clone(), nil
}

// Count 調色板數量
func (s *PaletteService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// DefaultName 新建對話框的默認名稱 palette<N+1>，已被佔用時繼續遞增
func (s *PaletteService) DefaultName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for n := len(s.names) + 1; ; n++ {
		name := fmt.Sprintf("palette%d", n)
		if _, taken := s.palettes[name]; !taken {
			return name
		}
	}
}

// Create 新建空調色板；重名返回 ErrPaletteExists 且不做任何修改
func (s *PaletteService) Create(ctx context.Context, name string) error {
	name, err := validator.ValidatePaletteName(name)
	if err != nil {
		return errors.Wrap(errors.ErrRejectedInput, errors.CodeRejectedInput, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.palettes[name]; ok {
		return errors.Wrap(errors.ErrPaletteExists, errors.CodeAlreadyExists,
			fmt.Sprintf("調色板 %q 已存在", name))
	}

	p := &palette.Palette{Name: name, Colors: []palette.RGB{}}
	s.names = append(s.names, name)
	s.palettes[name] = p

	s.logger.Info("新建調色板", zap.String("name", name))
	return s.persist(ctx, p)
}

// Append 追加顏色並寫入完整記錄
func (s *PaletteService) Append(ctx context.Context, name string, c palette.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.palettes[name]
	if !ok {
		return notFound(name)
	}
	p.Colors = append(p.Colors, c)

	s.logger.Debug("顏色已加入調色板", zap.String("name", name), zap.Int("count", len(p.Colors)))
	return s.persist(ctx, p)
}

// Delete 刪除調色板（內存與持久化記錄）
func (s *PaletteService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.palettes[name]; !ok {
		return notFound(name)
	}
	delete(s.palettes, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}

	s.logger.Info("刪除調色板", zap.String("name", name))
	if err := s.repo.Remove(ctx, name); err != nil {
		s.logger.Error("刪除調色板記錄失敗", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

// DeleteMany 批量刪除（選擇模式），返回第一個錯誤，其餘繼續處理
func (s *PaletteService) DeleteMany(ctx context.Context, names []string) error {
	var first error
	for _, n := range names {
		if err := s.Delete(ctx, n); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// DeleteColor 刪除第一個完全相等的顏色
func (s *PaletteService) DeleteColor(ctx context.Context, name string, c palette.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.palettes[name]
	if !ok {
		return notFound(name)
	}
	idx := p.IndexOf(c)
	if idx < 0 {
		return errors.Wrap(errors.ErrColorNotFound, errors.CodeNotFound,
			fmt.Sprintf("調色板 %q 中沒有該顏色", name))
	}
	p.Colors = append(p.Colors[:idx], p.Colors[idx+1:]...)

	return s.persist(ctx, p)
}

// DeleteColors 批量刪除顏色，每個值只刪除一次
func (s *PaletteService) DeleteColors(ctx context.Context, name string, colors []palette.RGB) error {
	var first error
	for _, c := range colors {
		if err := s.DeleteColor(ctx, name, c); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// persist 調用方持有鎖
func (s *PaletteService) persist(ctx context.Context, p *palette.Palette) error {
	if err := s.repo.Put(ctx, p.Clone()); err != nil {
		s.logger.Error("寫入調色板失敗", zap.String("name", p.Name), zap.Error(err))
		return err
	}
	return nil
}

func notFound(name string) error {
	return errors.Wrap(errors.ErrPaletteNotFound, errors.CodeNotFound,
		fmt.Sprintf("調色板 %q 不存在", name))
}
