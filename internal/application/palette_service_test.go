package application

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yat-Muk/colorstk/internal/domain/palette"
	infraPalette "github.com/Yat-Muk/colorstk/internal/infra/palette"
	"github.com/Yat-Muk/colorstk/internal/pkg/errors"
)

// MockPaletteRepo 內存倉庫，可注入寫盤失敗
type MockPaletteRepo struct {
	mu      sync.Mutex
	stored  map[string]palette.Palette
	order   []string
	failPut bool
	puts    int
}

func newMockPaletteRepo(initial ...palette.Palette) *MockPaletteRepo {
	m := &MockPaletteRepo{stored: make(map[string]palette.Palette)}
	for _, p := range initial {
		m.stored[p.Name] = p.Clone()
		m.order = append(m.order, p.Name)
	}
	return m
}

func (m *MockPaletteRepo) LoadAll(ctx context.Context) ([]palette.Palette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]palette.Palette, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, m.stored[n].Clone())
	}
	return out, nil
}

func (m *MockPaletteRepo) Put(ctx context.Context, p palette.Palette) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.failPut {
		return errors.Wrap(errors.ErrPersistence, errors.CodePersistence, "disk full")
	}
	if _, ok := m.stored[p.Name]; !ok {
		m.order = append(m.order, p.Name)
	}
	m.stored[p.Name] = p.Clone()
	return nil
}

func (m *MockPaletteRepo) Remove(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stored, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockPaletteRepo) get(name string) (palette.Palette, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.stored[name]
	return p, ok
}

func TestPaletteService_LoadAndList(t *testing.T) {
	repo := newMockPaletteRepo(
		palette.Palette{Name: "warm", Colors: []palette.RGB{{1, 0, 0}}},
		palette.Palette{Name: "cold", Colors: []palette.RGB{{0, 0, 1}}},
	)
	svc := NewPaletteService(repo, zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, []string{"warm", "cold"}, svc.Names())
	assert.Equal(t, 2, svc.Count())

	p, err := svc.Get("cold")
	require.NoError(t, err)
	assert.Equal(t, []palette.RGB{{0, 0, 1}}, p.Colors)

	// 返回副本
	p.Colors[0] = palette.RGB{1, 1, 1}
	again, _ := svc.Get("cold")
	assert.Equal(t, palette.RGB{0, 0, 1}, again.Colors[0])

	_, err = svc.Get("missing")
	assert.True(t, stderrors.Is(err, errors.ErrPaletteNotFound))
}

func TestPaletteService_Create(t *testing.T) {
	repo := newMockPaletteRepo()
	svc := NewPaletteService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "a"))
	stored, ok := repo.get("a")
	require.True(t, ok)
	assert.Empty(t, stored.Colors)

	require.NoError(t, svc.Append(ctx, "a", palette.RGB{0.5, 0.5, 0.5}))
	puts := repo.puts

	// 重名：報錯且不修改
	err := svc.Create(ctx, "a")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrPaletteExists))
	assert.Equal(t, errors.CodeAlreadyExists, errors.CodeOf(err))
	assert.Equal(t, puts, repo.puts)

	p, err := svc.Get("a")
	require.NoError(t, err)
	assert.Len(t, p.Colors, 1, "已有的顏色不能被清空")

	err = svc.Create(ctx, "  ")
	assert.True(t, stderrors.Is(err, errors.ErrRejectedInput))
	err = svc.Create(ctx, "two\nlines")
	assert.True(t, stderrors.Is(err, errors.ErrRejectedInput))

	// 首尾空白被去掉
	require.NoError(t, svc.Create(ctx, "  b  "))
	_, err = svc.Get("b")
	assert.NoError(t, err)
}

func TestPaletteService_DefaultName(t *testing.T) {
	svc := NewPaletteService(newMockPaletteRepo(), zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, "palette1", svc.DefaultName())
	require.NoError(t, svc.Create(ctx, svc.DefaultName()))
	assert.Equal(t, "palette2", svc.DefaultName())

	// palette3 已被佔用時跳過
	require.NoError(t, svc.Create(ctx, "palette3"))
	assert.Equal(t, "palette4", svc.DefaultName())
}

func TestPaletteService_AppendAndDeleteColor(t *testing.T) {
	repo := newMockPaletteRepo(palette.Palette{Name: "p"})
	svc := NewPaletteService(repo, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	red := palette.RGB{1, 0, 0}
	green := palette.RGB{0, 1, 0}
	require.NoError(t, svc.Append(ctx, "p", red))
	require.NoError(t, svc.Append(ctx, "p", green))
	require.NoError(t, svc.Append(ctx, "p", red))

	stored, _ := repo.get("p")
	assert.Equal(t, []palette.RGB{red, green, red}, stored.Colors, "每次寫入完整記錄")

	// 只刪除第一個匹配
	require.NoError(t, svc.DeleteColor(ctx, "p", red))
	p, _ := svc.Get("p")
	assert.Equal(t, []palette.RGB{green, red}, p.Colors)
	stored, _ = repo.get("p")
	assert.Equal(t, []palette.RGB{green, red}, stored.Colors)

	err := svc.DeleteColor(ctx, "p", palette.RGB{0, 0, 1})
	assert.True(t, stderrors.Is(err, errors.ErrColorNotFound))

	err = svc.Append(ctx, "missing", red)
	assert.True(t, stderrors.Is(err, errors.ErrPaletteNotFound))

	require.NoError(t, svc.DeleteColors(ctx, "p", []palette.RGB{green, red}))
	p, _ = svc.Get("p")
	assert.Empty(t, p.Colors)
}

func TestPaletteService_Delete(t *testing.T) {
	repo := newMockPaletteRepo(
		palette.Palette{Name: "a"}, palette.Palette{Name: "b"}, palette.Palette{Name: "c"},
	)
	svc := NewPaletteService(repo, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	require.NoError(t, svc.Delete(ctx, "b"))
	assert.Equal(t, []string{"a", "c"}, svc.Names())
	_, ok := repo.get("b")
	assert.False(t, ok)

	err := svc.Delete(ctx, "b")
	assert.True(t, stderrors.Is(err, errors.ErrPaletteNotFound))

	// 批量刪除：不存在的名稱報錯，但其餘照常刪除
	err = svc.DeleteMany(ctx, []string{"missing", "a", "c"})
	assert.True(t, stderrors.Is(err, errors.ErrPaletteNotFound))
	assert.Empty(t, svc.Names())
}

func TestPaletteService_PersistFailureKeepsMemory(t *testing.T) {
	repo := newMockPaletteRepo(palette.Palette{Name: "p"})
	svc := NewPaletteService(repo, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	repo.failPut = true
	err := svc.Append(ctx, "p", palette.RGB{1, 1, 1})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrPersistence))

	// 內存領先於磁盤
	p, _ := svc.Get("p")
	assert.Len(t, p.Colors, 1)
	stored, _ := repo.get("p")
	assert.Empty(t, stored.Colors)
}

func TestPaletteService_WithFileRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.json")
	ctx := context.Background()

	svc := NewPaletteService(infraPalette.NewFileRepository(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, svc.Load(ctx))
	require.NoError(t, svc.Create(ctx, "first"))
	require.NoError(t, svc.Append(ctx, "first", palette.RGB{0.2, 0.4, 0.6}))
	require.NoError(t, svc.Create(ctx, "second"))
	require.NoError(t, svc.Delete(ctx, "second"))

	// 重新啟動
	reopened := NewPaletteService(infraPalette.NewFileRepository(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, reopened.Load(ctx))
	assert.Equal(t, []string{"first"}, reopened.Names())
	p, err := reopened.Get("first")
	require.NoError(t, err)
	assert.Equal(t, []palette.RGB{{0.2, 0.4, 0.6}}, p.Colors)
}
