package palette

import (
	"context"

	"github.com/Yat-Muk/colorstk/internal/domain/colorspace"
)

// RGB 持久化的顏色：[0,1] 範圍的 r, g, b
type RGB [3]float64

// FromColor 取顏色的 RGB 分量
func FromColor(c colorspace.Color) RGB {
	return RGB(c.RGB())
}

// Color 以給定白點還原顏色
func (r RGB) Color(wref colorspace.WhiteRef) colorspace.Color {
	return colorspace.FromRGB(r[0], r[1], r[2], wref)
}

// Palette 命名的顏色列表
type Palette struct {
	Name   string
	Colors []RGB
}

// Clone 深拷貝
func (p Palette) Clone() Palette {
	return Palette{Name: p.Name, Colors: append([]RGB(nil), p.Colors...)}
}

// IndexOf 第一個完全相等的顏色下標，沒有則返回 -1
func (p Palette) IndexOf(c RGB) int {
	for i, v := range p.Colors {
		if v == c {
			return i
		}
	}
	return -1
}

// Repository 調色板倉庫接口
//
// 每次修改都寫入完整記錄；調用方的內存狀態可以領先於磁盤
type Repository interface {
	// LoadAll 讀取全部調色板，保持文件中的順序
	LoadAll(ctx context.Context) ([]Palette, error)

	// Put 寫入（新建或覆蓋）一個調色板
	Put(ctx context.Context, p Palette) error

	// Remove 刪除一個調色板，不存在時不報錯
	Remove(ctx context.Context, name string) error
}
