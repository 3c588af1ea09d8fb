// Package delay 可取消的延遲觸發：長按、狀態欄自動清除
//
// 計時器在 bubbletea 事件循環中以 FiredMsg 送達；
// 已取消或已觸發的句柄再次送達時被忽略
package delay

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// 默認時長
const (
	LongPress   = time.Second
	StatusClear = 3 * time.Second
)

// FiredMsg 計時器到期消息
type FiredMsg struct {
	ID  uuid.UUID
	Tag string
}

// Handle 一次調度的句柄
type Handle struct {
	id uuid.UUID
	s  *Scheduler
}

// ID 句柄標識，零值句柄為 uuid.Nil
func (h Handle) ID() uuid.UUID { return h.id }

// Cancel 取消觸發；已觸發或已取消時返回 false
func (h Handle) Cancel() bool {
	if h.s == nil {
		return false
	}
	return h.s.cancel(h.id)
}

// Pending 是否仍在等待觸發
func (h Handle) Pending() bool {
	if h.s == nil {
		return false
	}
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	_, ok := h.s.pending[h.id]
	return ok
}

// Scheduler 管理待觸發的句柄
type Scheduler struct {
	mu      sync.Mutex
	pending map[uuid.UUID]string
}

// NewScheduler 創建調度器
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uuid.UUID]string)}
}

// Schedule 登記一個延遲觸發，返回句柄與需要交給事件循環的命令
func (s *Scheduler) Schedule(d time.Duration, tag string) (Handle, tea.Cmd) {
	id := uuid.New()

	s.mu.Lock()
	s.pending[id] = tag
	s.mu.Unlock()

	cmd := tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id, Tag: tag}
	})
	return Handle{id: id, s: s}, cmd
}

// Accept 在事件循環中處理 FiredMsg：只有仍在等待的句柄返回 true，且只返回一次
func (s *Scheduler) Accept(msg FiredMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[msg.ID]; !ok {
		return false
	}
	delete(s.pending, msg.ID)
	return true
}

// CancelTag 取消某一類的全部等待
func (s *Scheduler) CancelTag(tag string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, t := range s.pending {
		if t == tag {
			delete(s.pending, id)
			n++
		}
	}
	return n
}

// Len 等待中的數量
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Scheduler) cancel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}
