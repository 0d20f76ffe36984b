package repository

import (
	"sync"

	"github.com/voltmart/internal/catalog"
)

// CartEntry 购物车项。不变式：同一购物车内每个商品 ID 至多一条。
type CartEntry struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartRepository 购物车数据访问接口。购物车按会话隔离，保持首次加入顺序。
type CartRepository interface {
	List(sessionID string) ([]CartEntry, error)
	Get(sessionID, productID string) (*CartEntry, error)
	Upsert(sessionID string, entry CartEntry) error
	Delete(sessionID, productID string) error
	Clear(sessionID string) error
}

// MemoryCartRepository 内存实现。购物车随会话创建、随会话或结算清空，
// 不落库，进程重启即回收。
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]CartEntry
}

// NewCartRepository 创建内存购物车仓库
func NewCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]CartEntry)}
}

// List 获取会话购物车项（首次加入顺序）
func (r *MemoryCartRepository) List(sessionID string) ([]CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.carts[sessionID]
	out := make([]CartEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Get 获取会话购物车中指定商品的项，不存在返回 nil
func (r *MemoryCartRepository) Get(sessionID, productID string) (*CartEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.carts[sessionID] {
		if entry.Product.ID == productID {
			found := entry
			return &found, nil
		}
	}
	return nil, nil
}

// Upsert 添加或更新购物车项。已存在的项原位替换，保持既有顺序；
// 新项追加到末尾。
func (r *MemoryCartRepository) Upsert(sessionID string, entry CartEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.carts[sessionID]
	for i := range entries {
		if entries[i].Product.ID == entry.Product.ID {
			entries[i] = entry
			return nil
		}
	}
	r.carts[sessionID] = append(entries, entry)
	return nil
}

// Delete 删除购物车项，不存在视为成功
func (r *MemoryCartRepository) Delete(sessionID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.carts[sessionID]
	for i := range entries {
		if entries[i].Product.ID == productID {
			r.carts[sessionID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear 清空会话购物车
func (r *MemoryCartRepository) Clear(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
