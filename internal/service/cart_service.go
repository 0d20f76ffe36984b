package service

import (
	"github.com/shopspring/decimal"

	"github.com/voltmart/internal/catalog"
	"github.com/voltmart/internal/models"
	"github.com/voltmart/internal/repository"
)

// CartView 购物车视图（用于响应）
type CartView struct {
	Entries  []repository.CartEntry `json:"entries"`
	Count    int                    `json:"count"`
	Subtotal models.Money           `json:"subtotal"`
}

// CartService 购物车服务。购物车是当前会话内商品与数量的唯一事实来源。
type CartService struct {
	cartRepo repository.CartRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// AddItem 加入商品：已有同商品的项数量 +1，否则以数量 1 追加到末尾
func (s *CartService) AddItem(sessionID, productID string) error {
	product := catalog.FindProduct(productID)
	if product == nil {
		return ErrProductNotFound
	}
	entry, err := s.cartRepo.Get(sessionID, productID)
	if err != nil {
		return err
	}
	quantity := 1
	if entry != nil {
		quantity = entry.Quantity + 1
	}
	return s.cartRepo.Upsert(sessionID, repository.CartEntry{
		Product:  *product,
		Quantity: quantity,
	})
}

// UpdateQuantity 设置购物车项数量。quantity <= 0 等价于删除该项；
// 项不存在时静默返回（调用方应先 AddItem）。
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.cartRepo.Delete(sessionID, productID)
	}
	entry, err := s.cartRepo.Get(sessionID, productID)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	entry.Quantity = quantity
	return s.cartRepo.Upsert(sessionID, *entry)
}

// RemoveItem 删除购物车项，不存在不视为错误
func (s *CartService) RemoveItem(sessionID, productID string) error {
	return s.cartRepo.Delete(sessionID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(sessionID string) error {
	return s.cartRepo.Clear(sessionID)
}

// Cart 获取购物车视图：条目、件数合计与小计金额
func (s *CartService) Cart(sessionID string) (*CartView, error) {
	entries, err := s.cartRepo.List(sessionID)
	if err != nil {
		return nil, err
	}
	view := &CartView{
		Entries:  entries,
		Count:    cartCount(entries),
		Subtotal: models.NewMoneyFromDecimal(cartSubtotal(entries)),
	}
	return view, nil
}

// Count 返回购物车件数合计（数量之和，非行数）
func (s *CartService) Count(sessionID string) (int, error) {
	entries, err := s.cartRepo.List(sessionID)
	if err != nil {
		return 0, err
	}
	return cartCount(entries), nil
}

func cartCount(entries []repository.CartEntry) int {
	count := 0
	for _, entry := range entries {
		count += entry.Quantity
	}
	return count
}

func cartSubtotal(entries []repository.CartEntry) decimal.Decimal {
	subtotal := decimal.Zero
	for _, entry := range entries {
		line := entry.Product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		subtotal = subtotal.Add(line)
	}
	return subtotal
}
