package service

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/models"
	"github.com/voltmart/internal/repository"
)

// OrderService 订单服务：结算时把购物车快照固化为订单回执并追加到订单日志，
// 读取侧按追加顺序返回全量日志。
type OrderService struct {
	db          *gorm.DB
	storageRepo repository.StorageRepository
	cartRepo    repository.CartRepository
	notifier    *NotificationService
}

// NewOrderService 创建订单服务
func NewOrderService(db *gorm.DB, storageRepo repository.StorageRepository, cartRepo repository.CartRepository, notifier *NotificationService) *OrderService {
	return &OrderService{
		db:          db,
		storageRepo: storageRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
	}
}

// PlaceOrder 结算当前会话购物车。
// 空购物车返回 ErrEmptyCart 且不产生任何变更；写入失败返回 ErrOrderPersist
// 且购物车保持原样以便重试；写入成功后清空购物车。
// 追加采用读出-合并-写回：订单日志跨会话共享，绝不整体覆盖丢失历史订单。
func (s *OrderService) PlaceOrder(sessionID string) (*models.Order, error) {
	entries, err := s.cartRepo.List(sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		s.notifier.Notify("Cart is empty", "Please add items to your cart before checking out.", constants.NotificationSeverityDestructive)
		return nil, ErrEmptyCart
	}

	subtotal := cartSubtotal(entries)
	total := subtotal.Add(decimal.NewFromInt(constants.ShippingSurchargeUnits))

	items := make([]models.OrderItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.OrderItem{
			Name:     entry.Product.Name,
			Quantity: entry.Quantity,
			Price:    entry.Product.Price,
		})
	}

	order := models.Order{
		Date:   time.Now().UTC(),
		Total:  models.NewMoneyFromDecimal(total),
		Status: constants.OrderStatusPending,
		Items:  items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.storageRepo.WithTx(tx)
		existing, err := loadOrderLog(repo)
		if err != nil {
			return err
		}
		order.ID = generateOrderID(existing)
		updated := append(existing, order)
		raw, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		_, err = repo.Upsert(constants.StorageKeyOrders, string(raw))
		return err
	})
	if err != nil {
		logger.Errorw("order_append_failed", "session_id", sessionID, "error", err)
		s.notifier.Notify("Checkout failed", "Your order could not be saved. Please try again.", constants.NotificationSeverityDestructive)
		return nil, ErrOrderPersist
	}

	if err := s.cartRepo.Clear(sessionID); err != nil {
		logger.Warnw("order_clear_cart_failed", "session_id", sessionID, "order_id", order.ID, "error", err)
	}
	s.notifier.Notify("Order Placed", "Your order has been successfully placed!", constants.NotificationSeveritySuccess)
	logger.Infow("order_placed", "order_id", order.ID, "total", order.Total.String(), "items", len(order.Items))
	return &order, nil
}

// ListOrders 返回订单日志全量记录（追加顺序，最早在前）。
// 无订单返回空切片；日志解析失败返回 ErrOrderLogMalformed，原始数据保持不动。
func (s *OrderService) ListOrders() ([]models.Order, error) {
	entry, err := s.storageRepo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		return nil, ErrOrderPersist
	}
	if entry == nil || strings.TrimSpace(entry.Value) == "" {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal([]byte(entry.Value), &orders); err != nil {
		logger.Errorw("order_log_malformed", "key", constants.StorageKeyOrders, "error", err)
		return nil, ErrOrderLogMalformed
	}
	return orders, nil
}

// loadOrderLog 读取并解析既有订单日志。追加路径上解析失败按写入失败处理，
// 避免合并不了时整体覆盖丢数据。
func loadOrderLog(repo repository.StorageRepository) ([]models.Order, error) {
	entry, err := repo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		return nil, err
	}
	if entry == nil || strings.TrimSpace(entry.Value) == "" {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal([]byte(entry.Value), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// generateOrderID 生成订单编号：前缀 + 时间戳 + 6 位随机数字，
// 并对已加载日志去重，冲突即重新生成。
func generateOrderID(existing []models.Order) string {
	used := make(map[string]bool, len(existing))
	for _, order := range existing {
		used[order.ID] = true
	}
	for {
		id := fmt.Sprintf("%s%s%s", constants.OrderIDPrefix, time.Now().Format("20060102150405"), randNumeric(6))
		if !used[id] {
			return id
		}
	}
}

func randNumeric(length int) string {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}
