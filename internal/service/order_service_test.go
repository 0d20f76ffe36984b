package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/models"
	"github.com/voltmart/internal/queue"
	"github.com/voltmart/internal/repository"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *CartService, repository.StorageRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		t.Fatalf("migrate storage entries failed: %v", err)
	}
	storageRepo := repository.NewStorageRepository(db)
	cartRepo := repository.NewCartRepository()
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	notifier := NewNotificationService(queueClient)
	orderSvc := NewOrderService(db, storageRepo, cartRepo, notifier)
	cartSvc := NewCartService(cartRepo)
	return orderSvc, cartSvc, storageRepo, db
}

func TestPlaceOrderComputesTotalAndClearsCart(t *testing.T) {
	orderSvc, cartSvc, _, _ := setupOrderServiceTest(t)
	// d1 x2 @10 + s1 x1 @5, 加运费 5 = 30
	if err := cartSvc.AddItem("sess", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := cartSvc.AddItem("sess", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := cartSvc.AddItem("sess", "s1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	order, err := orderSvc.PlaceOrder("sess")
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if !strings.HasPrefix(order.ID, constants.OrderIDPrefix) {
		t.Fatalf("unexpected order id: %s", order.ID)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if order.Total.String() != "30.00" {
		t.Fatalf("expected total 30.00, got %s", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Name != "PN Junction diode" || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", order.Items[0])
	}

	count, err := cartSvc.Count("sess")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected cart cleared after checkout, got count %d", count)
	}

	orders, err := orderSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order in log, got %d", len(orders))
	}
	if orders[0].ID != order.ID {
		t.Fatalf("order id mismatch after round trip: %s vs %s", orders[0].ID, order.ID)
	}
	if !orders[0].Total.Equal(order.Total.Decimal) {
		t.Fatalf("total mismatch after round trip: %s vs %s", orders[0].Total, order.Total)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orderSvc, _, storageRepo, _ := setupOrderServiceTest(t)
	if _, err := orderSvc.PlaceOrder("sess"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	entry, err := storageRepo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		t.Fatalf("get order log failed: %v", err)
	}
	if entry != nil {
		t.Fatalf("empty checkout must not touch the order log, got %+v", entry)
	}
}

func TestPlaceOrderAppendsAcrossSessions(t *testing.T) {
	orderSvc, cartSvc, _, _ := setupOrderServiceTest(t)
	if err := cartSvc.AddItem("alpha", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	first, err := orderSvc.PlaceOrder("alpha")
	if err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	if err := cartSvc.AddItem("beta", "mc1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	second, err := orderSvc.PlaceOrder("beta")
	if err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}

	orders, err := orderSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != first.ID || orders[1].ID != second.ID {
		t.Fatalf("orders should keep append order: %s, %s", orders[0].ID, orders[1].ID)
	}
}

func TestListOrdersEmptyLog(t *testing.T) {
	orderSvc, _, _, _ := setupOrderServiceTest(t)
	orders, err := orderSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if orders == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestListOrdersIdempotent(t *testing.T) {
	orderSvc, cartSvc, _, _ := setupOrderServiceTest(t)
	if err := cartSvc.AddItem("sess", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := orderSvc.PlaceOrder("sess"); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	first, err := orderSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	second, err := orderSvc.ListOrders()
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeated reads should match: %d vs %d", len(first), len(second))
	}
}

func TestListOrdersMalformedLog(t *testing.T) {
	orderSvc, _, storageRepo, _ := setupOrderServiceTest(t)
	if _, err := storageRepo.Upsert(constants.StorageKeyOrders, "{not json"); err != nil {
		t.Fatalf("seed malformed log failed: %v", err)
	}
	if _, err := orderSvc.ListOrders(); !errors.Is(err, ErrOrderLogMalformed) {
		t.Fatalf("expected ErrOrderLogMalformed, got %v", err)
	}
	// 读取失败不得破坏原始数据
	entry, err := storageRepo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		t.Fatalf("get order log failed: %v", err)
	}
	if entry == nil || entry.Value != "{not json" {
		t.Fatalf("malformed log should be preserved, got %+v", entry)
	}
}

func TestPlaceOrderDoesNotOverwriteMalformedLog(t *testing.T) {
	orderSvc, cartSvc, storageRepo, _ := setupOrderServiceTest(t)
	if _, err := storageRepo.Upsert(constants.StorageKeyOrders, "{not json"); err != nil {
		t.Fatalf("seed malformed log failed: %v", err)
	}
	if err := cartSvc.AddItem("sess", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := orderSvc.PlaceOrder("sess"); !errors.Is(err, ErrOrderPersist) {
		t.Fatalf("expected ErrOrderPersist, got %v", err)
	}
	entry, err := storageRepo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		t.Fatalf("get order log failed: %v", err)
	}
	if entry == nil || entry.Value != "{not json" {
		t.Fatalf("malformed log should be preserved, got %+v", entry)
	}
	// 购物车保持原样以便重试
	count, err := cartSvc.Count("sess")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart should be intact after failed checkout, got count %d", count)
	}
}

type failingStorageRepository struct {
	inner repository.StorageRepository
}

func (r *failingStorageRepository) GetByKey(key string) (*models.StorageEntry, error) {
	return r.inner.GetByKey(key)
}

func (r *failingStorageRepository) Upsert(key string, value string) (*models.StorageEntry, error) {
	return nil, errors.New("disk full")
}

func (r *failingStorageRepository) WithTx(tx *gorm.DB) repository.StorageRepository {
	return r
}

func TestPlaceOrderPersistFailureKeepsCart(t *testing.T) {
	_, _, storageRepo, db := setupOrderServiceTest(t)
	cartRepo := repository.NewCartRepository()
	cartSvc := NewCartService(cartRepo)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	orderSvc := NewOrderService(db, &failingStorageRepository{inner: storageRepo}, cartRepo, NewNotificationService(queueClient))

	if err := cartSvc.AddItem("sess", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := orderSvc.PlaceOrder("sess"); !errors.Is(err, ErrOrderPersist) {
		t.Fatalf("expected ErrOrderPersist, got %v", err)
	}
	count, err := cartSvc.Count("sess")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart should be intact after persist failure, got count %d", count)
	}
}
