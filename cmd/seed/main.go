package main

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voltmart/internal/config"
	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/models"
	"github.com/voltmart/internal/repository"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	storageRepo := repository.NewStorageRepository(models.DB)

	// 订单日志已有数据时跳过，避免覆盖真实订单
	existing, err := storageRepo.GetByKey(constants.StorageKeyOrders)
	if err != nil {
		stdLog.Fatalf("Failed to read order log: %v", err)
	}
	if existing != nil && existing.Value != "" {
		stdLog.Printf("Order log already seeded, skipping")
		return
	}

	now := time.Now().UTC()
	orders := []models.Order{
		{
			ID:     "ORD20250810120000432817",
			Date:   now.AddDate(0, 0, -21),
			Total:  models.NewMoneyFromDecimal(decimal.NewFromInt(25)),
			Status: constants.OrderStatusDelivered,
			Items: []models.OrderItem{
				{Name: "PN Junction diode", Quantity: 2, Price: models.NewMoneyFromInt(10)},
			},
		},
		{
			ID:     "ORD20250824093000518204",
			Date:   now.AddDate(0, 0, -7),
			Total:  models.NewMoneyFromDecimal(decimal.NewFromInt(17)),
			Status: constants.OrderStatusShipped,
			Items: []models.OrderItem{
				{Name: "Arduino Nano", Quantity: 1, Price: models.NewMoneyFromInt(12)},
			},
		},
		{
			ID:     "ORD20250829154500276391",
			Date:   now.AddDate(0, 0, -2),
			Total:  models.NewMoneyFromDecimal(decimal.NewFromInt(16)),
			Status: constants.OrderStatusPending,
			Items: []models.OrderItem{
				{Name: "Temperature Sensor", Quantity: 1, Price: models.NewMoneyFromInt(5)},
				{Name: "Humidity Sensor", Quantity: 1, Price: models.NewMoneyFromInt(6)},
			},
		},
	}

	raw, err := json.Marshal(orders)
	if err != nil {
		stdLog.Fatalf("Failed to marshal demo orders: %v", err)
	}
	if _, err := storageRepo.Upsert(constants.StorageKeyOrders, string(raw)); err != nil {
		stdLog.Fatalf("Failed to seed order log: %v", err)
	}
	stdLog.Printf("Seeded %d demo orders", len(orders))
}
