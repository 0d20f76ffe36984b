package provider

import (
	"github.com/voltmart/internal/cache"
	"github.com/voltmart/internal/config"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/models"
	"github.com/voltmart/internal/queue"
	"github.com/voltmart/internal/repository"
	"github.com/voltmart/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	StorageRepo repository.StorageRepository
	CartRepo    repository.CartRepository

	// Services
	CartService         *service.CartService
	OrderService        *service.OrderService
	NotificationService *service.NotificationService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端（未启用时为降级客户端）
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StorageRepo = repository.NewStorageRepository(db)
	c.CartRepo = repository.NewCartRepository()
}

func (c *Container) initServices() {
	c.NotificationService = service.NewNotificationService(c.QueueClient)
	c.CartService = service.NewCartService(c.CartRepo)
	c.OrderService = service.NewOrderService(models.DB, c.StorageRepo, c.CartRepo, c.NotificationService)
}
