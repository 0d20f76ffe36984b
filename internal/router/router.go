package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voltmart/internal/cache"
	"github.com/voltmart/internal/config"
	publichandlers "github.com/voltmart/internal/http/handlers/public"
	"github.com/voltmart/internal/logger"
	"github.com/voltmart/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "vm"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		catalogGroup := apiV1.Group("/catalog")
		{
			catalogGroup.GET("/categories", publicHandler.GetCategories)
			catalogGroup.GET("/categories/:id", publicHandler.GetCategory)
		}

		// 订单日志跨会话共享，读取不要求会话标识
		apiV1.GET("/orders", publicHandler.ListOrders)

		// 会话接口（购物车与结算按 X-Session-ID 区分）
		session := apiV1.Group("")
		session.Use(SessionMiddleware())
		{
			session.GET("/cart", publicHandler.GetCart)
			session.POST("/cart/items", publicHandler.AddCartItem)
			session.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			session.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			session.DELETE("/cart", publicHandler.ClearCart)
			session.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyBySession), publicHandler.Checkout)
		}
	}

	return r
}
