package constants

// 订单状态常量（仅作展示枚举，本系统不驱动状态流转）
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 本地存储键常量
const (
	// StorageKeyOrders 订单日志存储键，值为订单 JSON 数组
	StorageKeyOrders = "orders"
)

// ShippingSurchargeUnits 固定运费附加额（货币单位）
const ShippingSurchargeUnits = 5

// SessionHeader 会话标识请求头
const SessionHeader = "X-Session-ID"

// 队列与任务常量
const (
	QueueDefault             = "default"
	TaskNotificationDispatch = "notification:dispatch"
)

// 通知级别常量
const (
	NotificationSeveritySuccess     = "success"
	NotificationSeverityDestructive = "destructive"
)

// OrderIDPrefix 订单编号前缀
const OrderIDPrefix = "ORD"
