package models

import "time"

// Order 订单回执记录。创建后不可变，按追加顺序保存在订单日志中。
// 日期以 ISO-8601 字符串、金额以 JSON 数字持久化，读写必须无损往返。
type Order struct {
	ID     string      `json:"id"`     // 订单编号（创建时生成，日志内唯一）
	Date   time.Time   `json:"date"`   // 下单时间
	Total  Money       `json:"total"`  // 实付金额（小计 + 运费附加额）
	Status string      `json:"status"` // 订单状态（展示枚举，见 constants）
	Items  []OrderItem `json:"items"`  // 订单项快照
}

// OrderItem 下单时刻的商品快照，与目录中的商品解耦，
// 后续目录变动不影响历史订单。
type OrderItem struct {
	Name     string `json:"name"`     // 商品名称快照
	Quantity int    `json:"quantity"` // 数量
	Price    Money  `json:"price"`    // 单价快照
}
