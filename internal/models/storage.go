package models

import "time"

// StorageEntry 本地键值存储行。
// Value 保存原始 JSON 文本：订单日志解析失败时原始数据必须保留，不做结构化列。
type StorageEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`            // 主键
	Key       string    `gorm:"uniqueIndex;not null" json:"key"` // 存储键
	Value     string    `gorm:"type:text;not null" json:"value"` // 原始 JSON 文本
	CreatedAt time.Time `gorm:"index" json:"created_at"`         // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`         // 更新时间
}

// TableName 指定表名
func (StorageEntry) TableName() string {
	return "storage_entries"
}
