package repository

import (
	"errors"

	"github.com/voltmart/internal/models"

	"gorm.io/gorm"
)

// StorageRepository 本地键值存储数据访问接口
type StorageRepository interface {
	GetByKey(key string) (*models.StorageEntry, error)
	Upsert(key string, value string) (*models.StorageEntry, error)
	WithTx(tx *gorm.DB) StorageRepository
}

// GormStorageRepository GORM 实现
type GormStorageRepository struct {
	db *gorm.DB
}

// NewStorageRepository 创建键值存储仓库
func NewStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db: db}
}

// WithTx 绑定事务
func (r *GormStorageRepository) WithTx(tx *gorm.DB) StorageRepository {
	if tx == nil {
		return r
	}
	return &GormStorageRepository{db: tx}
}

// GetByKey 获取存储项，不存在返回 nil
func (r *GormStorageRepository) GetByKey(key string) (*models.StorageEntry, error) {
	var entry models.StorageEntry
	if err := r.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Upsert 更新或创建存储项
func (r *GormStorageRepository) Upsert(key string, value string) (*models.StorageEntry, error) {
	entry, err := r.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &models.StorageEntry{
			Key:   key,
			Value: value,
		}
		if err := r.db.Create(entry).Error; err != nil {
			return nil, err
		}
		return entry, nil
	}

	entry.Value = value
	if err := r.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
