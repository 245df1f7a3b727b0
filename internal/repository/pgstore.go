package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/user/movieflix/internal/model"
)

// PostgresStore 关系库存储变体，语义和文件存储保持一致：
// Load 取全量，Save 在一个事务里整体替换
// 建表由 InitDB 完成，所以这里的 Load 不会出现 ErrAbsent
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore 创建关系库存储
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load 读出全部用户记录，按 id 升序
func (s *PostgresStore) Load() ([]model.User, error) {
	var users []model.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("读取用户表失败: %w", err)
	}
	return users, nil
}

// Save 整体替换用户表内容
func (s *PostgresStore) Save(records []model.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.User{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("写入用户表失败: %w", err)
	}
	return nil
}
