package repository

import "errors"

var (
	// ErrAbsent 底层资源还不存在（比如数据文件从未写过），不等于空数据集
	ErrAbsent = errors.New("dataset absent")
	// ErrNotFound 按 id 查找没有命中
	ErrNotFound = errors.New("record not found")
	// ErrNotImplemented 存储后端只是占位，尚未实现
	ErrNotImplemented = errors.New("store not implemented")
)

// Store 存储后端：每次读写都是整份文档，没有增量更新
// 变体：FileStore（JSON 平面文件）、PostgresStore（关系库）、CSVStore（占位）
type Store[T any] interface {
	// Load 读出整份文档；资源不存在时返回 ErrAbsent
	Load() ([]T, error)
	// Save 用 records 整体替换持久化文档
	Save(records []T) error
}
