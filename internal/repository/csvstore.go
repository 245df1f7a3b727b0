package repository

import "fmt"

// CSVStore CSV 存储占位实现，接口齐全但尚未支持
// 选 DATA_BACKEND=csv 时启动不报错，首次读写时失败
type CSVStore[T any] struct {
	path string
}

// NewCSVStore 创建 CSV 存储占位
func NewCSVStore[T any](path string) *CSVStore[T] {
	return &CSVStore[T]{path: path}
}

func (s *CSVStore[T]) Load() ([]T, error) {
	return nil, fmt.Errorf("csv 后端: %w", ErrNotImplemented)
}

func (s *CSVStore[T]) Save(records []T) error {
	return fmt.Errorf("csv 后端: %w", ErrNotImplemented)
}
