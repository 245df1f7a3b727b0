package repository

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileStore JSON 平面文件存储，整份文档一次读写
// 并发写不在支持范围内，串行化由上层 DataManager 负责
type FileStore[T any] struct {
	path string
}

// NewFileStore 创建文件存储，path 指向 JSON 数据文件
func NewFileStore[T any](path string) *FileStore[T] {
	return &FileStore[T]{path: path}
}

// Load 读出整份文档；文件不存在返回 ErrAbsent
func (s *FileStore[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("读取数据文件失败: %w", err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("解析数据文件失败: %w", err)
	}
	return records, nil
}

// Save 整体重写数据文件
func (s *FileStore[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化数据失败: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("写入数据文件失败: %w", err)
	}
	return nil
}
