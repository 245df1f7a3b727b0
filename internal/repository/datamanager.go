package repository

import (
	"errors"
	"fmt"
	"sync"
)

// Record 集合中的一条记录，带整数 id
type Record interface {
	RecordID() int
}

// DataManager 通用 CRUD 引擎：按 id 定位记录，所有变更都是
// 整份文档的 读取-修改-回写。互斥锁用来串行化这个循环，
// 避免并发请求互相覆盖（最后写入者赢）
type DataManager[T Record] struct {
	store  Store[T]
	name   string
	withID func(record T, id int) T

	mu sync.Mutex
}

// NewDataManager 创建数据管理器
// name 是集合名（日志用），withID 负责把新分配的 id 写进记录
func NewDataManager[T Record](name string, store Store[T], withID func(T, int) T) *DataManager[T] {
	return &DataManager[T]{
		store:  store,
		name:   name,
		withID: withID,
	}
}

// GenerateNewID 新 id 规则：空集合返回 1，否则取最大 id 加 1
// 不假设输入有序；删除留下的空洞不会被回收复用
func GenerateNewID[T Record](records []T) int {
	maxID := 0
	for _, r := range records {
		if r.RecordID() > maxID {
			maxID = r.RecordID()
		}
	}
	return maxID + 1
}

// GetAll 返回集合中的全部记录；存储缺失时透传 ErrAbsent
func (m *DataManager[T]) GetAll() ([]T, error) {
	return m.store.Load()
}

// GetByID 按 id 查找记录，未命中返回 ErrNotFound
func (m *DataManager[T]) GetByID(id int) (T, error) {
	var zero T
	records, err := m.store.Load()
	if err != nil {
		if errors.Is(err, ErrAbsent) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, ErrNotFound
}

// Add 为记录分配新 id 并追加到集合，整体回写后返回带 id 的记录
// 校验是调用方的责任，必须发生在 Add 之前
func (m *DataManager[T]) Add(record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero T
	records, err := m.store.Load()
	if err != nil && !errors.Is(err, ErrAbsent) {
		return zero, err
	}

	record = m.withID(record, GenerateNewID(records))
	records = append(records, record)

	if err := m.store.Save(records); err != nil {
		return zero, fmt.Errorf("保存 %s 集合失败: %w", m.name, err)
	}
	return record, nil
}

// Update 用 record 替换 id 相同的已有记录
// id 不存在时返回 ErrNotFound，绝不隐式插入
func (m *DataManager[T]) Update(record T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.store.Load()
	if err != nil {
		if errors.Is(err, ErrAbsent) {
			return ErrNotFound
		}
		return err
	}

	for i, r := range records {
		if r.RecordID() == record.RecordID() {
			records[i] = record
			if err := m.store.Save(records); err != nil {
				return fmt.Errorf("保存 %s 集合失败: %w", m.name, err)
			}
			return nil
		}
	}
	return ErrNotFound
}

// Delete 删除 id 对应的记录，未命中返回 ErrNotFound
func (m *DataManager[T]) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.store.Load()
	if err != nil {
		if errors.Is(err, ErrAbsent) {
			return ErrNotFound
		}
		return err
	}

	for i, r := range records {
		if r.RecordID() == id {
			records = append(records[:i], records[i+1:]...)
			if err := m.store.Save(records); err != nil {
				return fmt.Errorf("保存 %s 集合失败: %w", m.name, err)
			}
			return nil
		}
	}
	return ErrNotFound
}
