package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
)

// Cache 全局缓存实例
var Cache *cache.Cache

// InitCache 初始化缓存
func InitCache() {
	// 默认过期时间5分钟，清理间隔10分钟
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// CacheGet 获取缓存值；缓存未初始化时一律未命中
func CacheGet(key string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(key)
}

// CacheSet 设置缓存值
func CacheSet(key string, value interface{}, duration time.Duration) {
	if Cache == nil {
		return
	}
	Cache.Set(key, value, duration)
}

// CacheDelete 删除缓存
func CacheDelete(key string) {
	if Cache == nil {
		return
	}
	Cache.Delete(key)
}

// cacheItem 包装实际的数据，增加过期时间
type cacheItem[T any] struct {
	value     T
	expiredAt time.Time
}

// SearchCache 查询结果缓存封装，LRU 淘汰加 TTL 过期
type SearchCache[T any] struct {
	storage *lru.Cache[string, cacheItem[T]]
	ttl     time.Duration
}

// NewSearchCache 初始化，size 是最大缓存条数，ttl 是数据有效期
func NewSearchCache[T any](size int, ttl time.Duration) *SearchCache[T] {
	// lru.New 是线程安全的
	c, _ := lru.New[string, cacheItem[T]](size)
	return &SearchCache[T]{
		storage: c,
		ttl:     ttl,
	}
}

// Set 写入缓存，已存在则覆盖
func (c *SearchCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheItem[T]{
		value:     value,
		expiredAt: time.Now().Add(c.ttl),
	})
}

// Get 读取缓存，过期条目当场删除并按未命中处理
func (c *SearchCache[T]) Get(key string) (T, bool) {
	var zero T
	item, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if time.Now().After(item.expiredAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return item.value, true
}

// Delete 删除指定条目
func (c *SearchCache[T]) Delete(key string) {
	c.storage.Remove(key)
}
