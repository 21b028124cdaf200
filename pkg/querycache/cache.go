package querycache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache кэш результатов запросов с TTL и вытеснением по LRU
// Ключ - сравнимая структура, однозначно описывающая форму запроса:
// любое изменение входных параметров, влияющее на результат,
// обязано менять ключ
type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// New создает новый кэш
// size - максимальное количество записей, ttl - время жизни записи
func New[K comparable, V any](size int, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		lru: expirable.NewLRU[K, V](size, nil, ttl),
	}
}

// Get возвращает закэшированное значение по ключу
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Set сохраняет значение по ключу
func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// Invalidate удаляет запись по ключу
func (c *Cache[K, V]) Invalidate(key K) {
	c.lru.Remove(key)
}

// Purge полностью очищает кэш
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}
