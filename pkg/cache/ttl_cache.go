// Package cache, süreli (TTL) generic bellek içi cache.
//
// Admin durumu gibi her istekte sorulan ama nadiren değişen cevapları tutar.
// Süresi dolan kayıt okunamaz; map'ten fiziksel silme arka planda yapılır.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache, thread-safe generic TTL cache.
//
//	c := cache.New[string, bool](time.Minute, 5*time.Minute)
//	defer c.Close()
//	c.Set("user-1", true)
//	isAdmin, ok := c.Get("user-1")
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// New, cache'i oluşturur ve cleanupInterval aralıklarla süresi dolanları silen
// goroutine'i başlatır. cleanupInterval <= 0 ise arka plan temizliği yapılmaz.
func New[K comparable, V any](ttl, cleanupInterval time.Duration) *TTLCache[K, V] {
	c := &TTLCache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupLoop(cleanupInterval)
	}
	return c
}

// Get, (değer, true) döner; kayıt yoksa veya süresi dolduysa (zero, false).
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, değeri TTL ile yazar.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Delete, tek bir kaydı geçersiz kılar.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear, tüm kayıtları siler.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

// Len, süresi dolmuşlar dahil kayıt sayısı.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close, temizlik goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (c *TTLCache[K, V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *TTLCache[K, V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *TTLCache[K, V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
