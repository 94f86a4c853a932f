package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const janitorInterval = 2 * time.Minute

var lookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sneaker_store",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Cache lookups by result.",
}, []string{"cache", "result"})

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// LRUCache хранит байтовые значения с ограничением по размеру и времени жизни.
// Самая старая по использованию запись вытесняется первой.
type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration

	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element

	hits, misses prometheus.Counter
}

func NewLRUCache(name string, capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
		hits:     lookups.WithLabelValues(name, "hit"),
		misses:   lookups.WithLabelValues(name, "miss"),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Inc()
		return nil, false
	}

	ent := el.Value.(*entry)
	if ent.expired(time.Now()) {
		c.remove(el)
		c.misses.Inc()
		return nil, false
	}

	c.order.MoveToFront(el)
	c.hits.Inc()
	return ent.value, true
}

// Set сохраняет значение со временем жизни кэша по умолчанию.
func (c *LRUCache) Set(key string, value []byte) {
	c.SetWithTTL(key, value, c.ttl)
}

func (c *LRUCache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(ttl)

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}

// Start запускает фоновую очистку просроченных записей до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.purgeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) purgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*entry).expired(now) {
			c.remove(el)
			removed++
		}
		el = prev
	}
	return removed
}
