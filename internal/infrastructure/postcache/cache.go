// Package postcache holds a bounded, time-expiring mapping from an owner id
// to that owner's last listed posts. Entries expire a fixed ttl after
// insertion (not last access), and inserting past capacity evicts the
// least-recently-used entry. The cache is never invalidated by post writes;
// a freshly created or deleted post may be invisible in listings for up to
// ttl. That staleness window is intended behavior.
package postcache

import (
	"container/list"
	"sync"
	"time"

	"blog-service/internal/domain/entities"
)

type entry struct {
	ownerID  uint
	posts    []entities.Post
	storedAt time.Time
}

// Cache is safe for concurrent use. Concurrent puts for the same key
// resolve as last write wins.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	order      *list.List // front = most recently used
	entries    map[uint]*list.Element

	now func() time.Time // test hook
}

func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		ttl:        ttl,
		order:      list.New(),
		entries:    make(map[uint]*list.Element),
		now:        time.Now,
	}
}

// Get returns the cached post list for ownerID. A key that was never
// inserted, has expired, or was evicted is a miss; a miss says nothing
// about whether the owner has posts.
func (c *Cache) Get(ownerID uint) ([]entities.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[ownerID]
	if !ok {
		return nil, false
	}

	ent := elem.Value.(*entry)
	if c.now().Sub(ent.storedAt) >= c.ttl {
		c.removeElement(elem)
		return nil, false
	}

	// Refresh recency only; the expiry clock stays on insertion time.
	c.order.MoveToFront(elem)
	return ent.posts, true
}

// Put stores posts for ownerID, overwriting any existing entry and
// resetting its expiry clock. When the cache is full the least-recently-used
// entry is evicted first.
func (c *Cache) Put(ownerID uint, posts []entities.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[ownerID]; ok {
		ent := elem.Value.(*entry)
		ent.posts = posts
		ent.storedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.maxEntries {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	elem := c.order.PushFront(&entry{
		ownerID:  ownerID,
		posts:    posts,
		storedAt: c.now(),
	})
	c.entries[ownerID] = elem
}

// Len reports the number of live entries, expired ones included until
// they are touched.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*entry).ownerID)
}
