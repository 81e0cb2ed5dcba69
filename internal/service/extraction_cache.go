package service

import (
	"container/list"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"paper-summarizer/internal/domain"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("paper-summarizer:extract-cache!!")

// HashContent returns the hex HighwayHash-64 of data. Identical uploads map
// to the same key regardless of their filename or temp path.
func HashContent(data []byte) (string, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", err
	}
	if _, err := h.Write(data); err != nil {
		return "", err
	}
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], h.Sum64())
	return hex.EncodeToString(sum[:]), nil
}

type cacheEntry struct {
	hash     string
	text     *domain.ExtractedText
	storedAt time.Time
}

// ExtractionCache keeps extracted text for recently seen uploads. Entries
// expire after ttl, the oldest entry is evicted once size is reached, and
// Forget drops an entry explicitly.
type ExtractionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	size    int
	order   *list.List
	entries map[string]*list.Element
	now     func() time.Time
}

func NewExtractionCache(ttl time.Duration, size int) *ExtractionCache {
	if size <= 0 {
		size = 1
	}
	return &ExtractionCache{
		ttl:     ttl,
		size:    size,
		order:   list.New(),
		entries: make(map[string]*list.Element),
		now:     time.Now,
	}
}

func (c *ExtractionCache) Get(hash string) (*domain.ExtractedText, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[hash]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*cacheEntry)
	if c.expired(entry) {
		c.remove(el)
		return nil, false
	}
	return entry.text, true
}

func (c *ExtractionCache) Put(hash string, text *domain.ExtractedText) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[hash]; ok {
		c.remove(el)
	}
	c.entries[hash] = c.order.PushBack(&cacheEntry{
		hash:     hash,
		text:     text,
		storedAt: c.now(),
	})

	for c.order.Len() > c.size {
		c.remove(c.order.Front())
	}
}

// Forget removes hash and reports whether it was present.
func (c *ExtractionCache) Forget(hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[hash]
	if !ok {
		return false
	}
	c.remove(el)
	return true
}

// Purge drops every expired entry and returns how many were removed.
func (c *ExtractionCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if c.expired(el.Value.(*cacheEntry)) {
			c.remove(el)
			removed++
		}
		el = next
	}
	return removed
}

func (c *ExtractionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *ExtractionCache) expired(e *cacheEntry) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl
}

func (c *ExtractionCache) remove(el *list.Element) {
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.entries, entry.hash)
}
