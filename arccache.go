// seehuhn.de/go/scan - scan conversion for 2D graphics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scan

import "sync"

// Arc cache parameters.
const (
	// DefaultArcCacheSize is the number of ring tables kept by
	// [NewEngine].
	DefaultArcCacheSize = 25

	// arcCacheMaxHeight is the largest ellipse height for which ring
	// tables are cached.  Larger ellipses are computed on every call.
	arcCacheMaxHeight = 1500
)

// RingKey identifies a ring table.
type RingKey struct {
	LineWidth     int
	Width, Height int
}

// ArcSpanCache keeps the span tables of recently drawn wide ellipses.
// Entries are evicted in least recently used order.
//
// An ArcSpanCache is safe for concurrent use, so that several engines
// can share one cache.
type ArcSpanCache struct {
	mu sync.Mutex

	slots   []arcCacheSlot
	lastHit int // index of the most recent hit, or -1
	tick    int64

	hits, misses int
}

type arcCacheSlot struct {
	key   RingKey
	table *RingTable
	atime int64 // zero for unused slots
}

// NewArcSpanCache returns a cache with room for size tables.
// For size <= 0, [DefaultArcCacheSize] is used.
func NewArcSpanCache(size int) *ArcSpanCache {
	if size <= 0 {
		size = DefaultArcCacheSize
	}
	return &ArcSpanCache{
		slots:   make([]arcCacheSlot, size),
		lastHit: -1,
	}
}

// Get returns the cached table for key, or nil.
func (c *ArcSpanCache) Get(key RingKey) *RingTable {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastHit >= 0 && c.slots[c.lastHit].atime != 0 && c.slots[c.lastHit].key == key {
		c.hits++
		c.tick++
		c.slots[c.lastHit].atime = c.tick
		return c.slots[c.lastHit].table
	}
	for i := range c.slots {
		s := &c.slots[i]
		if s.atime != 0 && s.key == key {
			c.hits++
			c.tick++
			s.atime = c.tick
			c.lastHit = i
			return s.table
		}
	}
	c.misses++
	return nil
}

// Put stores a table, replacing the least recently used slot if the
// cache is full.
func (c *ArcSpanCache) Put(key RingKey, table *RingTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	victim := 0
	for i := range c.slots {
		s := &c.slots[i]
		if s.atime != 0 && s.key == key {
			victim = i
			break
		}
		if s.atime < c.slots[victim].atime {
			victim = i
		}
	}
	if old := &c.slots[victim]; old.atime != 0 && old.key != key {
		Logger().Debug("arc cache eviction",
			"lineWidth", old.key.LineWidth,
			"width", old.key.Width,
			"height", old.key.Height)
	}

	c.tick++
	c.slots[victim] = arcCacheSlot{key: key, table: table, atime: c.tick}
	c.lastHit = victim
}

// Len returns the number of tables in the cache.
func (c *ArcSpanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, s := range c.slots {
		if s.atime != 0 {
			n++
		}
	}
	return n
}

// Stats returns the number of cache hits and misses so far.
func (c *ArcSpanCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Clear removes all tables from the cache.
func (c *ArcSpanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.slots)
	c.lastHit = -1
	c.tick = 0
}

// ringTable returns the span table for a wide ellipse, using the cache
// of the engine if possible.
func (e *Engine) ringTable(lineWidth, width, height int) *RingTable {
	key := RingKey{LineWidth: lineWidth, Width: width, Height: height}
	if e.ArcCache == nil {
		return computeRingTable(key)
	}
	if height > arcCacheMaxHeight {
		Logger().Debug("arc cache bypass", "height", height)
		return computeRingTable(key)
	}
	if t := e.ArcCache.Get(key); t != nil {
		return t
	}
	t := computeRingTable(key)
	e.ArcCache.Put(key, t)
	return t
}
