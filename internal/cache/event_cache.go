// Package cache keeps per-viewer event listings for a short time.
package cache

import (
	"time"

	"github.com/google/uuid"
	"github.com/maxty9378/paneldoirp-sub002/internal/access"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

const DefaultEventsTTL = 5 * time.Minute

// EventCache stores event listings keyed by viewer and role.
// It is safe for concurrent use.
type EventCache struct {
	store *gocache.Cache
}

func NewEventCache(ttl time.Duration) *EventCache {
	if ttl <= 0 {
		ttl = DefaultEventsTTL
	}
	return &EventCache{store: gocache.New(ttl, 2*ttl)}
}

func key(userID uuid.UUID, role access.Role) string {
	return userID.String() + ":" + string(role)
}

// Get returns a copy of the cached listing.
func (c *EventCache) Get(userID uuid.UUID, role access.Role) ([]model.EventWithStats, bool) {
	v, ok := c.store.Get(key(userID, role))
	if !ok {
		return nil, false
	}
	events := v.([]model.EventWithStats)
	out := make([]model.EventWithStats, len(events))
	copy(out, events)
	return out, true
}

func (c *EventCache) Set(userID uuid.UUID, role access.Role, events []model.EventWithStats) {
	stored := make([]model.EventWithStats, len(events))
	copy(stored, events)
	c.store.SetDefault(key(userID, role), stored)
}

// Invalidate drops every cached listing.
func (c *EventCache) Invalidate() {
	c.store.Flush()
}

func (c *EventCache) Len() int {
	return c.store.ItemCount()
}
