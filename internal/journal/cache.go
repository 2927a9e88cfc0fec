package journal

import "schultafel/internal/models"

// WeekCache memoizes fetched week payloads within a single resolution
// run. It is owned by exactly one Resolve call, never shared, and holds
// at most the handful of weeks a bounded forward search can touch, so
// it needs no locking and no eviction.
type WeekCache struct {
	weeks map[string]*models.WeekReply
}

func NewWeekCache() *WeekCache {
	return &WeekCache{weeks: make(map[string]*models.WeekReply)}
}

func (c *WeekCache) Get(key string) (*models.WeekReply, bool) {
	reply, ok := c.weeks[key]
	return reply, ok
}

func (c *WeekCache) Put(key string, reply *models.WeekReply) {
	c.weeks[key] = reply
}
