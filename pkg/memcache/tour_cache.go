package mem

import (
	"sync"
	"time"

	"honesttour/internal/models/response_models"
)

// TourListCache keeps the last successfully fetched tour list so the site
// stays usable when the CMS is down. Publishes are generation-stamped: a
// fetch takes a generation with Begin before calling out, and Complete only
// stores the result if no newer fetch has started since. Slow stale
// responses therefore never overwrite newer data.
type TourListCache interface {
	Begin() uint64
	Complete(gen uint64, tours []response_models.TourView) bool
	Get() ([]response_models.TourView, bool)
}

type tourListCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	gen       uint64
	tours     []response_models.TourView
	hasData   bool
	expiresAt time.Time
}

func NewTourListCache(ttl time.Duration) TourListCache {
	return &tourListCache{ttl: ttl}
}

func (c *tourListCache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

func (c *tourListCache) Complete(gen uint64, tours []response_models.TourView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// a newer fetch started after this one; drop the stale result
		return false
	}

	c.tours = make([]response_models.TourView, len(tours))
	copy(c.tours, tours)
	c.hasData = true
	c.expiresAt = time.Now().Add(c.ttl)
	return true
}

func (c *tourListCache) Get() ([]response_models.TourView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.hasData || time.Now().After(c.expiresAt) {
		return nil, false
	}

	out := make([]response_models.TourView, len(c.tours))
	copy(out, c.tours)
	return out, true
}
