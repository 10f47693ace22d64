package calendar

import (
	"sync"
	"time"
)

const (
	// viewTTL is how long a page view's series is kept after its last use.
	viewTTL  = 30 * time.Minute
	maxViews = 1024
)

type view struct {
	days     []Day
	lastSeen time.Time
}

// Views holds the series fetched for each open work page, so a resize
// re-filters the data already on screen instead of fetching it again.
type Views struct {
	mu    sync.Mutex
	views map[string]*view
	now   func() time.Time
}

func NewViews() *Views {
	return &Views{
		views: make(map[string]*view),
		now:   time.Now,
	}
}

// Get returns the series stored for a page view.
func (v *Views) Get(id string) ([]Day, bool) {
	if id == "" {
		return nil, false
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	v.evict(now)
	vw, ok := v.views[id]
	if !ok {
		return nil, false
	}
	vw.lastSeen = now
	return vw.days, true
}

// Put stores the series for a page view. When the table is full the series
// is not kept and the next request for that view fetches again.
func (v *Views) Put(id string, days []Day) {
	if id == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	v.evict(now)
	if _, ok := v.views[id]; !ok && len(v.views) >= maxViews {
		return
	}
	v.views[id] = &view{days: days, lastSeen: now}
}

func (v *Views) evict(now time.Time) {
	for k, vw := range v.views {
		if now.Sub(vw.lastSeen) > viewTTL {
			delete(v.views, k)
		}
	}
}
