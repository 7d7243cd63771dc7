package mock

import (
	"sync"
	"time"
)

// Time is wall time shifted by an offset, so a pinned clock keeps ticking.
type Time struct {
	mu     sync.RWMutex
	offset time.Duration
}

func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime makes Now report at, advancing from there.
func (t *Time) SetCurrentTime(at time.Time) {
	t.mu.Lock()
	t.offset = time.Until(at)
	t.mu.Unlock()
}

func (t *Time) Reset() {
	t.mu.Lock()
	t.offset = 0
	t.mu.Unlock()
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return time.Now().Add(t.offset)
}
