package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. Once set, it keeps ticking from the chosen instant.
type Time struct {
	mu               sync.RWMutex
	currentStartTime time.Time
	updatedAt        time.Time
	frozen           bool
}

func NewTime() *Time {
	return &Time{
		currentStartTime: time.Now(),
		updatedAt:        time.Now(),
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// Freeze stops the clock at its current reading.
func (t *Time) Freeze() {
	now := t.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = now
	t.frozen = true
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.frozen {
		return t.currentStartTime
	}
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
