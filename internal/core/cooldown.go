package core

import (
	"context"
	"sync"
	"time"
)

// CooldownTracker records, per (command, user), when that user may invoke
// the command again. Cooldowns never interfere across commands or across
// users. Entries expire lazily on access; RunCleaner additionally sweeps the
// map so idle entries do not accumulate.
type CooldownTracker struct {
	mu      sync.Mutex
	entries map[cooldownKey]time.Time // value = absolute expiry
	now     func() time.Time
}

type cooldownKey struct {
	command string
	user    string
}

// NewCooldownTracker returns an empty tracker.
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{
		entries: make(map[cooldownKey]time.Time),
		now:     time.Now,
	}
}

// TryConsume arms the cooldown for (command, user) if none is active and
// reports ok. If one is active it reports the remaining time and leaves the
// entry untouched.
func (t *CooldownTracker) TryConsume(command, user string, d time.Duration) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := cooldownKey{command, user}
	now := t.now()
	if expiry, ok := t.entries[key]; ok && expiry.After(now) {
		return expiry.Sub(now), false
	}
	t.entries[key] = now.Add(d)
	return 0, true
}

// Remaining reports the active cooldown for (command, user). An expired
// entry is removed and reported as zero, never as stale time.
func (t *CooldownTracker) Remaining(command, user string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := cooldownKey{command, user}
	expiry, ok := t.entries[key]
	if !ok {
		return 0
	}
	now := t.now()
	if !expiry.After(now) {
		delete(t.entries, key)
		return 0
	}
	return expiry.Sub(now)
}

// ActiveEntries reports how many cooldowns are currently armed.
func (t *CooldownTracker) ActiveEntries() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked()
	return len(t.entries)
}

func (t *CooldownTracker) sweepLocked() {
	now := t.now()
	for key, expiry := range t.entries {
		if !expiry.After(now) {
			delete(t.entries, key)
		}
	}
}

// RunCleaner clears expired entries every interval until ctx is done. Call
// from main.
func (t *CooldownTracker) RunCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mu.Lock()
			t.sweepLocked()
			t.mu.Unlock()
		}
	}
}
