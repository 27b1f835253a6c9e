// Package expiry tracks the validity window of a payment request.
//
// A request moves through exactly three states, one way only:
//
//	Active -> ExpiringSoon -> Expired
//
// Expired is terminal. There is no renew transition; callers create a new
// request instead.
package expiry

import (
	"context"
	"fmt"
	"time"
)

type State string

const (
	StateActive       State = "active"
	StateExpiringSoon State = "expiring_soon"
	StateExpired      State = "expired"
)

func (s State) String() string { return string(s) }

// DefaultSoonThreshold is the remaining time below which a request is
// reported as expiring soon.
const DefaultSoonThreshold = 30 * time.Second

// Snapshot is one observation of the countdown.
type Snapshot struct {
	State     State         `json:"state"`
	Remaining time.Duration `json:"-"`
	Countdown string        `json:"countdown"`
}

// Tracker evaluates a fixed expiry timestamp against wall-clock time.
// Because expiresAt never changes and the clock only moves forward, the
// expired predicate is monotonic.
type Tracker struct {
	expiresAt time.Time
	threshold time.Duration
	interval  time.Duration
	now       func() time.Time
}

type Option func(*Tracker)

// WithThreshold overrides the expiring-soon window.
func WithThreshold(d time.Duration) Option {
	return func(t *Tracker) { t.threshold = d }
}

// WithInterval overrides the tick cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) { t.interval = d }
}

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(expiresAt time.Time, opts ...Option) *Tracker {
	t := &Tracker{
		expiresAt: expiresAt,
		threshold: DefaultSoonThreshold,
		interval:  time.Second,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// StateAt returns the state as observed at the given instant.
func (t *Tracker) StateAt(now time.Time) State {
	remaining := t.expiresAt.Sub(now)
	switch {
	case remaining <= 0:
		return StateExpired
	case remaining <= t.threshold:
		return StateExpiringSoon
	default:
		return StateActive
	}
}

// Expired reports whether the request is past its expiry.
func (t *Tracker) Expired() bool {
	return t.StateAt(t.now()) == StateExpired
}

// SnapshotAt builds a full observation at the given instant.
func (t *Tracker) SnapshotAt(now time.Time) Snapshot {
	remaining := t.expiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return Snapshot{
		State:     t.StateAt(now),
		Remaining: remaining,
		Countdown: countdown(remaining),
	}
}

// Run emits a snapshot immediately and then once per interval. The
// channel is closed after the Expired snapshot is delivered or the
// context is cancelled; the ticker stops either way so no work continues
// past the terminal state.
func (t *Tracker) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			snap := t.SnapshotAt(t.now())
			select {
			case out <- snap:
			case <-ctx.Done():
				return
			}
			if snap.State == StateExpired {
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// countdown formats remaining time as M:SS, or Expired at zero.
func countdown(remaining time.Duration) string {
	if remaining <= 0 {
		return "Expired"
	}
	total := int(remaining.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
