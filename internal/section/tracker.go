package section

import (
	"context"
	"sync"
)

// Tracker owns the currently active region and notifies subscribers when it
// changes.
type Tracker struct {
	mu      sync.Mutex
	regions []Region
	active  ID
	nextSub int
	subs    map[int]func(ID)
}

// Option configures a Tracker.
type Option func(*Tracker)

// StartAt sets the initial active region. Ids outside Order are ignored.
func StartAt(id ID) Option {
	return func(t *Tracker) {
		if Valid(id) {
			t.active = id
		}
	}
}

// NewTracker returns a tracker over regions. The initial active region is
// Default, whether or not it was measured.
func NewTracker(regions []Region, opts ...Option) *Tracker {
	t := &Tracker{
		regions: append([]Region(nil), regions...),
		active:  Default,
		subs:    make(map[int]func(ID)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Active returns the current region.
func (t *Tracker) Active() ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// SetLayout replaces the region offsets, e.g. after a resize.
// The active region is not recomputed until the next Update.
func (t *Tracker) SetLayout(regions []Region) {
	t.mu.Lock()
	t.regions = append([]Region(nil), regions...)
	t.mu.Unlock()
}

// Update recomputes the active region for state and returns it. When no region
// qualifies the previous value is kept.
func (t *Tracker) Update(state ScrollState) ID {
	t.mu.Lock()
	id, ok := Active(state, t.regions)
	if !ok || !Valid(id) || id == t.active {
		cur := t.active
		t.mu.Unlock()
		return cur
	}
	t.active = id
	subs := make([]func(ID), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return id
}

// Subscribe registers fn to be called with the new region whenever it changes.
// The returned func removes the subscription; it is safe to call more than once.
func (t *Tracker) Subscribe(fn func(ID)) (unsubscribe func()) {
	t.mu.Lock()
	key := t.nextSub
	t.nextSub++
	t.subs[key] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, key)
			t.mu.Unlock()
		})
	}
}

// Watch applies each state received on states until ctx is cancelled or the
// channel is closed. It returns ctx.Err() on cancellation and nil on close.
func (t *Tracker) Watch(ctx context.Context, states <-chan ScrollState) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case st, ok := <-states:
			if !ok {
				return nil
			}
			t.Update(st)
		}
	}
}
