/*
Package observe is the reactive binding layer over the pure temporal core.

PURPOSE:
  The core is a set of pure functions; it schedules nothing and notifies
  nobody. Consumers that re-derive periods when a "browsing" date changes
  (calendar UIs following a cursor) need an observer layer, and this package
  is that layer: a Browser holds the current browsing date, hands out
  memoized Periods for any unit at that date, and notifies subscribers when
  the date moves.

DESIGN:
  - Mutex-guarded current date; subscribers are called outside the lock
  - Period lookups are memoized per unit and flushed on every move, so a
    render loop asking for the same month repeatedly computes it once
  - Subscribe returns an unsubscribe func; no global subscriber state

USAGE:
  b := observe.NewBrowser(eng, time.Now())
  cancel := b.Subscribe(func(ev observe.Event) { render(ev.Current) })
  defer cancel()
  b.Step(temporal.UnitMonth, 1) // move one month forward, notify

SEE ALSO:
  - temporal/ops.go: the pure operations this layer wraps
*/
package observe

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/warp/temporal-engine/temporal"
)

// Event describes a browsing-date change.
type Event struct {
	Previous time.Time
	Current  time.Time
}

// Browser is a stateful cursor over the pure engine. Safe for concurrent
// use.
type Browser struct {
	engine *temporal.Engine
	log    *zap.Logger

	mu      sync.Mutex
	date    time.Time
	subs    map[int]func(Event)
	nextSub int
	cache   *gocache.Cache
}

// Option configures a Browser.
type Option func(*Browser)

// WithLogger sets the logger for move events. Default: no-op.
func WithLogger(log *zap.Logger) Option {
	return func(b *Browser) { b.log = log }
}

// NewBrowser creates a Browser positioned at initial.
func NewBrowser(e *temporal.Engine, initial time.Time, opts ...Option) *Browser {
	b := &Browser{
		engine: e,
		log:    zap.NewNop(),
		date:   initial,
		subs:   make(map[int]func(Event)),
		cache:  gocache.New(gocache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Date returns the current browsing date.
func (b *Browser) Date() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date
}

// SetDate moves the browsing date and notifies subscribers.
func (b *Browser) SetDate(t time.Time) {
	b.mu.Lock()
	prev := b.date
	if t.Equal(prev) {
		b.mu.Unlock()
		return
	}
	b.date = t
	b.cache.Flush()
	subs := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.Unlock()

	b.log.Debug("browsing date moved",
		zap.Time("previous", prev), zap.Time("current", t))
	ev := Event{Previous: prev, Current: t}
	for _, fn := range subs {
		fn(ev)
	}
}

// Step moves the browsing date n whole units (negative n moves backward)
// and notifies subscribers. The new date is the moved period's anchor.
func (b *Browser) Step(unit temporal.Unit, n int) error {
	p, err := b.engine.CreatePeriod(unit, b.Date())
	if err != nil {
		return err
	}
	moved, err := b.engine.Go(p, n)
	if err != nil {
		return err
	}
	b.SetDate(moved.Date)
	return nil
}

// Period returns the period of the given unit containing the browsing date,
// memoized until the date next moves.
func (b *Browser) Period(unit temporal.Unit) (temporal.Period, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := string(unit)
	if cached, ok := b.cache.Get(key); ok {
		return cached.(temporal.Period), nil
	}
	p, err := b.engine.CreatePeriod(unit, b.date)
	if err != nil {
		return temporal.Period{}, err
	}
	b.cache.Set(key, p, gocache.NoExpiration)
	return p, nil
}

// Subscribe registers fn for date-change events and returns its
// unsubscribe func. Subscribers are invoked synchronously, outside the
// Browser's lock, in unspecified order.
func (b *Browser) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
