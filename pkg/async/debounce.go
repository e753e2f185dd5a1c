package async

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// Debouncer coalesces rapid submissions: only the last value submitted within
// the quiet period reaches fn. Every Submit returns a Future; futures of
// submissions replaced by a newer one resolve with ErrSuperseded.
type Debouncer[T any, U any] struct {
	delay time.Duration
	fn    func(context.Context, T) (U, error)

	mu      sync.Mutex
	timer   *time.Timer
	pending *Future[U]
	value   T
	ctx     context.Context
	stopped bool
}

// NewDebouncer creates a debouncer that runs fn once delay has elapsed without
// a newer submission. A non-positive delay runs fn on the next timer tick.
func NewDebouncer[T any, U any](delay time.Duration, fn func(context.Context, T) (U, error)) *Debouncer[T, U] {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T, U]{delay: delay, fn: fn}
}

// Submit schedules fn for value, superseding any evaluation still waiting.
func (d *Debouncer[T, U]) Submit(ctx context.Context, value T) *Future[U] {
	f := newFuture[U]()

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		var zero U
		f.resolve(zero, ErrStopped)
		return f
	}

	prev := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = f
	d.value = value
	d.ctx = ctx
	d.timer = time.AfterFunc(d.delay, func() { d.fire(f) })
	d.mu.Unlock()

	if prev != nil {
		var zero U
		prev.resolve(zero, ErrSuperseded)
	}
	return f
}

// Flush runs the pending evaluation immediately, if there is one.
func (d *Debouncer[T, U]) Flush() {
	d.mu.Lock()
	f := d.pending
	if f != nil && d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if f != nil {
		d.fire(f)
	}
}

// Stop cancels the pending evaluation and rejects later submissions.
func (d *Debouncer[T, U]) Stop() {
	d.mu.Lock()
	d.stopped = true
	f := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if f != nil {
		var zero U
		f.resolve(zero, ErrStopped)
	}
}

// fire runs fn for f unless f has been superseded in the meantime.
func (d *Debouncer[T, U]) fire(f *Future[U]) {
	d.mu.Lock()
	if d.pending != f {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	value, ctx := d.value, d.ctx
	d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		var zero U
		f.resolve(zero, err)
		return
	}

	res, err := d.fn(ctx, value)
	f.resolve(res, err)
}

// Debouncers keeps one Debouncer per key, for instance per session and field.
// The set is bounded: the least recently used debouncer is stopped and dropped
// once capacity is exceeded.
type Debouncers[K comparable, T any, U any] struct {
	items  *cache.LRUCache[K, *Debouncer[T, U]]
	create func(K) *Debouncer[T, U]
}

// NewDebouncers creates a keyed set holding at most capacity debouncers.
// create builds the debouncer for a key on first use.
func NewDebouncers[K comparable, T any, U any](capacity int, create func(key K) *Debouncer[T, U]) *Debouncers[K, T, U] {
	items := cache.NewLRUCache[K, *Debouncer[T, U]](capacity)
	items.SetEvictCallback(func(_ K, d *Debouncer[T, U]) {
		d.Stop()
	})
	return &Debouncers[K, T, U]{items: items, create: create}
}

// Submit routes value to the debouncer for key.
func (s *Debouncers[K, T, U]) Submit(ctx context.Context, key K, value T) *Future[U] {
	d := s.items.GetOrCreate(key, func() *Debouncer[T, U] { return s.create(key) })
	return d.Submit(ctx, value)
}

// Len reports how many debouncers are alive.
func (s *Debouncers[K, T, U]) Len() int {
	return s.items.Len()
}

// Close stops every debouncer.
func (s *Debouncers[K, T, U]) Close() {
	s.items.Clear()
}
