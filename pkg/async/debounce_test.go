package async_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
)

func TestDebouncer(t *testing.T) {
	t.Parallel()

	t.Run("rapid submissions run once with the final value", func(t *testing.T) {
		var calls atomic.Int32
		var mu sync.Mutex
		var seen []string
		d := async.NewDebouncer(50*time.Millisecond, func(_ context.Context, v string) (string, error) {
			calls.Add(1)
			mu.Lock()
			seen = append(seen, v)
			mu.Unlock()
			return "checked:" + v, nil
		})

		ctx := context.Background()
		var futures []*async.Future[string]
		for _, v := range []string{"j", "ja", "jac", "jack@x.com"} {
			futures = append(futures, d.Submit(ctx, v))
			time.Sleep(5 * time.Millisecond)
		}

		res, err := futures[len(futures)-1].Await()
		require.NoError(t, err)
		assert.Equal(t, "checked:jack@x.com", res)

		for _, f := range futures[:len(futures)-1] {
			_, err := f.Await()
			assert.ErrorIs(t, err, async.ErrSuperseded)
		}

		assert.Equal(t, int32(1), calls.Load())
		mu.Lock()
		assert.Equal(t, []string{"jack@x.com"}, seen)
		mu.Unlock()
	})

	t.Run("submissions separated by the delay each run", func(t *testing.T) {
		var calls atomic.Int32
		d := async.NewDebouncer(10*time.Millisecond, func(_ context.Context, v int) (int, error) {
			calls.Add(1)
			return v, nil
		})

		_, err := d.Submit(context.Background(), 1).Await()
		require.NoError(t, err)
		_, err = d.Submit(context.Background(), 2).Await()
		require.NoError(t, err)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("flush runs the pending evaluation immediately", func(t *testing.T) {
		d := async.NewDebouncer(time.Hour, func(_ context.Context, v int) (int, error) {
			return v * 10, nil
		})

		f := d.Submit(context.Background(), 4)
		d.Flush()

		res, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 40, res)
	})

	t.Run("stop rejects pending and later submissions", func(t *testing.T) {
		d := async.NewDebouncer(time.Hour, func(_ context.Context, v int) (int, error) {
			return v, nil
		})

		f := d.Submit(context.Background(), 1)
		d.Stop()

		_, err := f.Await()
		assert.ErrorIs(t, err, async.ErrStopped)

		_, err = d.Submit(context.Background(), 2).Await()
		assert.ErrorIs(t, err, async.ErrStopped)
	})

	t.Run("canceled context resolves without running", func(t *testing.T) {
		var calls atomic.Int32
		d := async.NewDebouncer(5*time.Millisecond, func(_ context.Context, v int) (int, error) {
			calls.Add(1)
			return v, nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		f := d.Submit(ctx, 1)
		cancel()

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestDebouncers(t *testing.T) {
	t.Parallel()

	t.Run("keys are debounced independently", func(t *testing.T) {
		var calls atomic.Int32
		set := async.NewDebouncers(10, func(key string) *async.Debouncer[string, string] {
			return async.NewDebouncer(20*time.Millisecond, func(_ context.Context, v string) (string, error) {
				calls.Add(1)
				return key + "=" + v, nil
			})
		})
		defer set.Close()

		ctx := context.Background()
		a1 := set.Submit(ctx, "s1:email", "a")
		a2 := set.Submit(ctx, "s1:email", "ab")
		b := set.Submit(ctx, "s2:email", "z")

		_, err := a1.Await()
		assert.ErrorIs(t, err, async.ErrSuperseded)

		res, err := a2.Await()
		require.NoError(t, err)
		assert.Equal(t, "s1:email=ab", res)

		res, err = b.Await()
		require.NoError(t, err)
		assert.Equal(t, "s2:email=z", res)

		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, 2, set.Len())
	})

	t.Run("evicted debouncers are stopped", func(t *testing.T) {
		set := async.NewDebouncers(1, func(string) *async.Debouncer[int, int] {
			return async.NewDebouncer(time.Hour, func(_ context.Context, v int) (int, error) {
				return v, nil
			})
		})
		defer set.Close()

		ctx := context.Background()
		first := set.Submit(ctx, "a", 1)
		set.Submit(ctx, "b", 2)

		_, err := first.AwaitWithTimeout(time.Second)
		assert.ErrorIs(t, err, async.ErrStopped)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("many keys stay bounded", func(t *testing.T) {
		set := async.NewDebouncers(3, func(string) *async.Debouncer[int, int] {
			return async.NewDebouncer(time.Millisecond, func(_ context.Context, v int) (int, error) {
				return v, nil
			})
		})
		defer set.Close()

		for i := range 10 {
			set.Submit(context.Background(), fmt.Sprintf("k%d", i), i)
		}
		assert.LessOrEqual(t, set.Len(), 3)
	})
}
