// Package async provides generic futures and debouncing helpers.
//
// A Future is the eventual result of a computation. Async starts a function
// in its own goroutine and returns a Future immediately; callers block on
// Await, AwaitContext or AwaitWithTimeout, or poll with IsComplete. WaitAll
// collects several futures in order.
//
// Debouncer coalesces bursts of submissions. Each Submit returns a Future;
// when a newer value arrives inside the quiet period the older future
// resolves with ErrSuperseded and only the last value is evaluated. This is
// how live form validation avoids re-validating on every keystroke:
//
//	d := async.NewDebouncer(500*time.Millisecond, validateEmail)
//	res, err := d.Submit(ctx, value).Await()
//	if errors.Is(err, async.ErrSuperseded) {
//	    return // a newer keystroke owns the verdict
//	}
//
// Debouncers keeps one Debouncer per key (for example session and field) in
// a bounded LRU; evicted debouncers are stopped and their pending futures
// resolve with ErrStopped.
package async
