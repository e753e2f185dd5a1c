// Package ratelimit throttles requests with an in-memory token bucket.
//
// Each key owns a bucket refilled continuously at rate tokens per interval,
// holding at most burst tokens. Buckets live in an LRU bounded by MaxKeys.
//
//	limiter, err := ratelimit.NewTokenBucket(20, time.Second, ratelimit.WithBurst(40))
//	if err != nil {
//		return err
//	}
//	r.With(ratelimit.Middleware(limiter, ratelimit.ByIP())).Post("/live", live)
//
// The middleware fails open: limiter errors let the request through.
package ratelimit
