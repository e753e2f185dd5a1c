// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// GetIP checks DefaultHeaders in order (CF-Connecting-IP, True-Client-IP,
// X-Forwarded-For, X-Real-IP) and falls back to RemoteAddr. Middleware stores
// the result in the request context for rate limiting and logging:
//
//	r.Use(clientip.Middleware)
//	r.With(ratelimit.Middleware(limiter, ratelimit.ByIP())).Post("/live", live)
//
// The headers are only trustworthy when a proxy you control sets them.
package clientip
