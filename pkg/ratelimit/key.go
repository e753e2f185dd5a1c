package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/clientip"
)

// maxKeyLength is the maximum allowed length for a rate limit key.
const maxKeyLength = 64

// KeyFunc extracts a unique identifier from an HTTP request for rate limiting.
type KeyFunc func(*http.Request) string

// ByIP keys requests by client IP, preferring the one stored by
// clientip.Middleware.
func ByIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
			return "ip:" + ip
		}
		if ip := clientip.GetIP(r); ip != "" {
			return "ip:" + ip
		}
		return ""
	}
}

// ByHeader keys requests by the value of header, such as a session id.
func ByHeader(header string) KeyFunc {
	return func(r *http.Request) string {
		if v := strings.TrimSpace(r.Header.Get(header)); v != "" {
			return strings.ToLower(header) + ":" + v
		}
		return ""
	}
}

// ByPath keys requests by URL path, for per-endpoint limits.
func ByPath() KeyFunc {
	return func(r *http.Request) string {
		return "path:" + r.URL.Path
	}
}

// Composite combines multiple key extraction functions into a single key.
// Keys longer than 64 characters are hashed to 32 hex characters.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, "|")
		if len(combined) > maxKeyLength {
			hash := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(hash[:16])
		}
		return combined
	}
}
