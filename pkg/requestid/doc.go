// Package requestid tags every HTTP request with an X-Request-ID, generated
// with github.com/google/uuid when the client did not send a valid one, and
// exposes it to loggers through LogExtractor.
package requestid
