// Package sanitizer normalizes user input before it is validated.
//
// Transforms are plain func(string) string values and compose with Apply and
// Compose:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.NormalizeWhitespace)
//	name := clean("  <b>Jack</b>   Harkness ")
//	// name == "Jack Harkness"
//
// Tree runs a transform over every string of a decoded JSON document, which is
// how form snapshots are cleaned; Fields applies per-key pipelines such as
// NormalizeEmail to the values of one object.
//
// HTML is stripped with github.com/microcosm-cc/bluemonday's strict policy.
package sanitizer
