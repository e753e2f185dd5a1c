package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	dotRegex        = regexp.MustCompile(`\.+`)

	// strictPolicy strips every tag and attribute, keeping text content.
	strictPolicy = bluemonday.StrictPolicy()
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into one
// space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops non-printable characters, keeping whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes markup from user input. Entity-escaped markup such as
// &lt;b&gt; is decoded first so it is removed like a literal tag; entities
// produced by the policy are unescaped again so plain text round-trips.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	return html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(s)))
}

// MaxLength truncates s to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// KeepDigits drops everything but ASCII digits.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// SingleLine replaces line breaks with spaces.
func SingleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
