package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// ExtractorConfig holds configuration for the language extractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie checked for a language preference.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter checked for a language preference.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts extracted languages to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang" query
// parameter and the Accept-Language header. With supported languages set,
// explicit choices outside the set are ignored and the header is negotiated.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	supported := make([]string, len(config.SupportedLangs))
	for i, lang := range config.SupportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	accept := func(code string) string {
		code = Normalize(code)
		if code == "" || len(supported) == 0 {
			return code
		}
		if slices.Contains(supported, code) {
			return code
		}
		if base, _, found := strings.Cut(code, "-"); found && slices.Contains(supported, base) {
			return base
		}
		return ""
	}

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := accept(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if config.QueryParamName != "" {
			if lang := accept(r.URL.Query().Get(config.QueryParamName)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(supported) > 0 {
			return Negotiate(header, supported, "")
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return Normalize(first)
	}
}
