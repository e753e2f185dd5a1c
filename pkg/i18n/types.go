package i18n

import "net/http"

// LangExtractor extracts the preferred language code from an HTTP request.
// It returns an empty string when the request carries no usable preference.
type LangExtractor func(r *http.Request) string
