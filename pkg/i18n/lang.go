package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header size accepted for negotiation.
const maxAcceptLanguageLength = 4096

// Negotiate picks the best supported language for an Accept-Language header,
// honouring quality values and regional fallbacks ("es-MX" matches "es").
// It returns fallback when nothing matches.
func Negotiate(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, strings.ToLower(code))
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return codes[idx]
}

// Normalize validates a language code and returns it lowercased, or an empty
// string when it is not a well-formed BCP 47 tag.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > 35 {
		return ""
	}
	if _, err := language.Parse(code); err != nil {
		return ""
	}
	return strings.ToLower(code)
}
