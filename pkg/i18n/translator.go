package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Translator resolves dotted keys against loaded catalogues.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload re-reads every catalogue from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	normalized := make(map[string]map[string]any, len(translations))
	for lang, m := range translations {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if m == nil {
			return fmt.Errorf("%w: nil catalogue for %q", ErrNoTranslationsFound, lang)
		}
		normalized[strings.ToLower(lang)] = m
	}

	t.mu.Lock()
	t.translations = normalized
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

// SupportedLanguages returns the loaded language codes in lexical order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// DefaultLanguage returns the language used for unsupported requests.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args given
// as key, value pairs. Unsupported languages fall back to the default language.
// A missing key returns the key itself unless fallback to key is disabled.
//
//	translator.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return interpolate(tmpl, pairs(args))
}

// Td is T with an explicit default used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return interpolate(tmpl, pairs(args))
}

// Tc translates key using the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Catalog is the view of one language under a key prefix. It resolves
// validation messages by rule name.
type Catalog struct {
	t      *Translator
	lang   string
	prefix string
}

// Catalog returns the messages of lang below prefix, such as "validation".
func (t *Translator) Catalog(lang, prefix string) Catalog {
	return Catalog{t: t, lang: lang, prefix: strings.Trim(prefix, ".")}
}

// Lang returns the language the catalog resolves against.
func (c Catalog) Lang() string { return c.t.resolveLang(c.lang) }

// Message returns the message for name with params substituted. The boolean is
// false when the catalogue has no such message.
func (c Catalog) Message(name string, params map[string]any) (string, bool) {
	key := name
	if c.prefix != "" {
		key = c.prefix + "." + name
	}
	tmpl, ok := c.t.lookup(c.lang, key)
	if !ok {
		return "", false
	}
	values := make(map[string]string, len(params))
	for k, v := range params {
		values[k] = fmt.Sprint(v)
	}
	return interpolate(tmpl, values), true
}

func (t *Translator) resolveLang(lang string) string {
	lang = strings.ToLower(lang)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.translations[base]; ok {
			return base
		}
	}
	return t.defaultLang
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	lang = t.resolveLang(lang)

	t.mu.RLock()
	defer t.mu.RUnlock()

	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} placeholders. Unknown placeholders are kept.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
