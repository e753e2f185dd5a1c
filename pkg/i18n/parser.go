package i18n

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parser turns catalogue content into translations keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, content []byte) (map[string]map[string]any, error)

func (f ParserFunc) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return f(ctx, content)
}

// YAMLParser parses catalogues of the form:
//
//	en:
//	  validation:
//	    required: "Please enter a value."
var YAMLParser = ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data, ErrFailedToParseYAML)
})

// JSONParser parses the same structure as YAMLParser, encoded as JSON.
var JSONParser = ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data, ErrFailedToParseJSON)
})

// ParserForFile picks a parser by file extension, or returns nil.
func ParserForFile(name string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "yaml", "yml":
		return YAMLParser
	case "json":
		return JSONParser
	}
	return nil
}

func byLanguage(data map[string]any, kind error) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		if lang == "" {
			return nil, errors.Join(kind, ErrEmptyLanguageCode)
		}
		m, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(kind, fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[strings.ToLower(lang)] = m
	}
	if len(result) == 0 {
		return nil, ErrNoTranslationsFound
	}
	return result, nil
}
