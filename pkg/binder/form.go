package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// FormValuesUnmarshaler is implemented by targets that decode raw form values
// on their own, such as form.Snapshot. Form and Query hand them the parsed
// values instead of binding struct tags.
type FormValuesUnmarshaler interface {
	UnmarshalFormValues(values url.Values) error
}

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Uploaded files are not bound.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Slices of basic types for multi-value fields
//   - Pointers for optional fields
//
// Example:
//
//	r.Post("/customer/validate", handler.Wrap(validate,
//		handler.WithBinder(binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}

		var values url.Values
		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = url.Values{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		if u, ok := v.(FormValuesUnmarshaler); ok {
			if err := u.UnmarshalFormValues(values); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return nil
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// mediaTypeOf returns the request media type without parameters.
func mediaTypeOf(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: missing content-type header", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType)), nil
}
