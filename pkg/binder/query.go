package binder

import (
	"fmt"
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Slices accept both repeated parameters and comma separated values.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		if u, ok := v.(FormValuesUnmarshaler); ok {
			if err := u.UnmarshalFormValues(values); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
			}
			return nil
		}
		return bindToStruct(v, "query", values, ErrFailedToParseQuery)
	}
}
