package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Body creates a binder that picks JSON or Form by the request Content-Type,
// so one endpoint can serve fetch calls and plain HTML form posts.
func Body() func(r *http.Request, v any) error {
	jsonBinder, formBinder := JSON(), Form()

	return func(r *http.Request, v any) error {
		mediaType, err := mediaTypeOf(r)
		if err != nil {
			return err
		}

		switch {
		case mediaType == "application/json":
			return jsonBinder(r, v)
		case mediaType == "application/x-www-form-urlencoded",
			strings.HasPrefix(mediaType, "multipart/form-data"):
			return formBinder(r, v)
		}
		return fmt.Errorf("%w: got %s, expected application/json or a form encoding", ErrUnsupportedMediaType, mediaType)
	}
}
