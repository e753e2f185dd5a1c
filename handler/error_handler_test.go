package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		level  string
	}{
		{name: "validation", err: handler.ValidationError{"email": {"Required."}}, status: http.StatusUnprocessableEntity, code: "validation_error", level: "WARN"},
		{name: "http error", err: handler.ErrNotFound, status: http.StatusNotFound, code: "not_found", level: "WARN"},
		{name: "malformed body", err: fmt.Errorf("%w: eof", binder.ErrFailedToParseJSON), status: http.StatusBadRequest, code: "bad_request", level: "WARN"},
		{name: "media type", err: binder.ErrUnsupportedMediaType, status: http.StatusUnsupportedMediaType, code: "unsupported_media_type", level: "WARN"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "internal_server_error", level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs bytes.Buffer
			log := logger.New(logger.WithOutput(&logs), logger.WithFormat(logger.FormatJSON))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/customer/submit", nil)
			handler.NewErrorHandler(log)(handler.NewContext(rec, req), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.Contains(t, logs.String(), `"level":"`+tt.level+`"`)
			assert.Contains(t, logs.String(), `"path":"/customer/submit"`)
		})
	}

	t.Run("datastar request gets error signal", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Accept", "text/event-stream")

		handler.NewErrorHandler(slog.New(slog.DiscardHandler))(handler.NewContext(rec, req), handler.ErrNotFound)
		assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
		assert.Contains(t, rec.Body.String(), `"code":"not_found"`)
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		verr := handler.NewValidationError()
		assert.True(t, verr.IsEmpty())
		assert.Equal(t, "validation failed", verr.Error())
	})

	t.Run("fields in path order", func(t *testing.T) {
		t.Parallel()
		verr := handler.NewValidationError()
		verr.Add("lastName", "Required.")
		verr.Add("email", "Enter a valid email address.")
		verr.Add("email", "Email addresses do not match.")

		assert.Equal(t, "validation failed: email: Enter a valid email address., lastName: Required.", verr.Error())
		assert.True(t, verr.Has("email"))
		assert.False(t, verr.Has("phone"))
		assert.Equal(t, "Enter a valid email address.", verr.Get("email"))
		assert.Len(t, verr["email"], 2)
	})
}
