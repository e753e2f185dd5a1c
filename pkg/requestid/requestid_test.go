package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(header string) (ctxID, respID string) {
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = requestid.FromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(requestid.Header, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return ctxID, rec.Header().Get(requestid.Header)
	}

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve("")
		_, err := uuid.Parse(ctxID)
		require.NoError(t, err)
		assert.Equal(t, ctxID, respID)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve("req-123_abc")
		assert.Equal(t, "req-123_abc", ctxID)
		assert.Equal(t, "req-123_abc", respID)
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"<script>", "a b", strings.Repeat("x", 129)} {
			ctxID, _ := serve(bad)
			assert.NotEqual(t, bad, ctxID)
			assert.NotEmpty(t, ctxID)
		}
	})
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, "", requestid.FromContext(context.Background()))
	assert.Equal(t, "x", requestid.FromContext(requestid.WithContext(context.Background(), "x")))
}

func TestLogExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LogExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "abc"), "with id")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	log.InfoContext(context.Background(), "without id")
	assert.NotContains(t, buf.String(), "request_id")
}
