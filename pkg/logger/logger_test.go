package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText)).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("skipped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "formkit"), logger.WithOutput(buf))
		log.Debug("skipped")
		log.Info("kept")
		entry := decode(t, buf)
		assert.Equal(t, "formkit", entry["service"])
		assert.Equal(t, "prod", entry["env"])
	})

	t.Run("context extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.ContextValue("session", ctxKey{}), nil),
			logger.WithAttr(logger.Component("test")),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, "acme")
		log.InfoContext(ctx, "hello")
		entry := decode(t, buf)
		assert.Equal(t, "acme", entry["session"])
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotNil(t, logger.OrDiscard(nil))
		l := slog.Default()
		assert.Same(t, l, logger.OrDiscard(l))
	})
}

func TestAttrs(t *testing.T) {
	t.Run("errors skip nils", func(t *testing.T) {
		err1, err2 := errors.New("first"), errors.New("second")
		attr := logger.Errors(err1, nil, err2)
		require.Equal(t, slog.KindGroup, attr.Value.Kind())
		assert.Len(t, attr.Value.Group(), 2)
		assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
	})

	t.Run("empty values give empty attrs", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
		assert.True(t, logger.Session("").Equal(slog.Attr{}))
	})

	t.Run("keys", func(t *testing.T) {
		assert.Equal(t, "field", logger.Field("emailGroup.email").Key)
		assert.Equal(t, "form", logger.Form("customer").Key)
		assert.Equal(t, "lang", logger.Lang("es").Key)
		assert.Equal(t, "valid", logger.Valid(true).Key)
		assert.Equal(t, "failures", logger.Failures(2).Key)
		assert.Equal(t, "request_id", logger.RequestID("abc").Key)
		assert.Equal(t, "req", logger.Group("req", logger.Session("s")).Key)
	})
}
