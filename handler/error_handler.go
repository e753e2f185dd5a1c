package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status, a machine readable code and a message
// that is safe to show to clients. Server errors never expose err's text.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var (
		httpErr HTTPError
		valErr  ValidationError
	)
	switch {
	case errors.As(err, &valErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = valErr.Error()

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)

	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = err.Error()

	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the default error handler that adapts to request type.
// Regular requests get the JSON error envelope with the mapped status.
// DataStar requests get an "error" signal patch so the page can show it inline.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	log = logger.OrDiscard(log)

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		var resp Response
		if IsDataStar(ctx.Request()) {
			resp = Signals(map[string]any{
				"error": map[string]any{
					"code":    info.Code,
					"message": info.Message,
				},
			})
		} else {
			resp = JSONError(err)
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
