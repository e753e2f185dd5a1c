// Package logger builds *slog.Logger values with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler and wraps it in LogHandlerDecorator, which
// runs the registered ContextExtractor callbacks before delegating. Attribute
// helpers such as Field, Session and Error keep key names consistent:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "formkit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("customer"), logger.Valid(true))
package logger
