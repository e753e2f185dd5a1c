// Package handler provides type-safe HTTP request handling for the form API.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap turns them into http.HandlerFunc, running binders,
// decorators and the error handler around them:
//
//	func validate(ctx handler.Context, snap form.Snapshot) handler.Response {
//		outcome, err := svc.Validate(ctx, i18n.GetLocale(ctx), snap)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(outcome)
//	}
//
//	r.Post("/customer/validate", handler.Wrap(validate,
//		handler.WithBinder[handler.Context, form.Snapshot](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, form.Snapshot](handler.NewErrorHandler(log)),
//	))
//
// # Response Types
//
//	handler.JSON(data)                           // 200 OK with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))
//	handler.JSONError(err)                       // error envelope, status mapped from err
//	handler.Empty()                              // 204 No Content
//	handler.Signals(map[string]any{...})         // DataStar signal patch, JSON otherwise
//
// # Error Handling
//
// Errors map to statuses in one place: ValidationError becomes 422 with
// per-field details, HTTPError keeps its code, binder failures become 400 or
// 415, and anything else is a 500 whose text is never sent to the client.
//
//	verr := handler.NewValidationError()
//	verr.Add("email", "Enter a valid email address.")
//	return handler.JSONError(verr)
//
// # DataStar
//
// Requests that accept text/event-stream or carry the datastar query
// parameter are DataStar requests. Their Context exposes an SSE generator,
// and Signals and the default error handler answer them with signal patches.
package handler
