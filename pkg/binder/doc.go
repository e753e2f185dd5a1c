// Package binder decodes HTTP request data into Go values for handler.Wrap.
//
// Five binders are provided:
//
//   - JSON(): strict JSON bodies (unknown fields rejected, 1MB limit)
//   - Form(): urlencoded and multipart form values
//   - Query(): URL query parameters
//   - Path(extractor): router path parameters, e.g. binder.Path(chi.URLParam)
//   - Body(): JSON or Form, chosen by Content-Type
//
// Structs bind through `form`, `query` and `path` tags. A target implementing
// FormValuesUnmarshaler receives the raw url.Values instead, which is how a
// form.Snapshot is decoded from a browser submission:
//
//	var snap form.Snapshot
//	err := binder.Form()(r, &snap)
//
// All failures wrap one of the package errors, so callers can map them to
// HTTP statuses with errors.Is.
package binder
