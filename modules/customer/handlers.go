package customer

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// SessionHeader carries the browser session of live validation and drafts.
const SessionHeader = "X-Session-ID"

type draftRequest struct {
	Session string `path:"session" json:"-" form:"-"`
	form.Snapshot
}

type idRequest struct {
	ID string `path:"id"`
}

// Handle returns the HTTP routes of the customer form:
//
//	GET    /form             field descriptions
//	GET    /form/test-data   sample snapshot
//	POST   /validate         validate a snapshot
//	POST   /live?field=path  debounced validation after a field change
//	PUT    /drafts/{session} save a draft
//	GET    /drafts/{session} load a draft
//	DELETE /drafts/{session} drop a draft
//	POST   /                 submit
//	GET    /{id}             load a customer
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/form", handler.Wrap(s.describeHandler,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/form/test-data", handler.Wrap(s.testDataHandler,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/validate", handler.Wrap(s.validateHandler,
		handler.WithBinder[handler.Context, form.Snapshot](binder.Body()),
		handler.WithErrorHandler[handler.Context, form.Snapshot](s.errorHandler),
	))
	r.Post("/live", handler.Wrap(s.liveHandler,
		handler.WithBinder[handler.Context, form.Snapshot](binder.Body()),
		handler.WithErrorHandler[handler.Context, form.Snapshot](s.errorHandler),
	))

	r.Route("/drafts/{session}", func(r chi.Router) {
		r.Put("/", handler.Wrap(s.saveDraftHandler,
			handler.WithBinders[handler.Context, draftRequest](binder.Path(chi.URLParam), binder.Body()),
			handler.WithErrorHandler[handler.Context, draftRequest](s.errorHandler),
		))
		r.Get("/", handler.Wrap(s.loadDraftHandler,
			handler.WithBinder[handler.Context, draftRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, draftRequest](s.errorHandler),
		))
		r.Delete("/", handler.Wrap(s.deleteDraftHandler,
			handler.WithBinder[handler.Context, draftRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, draftRequest](s.errorHandler),
		))
	})

	r.Post("/", handler.Wrap(s.submitHandler,
		handler.WithBinder[handler.Context, form.Snapshot](binder.Body()),
		handler.WithErrorHandler[handler.Context, form.Snapshot](s.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(s.getHandler,
		handler.WithBinder[handler.Context, idRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, idRequest](s.errorHandler),
	))

	return r
}

func (s *Service) describeHandler(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(s.Describe())
}

func (s *Service) testDataHandler(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(TestData())
}

func (s *Service) validateHandler(ctx handler.Context, req form.Snapshot) handler.Response {
	out, err := s.Validate(ctx, i18n.GetLocale(ctx), req)
	if err != nil {
		return s.fail(err)
	}
	return outcomeResponse(out)
}

func (s *Service) liveHandler(ctx handler.Context, req form.Snapshot) handler.Response {
	r := ctx.Request()
	session := r.Header.Get(SessionHeader)
	if session == "" {
		session = r.URL.Query().Get("session")
	}

	out, err := s.Live(ctx, session, r.URL.Query().Get("field"), i18n.GetLocale(ctx), req)
	if errors.Is(err, async.ErrSuperseded) {
		return handler.Empty()
	}
	if err != nil {
		return s.fail(err)
	}
	return outcomeResponse(out)
}

func (s *Service) saveDraftHandler(ctx handler.Context, req draftRequest) handler.Response {
	if err := s.SaveDraft(ctx, req.Session, req.Snapshot); err != nil {
		return s.fail(err)
	}
	return handler.Empty()
}

func (s *Service) loadDraftHandler(ctx handler.Context, req draftRequest) handler.Response {
	snap, err := s.LoadDraft(ctx, req.Session)
	if err != nil {
		return s.fail(err)
	}
	return handler.JSON(snap)
}

func (s *Service) deleteDraftHandler(ctx handler.Context, req draftRequest) handler.Response {
	if err := s.DeleteDraft(ctx, req.Session); err != nil {
		return s.fail(err)
	}
	return handler.Empty()
}

func (s *Service) submitHandler(ctx handler.Context, req form.Snapshot) handler.Response {
	c, err := s.Submit(ctx, i18n.GetLocale(ctx), req)
	if err != nil {
		return s.fail(err)
	}

	if session := ctx.Request().Header.Get(SessionHeader); session != "" {
		if err := s.DeleteDraft(ctx, session); err != nil {
			s.log.WarnContext(ctx, "failed to drop draft after submit", logger.Session(session), logger.Error(err))
		}
	}
	return handler.JSON(c, handler.WithJSONStatus(http.StatusCreated))
}

func (s *Service) getHandler(ctx handler.Context, req idRequest) handler.Response {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return s.fail(ErrCustomerNotFound)
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return s.fail(err)
	}
	return handler.JSON(c)
}

// errorResponse hands err to the service error handler at render time, so
// DataStar and JSON clients both get their own error format.
type errorResponse struct {
	handle handler.ErrorHandler[handler.Context]
	err    error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	e.handle(handler.NewContext(w, r), e.err)
	return nil
}

func (s *Service) fail(err error) handler.Response {
	return errorResponse{handle: s.errorHandler, err: mapError(err)}
}

// outcomeResponse patches DataStar signals or renders the JSON envelope.
func outcomeResponse(out Outcome) handler.Response {
	errs := make(map[string][]string, len(out.Errors))
	for path, res := range out.Errors {
		errs[path] = res.Names()
	}
	messages := out.Messages
	if messages == nil {
		messages = map[string]string{}
	}
	return handler.Signals(map[string]any{
		"valid":    out.Valid,
		"errors":   errs,
		"messages": messages,
		"lang":     out.Lang,
	})
}

// mapError turns service errors into errors the handler package renders with
// the right status.
func mapError(err error) error {
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		out := handler.NewValidationError()
		for _, verr := range verrs {
			msg := verr.Message
			if msg == "" {
				msg = verr.Rule
			}
			out.Add(verr.Field, msg)
		}
		return out
	}

	switch {
	case errors.Is(err, form.ErrInvalidSnapshot):
		return errors.Join(handler.NewHTTPError(http.StatusBadRequest, "invalid_snapshot"), err)
	case errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrCustomerNotFound):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, ErrEmptySession), errors.Is(err, ErrUnknownField):
		return errors.Join(handler.ErrBadRequest, err)
	}
	return err
}
