package customer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Translator resolves validation messages per language. *i18n.Translator
// implements it.
type Translator interface {
	Catalog(lang, prefix string) i18n.Catalog
}

// Outcome is the verdict on one snapshot of the customer form.
type Outcome struct {
	Valid bool `json:"valid"`
	// Errors maps field paths to their failing rules.
	Errors map[string]form.Result `json:"errors,omitempty"`
	// Messages holds the text to show next to touched or changed fields.
	Messages map[string]string `json:"messages,omitempty"`
	Lang     string            `json:"lang"`
}

type liveKey struct {
	session string
	field   string
}

type liveInput struct {
	lang     string
	snapshot form.Snapshot
}

// Service validates, drafts and stores customer form submissions.
type Service struct {
	cfg          Config
	translator   Translator
	drafts       DraftStore
	repo         Repository
	live         *async.Debouncers[liveKey, liveInput, Outcome]
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithErrorHandler sets the error handler of the HTTP routes.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService wires the customer service. Nil stores fall back to memory.
func NewService(cfg Config, translator Translator, drafts DraftStore, repo Repository, opts ...Option) *Service {
	if drafts == nil {
		drafts = NewMemoryDraftStore()
	}
	if repo == nil {
		repo = NewMemoryRepository()
	}
	if cfg.MaxLiveSessions <= 0 {
		cfg.MaxLiveSessions = DefaultConfig().MaxLiveSessions
	}

	s := &Service{
		cfg:        cfg,
		translator: translator,
		drafts:     drafts,
		repo:       repo,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.OrDiscard(s.log).With(logger.Component("customer"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}

	s.live = async.NewDebouncers(cfg.MaxLiveSessions, func(k liveKey) *async.Debouncer[liveInput, Outcome] {
		return async.NewDebouncer(s.cfg.debounce(k.field), func(ctx context.Context, in liveInput) (Outcome, error) {
			return s.Validate(ctx, in.lang, in.snapshot)
		})
	})
	return s
}

// Close stops pending live validations.
func (s *Service) Close() {
	s.live.Close()
}

// Validate builds a fresh form, loads the sanitized snapshot into it and
// reports the verdict with messages in lang.
func (s *Service) Validate(ctx context.Context, lang string, snap form.Snapshot) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	g := NewForm()
	if err := g.Apply(sanitize(snap)); err != nil {
		return Outcome{}, err
	}

	out := s.outcome(g, lang)
	s.log.DebugContext(ctx, "form validated",
		logger.Lang(out.Lang),
		logger.Valid(out.Valid),
		logger.Failures(len(out.Errors)),
	)
	return out, nil
}

// Live validates a snapshot after a change of field. Changes of the email and
// first name are debounced per session: a newer change of the same field
// resolves the pending call with async.ErrSuperseded. A call whose debouncer
// is dropped before it fires is validated without waiting further.
func (s *Service) Live(ctx context.Context, session, field, lang string, snap form.Snapshot) (Outcome, error) {
	if session == "" {
		return Outcome{}, ErrEmptySession
	}
	if field != "" {
		if _, ok := NewForm().Lookup(field); !ok {
			return Outcome{}, ErrUnknownField
		}
	}

	if s.cfg.debounce(field) <= 0 {
		return s.Validate(ctx, lang, snap)
	}

	start := time.Now()
	out, err := s.live.Submit(ctx, liveKey{session: session, field: field}, liveInput{lang: lang, snapshot: snap}).AwaitContext(ctx)
	switch {
	case errors.Is(err, async.ErrSuperseded):
		s.log.DebugContext(ctx, "live validation superseded",
			logger.Session(session),
			logger.Field(field),
			logger.Duration(time.Since(start)),
		)
	case errors.Is(err, async.ErrStopped):
		// The debouncer was evicted for another session or closed on shutdown
		// before the quiet period ended. Nothing newer is pending for this
		// caller, so the snapshot is validated once right away.
		s.log.DebugContext(ctx, "live debouncer stopped, validating directly",
			logger.Session(session),
			logger.Field(field),
		)
		return s.Validate(ctx, lang, snap)
	}
	return out, err
}

// Submit validates a complete submission as if every field had been visited
// and stores the customer when it passes. Failures are returned as
// validator.ValidationErrors with messages in lang.
func (s *Service) Submit(ctx context.Context, lang string, snap form.Snapshot) (*Customer, error) {
	g := NewForm()
	if err := g.Apply(sanitize(snap)); err != nil {
		return nil, err
	}
	g.MarkTouched()

	report := g.Validate()
	if !report.Valid {
		catalog := s.translator.Catalog(lang, s.cfg.MessagePrefix)
		return nil, report.ValidationErrors(g, catalog)
	}

	c := fromForm(g)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "customer created", slog.String("customer_id", c.ID.String()))
	return c, nil
}

// Get returns a stored customer.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// SaveDraft keeps the sanitized snapshot for session.
func (s *Service) SaveDraft(ctx context.Context, session string, snap form.Snapshot) error {
	if session == "" {
		return ErrEmptySession
	}
	return s.drafts.SaveDraft(ctx, session, sanitize(snap), s.cfg.DraftTTL)
}

// LoadDraft returns the draft of session.
func (s *Service) LoadDraft(ctx context.Context, session string) (form.Snapshot, error) {
	if session == "" {
		return form.Snapshot{}, ErrEmptySession
	}
	return s.drafts.LoadDraft(ctx, session)
}

// DeleteDraft drops the draft of session.
func (s *Service) DeleteDraft(ctx context.Context, session string) error {
	return s.drafts.DeleteDraft(ctx, session)
}

// Describe lists the fields of the customer form with their rules.
func (s *Service) Describe() []form.FieldInfo {
	return form.Describe(NewForm())
}

func (s *Service) outcome(g *form.Group, lang string) Outcome {
	report := g.Validate()
	catalog := s.translator.Catalog(lang, s.cfg.MessagePrefix)

	out := Outcome{
		Valid: report.Valid,
		Lang:  catalog.Lang(),
	}
	if len(report.Errors) > 0 {
		out.Errors = report.Errors
	}
	if msgs := form.DeriveMessages(g, catalog); len(msgs) > 0 {
		out.Messages = msgs
	}
	return out
}
