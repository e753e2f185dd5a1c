package customer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(customer.Locales, customer.LocalesDir))
	require.NoError(t, err)
	return tr
}

func newService(t *testing.T, cfg customer.Config) *customer.Service {
	t.Helper()
	s := customer.NewService(cfg, newTranslator(t), nil, nil)
	t.Cleanup(s.Close)
	return s
}

func validSnapshot() form.Snapshot {
	return form.Snapshot{
		Values: map[string]any{
			"firstName": "Sutton",
			"lastName":  "Yamanashi",
			"emailGroup": map[string]any{
				"email":        "sutton@example.com",
				"confirmEmail": "sutton@example.com",
			},
			"rating": float64(4),
			"addresses": []any{
				map[string]any{"street1": "1 Main St", "city": "Springfield", "state": "il", "zip": "62 701"},
			},
		},
	}
}

func TestServiceValidate(t *testing.T) {
	t.Parallel()
	s := newService(t, customer.DefaultConfig())
	ctx := context.Background()

	t.Run("valid snapshot", func(t *testing.T) {
		t.Parallel()
		out, err := s.Validate(ctx, "en", validSnapshot())
		require.NoError(t, err)
		assert.True(t, out.Valid)
		assert.Empty(t, out.Errors)
		assert.Empty(t, out.Messages)
		assert.Equal(t, "en", out.Lang)
	})

	t.Run("messages only for touched fields", func(t *testing.T) {
		t.Parallel()
		out, err := s.Validate(ctx, "en", form.Snapshot{
			Values:  map[string]any{"firstName": "Al", "lastName": ""},
			Touched: []string{customer.FieldFirstName},
		})
		require.NoError(t, err)
		assert.False(t, out.Valid)
		assert.True(t, out.Errors[customer.FieldLastName].Has(validator.RuleRequired))
		assert.Equal(t, map[string]string{
			customer.FieldFirstName: "Please enter at least 3 characters.",
		}, out.Messages)
	})

	t.Run("translated messages", func(t *testing.T) {
		t.Parallel()
		out, err := s.Validate(ctx, "es-MX", form.Snapshot{
			Values:  map[string]any{"firstName": "Al"},
			Touched: []string{customer.FieldFirstName},
		})
		require.NoError(t, err)
		assert.Equal(t, "es", out.Lang)
		assert.Equal(t, "Introduzca al menos 3 caracteres.", out.Messages[customer.FieldFirstName])
	})

	t.Run("unsupported language falls back to english", func(t *testing.T) {
		t.Parallel()
		out, err := s.Validate(ctx, "fr", form.Snapshot{})
		require.NoError(t, err)
		assert.Equal(t, "en", out.Lang)
	})

	t.Run("markup is stripped before validation", func(t *testing.T) {
		t.Parallel()
		out, err := s.Validate(ctx, "en", form.Snapshot{
			Values:  map[string]any{"firstName": "<b>Al</b>"},
			Touched: []string{customer.FieldFirstName},
		})
		require.NoError(t, err)
		assert.True(t, out.Errors[customer.FieldFirstName].Has(validator.RuleMinLength))
	})

	t.Run("malformed snapshot", func(t *testing.T) {
		t.Parallel()
		_, err := s.Validate(ctx, "en", form.Snapshot{
			Values: map[string]any{"emailGroup": "a@b.com"},
		})
		assert.ErrorIs(t, err, form.ErrInvalidSnapshot)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Validate(cctx, "en", validSnapshot())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestServiceLive(t *testing.T) {
	t.Parallel()

	cfg := customer.DefaultConfig()
	cfg.EmailDebounce = 150 * time.Millisecond
	cfg.FirstNameDebounce = 50 * time.Millisecond
	s := newService(t, cfg)
	ctx := context.Background()

	emailSnapshot := func(email string) form.Snapshot {
		return form.Snapshot{
			Values:  map[string]any{"emailGroup": map[string]any{"email": email}},
			Touched: []string{customer.FieldEmail},
		}
	}

	t.Run("newer change supersedes pending one", func(t *testing.T) {
		t.Parallel()
		first := async.Async(ctx, emailSnapshot("sutton@"), func(ctx context.Context, snap form.Snapshot) (customer.Outcome, error) {
			return s.Live(ctx, "s1", customer.FieldEmail, "en", snap)
		})
		time.Sleep(30 * time.Millisecond)

		out, err := s.Live(ctx, "s1", customer.FieldEmail, "en", emailSnapshot("sutton@example.com"))
		require.NoError(t, err)
		assert.False(t, out.Errors[customer.FieldEmail].Has(validator.RuleEmail))

		_, err = first.Await()
		assert.ErrorIs(t, err, async.ErrSuperseded)
	})

	t.Run("sessions do not interfere", func(t *testing.T) {
		t.Parallel()
		a := async.Async(ctx, emailSnapshot("a@"), func(ctx context.Context, snap form.Snapshot) (customer.Outcome, error) {
			return s.Live(ctx, "s2", customer.FieldEmail, "en", snap)
		})
		b := async.Async(ctx, emailSnapshot("b@example.com"), func(ctx context.Context, snap form.Snapshot) (customer.Outcome, error) {
			return s.Live(ctx, "s3", customer.FieldEmail, "en", snap)
		})

		outs, err := async.WaitAll(a, b)
		require.NoError(t, err)
		assert.Equal(t, "Please enter a valid email address.", outs[0].Messages[customer.FieldEmail])
		assert.Empty(t, outs[1].Messages)
	})

	t.Run("waits for the quiet period", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		_, err := s.Live(ctx, "s4", customer.FieldFirstName, "en", form.Snapshot{
			Values: map[string]any{"firstName": "Sutton"},
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), cfg.FirstNameDebounce)
	})

	t.Run("fields without debounce validate at once", func(t *testing.T) {
		t.Parallel()
		out, err := s.Live(ctx, "s5", customer.FieldLastName, "en", form.Snapshot{
			Values:  map[string]any{"lastName": ""},
			Touched: []string{customer.FieldLastName},
		})
		require.NoError(t, err)
		assert.Equal(t, "Please enter a value.", out.Messages[customer.FieldLastName])
	})

	t.Run("caller gives up", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := s.Live(cctx, "s6", customer.FieldEmail, "en", emailSnapshot("x@example.com"))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("evicted session still gets an outcome", func(t *testing.T) {
		t.Parallel()
		small := cfg
		small.MaxLiveSessions = 1
		small.EmailDebounce = 200 * time.Millisecond
		s := newService(t, small)

		a := async.Async(ctx, emailSnapshot("a@"), func(ctx context.Context, snap form.Snapshot) (customer.Outcome, error) {
			return s.Live(ctx, "a", customer.FieldEmail, "en", snap)
		})
		time.Sleep(20 * time.Millisecond)

		out, err := s.Live(ctx, "b", customer.FieldEmail, "en", emailSnapshot("b@example.com"))
		require.NoError(t, err)
		assert.False(t, out.Errors[customer.FieldEmail].Has(validator.RuleEmail))

		out, err = a.Await()
		require.NoError(t, err)
		assert.True(t, out.Errors[customer.FieldEmail].Has(validator.RuleEmail))
	})

	t.Run("closed service still answers", func(t *testing.T) {
		t.Parallel()
		s := newService(t, cfg)

		pending := async.Async(ctx, emailSnapshot("c@"), func(ctx context.Context, snap form.Snapshot) (customer.Outcome, error) {
			return s.Live(ctx, "c", customer.FieldEmail, "en", snap)
		})
		time.Sleep(20 * time.Millisecond)
		s.Close()

		out, err := pending.Await()
		require.NoError(t, err)
		assert.Equal(t, "Please enter a valid email address.", out.Messages[customer.FieldEmail])
	})

	t.Run("rejects bad input", func(t *testing.T) {
		t.Parallel()
		_, err := s.Live(ctx, "", customer.FieldEmail, "en", form.Snapshot{})
		assert.ErrorIs(t, err, customer.ErrEmptySession)

		_, err = s.Live(ctx, "s7", "nickname", "en", form.Snapshot{})
		assert.ErrorIs(t, err, customer.ErrUnknownField)
	})
}

func TestServiceSubmit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores a valid customer", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		c, err := s.Submit(ctx, "en", validSnapshot())
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "Sutton", c.FirstName)
		assert.Equal(t, "sutton@example.com", c.Email)
		assert.Equal(t, customer.NotifyEmail, c.Notification)
		assert.True(t, c.SendCatalog)
		require.NotNil(t, c.Rating)
		assert.Equal(t, 4, *c.Rating)
		require.Len(t, c.Addresses, 1)
		assert.Equal(t, customer.Address{
			AddressType: "home",
			Street1:     "1 Main St",
			City:        "Springfield",
			State:       "IL",
			Zip:         "62701",
		}, c.Addresses[0])

		stored, err := s.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.Email, stored.Email)
	})

	t.Run("fractional rating is rejected", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		snap := validSnapshot()
		snap.Values["rating"] = 4.9
		c, err := s.Submit(ctx, "en", snap)
		require.Error(t, err)
		assert.Nil(t, c)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{validator.RuleInteger}, verrs.Rules(customer.FieldRating))
		assert.Equal(t, []string{"Please enter a whole number."}, verrs.Get(customer.FieldRating))
	})

	t.Run("unreadable catalog opt-in is rejected", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		snap := validSnapshot()
		snap.Values["sendCatalog"] = "maybe"
		_, err := s.Submit(ctx, "en", snap)
		assert.ErrorIs(t, err, form.ErrInvalidSnapshot)
	})

	t.Run("test data misses the email", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		_, err := s.Submit(ctx, "en", customer.TestData())
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{
			customer.FieldEmailGroup,
			customer.FieldConfirmEmail,
			customer.FieldEmail,
		}, verrs.Fields())
		assert.Equal(t, []string{"Please enter a value."}, verrs.Get(customer.FieldEmail))
		assert.Equal(t, []string{validator.RuleRequired}, verrs.Rules(customer.FieldEmail))
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("text notification needs a phone", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		snap := validSnapshot()
		snap.Values["notification"] = customer.NotifyText
		_, err := s.Submit(ctx, "en", snap)
		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{customer.FieldPhone}, verrs.Fields())

		snap.Values["phone"] = "+1 (555) 010-0000"
		c, err := s.Submit(ctx, "en", snap)
		require.NoError(t, err)
		assert.Equal(t, "+15550100000", c.Phone)
	})

	t.Run("case-different confirmation fails", func(t *testing.T) {
		t.Parallel()
		s := newService(t, customer.DefaultConfig())

		snap := validSnapshot()
		snap.Values["emailGroup"] = map[string]any{
			"email":        "sutton@example.com",
			"confirmEmail": "Sutton@example.com",
		}
		_, err := s.Submit(ctx, "en", snap)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.RuleMatch, verrs[0].Rule)
		assert.Equal(t, "The confirmation does not match.", verrs[0].Message)
	})
}

func TestServiceDrafts(t *testing.T) {
	t.Parallel()
	s := newService(t, customer.DefaultConfig())
	ctx := context.Background()

	_, err := s.LoadDraft(ctx, "s1")
	assert.ErrorIs(t, err, customer.ErrDraftNotFound)

	require.NoError(t, s.SaveDraft(ctx, "s1", form.Snapshot{
		Values:  map[string]any{"firstName": " <i>Sutton</i> "},
		Touched: []string{customer.FieldFirstName},
	}))

	snap, err := s.LoadDraft(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Sutton", snap.Values["firstName"])
	assert.Equal(t, []string{customer.FieldFirstName}, snap.Touched)

	require.NoError(t, s.DeleteDraft(ctx, "s1"))
	_, err = s.LoadDraft(ctx, "s1")
	assert.ErrorIs(t, err, customer.ErrDraftNotFound)

	assert.ErrorIs(t, s.SaveDraft(ctx, "", form.Snapshot{}), customer.ErrEmptySession)
}
