package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRuleValidate(t *testing.T) {
	t.Run("binds field name on failure", func(t *testing.T) {
		verr, ok := validator.MinLength(3).Validate("firstName", "Al")
		require.False(t, ok)
		assert.Equal(t, "firstName", verr.Field)
		assert.Equal(t, validator.RuleMinLength, verr.Rule)
		assert.Equal(t, map[string]any{"field": "firstName", "min": 3}, verr.TranslationValues)
	})

	t.Run("does not leak field name into shared rule", func(t *testing.T) {
		rule := validator.MinLength(3)
		_, _ = rule.Validate("firstName", "Al")
		assert.Equal(t, map[string]any{"min": 3}, rule.Error.TranslationValues)
		assert.Equal(t, map[string]any{"min": 3}, rule.Params())
	})

	t.Run("nil check passes", func(t *testing.T) {
		_, ok := validator.Rule{Name: "noop"}.Validate("x", nil)
		assert.True(t, ok)
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply("email", "a@b.com", validator.Required(), validator.Email())
		assert.NoError(t, err)
	})

	t.Run("collects failures in declaration order", func(t *testing.T) {
		err := validator.Apply("zip", "12x", validator.MinLength(5), validator.Pattern(`\d+`))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{validator.RuleMinLength, validator.RulePattern}, verrs.Rules("zip"))
		assert.Equal(t, []string{"zip"}, verrs.Fields())
		assert.True(t, verrs.Has("zip"))
		assert.False(t, verrs.Has("city"))
		assert.Len(t, verrs.Get("zip"), 2)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("error message lists fields", func(t *testing.T) {
		verrs := validator.ValidationErrors{
			{Field: "firstName", Message: "field is required"},
			{Field: "email", Message: "must be a valid email address"},
		}
		assert.Equal(t, "validation failed: firstName: field is required; email: must be a valid email address", verrs.Error())
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	})

	t.Run("add appends", func(t *testing.T) {
		var verrs validator.ValidationErrors
		verrs.Add(validator.ValidationError{Field: "a"})
		assert.False(t, verrs.IsEmpty())
	})

	t.Run("detectable through wrapping", func(t *testing.T) {
		err := fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "a", Rule: "required"}})
		assert.True(t, validator.IsValidationError(err))
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.Equal(t, "a", validator.ExtractValidationErrors(err)[0].Field)
	})

	t.Run("nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})
}

func TestValueHelpers(t *testing.T) {
	t.Run("AsNumber", func(t *testing.T) {
		n, ok := validator.AsNumber("4.5")
		assert.True(t, ok)
		assert.Equal(t, 4.5, n)

		_, ok = validator.AsNumber("NaN")
		assert.False(t, ok)
		_, ok = validator.AsNumber(struct{}{})
		assert.False(t, ok)
	})

	t.Run("AsString", func(t *testing.T) {
		s, ok := validator.AsString(42)
		assert.True(t, ok)
		assert.Equal(t, "42", s)

		_, ok = validator.AsString(nil)
		assert.False(t, ok)
	})
}
