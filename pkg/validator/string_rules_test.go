package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.Required()
		assert.True(t, rule.Check("test@example.com"))
		assert.Equal(t, validator.RuleRequired, rule.Name)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	})

	t.Run("fails for empty and undefined values", func(t *testing.T) {
		rule := validator.Required()
		assert.False(t, rule.Check(""))
		assert.False(t, rule.Check(nil))
		assert.False(t, rule.Check("   "))
		assert.False(t, rule.Check([]string{}))
		var s *string
		assert.False(t, rule.Check(s))
	})

	t.Run("passes for zero numbers and false", func(t *testing.T) {
		rule := validator.Required()
		assert.True(t, rule.Check(0))
		assert.True(t, rule.Check(false))
	})

	t.Run("fails iff value is empty", func(t *testing.T) {
		rule := validator.Required()
		values := []any{nil, "", " ", "a", 1, 0.5, true, []int{1}, map[string]any{}}
		for _, v := range values {
			assert.Equal(t, validator.IsEmpty(v), !rule.Check(v), "value %#v", v)
		}
	})
}

func TestMinLength(t *testing.T) {
	t.Run("passes when string equals minimum length", func(t *testing.T) {
		rule := validator.MinLength(3)
		assert.True(t, rule.Check("Sam"))
		assert.Equal(t, validator.RuleMinLength, rule.Name)
		assert.Equal(t, "must be at least 3 characters long", rule.Error.Message)
		assert.Equal(t, map[string]any{"min": 3}, rule.Error.TranslationValues)
	})

	t.Run("fails when string is shorter than minimum", func(t *testing.T) {
		assert.False(t, validator.MinLength(3).Check("Jo"))
	})

	t.Run("passes for empty value", func(t *testing.T) {
		rule := validator.MinLength(3)
		assert.True(t, rule.Check(""))
		assert.True(t, rule.Check(nil))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.True(t, validator.MinLength(3).Check("Zoë"))
		assert.False(t, validator.MinLength(4).Check("Zoë"))
	})

	t.Run("fails iff length is below minimum", func(t *testing.T) {
		for n := 0; n <= 6; n++ {
			for l := 1; l <= 6; l++ {
				s := strings.Repeat("x", l)
				assert.Equal(t, l < n, !validator.MinLength(n).Check(s), "n=%d len=%d", n, l)
			}
		}
	})

	t.Run("is independent of maxlength", func(t *testing.T) {
		s := "abcdef"
		min := validator.MinLength(3)
		assert.True(t, min.Check(s))
		assert.False(t, validator.MaxLength(4).Check(s))
		err := validator.Apply("name", s, min, validator.MaxLength(4))
		assert.Equal(t, []string{validator.RuleMaxLength}, validator.ExtractValidationErrors(err).Rules("name"))
	})
}

func TestMaxLength(t *testing.T) {
	t.Run("passes when string equals maximum length", func(t *testing.T) {
		rule := validator.MaxLength(5)
		assert.True(t, rule.Check("12345"))
		assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
		assert.Equal(t, map[string]any{"max": 5}, rule.Error.TranslationValues)
	})

	t.Run("fails when string exceeds maximum", func(t *testing.T) {
		assert.False(t, validator.MaxLength(5).Check("123456"))
	})

	t.Run("passes for empty value", func(t *testing.T) {
		assert.True(t, validator.MaxLength(0).Check(""))
	})

	t.Run("aliases behave the same", func(t *testing.T) {
		assert.Equal(t, validator.MaxLength(2).Check("abc"), validator.MaxLen(2).Check("abc"))
		assert.Equal(t, validator.MinLength(2).Check("a"), validator.MinLen(2).Check("a"))
	})
}
