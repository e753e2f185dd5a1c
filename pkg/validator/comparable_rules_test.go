package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestEqual(t *testing.T) {
	t.Run("same strings", func(t *testing.T) {
		assert.True(t, validator.Equal("a@b.com", "a@b.com"))
		assert.False(t, validator.Equal("a@b.com", "c@d.com"))
	})

	t.Run("numbers compare by text form", func(t *testing.T) {
		assert.True(t, validator.Equal(3, "3"))
		assert.True(t, validator.Equal(2.5, "2.5"))
	})

	t.Run("empty values are equal", func(t *testing.T) {
		assert.True(t, validator.Equal(nil, ""))
	})

	t.Run("non-primitive values do not panic", func(t *testing.T) {
		assert.True(t, validator.Equal(map[string]any{"a": 1}, map[string]any{"a": 1}))
		assert.False(t, validator.Equal(map[string]any{"a": 1}, "a"))
	})
}

func TestMatch(t *testing.T) {
	verr := validator.Match("emailGroup", "email")
	assert.Equal(t, validator.RuleMatch, verr.Rule)
	assert.Equal(t, "validation.match", verr.TranslationKey)
	assert.Equal(t, "email", verr.TranslationValues["other"])
}
