package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestOneOf(t *testing.T) {
	rule := validator.OneOf("email", "text")

	t.Run("passes for allowed option", func(t *testing.T) {
		assert.True(t, rule.Check("email"))
		assert.True(t, rule.Check("text"))
	})

	t.Run("fails for unknown option", func(t *testing.T) {
		assert.False(t, rule.Check("fax"))
		assert.False(t, rule.Check("Email"))
	})

	t.Run("passes for empty value", func(t *testing.T) {
		assert.True(t, rule.Check(""))
	})

	t.Run("lists options for translation", func(t *testing.T) {
		assert.Equal(t, "email, text", rule.Error.TranslationValues["options"])
		assert.Equal(t, "must be one of: email, text", rule.Error.Message)
	})
}
