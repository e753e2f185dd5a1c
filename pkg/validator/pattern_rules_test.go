package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestPattern(t *testing.T) {
	t.Run("requires a full match", func(t *testing.T) {
		rule := validator.Pattern(`\d{5}`)
		assert.True(t, rule.Check("12345"))
		assert.False(t, rule.Check("123456"))
		assert.False(t, rule.Check("a12345"))
	})

	t.Run("keeps explicit anchors working", func(t *testing.T) {
		rule := validator.Pattern(`^[a-z]+$`)
		assert.True(t, rule.Check("abc"))
		assert.False(t, rule.Check("abc1"))
	})

	t.Run("uses fully anchored patterns as written", func(t *testing.T) {
		rule := validator.Pattern(`^a|b$`)
		assert.True(t, rule.Check("ax"))
		assert.True(t, rule.Check("xb"))
		assert.False(t, rule.Check("x"))
	})

	t.Run("wraps partly anchored patterns", func(t *testing.T) {
		rule := validator.Pattern(`^\d+`)
		assert.True(t, rule.Check("123"))
		assert.False(t, rule.Check("123a"))
	})

	t.Run("anchors alternations as a whole", func(t *testing.T) {
		rule := validator.Pattern(`home|work`)
		assert.True(t, rule.Check("work"))
		assert.False(t, rule.Check("homework"))
	})

	t.Run("passes for empty value", func(t *testing.T) {
		assert.True(t, validator.Pattern(`\d+`).Check(""))
		assert.True(t, validator.Pattern(`\d+`).Check(nil))
	})

	t.Run("matches numbers by their text form", func(t *testing.T) {
		assert.True(t, validator.Pattern(`\d{5}`).Check(12345))
	})

	t.Run("invalid expression fails every provided value", func(t *testing.T) {
		rule := validator.Pattern(`([a-z`)
		assert.False(t, rule.Check("abc"))
		assert.True(t, rule.Check(""))
	})

	t.Run("carries the pattern for translation", func(t *testing.T) {
		rule := validator.Pattern(`\d{5}`)
		assert.Equal(t, validator.RulePattern, rule.Name)
		assert.Equal(t, map[string]any{"pattern": `\d{5}`}, rule.Error.TranslationValues)
	})
}

func TestEmail(t *testing.T) {
	rule := validator.Email()

	assert.Equal(t, validator.RuleEmail, rule.Name)
	assert.Equal(t, "validation.email", rule.Error.TranslationKey)

	for _, v := range []string{"a@b.com", "jack.sparrow+x@sea.co.uk", "a@b"} {
		assert.True(t, rule.Check(v), v)
	}
	for _, v := range []string{"plainaddress", "@b.com", "a b@c.com", "a@"} {
		assert.False(t, rule.Check(v), v)
	}
	assert.True(t, rule.Check(""))
}
