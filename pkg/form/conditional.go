package form

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// RuleSelector picks the rule set of a dependent field from the value of the
// field it depends on. Returning nil clears the rules.
type RuleSelector func(value any) []validator.Rule

// When returns a selector that applies rules while the source value equals
// expected and no rules otherwise.
func When(expected any, rules ...validator.Rule) RuleSelector {
	rules = slices.Clone(rules)
	return func(value any) []validator.Rule {
		if validator.IsEmpty(value) || !validator.Equal(value, expected) {
			return nil
		}
		return rules
	}
}

// SetConditionalRule replaces the rules of target with those selected from
// the current value of source and re-evaluates target immediately.
func SetConditionalRule(target, source *Field, sel RuleSelector) Result {
	if target == nil || source == nil || sel == nil {
		return nil
	}
	return target.SetRules(sel(source.Value())...)
}

// Conditional applies the selector now and again after every value change of
// source, so target's rules always follow source.
func Conditional(source, target *Field, sel RuleSelector) {
	if target == nil || source == nil || sel == nil {
		return
	}
	SetConditionalRule(target, source, sel)
	source.Subscribe(func(f *Field) {
		SetConditionalRule(target, f, sel)
	})
}
