package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required fails when the value is empty: nil, blank string or empty collection.
func Required() Rule {
	return newRule(RuleRequired, "field is required", nil, func(value any) bool {
		return !IsEmpty(value)
	})
}

// MinLength fails when a non-empty value is shorter than min characters.
// Length is counted in runes.
func MinLength(min int) Rule {
	return newRule(RuleMinLength,
		fmt.Sprintf("must be at least %d characters long", min),
		map[string]any{"min": min},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			s, ok := AsString(value)
			if !ok {
				return true
			}
			return utf8.RuneCountInString(s) >= min
		},
	)
}

// MaxLength fails when a non-empty value is longer than max characters.
func MaxLength(max int) Rule {
	return newRule(RuleMaxLength,
		fmt.Sprintf("must be at most %d characters long", max),
		map[string]any{"max": max},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			s, ok := AsString(value)
			if !ok {
				return true
			}
			return utf8.RuneCountInString(s) <= max
		},
	)
}

// Convenience aliases matching the attribute names used by HTML inputs.

func MinLen(min int) Rule {
	return MinLength(min)
}

func MaxLen(max int) Rule {
	return MaxLength(max)
}
