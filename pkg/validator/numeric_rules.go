package validator

import (
	"fmt"
	"math"
)

// Range fails when a provided value is not a number or falls outside [min, max].
// A missing value passes; pair it with Required to demand one.
func Range[T Numeric](min, max T) Rule {
	lo, hi := float64(min), float64(max)
	return newRule(RuleRange,
		fmt.Sprintf("must be a number between %v and %v", min, max),
		map[string]any{"min": min, "max": max},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			n, ok := AsNumber(value)
			if !ok {
				return false
			}
			return n >= lo && n <= hi
		},
	)
}

// Min is a one-sided Range.
func Min[T Numeric](min T) Rule {
	lo := float64(min)
	rule := newRule(RuleRange,
		fmt.Sprintf("must be at least %v", min),
		map[string]any{"min": min},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			n, ok := AsNumber(value)
			return ok && n >= lo
		},
	)
	rule.Error.TranslationKey = "validation.min"
	return rule
}

// Max is a one-sided Range.
func Max[T Numeric](max T) Rule {
	hi := float64(max)
	rule := newRule(RuleRange,
		fmt.Sprintf("must be at most %v", max),
		map[string]any{"max": max},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			n, ok := AsNumber(value)
			return ok && n <= hi
		},
	)
	rule.Error.TranslationKey = "validation.max"
	return rule
}

// Integer fails when a provided value is not a whole number. Range alone
// accepts fractions, so stored integer fields pair it with Integer.
func Integer() Rule {
	return newRule(RuleInteger, "must be a whole number", nil, func(value any) bool {
		if IsEmpty(value) {
			return true
		}
		n, ok := AsNumber(value)
		return ok && n == math.Trunc(n)
	})
}
