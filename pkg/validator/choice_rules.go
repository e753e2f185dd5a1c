package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf fails when a provided value is not one of the allowed options.
// Values are compared in their string form.
func OneOf(options ...string) Rule {
	allowed := slices.Clone(options)
	return newRule(RuleOneOf,
		fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		map[string]any{"options": strings.Join(allowed, ", ")},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			s, ok := AsString(value)
			return ok && slices.Contains(allowed, s)
		},
	)
}
