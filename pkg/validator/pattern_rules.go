package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

// EmailPattern is the address expression used by the customer form.
const EmailPattern = `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+`

// compiled patterns are shared by every rule instance; forms are rebuilt per
// request so the same expressions are compiled over and over otherwise.
var patternCache = cache.NewLRUCache[string, *regexp.Regexp](256)

// compilePattern makes the expression match the whole value. A pattern that
// already starts with ^ and ends with $ is used as written; any other pattern
// is wrapped as ^(?:pattern)$ so alternations stay inside the anchors.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	expr := pattern
	if !anchored(expr) {
		expr = "^(?:" + expr + ")$"
	}

	if re, ok := patternCache.Get(expr); ok {
		return re, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	patternCache.Put(expr, re)
	return re, nil
}

func anchored(expr string) bool {
	return strings.HasPrefix(expr, "^") && strings.HasSuffix(expr, "$") && !strings.HasSuffix(expr, `\$`)
}

// Pattern fails when a non-empty value does not match pattern. Unanchored
// patterns must match the whole value; fully anchored ones are used as is,
// so ^a|b$ accepts "ax".
// An invalid expression never matches, so every provided value fails.
func Pattern(pattern string) Rule {
	re, err := compilePattern(pattern)
	return newRule(RulePattern,
		fmt.Sprintf("must match pattern %s", pattern),
		map[string]any{"pattern": pattern},
		func(value any) bool {
			if IsEmpty(value) {
				return true
			}
			if err != nil {
				return false
			}
			s, ok := AsString(value)
			return ok && re.MatchString(s)
		},
	)
}

// Email is Pattern(EmailPattern) reported under its own rule name.
func Email() Rule {
	rule := Pattern(EmailPattern)
	rule.Name = RuleEmail
	rule.Error.Rule = RuleEmail
	rule.Error.Message = "must be a valid email address"
	rule.Error.TranslationKey = "validation." + RuleEmail
	return rule
}
