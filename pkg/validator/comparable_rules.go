package validator

import "reflect"

// Equal reports whether two field values are the same once rendered as input text,
// so 3 and "3" compare equal.
func Equal(a, b any) bool {
	if IsEmpty(a) && IsEmpty(b) {
		return true
	}
	as, aok := AsString(a)
	bs, bok := AsString(b)
	if !aok || !bok {
		return reflect.DeepEqual(a, b)
	}
	return as == bs
}

// Match builds the error reported when two sibling values differ.
func Match(field, other string) ValidationError {
	return ValidationError{
		Field:          field,
		Rule:           RuleMatch,
		Message:        "values do not match",
		TranslationKey: "validation." + RuleMatch,
		TranslationValues: map[string]any{
			"field": field,
			"other": other,
		},
	}
}
