package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule names reported in validation results. They double as message keys.
const (
	RuleRequired  = "required"
	RuleMinLength = "minlength"
	RuleMaxLength = "maxlength"
	RulePattern   = "pattern"
	RuleEmail     = "email"
	RuleRange     = "range"
	RuleInteger   = "integer"
	RuleOneOf     = "oneof"
	RuleMatch     = "match"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field in declaration order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Rules returns the failing rule names reported for field.
func (ve ValidationErrors) Rules(field string) []string {
	var rules []string
	for _, err := range ve {
		if err.Field == field {
			rules = append(rules, err.Rule)
		}
	}
	return rules
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a named, pure check over a single value. Check must be total: it never
// panics and returns false only for a value that violates the rule.
type Rule struct {
	Name  string
	Check func(value any) bool
	Error ValidationError
}

// Validate runs the rule against value and returns the error bound to field
// when the check fails.
func (r Rule) Validate(field string, value any) (ValidationError, bool) {
	if r.Check == nil || r.Check(value) {
		return ValidationError{}, true
	}
	verr := r.Error
	verr.Field = field
	if verr.Rule == "" {
		verr.Rule = r.Name
	}
	values := make(map[string]any, len(r.Error.TranslationValues)+1)
	for k, v := range r.Error.TranslationValues {
		values[k] = v
	}
	values["field"] = field
	verr.TranslationValues = values
	return verr, false
}

// Params returns the rule parameters without the field placeholder.
// It returns nil for rules without parameters.
func (r Rule) Params() map[string]any {
	if len(r.Error.TranslationValues) == 0 {
		return nil
	}
	params := make(map[string]any, len(r.Error.TranslationValues))
	for k, v := range r.Error.TranslationValues {
		if k == "field" {
			continue
		}
		params[k] = v
	}
	return params
}

// Apply executes rules against value and returns any validation errors bound to field.
func Apply(field string, value any, rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if verr, ok := rule.Validate(field, value); !ok {
			errors = append(errors, verr)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

func newRule(name, message string, values map[string]any, check func(value any) bool) Rule {
	return Rule{
		Name:  name,
		Check: check,
		Error: ValidationError{
			Rule:              name,
			Message:           message,
			TranslationKey:    "validation." + name,
			TranslationValues: values,
		},
	}
}
