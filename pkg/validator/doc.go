// Package validator provides a small set of pure, named validation rules for
// primitive form values: required, minlength, maxlength, pattern, email,
// range and oneof.
//
// A Rule pairs a Check function over a single value with translation-friendly
// error metadata. Rules do not know which field they run against; the field
// name is bound when the rule is evaluated, which lets a form swap rule sets
// at runtime without rebuilding them.
//
// # Empty values
//
// Every rule except Required passes for an empty value (nil, blank string,
// empty collection). Combine a rule with Required to demand a value.
//
// # Usage
//
//	err := validator.Apply("firstName", value,
//	    validator.Required(),
//	    validator.MinLength(3),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Rules("firstName") => []string{"minlength"}
//	}
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. Individual failures can be inspected with Has, Get, Rules and
// Fields.
//
// # Performance Considerations
//
// Pattern compiles its expression once per distinct pattern; compiled
// expressions are kept in a bounded LRU shared by all rules.
package validator
