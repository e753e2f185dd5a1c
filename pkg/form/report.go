package form

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Report is the outcome of validating a whole form.
type Report struct {
	Valid  bool              `json:"valid"`
	Errors map[string]Result `json:"errors,omitempty"`
}

// Has reports whether anything failed at path.
func (r Report) Has(path string) bool {
	return len(r.Errors[path]) > 0
}

// Rules returns the rules failing at path in lexical order.
func (r Report) Rules(path string) []string {
	return r.Errors[path].Names()
}

// Paths returns every failing path in lexical order.
func (r Report) Paths() []string {
	return slices.Sorted(maps.Keys(r.Errors))
}

// ValidationErrors converts the failures of r into validator.ValidationErrors,
// resolving each message through t. Paths are visited in lexical order and the
// rules of a field in declaration order. It returns nil for a valid report.
func (r Report) ValidationErrors(g *Group, t MessageTable) validator.ValidationErrors {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}

	var out validator.ValidationErrors
	for _, path := range r.Paths() {
		names := r.Rules(path)
		var params func(string) map[string]any
		if f := g.LookupField(path); f != nil {
			names = f.failing()
			params = f.params
		}

		for _, name := range names {
			var p map[string]any
			if params != nil {
				p = params(name)
			}
			verr := validator.ValidationError{
				Field:             path,
				Rule:              name,
				TranslationKey:    "validation." + name,
				TranslationValues: p,
			}
			if t != nil {
				verr.Message, _ = t.Message(name, p)
			}
			out.Add(verr)
		}
	}
	return out
}
