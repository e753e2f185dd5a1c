package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// Evaluate applies rules to the field's current value and returns the failing
// rule names. An empty value passes every rule except required.
func Evaluate(f *Field, rules []validator.Rule) Result {
	var res Result
	empty := validator.IsEmpty(f.value)
	for _, r := range rules {
		if r.Check == nil {
			continue
		}
		if empty && r.Name != validator.RuleRequired {
			continue
		}
		if !r.Check(f.value) {
			res = res.merge(Result{r.Name: true})
		}
	}
	return res
}

// EvaluateCrossField applies the group's own rules. Rules run after the
// field-level rules of the children have been evaluated and read siblings
// through the group's name table only.
func EvaluateCrossField(g *Group) Result {
	var res Result
	for _, r := range g.rules {
		if r.Check == nil {
			continue
		}
		res = res.merge(r.Check(g))
	}
	return res
}

// Match requires the sibling fields first and second to hold the same value.
// No verdict is given while either side is missing or untouched. Once both
// are touched, an empty side fails as required and differing values as match.
func Match(first, second string) GroupRule {
	return GroupRule{
		Name: validator.RuleMatch,
		Check: func(g *Group) Result {
			a, b := g.Field(first), g.Field(second)
			if a == nil || b == nil {
				return nil
			}
			if !a.Touched() || !b.Touched() {
				return nil
			}
			if validator.IsEmpty(a.Value()) || validator.IsEmpty(b.Value()) {
				return Result{validator.RuleRequired: true}
			}
			if !validator.Equal(a.Value(), b.Value()) {
				return Result{validator.RuleMatch: true}
			}
			return nil
		},
	}
}
