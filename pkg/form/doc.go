// Package form holds the state of a structured form on the server and derives
// its validation verdicts.
//
// A form is a tree of controls. A Field carries a value, its touched and dirty
// flags and an ordered, replaceable list of validator.Rule values. A Group is a
// named collection of controls with optional cross-field rules such as Match.
// An Array is a growable list of Groups built from one factory.
//
// Fields are evaluated with Evaluate whenever their value or rules change; an
// empty value passes every rule except required. Group rules run afterwards
// through EvaluateCrossField and may withhold a verdict, which Match does
// until both siblings are touched. A group is valid when all of its children
// and its own rules pass; an array when all of its entries do.
//
// Basic usage:
//
//	root := form.NewGroup("",
//		form.NewField("firstName", "", validator.Required(), validator.MinLength(3)),
//		form.NewGroup("emailGroup",
//			form.NewField("email", "", validator.Required(), validator.Email()),
//			form.NewField("confirmEmail", "", validator.Required()),
//		).WithRules(form.Match("email", "confirmEmail")),
//	)
//
//	if err := root.Apply(snapshot); err != nil {
//		return err
//	}
//	report := root.Validate()
//	messages := form.DeriveMessages(root, form.Messages{
//		"required":  "Please enter a value.",
//		"minlength": "Please enter at least {min} characters.",
//	})
//
// Rules that depend on another field are attached with Conditional:
//
//	form.Conditional(notification, phone, form.When("text", validator.Required()))
//
// Form values are not safe for concurrent use; build one per request.
package form
