package customer

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field paths of the customer form.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailGroup   = "emailGroup"
	FieldEmail        = "emailGroup.email"
	FieldConfirmEmail = "emailGroup.confirmEmail"
	FieldPhone        = "phone"
	FieldNotification = "notification"
	FieldRating       = "rating"
	FieldSendCatalog  = "sendCatalog"
	FieldAddresses    = "addresses"
)

// Notification channels.
const (
	NotifyEmail = "email"
	NotifyText  = "text"
)

// NewForm builds a pristine customer form. The phone becomes required while
// the text notification channel is selected.
func NewForm() *form.Group {
	notification := form.NewField("notification", NotifyEmail, validator.OneOf(NotifyEmail, NotifyText))
	phone := form.NewField("phone", "")
	form.Conditional(notification, phone, form.When(NotifyText, validator.Required()))

	return form.NewGroup("",
		form.NewField("firstName", "", validator.Required(), validator.MinLength(3)),
		form.NewField("lastName", "", validator.Required(), validator.MaxLength(50)),
		form.NewGroup("emailGroup",
			form.NewField("email", "", validator.Required(), validator.Email()),
			form.NewField("confirmEmail", "", validator.Required()),
		).WithRules(form.Match("email", "confirmEmail")),
		phone,
		notification,
		form.NewField("rating", nil, validator.Range(1, 5), validator.Integer()),
		form.NewField("sendCatalog", true),
		form.NewArray("addresses", NewAddress, 0),
	)
}

// NewAddress builds one entry of the addresses array.
func NewAddress() *form.Group {
	return form.NewGroup("",
		form.NewField("addressType", "home", validator.OneOf("home", "work", "other")),
		form.NewField("street1", ""),
		form.NewField("street2", ""),
		form.NewField("city", ""),
		form.NewField("state", "", validator.MaxLength(2)),
		form.NewField("zip", "", validator.Pattern(`\d{5}`)),
	)
}

// TestData is the snapshot behind the form's "Test Data" button. It patches
// only some fields, so the email stays empty.
func TestData() form.Snapshot {
	return form.Snapshot{
		Values: map[string]any{
			"firstName":   "Sutton",
			"lastName":    "Yamanashi",
			"sendCatalog": false,
		},
	}
}

var cleanText = sanitizer.Compose(
	sanitizer.StripHTML,
	sanitizer.RemoveControlChars,
	sanitizer.SingleLine,
	sanitizer.Trim,
)

var fieldCleaners = map[string]func(string) string{
	"phone": sanitizer.NormalizePhone,
	"state": sanitizer.ToUpper,
	"zip":   sanitizer.NormalizePostalCode,
}

// sanitize normalizes every submitted string before it reaches the form.
// Email addresses get the generic cleanup only: a confirmation that differs in
// case must still fail the match.
func sanitize(s form.Snapshot) form.Snapshot {
	values, _ := sanitizer.Tree(s.Values, cleanText).(map[string]any)
	values = sanitizer.Fields(values, fieldCleaners)
	if addrs, ok := values["addresses"].([]any); ok {
		for i, a := range addrs {
			if m, ok := a.(map[string]any); ok {
				addrs[i] = sanitizer.Fields(m, fieldCleaners)
			}
		}
	}
	s.Values = values
	return s
}
