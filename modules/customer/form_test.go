package customer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestNewForm(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		g := customer.NewForm()

		assert.Equal(t, customer.NotifyEmail, g.LookupField(customer.FieldNotification).Value())
		assert.Equal(t, true, g.LookupField(customer.FieldSendCatalog).Value())
		assert.Nil(t, g.LookupField(customer.FieldRating).Value())
		assert.Equal(t, 0, g.Array(customer.FieldAddresses).Len())
		assert.Empty(t, g.LookupField(customer.FieldPhone).Rules())
	})

	t.Run("pristine form fails required fields", func(t *testing.T) {
		t.Parallel()
		report := customer.NewForm().Validate()

		assert.False(t, report.Valid)
		assert.Equal(t, []string{validator.RuleRequired}, report.Rules(customer.FieldFirstName))
		assert.Equal(t, []string{validator.RuleRequired}, report.Rules(customer.FieldLastName))
		assert.True(t, report.Has(customer.FieldEmail))
		assert.False(t, report.Has(customer.FieldEmailGroup), "match waits until both sides are touched")
		assert.False(t, report.Has(customer.FieldRating))
	})

	t.Run("phone required only for text notifications", func(t *testing.T) {
		t.Parallel()
		g := customer.NewForm()
		notification := g.LookupField(customer.FieldNotification)
		phone := g.LookupField(customer.FieldPhone)

		notification.SetValue(customer.NotifyText)
		phone.SetValue("")
		assert.True(t, phone.Errors().Has(validator.RuleRequired))

		notification.SetValue(customer.NotifyEmail)
		assert.True(t, phone.Valid())
	})

	t.Run("rating range", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			value any
			valid bool
		}{
			{nil, true},
			{1, true},
			{5, true},
			{"3", true},
			{0, false},
			{6, false},
			{"abc", false},
			{4.9, false},
			{"2.5", false},
		} {
			g := customer.NewForm()
			rating := g.LookupField(customer.FieldRating)
			rating.SetValue(tc.value)
			assert.Equal(t, tc.valid, rating.Valid(), "rating %v", tc.value)
		}
	})

	t.Run("email confirmation", func(t *testing.T) {
		t.Parallel()
		g := customer.NewForm()
		email := g.LookupField(customer.FieldEmail)
		confirm := g.LookupField(customer.FieldConfirmEmail)
		email.MarkTouched()
		confirm.MarkTouched()

		email.SetValue("a@b.com")
		confirm.SetValue("c@d.com")
		assert.Equal(t, []string{validator.RuleMatch}, g.Validate().Rules(customer.FieldEmailGroup))

		confirm.SetValue("a@b.com")
		assert.False(t, g.Validate().Has(customer.FieldEmailGroup))

		confirm.SetValue("")
		assert.Equal(t, []string{validator.RuleRequired}, g.Validate().Rules(customer.FieldEmailGroup))
	})

	t.Run("address entries", func(t *testing.T) {
		t.Parallel()
		g := customer.NewForm()
		addr := g.Array(customer.FieldAddresses).Push()

		assert.Equal(t, "home", addr.Field("addressType").Value())

		addr.Field("zip").SetValue("1234")
		addr.Field("state").SetValue("CAL")
		report := g.Validate()
		assert.Equal(t, []string{validator.RulePattern}, report.Rules("addresses.0.zip"))
		assert.Equal(t, []string{validator.RuleMaxLength}, report.Rules("addresses.0.state"))
	})
}

func TestTestData(t *testing.T) {
	t.Parallel()

	g := customer.NewForm()
	require.NoError(t, g.Apply(customer.TestData()))

	assert.Equal(t, "Sutton", g.LookupField(customer.FieldFirstName).Value())
	assert.Equal(t, "Yamanashi", g.LookupField(customer.FieldLastName).Value())
	assert.Equal(t, false, g.LookupField(customer.FieldSendCatalog).Value())
	assert.Equal(t, "", g.LookupField(customer.FieldEmail).Value())

	report := g.Validate()
	assert.False(t, report.Has(customer.FieldFirstName))
	assert.False(t, report.Has(customer.FieldLastName))
	assert.True(t, report.Has(customer.FieldEmail))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	infos := form.Describe(customer.NewForm())
	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		paths = append(paths, info.Path)
	}

	assert.Contains(t, paths, customer.FieldFirstName)
	assert.Contains(t, paths, customer.FieldEmailGroup)
	assert.Contains(t, paths, "addresses.*.zip")
}
