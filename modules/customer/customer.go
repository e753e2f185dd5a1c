package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Customer is an accepted submission of the customer form.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Notification string    `json:"notification"`
	Rating       *int      `json:"rating,omitempty"`
	SendCatalog  bool      `json:"sendCatalog"`
	Addresses    []Address `json:"addresses,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address is one entry of the customer's address list.
type Address struct {
	AddressType string `json:"addressType"`
	Street1     string `json:"street1,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
}

// fromForm reads a validated customer form.
func fromForm(g *form.Group) *Customer {
	c := &Customer{
		FirstName:    text(g, FieldFirstName),
		LastName:     text(g, FieldLastName),
		Email:        text(g, FieldEmail),
		Phone:        text(g, FieldPhone),
		Notification: text(g, FieldNotification),
	}

	if f := g.LookupField(FieldRating); f != nil {
		if n, ok := validator.AsNumber(f.Value()); ok {
			rating := int(n)
			c.Rating = &rating
		}
	}
	if f := g.LookupField(FieldSendCatalog); f != nil {
		c.SendCatalog, _ = f.Value().(bool)
	}

	if arr := g.Array(FieldAddresses); arr != nil {
		for _, item := range arr.Items() {
			c.Addresses = append(c.Addresses, Address{
				AddressType: text(item, "addressType"),
				Street1:     text(item, "street1"),
				Street2:     text(item, "street2"),
				City:        text(item, "city"),
				State:       text(item, "state"),
				Zip:         text(item, "zip"),
			})
		}
	}
	return c
}

func text(g *form.Group, path string) string {
	f := g.LookupField(path)
	if f == nil {
		return ""
	}
	s, _ := validator.AsString(f.Value())
	return s
}
