package order

import "fosso/internal/pkg/errs"

// Address is the shipping address snapshot copied into the order at creation.
// It is a plain value copied from the customer's saved address at checkout;
// later edits to the saved address never alter historical orders.
type Address struct {
	AddressID    string
	AddressType  string
	PhoneNumber  string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// Validate checks that the snapshot carries the minimum fields needed to ship.
func (a Address) Validate() error {
	if a.AddressID == "" {
		return errs.NewValueIsRequiredError("address id")
	}
	if a.AddressLine1 == "" {
		return errs.NewValueIsRequiredError("address line 1")
	}
	if a.City == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if a.Country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	return nil
}
