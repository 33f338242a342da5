package commands

import (
	"errors"

	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrAddressIDIsRequired = errors.New("address id is required")
)

// CheckoutCommand represents a request to convert a customer's cart into an order.
// Encapsulates the customer, the saved address to ship to, and the payment method.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, cart, catalog, customers, pricer)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, tracking number %s", result.OrderID, result.TrackingNumber)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	addressID     string
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the customer's cart.
// Validates that the customer ID is valid, the address ID is not empty, and
// the payment method is a known value. Returns an error if any validation fails.
func NewCheckoutCommand(
	customerID kernel.UUID,
	addressID string,
	paymentMethod order.PaymentMethod,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setAddressID(addressID),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the customer checking out.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier of the customer's saved shipping address.
func (c CheckoutCommand) AddressID() string {
	return c.addressID
}

// PaymentMethod returns how the order will be paid.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setAddressID(addressID string) error {
	if addressID == "" {
		return ErrAddressIDIsRequired
	}

	c.addressID = addressID
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
