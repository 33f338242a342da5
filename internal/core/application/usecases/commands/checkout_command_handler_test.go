package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fosso/internal/core/application/usecases/commands"
	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/core/domain/services"
	"fosso/internal/core/ports"
	"fosso/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*order.Order, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInStatusDueBy(ctx context.Context, status order.Status, dueBy time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, status, dueBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartClient struct{ mock.Mock }

func (m *MockCartClient) ListItems(ctx context.Context, customerID kernel.UUID) ([]ports.CartItem, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CartItem), args.Error(1)
}
func (m *MockCartClient) Clear(ctx context.Context, customerID kernel.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockCatalogClient struct{ mock.Mock }

func (m *MockCatalogClient) GetProduct(ctx context.Context, productID string) (*ports.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Product), args.Error(1)
}
func (m *MockCatalogClient) Save(ctx context.Context, product *ports.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

type MockCustomerClient struct{ mock.Mock }

func (m *MockCustomerClient) GetAddress(ctx context.Context, customerID kernel.UUID, addressID string) (*order.Address, error) {
	args := m.Called(ctx, customerID, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Address), args.Error(1)
}

func testShippingAddress() *order.Address {
	return &order.Address{
		AddressID:    "addr-1",
		AddressType:  "HOME",
		PhoneNumber:  "+35560000000",
		AddressLine1: "12 Harbor Street",
		City:         "Tirana",
		PostalCode:   "1001",
		Country:      "AL",
	}
}

func testProduct(productID string, price, discount float64, stock int) *ports.Product {
	return &ports.Product{
		ProductID:     productID,
		MerchantID:    "merchant-1",
		Name:          "Product " + productID,
		Price:         decimal.NewFromFloat(price),
		DiscountPrice: decimal.NewFromFloat(discount),
		ShippingCost:  decimal.NewFromInt(5),
		Variants: []ports.Variant{
			{Color: "Black", Size: "M", StockQuantity: stock},
			{Color: "White", Size: "L", StockQuantity: stock},
		},
	}
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)

	cart := new(MockCartClient)
	catalog := new(MockCatalogClient)
	customers := new(MockCustomerClient)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	product := testProduct("prod-1", 50, 39.99, 10)
	var placed *order.Order

	mock.InOrder(
		cart.On("ListItems", ctx, customerID).
			Return([]ports.CartItem{{ProductID: "prod-1", Color: "Black", Size: "M", Quantity: 2}}, nil).Once(),
		customers.On("GetAddress", ctx, customerID, "addr-1").Return(testShippingAddress(), nil).Once(),
		catalog.On("GetProduct", ctx, "prod-1").Return(product, nil).Once(),
		catalog.On("Save", ctx, product).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cart.On("Clear", ctx, customerID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCheckoutCommandHandler(factory, cart, catalog, customers, services.NewPricingEngine())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, placed)
	assert.Equal(t, placed.ID(), result.OrderID)
	assert.Equal(t, placed.TrackingNumber(), result.TrackingNumber)
	assert.Equal(t, order.New, placed.Status())
	assert.Equal(t, customerID, placed.CustomerID())

	// Stock was decremented on the snapshot before it was saved back.
	assert.Equal(t, 8, product.Variants[0].StockQuantity)

	require.Len(t, placed.Details(), 1)
	detail := placed.Details()[0]
	// The discount price wins over the list price.
	assert.True(t, detail.Price().Equal(decimal.NewFromFloat(39.99)))
	assert.True(t, detail.Subtotal().Equal(decimal.RequireFromString("79.98")))
	assert.True(t, placed.Totals().ShippingCost().Equal(decimal.NewFromInt(5)))

	cart.AssertExpectations(t)
	catalog.AssertExpectations(t)
	customers.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	h := commands.NewCheckoutCommandHandler(
		new(MockOrderUoWFactory), new(MockCartClient), new(MockCatalogClient),
		new(MockCustomerClient), services.NewPricingEngine(),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)

	cart := new(MockCartClient)
	cart.On("ListItems", ctx, customerID).Return([]ports.CartItem{}, nil).Once()

	h := commands.NewCheckoutCommandHandler(
		new(MockOrderUoWFactory), cart, new(MockCatalogClient),
		new(MockCustomerClient), services.NewPricingEngine(),
	)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	cart.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_AddressNotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-9", order.PaymentMethodCard)

	cart := new(MockCartClient)
	customers := new(MockCustomerClient)
	mock.InOrder(
		cart.On("ListItems", ctx, customerID).
			Return([]ports.CartItem{{ProductID: "prod-1", Color: "Black", Size: "M", Quantity: 1}}, nil).Once(),
		customers.On("GetAddress", ctx, customerID, "addr-9").
			Return(nil, errs.NewObjectNotFoundError("address", "addr-9")).Once(),
	)

	h := commands.NewCheckoutCommandHandler(
		new(MockOrderUoWFactory), cart, new(MockCatalogClient),
		customers, services.NewPricingEngine(),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCheckoutCommandHandler_Handle_UnknownVariant(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)

	cart := new(MockCartClient)
	catalog := new(MockCatalogClient)
	customers := new(MockCustomerClient)

	product := testProduct("prod-1", 50, 0, 10)
	mock.InOrder(
		cart.On("ListItems", ctx, customerID).
			Return([]ports.CartItem{{ProductID: "prod-1", Color: "Green", Size: "XXL", Quantity: 1}}, nil).Once(),
		customers.On("GetAddress", ctx, customerID, "addr-1").Return(testShippingAddress(), nil).Once(),
		catalog.On("GetProduct", ctx, "prod-1").Return(product, nil).Once(),
	)

	h := commands.NewCheckoutCommandHandler(
		new(MockOrderUoWFactory), cart, catalog, customers, services.NewPricingEngine(),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	// Stock must not move for a line that never matched a variant.
	assert.Equal(t, 10, product.Variants[0].StockQuantity)
	catalog.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)

	cart := new(MockCartClient)
	catalog := new(MockCatalogClient)
	customers := new(MockCustomerClient)

	product := testProduct("prod-1", 50, 0, 1)
	mock.InOrder(
		cart.On("ListItems", ctx, customerID).
			Return([]ports.CartItem{{ProductID: "prod-1", Color: "Black", Size: "M", Quantity: 3}}, nil).Once(),
		customers.On("GetAddress", ctx, customerID, "addr-1").Return(testShippingAddress(), nil).Once(),
		catalog.On("GetProduct", ctx, "prod-1").Return(product, nil).Once(),
	)

	h := commands.NewCheckoutCommandHandler(
		new(MockOrderUoWFactory), cart, catalog, customers, services.NewPricingEngine(),
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 1, product.Variants[0].StockQuantity)
	catalog.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckoutCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(customerID, "addr-1", order.PaymentMethodCard)

	cart := new(MockCartClient)
	catalog := new(MockCatalogClient)
	customers := new(MockCustomerClient)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	product := testProduct("prod-1", 50, 0, 10)
	mock.InOrder(
		cart.On("ListItems", ctx, customerID).
			Return([]ports.CartItem{{ProductID: "prod-1", Color: "Black", Size: "M", Quantity: 1}}, nil).Once(),
		customers.On("GetAddress", ctx, customerID, "addr-1").Return(testShippingAddress(), nil).Once(),
		catalog.On("GetProduct", ctx, "prod-1").Return(product, nil).Once(),
		catalog.On("Save", ctx, product).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCheckoutCommandHandler(factory, cart, catalog, customers, services.NewPricingEngine())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cart.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
