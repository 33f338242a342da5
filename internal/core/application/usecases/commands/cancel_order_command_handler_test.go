package commands_test

import (
	"testing"
	"time"

	"fosso/internal/core/application/usecases/commands"
	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/core/domain/services"
	"fosso/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// placedOrder builds an order with two line items as checkout would produce it.
func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	d1, err := order.NewDetail("merchant-1", "prod-1", "Product prod-1", 1, "Black", "M",
		decimal.NewFromInt(40), decimal.Zero, now)
	require.NoError(t, err)
	d2, err := order.NewDetail("merchant-1", "prod-2", "Product prod-2", 1, "White", "L",
		decimal.NewFromInt(80), decimal.Zero, now)
	require.NoError(t, err)

	details := []*order.Detail{d1, d2}
	totals, err := services.NewPricingEngine().Quote(details)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.GenerateTrackingNumber(), kernel.NewUUID(),
		order.PaymentMethodCard, *testShippingAddress(), details, totals, now,
	)
	require.NoError(t, err)
	return o
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(aggregate.ID(), "customer request")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	for _, d := range aggregate.Details() {
		assert.Equal(t, order.Cancelled, d.Track().Status())
		assert.Equal(t, "customer request", d.Track().Notes())
	}
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly
	h := commands.NewCancelOrderCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(orderID, "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AlreadyShipped(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t)
	require.NoError(t, aggregate.UpdateStatus(order.Shipped, time.Now()))
	cmd, _ := commands.NewCancelOrderCommand(aggregate.ID(), "too late")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Shipped, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := placedOrder(t)
	cmd, _ := commands.NewCancelOrderCommand(aggregate.ID(), "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).
			Return(errs.NewVersionIsInvalidErrorWithCause("order version")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
