package commands_test

import (
	"testing"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func moveOrderToWaiting(t *testing.T, aggregate *order.Order) *order.Order {
	t.Helper()

	require.NoError(t, aggregate.Perform(status.ReleaseOrder))
	require.NoError(t, aggregate.Perform(status.SetTransitActive))
	require.NoError(t, aggregate.Perform(status.SetTransitInactive))
	return aggregate
}

func waitingOrder(t *testing.T) *order.Order {
	t.Helper()

	return moveOrderToWaiting(t, storedRecurrentOrder(t, kernel.NewUUID(), []*order.Item{domainItem(t)}))
}

func TestRestartOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := waitingOrder(t)
	require.NoError(t, aggregate.Perform(status.GenerateInvoice))

	cmd, err := commands.NewRestartOrderCommand(aggregate.ID(), true)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, aggregate.HasActiveStatus(status.OrderCreated))
	assert.False(t, aggregate.HasActiveStatus(status.OrderWaiting))
	assert.False(t, aggregate.HasActiveStatus(status.OrderInvoiced))
	uow.AssertExpectations(t)
}

func TestRestartDisputedOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := waitingOrder(t)
	require.NoError(t, aggregate.Perform(status.RaiseDispute))

	cmd, err := commands.NewRestartDisputedOrderCommand(aggregate.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartDisputedOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, aggregate.HasActiveStatus(status.OrderDisputed))
	assert.True(t, aggregate.HasActiveStatus(status.OrderCreated))
}

func TestRestartOrderCommandHandler_Handle_FraudHoldBlocks(t *testing.T) {
	ctx := t.Context()
	aggregate := waitingOrder(t)
	require.NoError(t, aggregate.Perform(status.ApplyFraudHold))

	cmd, err := commands.NewRestartOrderCommand(aggregate.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrTransactionForbidden)
	assert.True(t, aggregate.HasActiveStatus(status.OrderWaiting))
}

func TestRestartOrderCommandHandler_Handle_NonRecurrentRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := moveOrderToWaiting(t, storedOrder(t, kernel.NewUUID(), []*order.Item{domainItem(t)}))

	cmd, err := commands.NewRestartOrderCommand(aggregate.ID(), false)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestartOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, aggregate.HasActiveStatus(status.OrderWaiting))
	uow.AssertExpectations(t)
}
