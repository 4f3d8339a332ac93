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

func TestBackorderItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), []*order.Item{domainItem(t)})
	target := aggregate.Items()[0]

	cmd, err := commands.NewBackorderItemsCommand(aggregate.ID(),
		[]commands.BackorderLineInput{{ItemID: target.ID(), Quantity: 3}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		itemRepo.On("GetForOrder", mock.Anything, aggregate.ID(), []kernel.UUID{target.ID()}).
			Return([]*order.Item{target}, nil).Once(),
		itemRepo.On("UpdateAll", mock.Anything, aggregate.ID(), []*order.Item{target}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBackorderItemsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, target.HasActiveStatus(status.ItemBackordered))
	require.NotNil(t, target.BackorderDetail())
	assert.Equal(t, int64(3), target.BackorderDetail().Quantity())
	uow.AssertExpectations(t)
}

func TestBackorderItemsCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, kernel.NewUUID(), []*order.Item{domainItem(t)})
	unknownID := kernel.NewUUID()

	cmd, err := commands.NewBackorderItemsCommand(aggregate.ID(),
		[]commands.BackorderLineInput{{ItemID: unknownID, Quantity: 3}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		itemRepo.On("GetForOrder", mock.Anything, aggregate.ID(), []kernel.UUID{unknownID}).
			Return(nil, errs.NewObjectNotFoundError("order item", unknownID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBackorderItemsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestBackorderItemsCommand_RequiresLines(t *testing.T) {
	_, err := commands.NewBackorderItemsCommand(kernel.NewUUID(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
