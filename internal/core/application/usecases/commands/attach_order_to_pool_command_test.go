package commands_test

import (
	"testing"
	"time"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func confirmedOrder(t *testing.T, supplierID kernel.UUID, unitPrice string, quantity int) *customorder.CustomOrder {
	t.Helper()
	now := time.Now()

	o, err := customorder.NewCustomOrder(kernel.NewUUID(), kernel.NewUUID(),
		"running shoes", customorder.ItemDetails{}, quantity, customorder.UrgencyNormal, nil, now)
	require.NoError(t, err)
	require.NoError(t, o.Analyze(kernel.NewUUID(), mustMoney(t, unitPrice), supplierID, now))
	require.NoError(t, o.Confirm(now))
	return o
}

func openPool(t *testing.T, supplierID kernel.UUID, minimum string) *collectiveorder.CollectiveOrder {
	t.Helper()
	p, err := collectiveorder.NewCollectiveOrder(kernel.NewUUID(), supplierID, mustMoney(t, minimum), time.Now())
	require.NoError(t, err)
	return p
}

func TestNewAttachOrderToPoolCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewAttachOrderToPoolCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject zero value ids", func(t *testing.T) {
		_, err := commands.NewAttachOrderToPoolCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})
}

func TestAttachOrderToPoolCommandHandler_Handle(t *testing.T) {
	t.Run("should attach order and persist both sides", func(t *testing.T) {
		ctx := t.Context()
		supplierID := kernel.NewUUID()
		pool := openPool(t, supplierID, "500.00")
		order := confirmedOrder(t, supplierID, "100.00", 2)

		cmd, err := commands.NewAttachOrderToPoolCommand(order.ID(), pool.ID())
		require.NoError(t, err)

		poolRepo := new(MockCollectiveOrderRepository)
		orderRepo := new(MockCustomOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CollectiveOrderRepository").Return(poolRepo)
		uow.On("CustomOrderRepository").Return(orderRepo)
		poolRepo.On("Get", mock.Anything, pool.ID()).Return(pool, nil).Once()
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
		orderRepo.On("GetAllByPool", mock.Anything, pool.ID()).Return([]*customorder.CustomOrder{}, nil).Once()
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once()
		poolRepo.On("Update", mock.Anything, pool).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockPoolMembersUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAttachOrderToPoolCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, customorder.StatusInCollective, order.Status())
		assert.True(t, pool.CurrentValue().IsEqual(mustMoney(t, "200.00")))
		poolRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should roll back when pool is not open", func(t *testing.T) {
		ctx := t.Context()
		supplierID := kernel.NewUUID()
		pool := openPool(t, supplierID, "100.00")
		filler := confirmedOrder(t, supplierID, "60.00", 2)
		require.NoError(t, pool.Recalculate(filler.TotalValue(), time.Now()))
		require.Equal(t, collectiveorder.StatusMinimumReached, pool.Status())

		order := confirmedOrder(t, supplierID, "50.00", 1)
		cmd, err := commands.NewAttachOrderToPoolCommand(order.ID(), pool.ID())
		require.NoError(t, err)

		poolRepo := new(MockCollectiveOrderRepository)
		orderRepo := new(MockCustomOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CollectiveOrderRepository").Return(poolRepo)
		uow.On("CustomOrderRepository").Return(orderRepo)
		poolRepo.On("Get", mock.Anything, pool.ID()).Return(pool, nil).Once()
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
		orderRepo.On("GetAllByPool", mock.Anything, pool.ID()).Return([]*customorder.CustomOrder{filler}, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockPoolMembersUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewAttachOrderToPoolCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.IsType(t, &errs.InvalidStateTransitionError{}, err)
		assert.Equal(t, customorder.StatusConfirmed, order.Status())
	})
}
