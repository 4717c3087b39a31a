package commands_test

import (
	"testing"
	"time"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelCustomOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelCustomOrderCommand(kernel.NewUUID(), "changed my mind", nil)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.RefundAmount())
	})

	t.Run("should reject empty reason", func(t *testing.T) {
		_, err := commands.NewCancelCustomOrderCommand(kernel.NewUUID(), "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})
}

func TestCancelCustomOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should cancel unpooled order without ledger entry", func(t *testing.T) {
		ctx := t.Context()
		order := confirmedOrder(t, kernel.NewUUID(), "100.00", 1)

		cmd, err := commands.NewCancelCustomOrderCommand(order.ID(), "changed my mind", nil)
		require.NoError(t, err)

		orderRepo := new(MockCustomOrderRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomOrderRepository").Return(orderRepo)
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelCustomOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, customorder.StatusCancelled, order.Status())
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refund charged order and recompute its pool", func(t *testing.T) {
		ctx := t.Context()
		supplierID := kernel.NewUUID()
		now := time.Now()

		pool := openPool(t, supplierID, "500.00")
		order := confirmedOrder(t, supplierID, "100.00", 2)
		other := confirmedOrder(t, supplierID, "50.00", 1)
		require.NoError(t, order.AttachToPool(pool.ID()))
		require.NoError(t, other.AttachToPool(pool.ID()))
		require.NoError(t, pool.Recalculate(mustMoney(t, "250.00"), now))

		cust := customerWithBalance(t, "0.00")
		refund := mustMoney(t, "200.00")

		cmd, err := commands.NewCancelCustomOrderCommand(order.ID(), "damaged in transit", &refund)
		require.NoError(t, err)

		orderRepo := new(MockCustomOrderRepository)
		poolRepo := new(MockCollectiveOrderRepository)
		custRepo := new(MockCustomerRepository)
		creditRepo := new(MockCreditRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomOrderRepository").Return(orderRepo)
		uow.On("CollectiveOrderRepository").Return(poolRepo)
		uow.On("CustomerRepository").Return(custRepo)
		uow.On("CreditRepository").Return(creditRepo)
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once()
		orderRepo.On("Update", mock.Anything, order).Return(nil).Once()
		custRepo.On("Get", mock.Anything, order.CustomerID()).Return(cust, nil).Once()
		creditRepo.On("Add", mock.Anything, mock.AnythingOfType("*credit.Transaction")).Return(nil).Once()
		custRepo.On("Update", mock.Anything, cust).Return(nil).Once()
		poolRepo.On("Get", mock.Anything, pool.ID()).Return(pool, nil).Once()
		orderRepo.On("GetAllByPool", mock.Anything, pool.ID()).
			Return([]*customorder.CustomOrder{other}, nil).Once()
		poolRepo.On("Update", mock.Anything, pool).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelCustomOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, customorder.StatusRefunded, order.Status())
		assert.Nil(t, order.CollectiveOrderID())
		assert.True(t, cust.Balance().IsEqual(mustMoney(t, "200.00")))
		assert.True(t, pool.CurrentValue().IsEqual(mustMoney(t, "50.00")))
		orderRepo.AssertExpectations(t)
		poolRepo.AssertExpectations(t)
		custRepo.AssertExpectations(t)
		creditRepo.AssertExpectations(t)
	})
}
