package commands_test

import (
	"testing"
	"time"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/customer"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customerWithBalance(t *testing.T, balance string) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(kernel.NewUUID(), "Alice", mustMoney(t, balance), 1)
	require.NoError(t, err)
	return c
}

func TestNewTransferCreditsCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewTransferCreditsCommand(kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "25.00"), "gift")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject transfer to self", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := commands.NewTransferCreditsCommand(id, id, mustMoney(t, "25.00"), "gift")
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject empty description", func(t *testing.T) {
		_, err := commands.NewTransferCreditsCommand(kernel.NewUUID(), kernel.NewUUID(),
			mustMoney(t, "25.00"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
	})
}

func TestTransferCreditsCommandHandler_Handle(t *testing.T) {
	t.Run("should move balance and persist the entry pair", func(t *testing.T) {
		ctx := t.Context()
		from := customerWithBalance(t, "100.00")
		to := customerWithBalance(t, "10.00")

		cmd, err := commands.NewTransferCreditsCommand(from.ID(), to.ID(), mustMoney(t, "40.00"), "gift")
		require.NoError(t, err)

		custRepo := new(MockCustomerRepository)
		creditRepo := new(MockCreditRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(custRepo)
		uow.On("CreditRepository").Return(creditRepo)
		custRepo.On("Get", mock.Anything, from.ID()).Return(from, nil).Once()
		custRepo.On("Get", mock.Anything, to.ID()).Return(to, nil).Once()
		creditRepo.On("Add", mock.Anything, mock.AnythingOfType("*credit.Transaction")).Return(nil).Twice()
		custRepo.On("Update", mock.Anything, from).Return(nil).Once()
		custRepo.On("Update", mock.Anything, to).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewTransferCreditsCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.True(t, from.Balance().IsEqual(mustMoney(t, "60.00")))
		assert.True(t, to.Balance().IsEqual(mustMoney(t, "50.00")))
		custRepo.AssertExpectations(t)
		creditRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should roll back when the sender cannot cover the amount", func(t *testing.T) {
		ctx := t.Context()
		from := customerWithBalance(t, "10.00")
		to := customerWithBalance(t, "10.00")

		cmd, err := commands.NewTransferCreditsCommand(from.ID(), to.ID(), mustMoney(t, "40.00"), "gift")
		require.NoError(t, err)

		custRepo := new(MockCustomerRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CustomerRepository").Return(custRepo)
		custRepo.On("Get", mock.Anything, from.ID()).Return(from, nil).Once()
		custRepo.On("Get", mock.Anything, to.ID()).Return(to, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewTransferCreditsCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.IsType(t, &errs.InsufficientBalanceError{}, err)
		assert.True(t, from.Balance().IsEqual(mustMoney(t, "10.00")))
		assert.True(t, to.Balance().IsEqual(mustMoney(t, "10.00")))
	})
}

func TestExpireOverdueCreditsCommandHandler_Handle_Sweep(t *testing.T) {
	t.Run("should expire overdue entries and emit matching debits", func(t *testing.T) {
		ctx := t.Context()
		cust := customerWithBalance(t, "0.00")

		entry, err := credit.NewTransaction(kernel.NewUUID(), cust.ID(), credit.TypeRefund,
			mustMoney(t, "50.00"), "refund", mustMoney(t, "50.00"), time.Now().Add(-400*24*time.Hour))
		require.NoError(t, err)
		require.NoError(t, entry.Activate())
		require.NoError(t, cust.ApplyCredit(mustMoney(t, "50.00")))

		custRepo := new(MockCustomerRepository)
		creditRepo := new(MockCreditRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CreditRepository").Return(creditRepo)
		uow.On("CustomerRepository").Return(custRepo)
		creditRepo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*credit.Transaction{entry}, nil).Once()
		custRepo.On("Get", mock.Anything, cust.ID()).Return(cust, nil).Once()
		creditRepo.On("Update", mock.Anything, entry).Return(nil).Once()
		creditRepo.On("Add", mock.Anything, mock.AnythingOfType("*credit.Transaction")).Return(nil).Once()
		custRepo.On("Update", mock.Anything, cust).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewExpireOverdueCreditsCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, commands.NewExpireOverdueCreditsCommand()))

		assert.Equal(t, credit.StatusExpired, entry.Status())
		assert.True(t, cust.Balance().IsZero())
		creditRepo.AssertExpectations(t)
		custRepo.AssertExpectations(t)
	})

	t.Run("should commit an empty sweep", func(t *testing.T) {
		ctx := t.Context()

		creditRepo := new(MockCreditRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CreditRepository").Return(creditRepo)
		creditRepo.On("GetAllOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*credit.Transaction{}, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockLedgerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewExpireOverdueCreditsCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, commands.NewExpireOverdueCreditsCommand()))
	})
}
