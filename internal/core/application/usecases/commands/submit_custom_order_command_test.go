package commands_test

import (
	"errors"
	"testing"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitCustomOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewSubmitCustomOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"wireless headphones", customorder.ItemDetails{PreferredColor: "black"},
			2, customorder.UrgencyNormal, nil)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "wireless headphones", cmd.Description())
		assert.Equal(t, 2, cmd.Quantity())
	})

	t.Run("should reject empty description", func(t *testing.T) {
		_, err := commands.NewSubmitCustomOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"", customorder.ItemDetails{}, 2, customorder.UrgencyNormal, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.SubmitCustomOrderCommand
		assert.Error(t, cmd.Validate())
	})
}

func TestSubmitCustomOrderCommandHandler_Handle(t *testing.T) {
	newCommand := func(t *testing.T) commands.SubmitCustomOrderCommand {
		t.Helper()
		cmd, err := commands.NewSubmitCustomOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"wireless headphones", customorder.ItemDetails{}, 1, customorder.UrgencyHigh, nil)
		require.NoError(t, err)
		return cmd
	}

	t.Run("should persist order and commit", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCommand(t)

		repo := new(MockCustomOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomOrderRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.AnythingOfType("*customorder.CustomOrder")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCustomOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitCustomOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should fail on unconstructed command", func(t *testing.T) {
		factory := new(MockCustomOrderUoWFactory)
		h := commands.NewSubmitCustomOrderCommandHandler(factory)
		err := h.Handle(t.Context(), commands.SubmitCustomOrderCommand{})
		require.Error(t, err)
	})

	t.Run("should roll back when persistence fails", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCommand(t)

		repo := new(MockCustomOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CustomOrderRepository").Return(repo).Once(),
			repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCustomOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitCustomOrderCommandHandler(factory)
		require.Error(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
	})

	t.Run("should surface invalid quantity from the aggregate", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSubmitCustomOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"wireless headphones", customorder.ItemDetails{}, 11, customorder.UrgencyNormal, nil)
		require.NoError(t, err)

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCustomOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewSubmitCustomOrderCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})
}
