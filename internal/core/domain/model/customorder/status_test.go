package customorder_test

import (
	"fmt"
	"testing"

	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []customorder.Status {
	return []customorder.Status{
		customorder.StatusPendingAnalysis,
		customorder.StatusPriced,
		customorder.StatusConfirmed,
		customorder.StatusInCollective,
		customorder.StatusSupplierPaid,
		customorder.StatusInTransit,
		customorder.StatusReceived,
		customorder.StatusDelivered,
		customorder.StatusCancelled,
		customorder.StatusRefunded,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []customorder.Status{
			customorder.StatusUnknown,
			customorder.Status(-1),
			customorder.Status(11),
			customorder.Status(100),
		} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[customorder.Status]bool{
		customorder.StatusDelivered: true,
		customorder.StatusCancelled: true,
		customorder.StatusRefunded:  true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
	}
}

func TestStatus_Apply(t *testing.T) {
	t.Run("should follow the happy path", func(t *testing.T) {
		steps := []struct {
			action   customorder.Action
			expected customorder.Status
		}{
			{customorder.ActionAnalyze, customorder.StatusPriced},
			{customorder.ActionConfirm, customorder.StatusConfirmed},
			{customorder.ActionAttachToPool, customorder.StatusInCollective},
			{customorder.ActionMarkSupplierPaid, customorder.StatusSupplierPaid},
			{customorder.ActionMarkShipped, customorder.StatusInTransit},
			{customorder.ActionMarkReceived, customorder.StatusReceived},
			{customorder.ActionMarkDelivered, customorder.StatusDelivered},
		}

		status := customorder.StatusPendingAnalysis
		for _, step := range steps {
			next, err := status.Apply(step.action)

			require.NoError(t, err, "applying %s from %s", step.action, status)
			assert.Equal(t, step.expected, next)
			status = next
		}
	})

	t.Run("should allow detach back to Confirmed", func(t *testing.T) {
		next, err := customorder.StatusInCollective.Apply(customorder.ActionDetachFromPool)

		require.NoError(t, err)
		assert.Equal(t, customorder.StatusConfirmed, next)
	})

	t.Run("should allow cancel and refund from every non-terminal state", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status.IsTerminal() {
				continue
			}

			next, err := status.Apply(customorder.ActionCancel)
			require.NoError(t, err, "cancel from %s", status)
			assert.Equal(t, customorder.StatusCancelled, next)

			next, err = status.Apply(customorder.ActionRefund)
			require.NoError(t, err, "refund from %s", status)
			assert.Equal(t, customorder.StatusRefunded, next)
		}
	})

	t.Run("should reject every action from terminal states", func(t *testing.T) {
		actions := []customorder.Action{
			customorder.ActionAnalyze,
			customorder.ActionConfirm,
			customorder.ActionAttachToPool,
			customorder.ActionDetachFromPool,
			customorder.ActionMarkSupplierPaid,
			customorder.ActionMarkShipped,
			customorder.ActionMarkReceived,
			customorder.ActionMarkDelivered,
			customorder.ActionCancel,
			customorder.ActionRefund,
		}

		for _, status := range allStatuses() {
			if !status.IsTerminal() {
				continue
			}
			for _, action := range actions {
				t.Run(fmt.Sprintf("%s + %s", status, action), func(t *testing.T) {
					next, err := status.Apply(action)

					require.Error(t, err)
					assert.Equal(t, customorder.StatusUnknown, next)
					assert.IsType(t, &errs.InvalidStateTransitionError{}, err)
					assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
					assert.Contains(t, err.Error(), "CustomOrder")
				})
			}
		}
	})

	t.Run("should reject attachToPool from any state but Confirmed", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == customorder.StatusConfirmed {
				continue
			}

			_, err := status.Apply(customorder.ActionAttachToPool)

			require.Error(t, err, "attachToPool from %s", status)
			assert.IsType(t, &errs.InvalidStateTransitionError{}, err)
		}
	})

	t.Run("should reject skipping analysis", func(t *testing.T) {
		_, err := customorder.StatusPendingAnalysis.Apply(customorder.ActionConfirm)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot confirm from status PendingAnalysis")
	})
}

func TestUrgency_Validate(t *testing.T) {
	t.Run("should validate defined urgencies", func(t *testing.T) {
		for _, urgency := range []customorder.Urgency{
			customorder.UrgencyLow,
			customorder.UrgencyNormal,
			customorder.UrgencyHigh,
			customorder.UrgencyUrgent,
		} {
			require.NoError(t, urgency.Validate())
		}
	})

	t.Run("should reject Unknown and out of range urgencies", func(t *testing.T) {
		for _, urgency := range []customorder.Urgency{
			customorder.UrgencyUnknown,
			customorder.Urgency(-1),
			customorder.Urgency(5),
		} {
			err := urgency.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "urgency is invalid")
		}
	})

	t.Run("should order urgencies by escalation", func(t *testing.T) {
		assert.Less(t, int(customorder.UrgencyLow), int(customorder.UrgencyNormal))
		assert.Less(t, int(customorder.UrgencyNormal), int(customorder.UrgencyHigh))
		assert.Less(t, int(customorder.UrgencyHigh), int(customorder.UrgencyUrgent))
	})

	t.Run("should return correct strings", func(t *testing.T) {
		assert.Equal(t, "Low", customorder.UrgencyLow.String())
		assert.Equal(t, "Urgent", customorder.UrgencyUrgent.String())
		assert.Equal(t, "Unknown", customorder.Urgency(42).String())
	})
}
