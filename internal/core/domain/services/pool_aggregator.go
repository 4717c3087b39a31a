package services

import (
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/collectiveorder"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
)

// PoolAggregator coordinates collective orders and their member custom
// orders. It keeps the two sides of the membership relation consistent: the
// member's status and pool reference on one side, the pool's recomputed
// currentValue on the other.
//
// The aggregator works on aggregates already loaded by the caller; every
// mutation it makes must be persisted in one transaction, with the
// version-checked pool write serializing concurrent membership changes.
type PoolAggregator struct{}

// NewPoolAggregator creates a new PoolAggregator instance.
func NewPoolAggregator() PoolAggregator {
	return PoolAggregator{}
}

// Attach adds a confirmed order to an open pool and recomputes the pool's
// currentValue from all member totals. members must be the pool's current
// members as loaded from the repository, without the order being attached.
//
// Fails when the pool is not Open, when the order's supplier does not match
// the pool's, or when the order is not in a state that allows pooling.
func (a PoolAggregator) Attach(
	pool *collectiveorder.CollectiveOrder,
	order *customorder.CustomOrder,
	members []*customorder.CustomOrder,
	now time.Time,
) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	if err := order.Validate(); err != nil {
		return err
	}
	if pool.Status() != collectiveorder.StatusOpen {
		return errs.NewInvalidStateTransitionError("CollectiveOrder", pool.Status().String(), "attachOrder")
	}
	if order.SupplierID() == nil || !order.SupplierID().IsEqual(pool.SupplierID()) {
		return errs.NewValueIsInvalidErrorWithCause("supplierID is invalid",
			fmt.Errorf("order %s does not belong to supplier %s", order.ID(), pool.SupplierID()))
	}

	if err := order.AttachToPool(pool.ID()); err != nil {
		return err
	}

	total := sumTotals(members).Add(order.TotalValue())
	return pool.Recalculate(total, now)
}

// Detach removes a member from an open pool, reverting it to Confirmed, and
// recomputes the pool's currentValue from the remaining members. members is
// the pool's membership as loaded from the repository and may still include
// the order being detached.
//
// Detaching is only allowed while the pool is Open; once the minimum is
// reached membership is frozen and only cancelling the whole order can
// remove it.
func (a PoolAggregator) Detach(
	pool *collectiveorder.CollectiveOrder,
	order *customorder.CustomOrder,
	members []*customorder.CustomOrder,
	now time.Time,
) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	if err := order.Validate(); err != nil {
		return err
	}
	if pool.Status() != collectiveorder.StatusOpen {
		return errs.NewInvalidStateTransitionError("CollectiveOrder", pool.Status().String(), "detachOrder")
	}
	if order.CollectiveOrderID() == nil || !order.CollectiveOrderID().IsEqual(pool.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("collectiveOrderID is invalid",
			fmt.Errorf("order %s is not a member of pool %s", order.ID(), pool.ID()))
	}

	if err := order.DetachFromPool(); err != nil {
		return err
	}

	total := kernel.ZeroMoney()
	for _, member := range members {
		if member.IsEqual(order) {
			continue
		}
		total = total.Add(member.TotalValue())
	}
	return pool.Recalculate(total, now)
}

// RemoveCancelled recomputes a pool's currentValue after a member order was
// cancelled or refunded. The order already cleared its own pool reference;
// this keeps the pool's total honest. members is the remaining membership.
//
// Unlike Detach this is legal in any non-terminal pool state, because a
// cancellation can hit a pool at any point before delivery.
func (a PoolAggregator) RemoveCancelled(
	pool *collectiveorder.CollectiveOrder,
	members []*customorder.CustomOrder,
	now time.Time,
) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	if pool.Status().IsTerminal() {
		return errs.NewInvalidStateTransitionError("CollectiveOrder", pool.Status().String(), "removeCancelled")
	}
	return pool.Recalculate(sumTotals(members), now)
}

// CancelPool aborts a pool and releases every member back to Confirmed so
// they can be re-pooled. The caller persists the pool and every member in
// one transaction.
func (a PoolAggregator) CancelPool(
	pool *collectiveorder.CollectiveOrder,
	members []*customorder.CustomOrder,
	reason string,
	now time.Time,
) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	if err := pool.Cancel(reason, now); err != nil {
		return err
	}

	for _, member := range members {
		if err := member.DetachFromPool(); err != nil {
			return err
		}
	}
	return nil
}

// CascadeSupplierPaid advances every member in lockstep with the pool's
// transition to SupplierPaid. The member transitions are not independently
// reachable by clients; they exist only as part of this cascade.
func (a PoolAggregator) CascadeSupplierPaid(members []*customorder.CustomOrder) error {
	for _, member := range members {
		if err := member.MarkSupplierPaid(); err != nil {
			return err
		}
	}
	return nil
}

// CascadeShipped advances every member to InTransit with the pool.
func (a PoolAggregator) CascadeShipped(members []*customorder.CustomOrder) error {
	for _, member := range members {
		if err := member.MarkShipped(); err != nil {
			return err
		}
	}
	return nil
}

// CascadeReceived advances every member to Received with the pool.
func (a PoolAggregator) CascadeReceived(members []*customorder.CustomOrder) error {
	for _, member := range members {
		if err := member.MarkReceived(); err != nil {
			return err
		}
	}
	return nil
}

// CascadeDelivered advances every member to Delivered with the pool.
func (a PoolAggregator) CascadeDelivered(members []*customorder.CustomOrder, now time.Time) error {
	for _, member := range members {
		if err := member.MarkDelivered(now); err != nil {
			return err
		}
	}
	return nil
}

func sumTotals(members []*customorder.CustomOrder) kernel.Money {
	total := kernel.ZeroMoney()
	for _, member := range members {
		total = total.Add(member.TotalValue())
	}
	return total
}
