package credit

import (
	"errors"
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
	"groupbuy/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction constructor")

// Transaction is an immutable ledger entry recording a single credit
// movement against a customer's balance. Amount and type never change after
// creation; only the status may transition, strictly forward
// (Pending -> Active -> Used/Expired/Blocked).
//
// balanceAfter snapshots the customer's cached balance immediately after the
// entry was applied, so the ledger history reads as a running statement.
//
// Optional links connect the entry to the collective or custom order that
// caused it, and, for transfers, to the counterpart customers.
type Transaction struct {
	id           kernel.UUID
	customerID   kernel.UUID
	txType       TransactionType
	amount       kernel.Money
	description  string
	status       Status
	balanceAfter kernel.Money
	createdAt    time.Time
	expiresAt    *time.Time
	usedAt       *time.Time

	collectiveOrderID *kernel.UUID
	customOrderID     *kernel.UUID
	transferFromID    *kernel.UUID
	transferToID      *kernel.UUID
	bonusPercentage   *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTransaction creates a Pending ledger entry. The entry receives the
// default expiry for its type (one year for refunds, six months for
// bonuses, none otherwise). Amount must be strictly positive.
func NewTransaction(
	id kernel.UUID,
	customerID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	description string,
	balanceAfter kernel.Money,
	now time.Time,
) (*Transaction, error) {
	t := &Transaction{
		status:    StatusPending,
		createdAt: now,
		expiresAt: txType.DefaultExpiry(now),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCustomerID(customerID),
		t.setType(txType),
		t.setAmount(amount),
		t.setDescription(description),
	); err != nil {
		return nil, err
	}

	t.balanceAfter = balanceAfter
	return t, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(
	id kernel.UUID,
	customerID kernel.UUID,
	txType TransactionType,
	amount kernel.Money,
	description string,
	status Status,
	balanceAfter kernel.Money,
	createdAt time.Time,
	expiresAt *time.Time,
	usedAt *time.Time,
	collectiveOrderID *kernel.UUID,
	customOrderID *kernel.UUID,
	transferFromID *kernel.UUID,
	transferToID *kernel.UUID,
	bonusPercentage *decimal.Decimal,
) (*Transaction, error) {
	t := &Transaction{
		createdAt: createdAt,
		expiresAt: expiresAt,
		usedAt:    usedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setCustomerID(customerID),
		t.setType(txType),
		t.setAmount(amount),
		t.setDescription(description),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.status = status
	t.balanceAfter = balanceAfter
	t.collectiveOrderID = collectiveOrderID
	t.customOrderID = customOrderID
	t.transferFromID = transferFromID
	t.transferToID = transferToID
	t.bonusPercentage = bonusPercentage
	return t, nil
}

// Validate ensures the Transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// CustomerID returns the customer the entry belongs to.
func (t *Transaction) CustomerID() kernel.UUID {
	return t.customerID
}

// Type returns the transaction type.
func (t *Transaction) Type() TransactionType {
	return t.txType
}

// Amount returns the entry amount, always positive.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Description returns the human-readable reason for the entry.
func (t *Transaction) Description() string {
	return t.description
}

// Status returns the current lifecycle state.
func (t *Transaction) Status() Status {
	return t.status
}

// BalanceAfter returns the cached balance snapshot taken when the entry was
// applied.
func (t *Transaction) BalanceAfter() kernel.Money {
	return t.balanceAfter
}

// CreatedAt returns the entry creation time.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// ExpiresAt returns the expiry timestamp, or nil if the entry never expires.
func (t *Transaction) ExpiresAt() *time.Time {
	return t.expiresAt
}

// UsedAt returns the time the entry was consumed, or nil.
func (t *Transaction) UsedAt() *time.Time {
	return t.usedAt
}

// CollectiveOrderID returns the linked collective order, or nil.
func (t *Transaction) CollectiveOrderID() *kernel.UUID {
	return t.collectiveOrderID
}

// CustomOrderID returns the linked custom order, or nil.
func (t *Transaction) CustomOrderID() *kernel.UUID {
	return t.customOrderID
}

// TransferFromID returns the sending customer of a transfer, or nil.
func (t *Transaction) TransferFromID() *kernel.UUID {
	return t.transferFromID
}

// TransferToID returns the receiving customer of a transfer, or nil.
func (t *Transaction) TransferToID() *kernel.UUID {
	return t.transferToID
}

// LinkCollectiveOrder records the collective order that caused the entry.
func (t *Transaction) LinkCollectiveOrder(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.collectiveOrderID = &id
	return nil
}

// LinkCustomOrder records the custom order that caused the entry.
func (t *Transaction) LinkCustomOrder(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.customOrderID = &id
	return nil
}

// BonusPercentage returns the percentage used to compute a bonus entry's
// amount, or nil for non-bonus entries.
func (t *Transaction) BonusPercentage() *decimal.Decimal {
	return t.bonusPercentage
}

// SetBonusPercentage records the percentage a bonus amount was computed from.
// Legal only on bonus-type entries; the percentage must be within [0, 100].
func (t *Transaction) SetBonusPercentage(percentage decimal.Decimal) error {
	if !t.txType.IsBonus() {
		return errs.NewValueIsInvalidErrorWithCause("bonusPercentage is invalid",
			fmt.Errorf("%s entries carry no bonus percentage", t.txType))
	}
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("bonusPercentage", percentage.String(), 0, 100)
	}
	t.bonusPercentage = &percentage
	return nil
}

// LinkTransfer records the counterpart customers of a transfer pair.
func (t *Transaction) LinkTransfer(fromID, toID kernel.UUID) error {
	if err := errors.Join(fromID.Validate(), toID.Validate()); err != nil {
		return err
	}
	t.transferFromID = &fromID
	t.transferToID = &toID
	return nil
}

// IsCredit reports whether the entry increases its customer's balance. A
// transfer entry is a credit for the receiving customer.
func (t *Transaction) IsCredit() bool {
	if t.txType == TypeTransfer {
		return t.transferToID != nil && t.customerID.IsEqual(*t.transferToID)
	}
	return t.txType.IsCreditSide()
}

// IsDebit reports whether the entry decreases its customer's balance. A
// transfer entry is a debit for the sending customer.
func (t *Transaction) IsDebit() bool {
	if t.txType == TypeTransfer {
		return t.transferFromID != nil && t.customerID.IsEqual(*t.transferFromID)
	}
	return t.txType.IsDebitSide()
}

// IsExpired reports whether the entry has lapsed at the given time, either
// by status or by having passed its expiry timestamp.
func (t *Transaction) IsExpired(now time.Time) bool {
	if t.status == StatusExpired {
		return true
	}
	return t.expiresAt != nil && now.After(*t.expiresAt)
}

// Activate transitions a Pending entry to Active.
func (t *Transaction) Activate() error {
	next, err := t.status.Apply(ActionActivate)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

// Use consumes an Active entry. Fails with a CreditExpiredError if the entry
// has lapsed, or an InvalidStateTransitionError if it is not Active.
func (t *Transaction) Use(now time.Time) error {
	if t.status == StatusActive && t.IsExpired(now) {
		return errs.NewCreditExpiredError(t.id.String(), t.expiresAt.Format(time.RFC3339))
	}

	next, err := t.status.Apply(ActionUse)
	if err != nil {
		return err
	}
	t.status = next
	t.usedAt = &now
	return nil
}

// Expire transitions an Active entry to Expired. Called by the expiration
// sweep; the sweep also emits the matching expiration debit.
func (t *Transaction) Expire() error {
	next, err := t.status.Apply(ActionExpire)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

// Block freezes an Active entry.
func (t *Transaction) Block() error {
	next, err := t.status.Apply(ActionBlock)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.customerID = id
	return nil
}

func (t *Transaction) setType(txType TransactionType) error {
	if err := txType.Validate(); err != nil {
		return err
	}
	t.txType = txType
	return nil
}

func (t *Transaction) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	t.amount = amount
	return nil
}

func (t *Transaction) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description is required")
	}
	t.description = description
	return nil
}
