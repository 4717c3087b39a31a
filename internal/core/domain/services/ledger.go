package services

import (
	"fmt"
	"time"

	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/customer"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"
)

// Ledger is the domain service that owns every balance mutation. A
// customer's cached creditBalance changes only here, atomically with the
// ledger entry that explains the change; callers persist the returned entry
// and the mutated customer in the same transaction.
//
// Business rules:
//   - Credit entries increase the balance, debit entries decrease it
//   - A debit never drives the balance negative (InsufficientBalance)
//   - A transfer is a debit/credit pair that succeeds or fails as one
//   - Expiration emits a matching debit so the cache stays equal to the
//     ledger sum
type Ledger struct{}

// NewLedger creates a new Ledger instance.
func NewLedger() Ledger {
	return Ledger{}
}

// RecordCredit creates an Active credit entry and applies its amount to the
// customer's cached balance. The entry receives the default expiry for its
// type. Fails with a validation error when the type is not a credit type.
func (l Ledger) RecordCredit(
	cust *customer.Customer,
	entryID kernel.UUID,
	txType credit.TransactionType,
	amount kernel.Money,
	description string,
	now time.Time,
) (*credit.Transaction, error) {
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if !txType.IsCreditSide() {
		return nil, errs.NewValueIsInvalidErrorWithCause("transactionType is invalid",
			fmt.Errorf("%s is not a credit type", txType))
	}

	if err := cust.ApplyCredit(amount); err != nil {
		return nil, err
	}

	entry, err := credit.NewTransaction(entryID, cust.ID(), txType, amount, description, cust.Balance(), now)
	if err != nil {
		return nil, err
	}
	if err := entry.Activate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// RecordDebit creates an Active debit entry and subtracts its amount from
// the customer's cached balance. Fails with an InsufficientBalanceError when
// the balance does not cover the amount; the balance is left untouched.
func (l Ledger) RecordDebit(
	cust *customer.Customer,
	entryID kernel.UUID,
	txType credit.TransactionType,
	amount kernel.Money,
	description string,
	now time.Time,
) (*credit.Transaction, error) {
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if !txType.IsDebitSide() {
		return nil, errs.NewValueIsInvalidErrorWithCause("transactionType is invalid",
			fmt.Errorf("%s is not a debit type", txType))
	}

	if err := cust.ApplyDebit(amount); err != nil {
		return nil, err
	}

	entry, err := credit.NewTransaction(entryID, cust.ID(), txType, amount, description, cust.Balance(), now)
	if err != nil {
		return nil, err
	}
	if err := entry.Activate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// UseEntry consumes an Active ledger entry. The entry's amount was already
// reflected in the balance when it was recorded, so using it changes no
// balances, only the entry's own state.
func (l Ledger) UseEntry(entry *credit.Transaction, now time.Time) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	return entry.Use(now)
}

// Transfer moves credit between two customers as an atomic pair of entries,
// both tagged Transfer and linked to both parties. The sender is debited
// before the receiver is credited; when the debit fails neither side
// changes. Callers persist both entries and both customers in one
// transaction.
func (l Ledger) Transfer(
	from *customer.Customer,
	to *customer.Customer,
	debitEntryID kernel.UUID,
	creditEntryID kernel.UUID,
	amount kernel.Money,
	description string,
	now time.Time,
) (debitEntry *credit.Transaction, creditEntry *credit.Transaction, err error) {
	if err := from.Validate(); err != nil {
		return nil, nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, nil, err
	}
	if from.IsEqual(to) {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("transfer is invalid",
			fmt.Errorf("customer %s cannot transfer to themselves", from.ID()))
	}

	if err := from.ApplyDebit(amount); err != nil {
		return nil, nil, err
	}
	if err := to.ApplyCredit(amount); err != nil {
		return nil, nil, err
	}

	debitEntry, err = credit.NewTransaction(debitEntryID, from.ID(), credit.TypeTransfer,
		amount, description, from.Balance(), now)
	if err != nil {
		return nil, nil, err
	}
	creditEntry, err = credit.NewTransaction(creditEntryID, to.ID(), credit.TypeTransfer,
		amount, description, to.Balance(), now)
	if err != nil {
		return nil, nil, err
	}

	if err = debitEntry.LinkTransfer(from.ID(), to.ID()); err != nil {
		return nil, nil, err
	}
	if err = creditEntry.LinkTransfer(from.ID(), to.ID()); err != nil {
		return nil, nil, err
	}

	if err = debitEntry.Activate(); err != nil {
		return nil, nil, err
	}
	if err = creditEntry.Activate(); err != nil {
		return nil, nil, err
	}

	return debitEntry, creditEntry, nil
}

// ExpireEntry transitions an overdue Active entry to Expired and emits the
// expiration debit that keeps the cached balance equal to the ledger sum.
// This is the only path where a balance decreases without an explicit debit
// request, so it is never gated on sufficiency: the debit is capped at the
// remaining balance, since the part of the expiring credit that earlier
// debits already consumed has left the balance and cannot leave it twice.
// When nothing remains only the entry's status changes and no debit entry
// is returned.
func (l Ledger) ExpireEntry(
	cust *customer.Customer,
	entry *credit.Transaction,
	debitEntryID kernel.UUID,
	now time.Time,
) (*credit.Transaction, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if !entry.CustomerID().IsEqual(cust.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("entry is invalid",
			fmt.Errorf("entry %s does not belong to customer %s", entry.ID(), cust.ID()))
	}
	// Pre-flight the transition so the entry is not mutated when it cannot expire.
	if _, err := entry.Status().Apply(credit.ActionExpire); err != nil {
		return nil, err
	}

	debitAmount := entry.Amount()
	if cust.Balance().LessThan(debitAmount) {
		debitAmount = cust.Balance()
	}

	var debitEntry *credit.Transaction
	if debitAmount.IsPositive() {
		description := fmt.Sprintf("expiration of credit %s", entry.ID())
		var err error
		debitEntry, err = l.RecordDebit(cust, debitEntryID, credit.TypeExpirationDebit,
			debitAmount, description, now)
		if err != nil {
			return nil, err
		}
	}

	if err := entry.Expire(); err != nil {
		return nil, err
	}

	return debitEntry, nil
}

// DerivedBalance replays a customer's full ledger history. Every credit
// entry raised the balance when it was recorded and every debit entry
// lowered it; status changes after recording (Used, Expired, Blocked) move
// no balance on their own, the expiration sweep emits its own debit entry.
// The signed sum over all entries therefore equals the cached balance at
// every point in the customer's history; it exists for reconciliation and
// tests.
func (l Ledger) DerivedBalance(entries []*credit.Transaction) (kernel.Money, error) {
	credits := kernel.ZeroMoney()
	debits := kernel.ZeroMoney()

	for _, entry := range entries {
		switch {
		case entry.IsCredit():
			credits = credits.Add(entry.Amount())
		case entry.IsDebit():
			debits = debits.Add(entry.Amount())
		}
	}

	return credits.Sub(debits)
}
