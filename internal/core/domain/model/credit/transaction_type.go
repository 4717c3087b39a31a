package credit

import (
	"fmt"
	"time"

	"groupbuy/internal/pkg/errs"
)

// TransactionType classifies the economic event a ledger entry records.
// The type never changes after the entry is created.
type TransactionType int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown TransactionType = iota

	// TypeRefund credits a customer for a cancelled or failed order.
	TypeRefund

	// TypeCreditBonus credits a bonus for accepting credit instead of a
	// cash refund.
	TypeCreditBonus

	// TypeReferralBonus credits a bonus for referring a new customer.
	TypeReferralBonus

	// TypeLoyaltyBonus credits a loyalty bonus for frequent purchases.
	TypeLoyaltyBonus

	// TypePromotionalCredit credits a promotional campaign amount.
	TypePromotionalCredit

	// TypeTransfer moves credit between two customers. A transfer produces
	// a debit-side entry on the sender and a credit-side entry on the
	// receiver, both tagged with this type.
	TypeTransfer

	// TypeExpirationDebit debits the amount of a credit that lapsed. It is
	// emitted by the expiration sweep so the cached balance stays equal to
	// the ledger sum.
	TypeExpirationDebit

	// TypeUsageDebit debits credit spent on an order.
	TypeUsageDebit
)

const (
	refundExpiry = 365 * 24 * time.Hour
	bonusExpiry  = 183 * 24 * time.Hour
)

func getTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TypeUnknown:           "Unknown",
		TypeRefund:            "Refund",
		TypeCreditBonus:       "CreditBonus",
		TypeReferralBonus:     "ReferralBonus",
		TypeLoyaltyBonus:      "LoyaltyBonus",
		TypePromotionalCredit: "PromotionalCredit",
		TypeTransfer:          "Transfer",
		TypeExpirationDebit:   "ExpirationDebit",
		TypeUsageDebit:        "UsageDebit",
	}
}

// Validate checks if the TransactionType is one of the defined types.
func (t TransactionType) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("transactionType is invalid",
			fmt.Errorf("%d is not a valid transaction type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t TransactionType) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a persisted type name back into a TransactionType.
func TypeFromString(s string) (TransactionType, error) {
	for txType, name := range getTypeStrings() {
		if name == s && txType != TypeUnknown {
			return txType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("transactionType is invalid",
		fmt.Errorf("%q is not a valid transaction type", s))
}

// IsBonus reports whether the type is one of the bonus variants.
func (t TransactionType) IsBonus() bool {
	switch t {
	case TypeCreditBonus, TypeReferralBonus, TypeLoyaltyBonus, TypePromotionalCredit:
		return true
	default:
		return false
	}
}

// IsCreditSide reports whether an entry of this type increases a balance.
// Transfers are classified per entry, not per type (see Transaction.IsCredit).
func (t TransactionType) IsCreditSide() bool {
	return t == TypeRefund || t.IsBonus()
}

// IsDebitSide reports whether an entry of this type decreases a balance.
// Transfers are classified per entry, not per type (see Transaction.IsDebit).
func (t TransactionType) IsDebitSide() bool {
	return t == TypeExpirationDebit || t == TypeUsageDebit
}

// DefaultExpiry returns the expiry timestamp a new credit entry of this type
// receives: one year for refunds, six months for bonuses, none for anything
// else (transfers do not expire).
func (t TransactionType) DefaultExpiry(now time.Time) *time.Time {
	switch {
	case t == TypeRefund:
		expiry := now.Add(refundExpiry)
		return &expiry
	case t.IsBonus():
		expiry := now.Add(bonusExpiry)
		return &expiry
	default:
		return nil
	}
}
