// Package credit contains the ledger-entry domain model: the immutable
// Transaction entity, its TransactionType classification, and the strictly
// forward Status state machine.
//
// A Transaction records one economic event against one customer's balance.
// The ledger, the append-only sequence of these entries, is the
// authoritative record of a customer's credit; the cached balance on the
// Customer aggregate is derived from it and mutated only by the Ledger
// domain service alongside entry creation.
package credit
