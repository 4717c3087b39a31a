// Package customer contains the Customer aggregate: identity plus the
// cached credit balance derived from the ledger.
package customer
