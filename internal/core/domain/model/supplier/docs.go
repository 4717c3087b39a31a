// Package supplier contains the Supplier aggregate that collective orders
// are pooled against.
package supplier
