// Package collectiveorder contains the CollectiveOrder aggregate: a pool of
// confirmed custom orders sharing one supplier, tracked toward the
// supplier's minimum order value and then driven through payment, shipment,
// and delivery as a unit.
package collectiveorder
