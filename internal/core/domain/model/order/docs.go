// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order is created pending with one or more lines whose prices are
// snapshotted at reservation time. From then on its status changes only
// through Order.Apply, which checks the transition table together with the
// role and identity of the caller:
//
//	confirm          merchant   pending             -> confirmed
//	start_preparing  merchant   confirmed           -> preparing
//	mark_ready       merchant   preparing           -> ready
//	accept           courier    ready (unassigned)  -> in_transit
//	pick_up          courier    ready | in_transit  -> picked_up
//	deliver          courier    picked_up | in_transit -> delivered
//	confirm_receipt  customer   delivered           -> received_by_customer
//	cancel           customer   pending             -> cancelled
//
// Stock compensation on cancel and event emission belong to the caller.
package order
