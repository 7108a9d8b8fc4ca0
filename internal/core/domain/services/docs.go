// Package services provides domain services that coordinate business rules
// spanning several aggregates of the marketplace.
//
// The package includes:
//   - InventoryLedger: the all-or-nothing stock reservation and release
//     decision over a batch of products
//
// Domain services never load or persist aggregates themselves. The caller
// locks and loads the products named by an Allocation, hands them to the
// ledger, and persists the result inside the same unit of work.
package services
