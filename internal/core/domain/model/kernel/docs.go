// Package kernel holds the value objects shared by every aggregate of the
// marketplace: UUID identifiers, Money amounts and courier Locations.
//
// All of them are immutable. UUID and Location reject their zero values in
// Validate; the zero Money is a valid 0.00.
package kernel
