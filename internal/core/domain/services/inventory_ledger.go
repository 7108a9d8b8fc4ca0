package services

import (
	"bytes"
	"errors"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// MaxQuantity caps the quantity of one product in a batch, after duplicates
// are merged.
const MaxQuantity = 10000

// AllocationItem is a requested quantity of one product.
type AllocationItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// Allocation is a batch of product quantities with duplicate products merged
// and items sorted by product ID. Locking products in this order keeps two
// concurrent reservations from deadlocking on each other.
type Allocation struct {
	items []AllocationItem
}

// NewAllocation validates and normalizes a batch. An empty batch fails with
// order.ErrEmptyOrder.
func NewAllocation(items []AllocationItem) (Allocation, error) {
	if len(items) == 0 {
		return Allocation{}, order.ErrEmptyOrder
	}

	var errList []error
	merged := make(map[kernel.UUID]int, len(items))
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause("productID", err))
			continue
		}
		if item.Quantity <= 0 || item.Quantity > MaxQuantity {
			errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, MaxQuantity))
			continue
		}
		total := merged[item.ProductID] + item.Quantity
		if total > MaxQuantity {
			errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", total, 1, MaxQuantity))
			continue
		}
		merged[item.ProductID] = total
	}
	if err := errors.Join(errList...); err != nil {
		return Allocation{}, err
	}

	normalized := make([]AllocationItem, 0, len(merged))
	for id, quantity := range merged {
		normalized = append(normalized, AllocationItem{ProductID: id, Quantity: quantity})
	}
	slices.SortFunc(normalized, func(a, b AllocationItem) int {
		return compareUUID(a.ProductID, b.ProductID)
	})

	return Allocation{items: normalized}, nil
}

// AllocationFromOrder rebuilds the batch an order reserved at creation.
func AllocationFromOrder(o *order.Order) (Allocation, error) {
	lines := o.Lines()
	items := make([]AllocationItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, AllocationItem{ProductID: line.ProductID(), Quantity: line.Quantity()})
	}
	return NewAllocation(items)
}

func (a Allocation) Items() []AllocationItem {
	return slices.Clone(a.items)
}

// ProductIDs returns the products to lock, in lock order.
func (a Allocation) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(a.items))
	for _, item := range a.items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// Reservation is the outcome of a successful Reserve: one order line per
// product, priced at the moment stock was taken.
type Reservation struct {
	lines []order.Line
}

func (r Reservation) Lines() []order.Line {
	return slices.Clone(r.lines)
}

// InventoryLedger decides stock reservations and releases.
//
// Business rules:
//   - every product of the batch is checked before any stock is taken
//   - a single short product rejects the whole batch and nothing changes
//   - stock never goes negative
//   - releasing restocks and marks products available again
//
// The products passed in must be locked by the caller for the lifetime of
// the unit of work that persists them.
type InventoryLedger struct{}

func NewInventoryLedger() InventoryLedger {
	return InventoryLedger{}
}

// Reserve takes stock for every item of the allocation or for none of them.
// It fails with an ObjectNotFoundError for "product" when an item has no
// matching product and with a product.OutOfStockError for the first short item.
func (l InventoryLedger) Reserve(allocation Allocation, products []*product.Product) (Reservation, error) {
	byID, err := l.index(allocation, products)
	if err != nil {
		return Reservation{}, err
	}

	for _, item := range allocation.items {
		if err = byID[item.ProductID].CanReserve(item.Quantity); err != nil {
			return Reservation{}, err
		}
	}

	lines := make([]order.Line, 0, len(allocation.items))
	for _, item := range allocation.items {
		p := byID[item.ProductID]
		if err = p.Reserve(item.Quantity); err != nil {
			return Reservation{}, err
		}

		line, lineErr := order.NewLine(p.ID(), item.Quantity, p.UnitPrice())
		if lineErr != nil {
			return Reservation{}, lineErr
		}
		lines = append(lines, line)
	}

	return Reservation{lines: lines}, nil
}

// Release returns the allocation's quantities to stock.
func (l InventoryLedger) Release(allocation Allocation, products []*product.Product) error {
	byID, err := l.index(allocation, products)
	if err != nil {
		return err
	}

	for _, item := range allocation.items {
		if err = byID[item.ProductID].Release(item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (l InventoryLedger) index(allocation Allocation, products []*product.Product) (map[kernel.UUID]*product.Product, error) {
	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	for _, item := range allocation.items {
		if _, ok := byID[item.ProductID]; !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID.String())
		}
	}
	return byID, nil
}

func compareUUID(a, b kernel.UUID) int {
	ab, bb := a.Bytes(), b.Bytes()
	return bytes.Compare(ab[:], bb[:])
}
