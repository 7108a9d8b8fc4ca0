// Package orderrepo maps order aggregates to the orders and order_lines
// tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the order header. Status is stored as the integer value of
// order.Status.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID     *uuid.UUID      `gorm:"type:uuid;index"`
	AddressID     *uuid.UUID      `gorm:"type:uuid"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(16);not null"`
	Notes         string          `gorm:"type:text;not null;default:''"`
	Status        int             `gorm:"not null;index"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	ConfirmedAt   *time.Time
	PreparingAt   *time.Time
	ReadyAt       *time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	ReceivedAt    *time.Time
	CancelledAt   *time.Time
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is an immutable line. A product appears at most once per
// order.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null;check:chk_order_lines_quantity,quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	ts := o.Timestamps()
	orderID := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			ProductID: line.ProductID().Bytes(),
			Position:  i,
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Decimal(),
			Subtotal:  line.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:            orderID,
		CustomerID:    o.CustomerID().Bytes(),
		MerchantID:    o.MerchantID().Bytes(),
		CourierID:     optionalID(o.Courier()),
		AddressID:     optionalID(o.AddressID()),
		Subtotal:      o.Subtotal().Decimal(),
		DeliveryFee:   o.DeliveryFee().Decimal(),
		Total:         o.Total().Decimal(),
		PaymentMethod: string(o.PaymentMethod()),
		Notes:         o.Notes(),
		Status:        int(o.Status()),
		CreatedAt:     ts.CreatedAt,
		ConfirmedAt:   ts.ConfirmedAt,
		PreparingAt:   ts.PreparingAt,
		ReadyAt:       ts.ReadyAt,
		PickedUpAt:    ts.PickedUpAt,
		DeliveredAt:   ts.DeliveredAt,
		ReceivedAt:    ts.ReceivedAt,
		CancelledAt:   ts.CancelledAt,
		Lines:         lines,
	}
}

// toDomain rebuilds an order from a header and its lines loaded in position
// order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := restoreOptionalID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	addressID, err := restoreOptionalID(dto.AddressID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := restoreLine(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		CustomerID:    customerID,
		MerchantID:    merchantID,
		CourierID:     courierID,
		AddressID:     addressID,
		Lines:         lines,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         total,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		Notes:         dto.Notes,
		Status:        order.Status(dto.Status),
		Timestamps: order.Timestamps{
			CreatedAt:   dto.CreatedAt,
			ConfirmedAt: dto.ConfirmedAt,
			PreparingAt: dto.PreparingAt,
			ReadyAt:     dto.ReadyAt,
			PickedUpAt:  dto.PickedUpAt,
			DeliveredAt: dto.DeliveredAt,
			ReceivedAt:  dto.ReceivedAt,
			CancelledAt: dto.CancelledAt,
		},
	})
}

func restoreLine(dto OrderLineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, dto.Quantity, price)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
