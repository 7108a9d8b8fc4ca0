// Package productrepo persists the product catalog, including the stock
// counters the inventory ledger reserves from.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name       string          `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock      int             `gorm:"not null;check:chk_products_stock,stock >= 0"`
	Available  bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID().Bytes(),
		MerchantID: p.MerchantID().Bytes(),
		Name:       p.Name(),
		UnitPrice:  p.UnitPrice().Decimal(),
		Stock:      p.Stock(),
		Available:  p.IsAvailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, merchantID, dto.Name, price, dto.Stock, dto.Available)
}
