package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("products").
		Select("id, merchant_id, name, unit_price, stock, available").
		Where("merchant_id = ?", query.MerchantID().Bytes())
	if query.AvailableOnly() {
		stmt = stmt.Where("available")
	}

	rows, err := stmt.Order("name").Order("id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			view           ProductView
			id, merchantID uuid.UUID
			price          decimal.Decimal
		)
		if err = rows.Scan(&id, &merchantID, &view.Name, &price, &view.Stock, &view.Available); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
			return nil, err
		}
		if view.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
