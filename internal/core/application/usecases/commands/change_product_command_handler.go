package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ChangeProductCommandHandler applies catalog maintenance requests of the
// owning merchant. Existing order lines keep their price snapshot.
type ChangeProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewChangeProductCommandHandler(uowFactory ProductUoWFactory) ChangeProductCommandHandler {
	return ChangeProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeProductCommandHandler) HandlePrice(ctx context.Context, cmd ChangeProductPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.ProductID(), cmd.MerchantID(), "change_product_price",
		func(p *product.Product) error {
			p.ChangePrice(cmd.UnitPrice())
			return nil
		})
}

// HandleAvailability fails with a ValueIsInvalidError when listing a product
// that has no stock.
func (h *ChangeProductCommandHandler) HandleAvailability(
	ctx context.Context,
	cmd ChangeProductAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.change(ctx, cmd.ProductID(), cmd.MerchantID(), "change_product_availability",
		func(p *product.Product) error {
			return p.ChangeAvailability(cmd.Available())
		})
}

func (h *ChangeProductCommandHandler) change(
	ctx context.Context,
	productID kernel.UUID,
	merchantID kernel.UUID,
	action string,
	mutate func(p *product.Product) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := lockProduct(ctx, productRepo, productID)
	if err != nil {
		return err
	}

	if !p.BelongsTo(merchantID) {
		return errs.NewForbiddenError(action, "product belongs to another merchant")
	}

	if err = mutate(p); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func lockProduct(ctx context.Context, repo ports.ProductRepository, id kernel.UUID) (*product.Product, error) {
	products, err := repo.GetForUpdate(ctx, []kernel.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return products[0], nil
}
