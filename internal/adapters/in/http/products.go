package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/merchants/{merchantId}/products.
func (s *Server) ListProducts(ctx echo.Context, merchantId servers.MerchantId, params servers.ListProductsParams) error {
	if _, err := principalFrom(ctx); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProductsQuery(toKernelID(merchantId), flag(params.AvailableOnly))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Product, 0, len(views))
	for _, v := range views {
		response = append(response, toProduct(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products. The product joins the
// calling merchant's catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleMerchant, "create_product")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewProduct
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, principal.UserID, body.Name, price, body.Stock)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: productID.Bytes()})
}

// ChangeProductPrice handles PUT /api/v1/products/{productId}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context, productId servers.ProductId) error {
	principal, err := requireRole(ctx, order.RoleMerchant, "change_product_price")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ProductPrice
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(toKernelID(productId), principal.UserID, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeProduct.HandlePrice(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeProductAvailability handles PUT /api/v1/products/{productId}/availability.
func (s *Server) ChangeProductAvailability(ctx echo.Context, productId servers.ProductId) error {
	principal, err := requireRole(ctx, order.RoleMerchant, "change_product_availability")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Availability
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeProductAvailabilityCommand(toKernelID(productId), principal.UserID, body.Available)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeProduct.HandleAvailability(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
