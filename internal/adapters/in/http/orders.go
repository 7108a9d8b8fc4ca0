package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders. Only customers place orders; the
// response is the order as the customer now sees it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := requireRole(ctx, order.RoleCustomer, "create_order")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.OrderItem{
			ProductID: toKernelID(item.ProductId),
			Quantity:  item.Quantity,
		})
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		principal.UserID,
		toKernelID(body.MerchantId),
		items,
		order.PaymentMethod(body.PaymentMethod),
		notes,
		optionalKernelID(body.AddressId),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, principal)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, toKernelID(orderId), principal)
}

// ListOrders handles GET /api/v1/orders. The caller's role picks the list:
// a customer's purchases, a merchant's incoming orders or a courier's
// deliveries.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := parseStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	var query queries.ListOrdersQuery
	switch principal.Role { //nolint:exhaustive // unknown roles are rejected below
	case order.RoleCustomer:
		query, err = queries.NewListCustomerOrdersQuery(principal.UserID, status, limitOf(params.Limit))
	case order.RoleMerchant:
		query, err = queries.NewListMerchantOrdersQuery(principal.UserID, status, limitOf(params.Limit))
	case order.RoleCourier:
		query, err = queries.NewListCourierOrdersQuery(principal.UserID, status, limitOf(params.Limit))
	default:
		err = errs.NewForbiddenError("list_orders", "unknown role")
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// ListReadyOrders handles GET /api/v1/orders/ready, the pool couriers claim from.
func (s *Server) ListReadyOrders(ctx echo.Context, params servers.ListReadyOrdersParams) error {
	if _, err := requireRole(ctx, order.RoleCourier, "list_ready_orders"); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListReadyOrdersQuery(limitOf(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(views))
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context, orderId servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Transition
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	to, err := order.ParseStatus(string(body.To))
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := toKernelID(orderId)
	cmd, err := commands.NewTransitionOrderCommand(
		orderID,
		principal.UserID,
		principal.Role,
		to,
		order.Payload{DeliveryFee: body.DeliveryFee},
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, principal)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := toKernelID(orderId)
	cmd, err := commands.NewCancelOrderCommand(orderID, principal.UserID, principal.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, principal)
}

// GetOrderCourierLocation handles GET /api/v1/orders/{orderId}/courier-location
// so the customer and the merchant can follow a delivery.
func (s *Server) GetOrderCourierLocation(ctx echo.Context, orderId servers.OrderId) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCourierLocationQuery(toKernelID(orderId), principal.UserID, principal.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetCourierLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierLocation(view))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID, principal ports.Principal) error {
	query, err := queries.NewGetOrderQuery(orderID, principal.UserID, principal.Role)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toOrder(view))
}
