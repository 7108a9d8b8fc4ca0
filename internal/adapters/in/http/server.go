package http

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/generated/servers"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

type CreateProductHandler interface {
	Handle(ctx context.Context, cmd commands.CreateProductCommand) error
}

type ChangeProductHandler interface {
	HandlePrice(ctx context.Context, cmd commands.ChangeProductPriceCommand) error
	HandleAvailability(ctx context.Context, cmd commands.ChangeProductAvailabilityCommand) error
}

type RegisterCourierHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterCourierCommand) error
}

type ChangeCourierAvailabilityHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeCourierAvailabilityCommand) error
}

type UpdateCourierLocationHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) error
}

type MarkNotificationReadHandler interface {
	Handle(ctx context.Context, cmd commands.MarkNotificationReadCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
}

type ListProductsHandler interface {
	Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductView, error)
}

type GetCourierLocationHandler interface {
	Handle(ctx context.Context, query queries.GetCourierLocationQuery) (queries.CourierLocationView, error)
}

type ListNotificationsHandler interface {
	Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]queries.NotificationView, error)
}

type GetCourierProfileHandler interface {
	Handle(ctx context.Context, query queries.GetCourierProfileQuery) (queries.CourierView, error)
}

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder               CreateOrderHandler
	TransitionOrder           TransitionOrderHandler
	CancelOrder               CancelOrderHandler
	CreateProduct             CreateProductHandler
	ChangeProduct             ChangeProductHandler
	RegisterCourier           RegisterCourierHandler
	ChangeCourierAvailability ChangeCourierAvailabilityHandler
	UpdateCourierLocation     UpdateCourierLocationHandler
	MarkNotificationRead      MarkNotificationReadHandler

	GetOrder           GetOrderHandler
	ListOrders         ListOrdersHandler
	ListProducts       ListProductsHandler
	ListNotifications  ListNotificationsHandler
	GetCourierProfile  GetCourierProfileHandler
	GetCourierLocation GetCourierLocationHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Every route runs behind Authenticate, so handlers read the caller
// from the echo context.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}
