package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) kernel.UUID {
	// A 16 byte array always converts.
	converted, _ := kernel.UUIDFromBytes(id[:])
	return converted
}

func optionalKernelID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	converted := toKernelID(*id)
	return &converted
}

func optionalAPIID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func toOrder(v queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, 0, len(v.Lines))
	for _, line := range v.Lines {
		lines = append(lines, servers.OrderLine{
			ProductId:   line.ProductID.Bytes(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.String(),
			Subtotal:    line.Subtotal.String(),
		})
	}

	return servers.Order{
		Id:            v.ID.Bytes(),
		CustomerId:    v.CustomerID.Bytes(),
		MerchantId:    v.MerchantID.Bytes(),
		CourierId:     optionalAPIID(v.CourierID),
		AddressId:     optionalAPIID(v.AddressID),
		Status:        servers.OrderStatus(v.Status.String()),
		PaymentMethod: servers.PaymentMethod(v.PaymentMethod),
		Notes:         v.Notes,
		Subtotal:      v.Subtotal.String(),
		DeliveryFee:   v.DeliveryFee.String(),
		Total:         v.Total.String(),
		Lines:         lines,
		CreatedAt:     v.Timestamps.CreatedAt,
		ConfirmedAt:   v.Timestamps.ConfirmedAt,
		PreparingAt:   v.Timestamps.PreparingAt,
		ReadyAt:       v.Timestamps.ReadyAt,
		PickedUpAt:    v.Timestamps.PickedUpAt,
		DeliveredAt:   v.Timestamps.DeliveredAt,
		ReceivedAt:    v.Timestamps.ReceivedAt,
		CancelledAt:   v.Timestamps.CancelledAt,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, 0, len(views))
	for _, v := range views {
		response = append(response, toOrder(v))
	}
	return response
}

func toProduct(v queries.ProductView) servers.Product {
	return servers.Product{
		Id:         v.ID.Bytes(),
		MerchantId: v.MerchantID.Bytes(),
		Name:       v.Name,
		Price:      v.UnitPrice.String(),
		Stock:      v.Stock,
		Available:  v.Available,
	}
}

func toCourierProfile(v queries.CourierView) servers.CourierProfile {
	profile := servers.CourierProfile{
		Id:                  v.ID.Bytes(),
		UserId:              v.UserID.Bytes(),
		Available:           v.Available,
		CompletedDeliveries: v.CompletedDeliveries,
	}
	if v.Location != nil {
		profile.Location = &servers.Location{
			Latitude:  v.Location.Latitude(),
			Longitude: v.Location.Longitude(),
		}
	}
	return profile
}

func toCourierLocation(v queries.CourierLocationView) servers.CourierLocation {
	return servers.CourierLocation{
		OrderId:   v.OrderID.Bytes(),
		CourierId: v.CourierID.Bytes(),
		Location: servers.Location{
			Latitude:  v.Location.Latitude(),
			Longitude: v.Location.Longitude(),
		},
	}
}

func toNotification(v queries.NotificationView) servers.Notification {
	return servers.Notification{
		Id:        v.ID.Bytes(),
		OrderId:   optionalAPIID(v.OrderID),
		Kind:      v.Kind,
		Title:     v.Title,
		Message:   v.Message,
		Read:      v.Read,
		CreatedAt: v.CreatedAt,
	}
}

func parseStatus(s *servers.OrderStatus) (*order.Status, error) {
	if s == nil {
		return nil, nil
	}
	status, err := order.ParseStatus(string(*s))
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func limitOf(limit *int) int {
	if limit == nil {
		return 0
	}
	return *limit
}

func flag(b *bool) bool {
	return b != nil && *b
}
