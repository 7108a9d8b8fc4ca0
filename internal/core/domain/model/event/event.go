// Package event defines the notifications the marketplace emits after a
// state change has been committed, and the channels they are addressed to.
package event

import (
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type Type string

const (
	OrderCreated           Type = "order_created"
	OrderPlaced            Type = "order_placed"
	OrderConfirmed         Type = "order_confirmed"
	OrderPreparing         Type = "order_preparing"
	OrderReady             Type = "order_ready"
	OrderAvailable         Type = "order_available"
	OrderAccepted          Type = "order_accepted"
	OrderInTransit         Type = "order_in_transit"
	OrderPickedUp          Type = "order_picked_up"
	OrderDelivered         Type = "order_delivered"
	OrderReceived          Type = "order_received"
	OrderCancelled         Type = "order_cancelled"
	ReadyOrderReminder     Type = "ready_order_reminder"
	CourierLocationUpdated Type = "courier_location_updated"
)

const (
	userChannelPrefix    = "user:"
	courierChannelPrefix = "courier:"
)

// Event is one notification. ID is unique per emitted event and is used by
// consumers to drop redeliveries.
type Event struct {
	ID         kernel.UUID       `json:"id"`
	Type       Type              `json:"type"`
	OrderID    *kernel.UUID      `json:"order_id,omitempty"`
	Status     string            `json:"status,omitempty"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewOrderEvent describes the current state of o.
func NewOrderEvent(t Type, o *order.Order, title, message string, occurredAt time.Time) Event {
	orderID := o.ID()
	return Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		OrderID:    &orderID,
		Status:     o.Status().String(),
		Title:      title,
		Message:    message,
		OccurredAt: occurredAt,
		Data: map[string]string{
			"total": o.Total().String(),
		},
	}
}

func NewCourierLocationEvent(courierID kernel.UUID, location kernel.Location, occurredAt time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       CourierLocationUpdated,
		Title:      "Courier location",
		Message:    location.String(),
		OccurredAt: occurredAt,
		Data: map[string]string{
			"courier_id": courierID.String(),
			"latitude":   fmt.Sprintf("%f", location.Latitude()),
			"longitude":  fmt.Sprintf("%f", location.Longitude()),
		},
	}
}

// IsOrderEvent reports whether the event belongs in a user's inbox.
func (e Event) IsOrderEvent() bool {
	return e.OrderID != nil
}

// Message is an event addressed to one channel.
type Message struct {
	Channel string
	Event   Event
}

func UserChannel(userID kernel.UUID) string {
	return userChannelPrefix + userID.String()
}

func CourierChannel(courierID kernel.UUID) string {
	return courierChannelPrefix + courierID.String()
}

// ParseUserChannel extracts the user ID from a user:<id> channel.
func ParseUserChannel(channel string) (kernel.UUID, bool) {
	raw, ok := strings.CutPrefix(channel, userChannelPrefix)
	if !ok {
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil || id.Validate() != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// ShortID is the first eight characters of an ID, used in human-readable messages.
func ShortID(id kernel.UUID) string {
	return id.String()[:8]
}
