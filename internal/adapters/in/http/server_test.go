package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/api"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct{ mock.Mock }

func (m *MockAuthenticator) Resolve(ctx context.Context, token string) (ports.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(ports.Principal), args.Error(1)
}

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeProductHandler struct{ mock.Mock }

func (m *MockChangeProductHandler) HandlePrice(ctx context.Context, cmd commands.ChangeProductPriceCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockChangeProductHandler) HandleAvailability(
	ctx context.Context,
	cmd commands.ChangeProductAvailabilityCommand,
) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockQueryHandler[Q any, R any] struct{ mock.Mock }

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	if fn, ok := args.Get(0).(func(context.Context, Q) R); ok {
		return fn(ctx, query), args.Error(1)
	}
	return args.Get(0).(R), args.Error(1)
}

const (
	customerToken = "customer-token"
	merchantToken = "merchant-token"
	courierToken  = "courier-token"
)

type fixture struct {
	e *echo.Echo

	customerID kernel.UUID
	merchantID kernel.UUID
	courierID  kernel.UUID

	createOrder     *MockCommandHandler[commands.CreateOrderCommand]
	transitionOrder *MockCommandHandler[commands.TransitionOrderCommand]
	cancelOrder     *MockCommandHandler[commands.CancelOrderCommand]
	createProduct   *MockCommandHandler[commands.CreateProductCommand]
	changeProduct   *MockChangeProductHandler
	markRead        *MockCommandHandler[commands.MarkNotificationReadCommand]
	getOrder        *MockQueryHandler[queries.GetOrderQuery, queries.OrderView]
	listOrders      *MockQueryHandler[queries.ListOrdersQuery, []queries.OrderView]
	getProfile      *MockQueryHandler[queries.GetCourierProfileQuery, queries.CourierView]
	courierLocation *MockQueryHandler[queries.GetCourierLocationQuery, queries.CourierLocationView]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:               echo.New(),
		customerID:      kernel.NewUUID(),
		merchantID:      kernel.NewUUID(),
		courierID:       kernel.NewUUID(),
		createOrder:     new(MockCommandHandler[commands.CreateOrderCommand]),
		transitionOrder: new(MockCommandHandler[commands.TransitionOrderCommand]),
		cancelOrder:     new(MockCommandHandler[commands.CancelOrderCommand]),
		createProduct:   new(MockCommandHandler[commands.CreateProductCommand]),
		changeProduct:   new(MockChangeProductHandler),
		markRead:        new(MockCommandHandler[commands.MarkNotificationReadCommand]),
		getOrder:        new(MockQueryHandler[queries.GetOrderQuery, queries.OrderView]),
		listOrders:      new(MockQueryHandler[queries.ListOrdersQuery, []queries.OrderView]),
		getProfile:      new(MockQueryHandler[queries.GetCourierProfileQuery, queries.CourierView]),
		courierLocation: new(MockQueryHandler[queries.GetCourierLocationQuery, queries.CourierLocationView]),
	}

	auth := new(MockAuthenticator)
	auth.On("Resolve", mock.Anything, customerToken).
		Return(ports.Principal{UserID: f.customerID, Role: order.RoleCustomer}, nil).Maybe()
	auth.On("Resolve", mock.Anything, merchantToken).
		Return(ports.Principal{UserID: f.merchantID, Role: order.RoleMerchant}, nil).Maybe()
	auth.On("Resolve", mock.Anything, courierToken).
		Return(ports.Principal{UserID: f.courierID, Role: order.RoleCourier}, nil).Maybe()
	auth.On("Resolve", mock.Anything, mock.Anything).
		Return(ports.Principal{}, ports.ErrUnauthenticated).Maybe()

	doc, err := api.Load(t.Context())
	require.NoError(t, err)
	validator, err := httpin.RequestValidator(doc)
	require.NoError(t, err)

	logger := slog.Default()
	f.e.HTTPErrorHandler = httpin.ErrorHandler(logger)
	f.e.Use(httpin.Authenticate(auth, logger), validator)
	f.e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:               f.createOrder,
		TransitionOrder:           f.transitionOrder,
		CancelOrder:               f.cancelOrder,
		CreateProduct:             f.createProduct,
		ChangeProduct:             f.changeProduct,
		RegisterCourier:           new(MockCommandHandler[commands.RegisterCourierCommand]),
		ChangeCourierAvailability: new(MockCommandHandler[commands.ChangeCourierAvailabilityCommand]),
		UpdateCourierLocation:     new(MockCommandHandler[commands.UpdateCourierLocationCommand]),
		MarkNotificationRead:      f.markRead,
		GetOrder:                  f.getOrder,
		ListOrders:                f.listOrders,
		ListProducts:              new(MockQueryHandler[queries.ListProductsQuery, []queries.ProductView]),
		ListNotifications:         new(MockQueryHandler[queries.ListNotificationsQuery, []queries.NotificationView]),
		GetCourierProfile:         f.getProfile,
		GetCourierLocation:        f.courierLocation,
	}, logger)
	servers.RegisterHandlers(f.e, server)

	return f
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func orderView(id, customerID, merchantID kernel.UUID) queries.OrderView {
	productID := kernel.NewUUID()
	return queries.OrderView{
		ID:            id,
		CustomerID:    customerID,
		MerchantID:    merchantID,
		Status:        order.Pending,
		PaymentMethod: order.PaymentCash,
		Subtotal:      kernel.MustMoney("10.00"),
		DeliveryFee:   kernel.ZeroMoney,
		Total:         kernel.MustMoney("10.00"),
		Timestamps:    order.Timestamps{CreatedAt: time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)},
		Lines: []queries.OrderLineView{{
			ProductID:   productID,
			ProductName: "Pizza",
			Quantity:    2,
			UnitPrice:   kernel.MustMoney("5.00"),
			Subtotal:    kernel.MustMoney("10.00"),
		}},
	}
}

func newOrderBody(merchantID kernel.UUID, productID kernel.UUID, quantity int) map[string]any {
	return map[string]any{
		"merchantId":    merchantID.String(),
		"paymentMethod": "cash",
		"items": []map[string]any{
			{"productId": productID.String(), "quantity": quantity},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)

	t.Run("should reject api calls without a session", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, servers.UNAUTHENTICATED, decodeError(t, rec).ErrorCode)
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders", "stolen", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should leave health checks open", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/health", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should place the order and answer with it", func(t *testing.T) {
		f := newFixture(t)
		productID := kernel.NewUUID()
		var placed kernel.UUID
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			placed = cmd.OrderID()
			return cmd.CustomerID().IsEqual(f.customerID) && cmd.MerchantID().IsEqual(f.merchantID)
		})).Return(nil).Once()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(func(_ context.Context, q queries.GetOrderQuery) queries.OrderView {
				return orderView(q.OrderID(), f.customerID, f.merchantID)
			}, nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, newOrderBody(f.merchantID, productID, 2))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var body servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, placed.String(), body.Id.String())
		assert.Equal(t, servers.Pending, body.Status)
		assert.Equal(t, "10.00", body.Total)
		require.Len(t, body.Lines, 1)
		assert.Equal(t, "5.00", body.Lines[0].UnitPrice)
		f.createOrder.AssertExpectations(t)
	})

	t.Run("should forbid merchants from ordering", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/orders", merchantToken, newOrderBody(f.merchantID, kernel.NewUUID(), 1))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, servers.FORBIDDEN, decodeError(t, rec).ErrorCode)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should report stock shortfalls", func(t *testing.T) {
		f := newFixture(t)
		productID := kernel.NewUUID()
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(product.NewOutOfStockError(productID, 5, 100)).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, newOrderBody(f.merchantID, productID, 100))

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, servers.OUTOFSTOCK, body.ErrorCode)
		require.NotNil(t, body.Available)
		require.NotNil(t, body.Requested)
		assert.Equal(t, 5, *body.Available)
		assert.Equal(t, 100, *body.Requested)
		assert.Equal(t, productID.String(), body.ProductId.String())
	})

	t.Run("should report unknown products", func(t *testing.T) {
		f := newFixture(t)
		productID := kernel.NewUUID()
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("product", productID.String())).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, newOrderBody(f.merchantID, productID, 1))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, servers.PRODUCTNOTFOUND, decodeError(t, rec).ErrorCode)
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		f := newFixture(t)
		body := newOrderBody(f.merchantID, kernel.NewUUID(), 1)
		body["items"] = []map[string]any{}

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, servers.EMPTYORDER, decodeError(t, rec).ErrorCode)
	})

	t.Run("should reject bodies that break the contract", func(t *testing.T) {
		f := newFixture(t)
		body := newOrderBody(f.merchantID, kernel.NewUUID(), 1)
		delete(body, "items")

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, servers.VALIDATIONFAILED, decodeError(t, rec).ErrorCode)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should reject quantities above the per line cap", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken,
			newOrderBody(f.merchantID, kernel.NewUUID(), services.MaxQuantity+1))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, servers.VALIDATIONFAILED, decodeError(t, rec).ErrorCode)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide internal failures", func(t *testing.T) {
		f := newFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errors.New("pq: connection refused")).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/orders", customerToken, newOrderBody(f.merchantID, kernel.NewUUID(), 1))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, servers.INTERNAL, body.ErrorCode)
		assert.NotContains(t, body.Message, "connection refused")
	})
}

func TestServer_TransitionOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	path := "/api/v1/orders/" + orderID.String() + "/transitions"

	t.Run("should pass the caller and fee to the orchestrator", func(t *testing.T) {
		f := newFixture(t)
		f.transitionOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderCommand) bool {
			return cmd.OrderID().IsEqual(orderID) &&
				cmd.UserID().IsEqual(f.courierID) &&
				cmd.Role() == order.RoleCourier &&
				cmd.To() == order.InTransit &&
				cmd.Payload().DeliveryFee != nil && *cmd.Payload().DeliveryFee == 3.5
		})).Return(nil).Once()
		view := orderView(orderID, f.customerID, f.merchantID)
		view.Status = order.InTransit
		view.DeliveryFee = kernel.MustMoney("3.50")
		view.Total = kernel.MustMoney("13.50")
		f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(view, nil).Once()

		rec := f.do(t, http.MethodPost, path, courierToken, map[string]any{"to": "in_transit", "deliveryFee": 3.5})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, servers.InTransit, body.Status)
		assert.Equal(t, "13.50", body.Total)
		f.transitionOrder.AssertExpectations(t)
	})

	t.Run("should map guard violations to INVALID_TRANSITION", func(t *testing.T) {
		f := newFixture(t)
		f.transitionOrder.On("Handle", mock.Anything, mock.Anything).
			Return(order.NewInvalidTransitionError(order.InTransit, order.InTransit, "already claimed")).Once()

		rec := f.do(t, http.MethodPost, path, courierToken, map[string]any{"to": "in_transit", "deliveryFee": 2})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, servers.INVALIDTRANSITION, decodeError(t, rec).ErrorCode)
	})

	t.Run("should map lock timeouts to CONCURRENCY_CONFLICT", func(t *testing.T) {
		f := newFixture(t)
		f.transitionOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewConcurrencyConflictError("order")).Once()

		rec := f.do(t, http.MethodPost, path, merchantToken, map[string]any{"to": "confirmed"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, servers.CONCURRENCYCONFLICT, decodeError(t, rec).ErrorCode)
	})

	t.Run("should reject unknown target states", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, path, merchantToken, map[string]any{"to": "teleported"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.transitionOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_GetOrder(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should map a missing order to ORDER_NOT_FOUND", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", orderID.String())).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), customerToken, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, servers.ORDERNOTFOUND, decodeError(t, rec).ErrorCode)
	})

	t.Run("should map someone else's order to FORBIDDEN", func(t *testing.T) {
		f := newFixture(t)
		f.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(queries.OrderView{}, errs.NewForbiddenError("get_order", "order belongs to other parties")).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), customerToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/orders/not-a-uuid", customerToken, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, servers.VALIDATIONFAILED, decodeError(t, rec).ErrorCode)
		f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestServer_GetOrderCourierLocation(t *testing.T) {
	orderID := kernel.NewUUID()
	path := "/api/v1/orders/" + orderID.String() + "/courier-location"

	t.Run("should show the customer where the courier is", func(t *testing.T) {
		f := newFixture(t)
		courierID := kernel.NewUUID()
		location, err := kernel.NewLocation(52.52, 13.405)
		require.NoError(t, err)
		f.courierLocation.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetCourierLocationQuery) bool {
			return q.OrderID().IsEqual(orderID) && q.UserID().IsEqual(f.customerID) && q.Role() == order.RoleCustomer
		})).Return(queries.CourierLocationView{OrderID: orderID, CourierID: courierID, Location: location}, nil).Once()

		rec := f.do(t, http.MethodGet, path, customerToken, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.CourierLocation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, courierID.String(), body.CourierId.String())
		assert.InDelta(t, 52.52, body.Location.Latitude, 1e-9)
		assert.InDelta(t, 13.405, body.Location.Longitude, 1e-9)
		f.courierLocation.AssertExpectations(t)
	})

	t.Run("should answer 404 while no courier is assigned", func(t *testing.T) {
		f := newFixture(t)
		f.courierLocation.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CourierLocationView{}, errs.NewObjectNotFoundError("courier", orderID.String())).Once()

		rec := f.do(t, http.MethodGet, path, merchantToken, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, servers.NOTFOUND, decodeError(t, rec).ErrorCode)
	})

	t.Run("should hide the courier from other users", func(t *testing.T) {
		f := newFixture(t)
		f.courierLocation.On("Handle", mock.Anything, mock.Anything).
			Return(queries.CourierLocationView{}, errs.NewForbiddenError("get_courier_location", "order belongs to other parties")).
			Once()

		rec := f.do(t, http.MethodGet, path, customerToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, servers.FORBIDDEN, decodeError(t, rec).ErrorCode)
	})
}

func TestServer_ListOrders(t *testing.T) {
	t.Run("should list a merchant's incoming orders by status", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopeMerchant &&
				q.UserID().IsEqual(f.merchantID) &&
				q.Status() != nil && *q.Status() == order.Pending &&
				q.Limit() == 10
		})).Return([]queries.OrderView{orderView(kernel.NewUUID(), f.customerID, f.merchantID)}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders?status=pending&limit=10", merchantToken, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		f.listOrders.AssertExpectations(t)
	})

	t.Run("should keep the ready pool to couriers", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/orders/ready", customerToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should list the ready pool for couriers", func(t *testing.T) {
		f := newFixture(t)
		f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
			return q.Scope() == queries.ScopeReadyPool
		})).Return([]queries.OrderView{}, nil).Once()

		rec := f.do(t, http.MethodGet, "/api/v1/orders/ready", courierToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestServer_Products(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create products for the calling merchant", func(t *testing.T) {
		f := newFixture(t)
		f.createProduct.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
			return cmd.MerchantID().IsEqual(f.merchantID) && cmd.UnitPrice().String() == "5.00" && cmd.Stock() == 10
		})).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/api/v1/products", merchantToken,
			map[string]any{"name": "Pizza", "price": "5.00", "stock": 10})

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		f.createProduct.AssertExpectations(t)
	})

	t.Run("should reject malformed prices", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPut, "/api/v1/products/"+productID.String()+"/price", merchantToken,
			map[string]any{"price": "five"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.changeProduct.AssertNotCalled(t, "HandlePrice", mock.Anything, mock.Anything)
	})

	t.Run("should reprice a product", func(t *testing.T) {
		f := newFixture(t)
		f.changeProduct.On("HandlePrice", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeProductPriceCommand) bool {
			return cmd.ProductID().IsEqual(productID) && cmd.UnitPrice().String() == "9.00"
		})).Return(nil).Once()

		rec := f.do(t, http.MethodPut, "/api/v1/products/"+productID.String()+"/price", merchantToken,
			map[string]any{"price": "9.00"})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestServer_MarkNotificationRead(t *testing.T) {
	f := newFixture(t)
	notificationID := kernel.NewUUID()
	f.markRead.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewForbiddenError("mark_notification_read", "notification belongs to another user")).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", customerToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorHandler(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/nowhere", customerToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, servers.NOTFOUND, decodeError(t, rec).ErrorCode)
}
