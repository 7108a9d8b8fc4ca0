package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/notificationrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, string, event.Event) error { return nil }

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))

	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, 500*time.Millisecond)
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE order_lines, orders, products, couriers, notifications").Error)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *UnitOfWorkIntegrationTestSuite) orderFactory() orderUoWFactory {
	return func() commands.OrderUoW { return s.factory.Create() }
}

func (s *UnitOfWorkIntegrationTestSuite) seedProduct(merchantID kernel.UUID, price string, stock int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), merchantID, "dumplings", kernel.MustMoney(price), stock)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.ProductRepository().Add(context.Background(), p))
	return p
}

func (s *UnitOfWorkIntegrationTestSuite) seedCourier() *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID())
	s.Require().NoError(err)
	c.ChangeAvailability(true)

	uow := s.factory.Create()
	s.Require().NoError(uow.CourierRepository().Add(context.Background(), c))
	return c
}

func (s *UnitOfWorkIntegrationTestSuite) createOrder(merchantID kernel.UUID, p *product.Product, quantity int) kernel.UUID {
	handler := commands.NewCreateOrderCommandHandler(s.orderFactory(), discardPublisher{}, nil)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, kernel.NewUUID(), merchantID,
		[]commands.OrderItem{{ProductID: p.ID(), Quantity: quantity}}, order.PaymentCash, "", nil)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(context.Background(), cmd))
	return orderID
}

func (s *UnitOfWorkIntegrationTestSuite) stockOf(id kernel.UUID) int {
	p, err := s.factory.Create().ProductRepository().Get(context.Background(), id)
	s.Require().NoError(err)
	return p.Stock()
}

func (s *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	s.NotSame(uow1, uow2)
	s.NotNil(uow1.ProductRepository())
	s.NotNil(uow1.OrderRepository())
	s.NotNil(uow1.CourierRepository())
	s.NotNil(uow1.NotificationRepository())
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Rollback(ctx))

	s.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	s.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsWritesAcrossRepositories() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	p, err := product.NewProduct(kernel.NewUUID(), merchantID, "noodles", kernel.MustMoney("4.00"), 3)
	s.Require().NoError(err)
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID())
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.ProductRepository().Add(ctx, p))
	s.Require().NoError(uow.CourierRepository().Add(ctx, c))
	s.Equal(2, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	s.Require().NoError(uow.Rollback(ctx))

	fresh := s.factory.Create()
	_, err = fresh.ProductRepository().Get(ctx, p.ID())
	s.True(errs.IsObjectNotFound(err, "product"))
	_, err = fresh.CourierRepository().Get(ctx, c.ID())
	s.True(errs.IsObjectNotFound(err, "courier"))
}

func (s *UnitOfWorkIntegrationTestSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	p := s.seedProduct(merchantID, "5.00", 10)

	orderID := s.createOrder(merchantID, p, 2)

	got, err := s.factory.Create().OrderRepository().Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(order.Pending, got.Status())
	s.Equal("10.00", got.Total().String())
	s.Require().Len(got.Lines(), 1)
	s.True(got.Lines()[0].ProductID().IsEqual(p.ID()))
	s.Equal(8, s.stockOf(p.ID()))
}

func (s *UnitOfWorkIntegrationTestSuite) TestCreateOrder_OutOfStockLeavesNothingBehind() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	p := s.seedProduct(merchantID, "5.00", 1)

	handler := commands.NewCreateOrderCommandHandler(s.orderFactory(), discardPublisher{}, nil)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, kernel.NewUUID(), merchantID,
		[]commands.OrderItem{{ProductID: p.ID(), Quantity: 2}}, order.PaymentCash, "", nil)
	s.Require().NoError(err)

	err = handler.Handle(ctx, cmd)

	s.ErrorIs(err, product.ErrOutOfStock)
	s.Equal(1, s.stockOf(p.ID()))
	_, err = s.factory.Create().OrderRepository().Get(ctx, orderID)
	s.True(errs.IsObjectNotFound(err, "order"))
}

// Twenty customers race for seven units; exactly seven orders of one unit win.
func (s *UnitOfWorkIntegrationTestSuite) TestConcurrentCreateOrder_StockNeverNegative() {
	merchantID := kernel.NewUUID()
	p := s.seedProduct(merchantID, "1.00", 7)
	handler := commands.NewCreateOrderCommandHandler(s.orderFactory(), discardPublisher{}, nil)

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		outOfStock int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), merchantID,
				[]commands.OrderItem{{ProductID: p.ID(), Quantity: 1}}, order.PaymentCard, "", nil)
			if err != nil {
				return
			}
			err = handler.Handle(context.Background(), cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, product.ErrOutOfStock):
				outOfStock++
			}
		}()
	}
	wg.Wait()

	conflicts := 20 - succeeded - outOfStock
	s.Equal(7-succeeded, s.stockOf(p.ID()))
	s.GreaterOrEqual(s.stockOf(p.ID()), 0)
	if conflicts == 0 {
		s.Equal(7, succeeded)
	}
}

// Two available couriers accept the same ready order; exactly one wins.
func (s *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_FirstClaimWins() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	p := s.seedProduct(merchantID, "5.00", 10)
	orderID := s.createOrder(merchantID, p, 1)

	uow := s.factory.Create()
	o, err := uow.OrderRepository().Get(ctx, orderID)
	s.Require().NoError(err)
	merchant := order.NewMerchantActor(merchantID)
	for _, to := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		_, err = o.Apply(merchant, to, order.Payload{}, time.Now())
		s.Require().NoError(err)
	}
	s.Require().NoError(uow.OrderRepository().Update(ctx, o))

	first, second := s.seedCourier(), s.seedCourier()
	handler := commands.NewTransitionOrderCommandHandler(s.orderFactory(), discardPublisher{}, nil)
	fee := 3.5

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, c := range []*courier.Courier{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewTransitionOrderCommand(orderID, c.UserID(), order.RoleCourier,
				order.InTransit, order.Payload{DeliveryFee: &fee})
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	var won int
	for _, r := range results {
		if r == nil {
			won++
			continue
		}
		s.True(errors.Is(r, order.ErrInvalidTransition) || errors.Is(r, errs.ErrConcurrencyConflict), r)
	}
	s.Equal(1, won)

	got, err := s.factory.Create().OrderRepository().Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(order.InTransit, got.Status())
	s.Equal("8.50", got.Total().String())
	s.Require().NotNil(got.Courier())
}

func (s *UnitOfWorkIntegrationTestSuite) TestLockTimeoutSurfacesAsConcurrencyConflict() {
	ctx := context.Background()
	p := s.seedProduct(kernel.NewUUID(), "1.00", 1)

	holder := s.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	_, err := holder.ProductRepository().GetForUpdate(ctx, []kernel.UUID{p.ID()})
	s.Require().NoError(err)

	waiter := s.factory.Create()
	s.Require().NoError(waiter.Begin(ctx))
	defer func() { _ = waiter.Rollback(ctx) }()
	_, err = waiter.ProductRepository().GetForUpdate(ctx, []kernel.UUID{p.ID()})

	s.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (s *UnitOfWorkIntegrationTestSuite) TestProductAdd_BlockedInsertSurfacesAsConcurrencyConflict() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "dumplings", kernel.MustMoney("1.00"), 1)
	s.Require().NoError(err)

	holder := s.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	s.Require().NoError(holder.ProductRepository().Add(ctx, p))

	waiter := s.factory.Create()
	s.Require().NoError(waiter.Begin(ctx))
	defer func() { _ = waiter.Rollback(ctx) }()
	err = waiter.ProductRepository().Add(ctx, p)

	s.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (s *UnitOfWorkIntegrationTestSuite) TestOrderAdd_BlockedInsertSurfacesAsConcurrencyConflict() {
	ctx := context.Background()
	merchantID := kernel.NewUUID()
	p := s.seedProduct(merchantID, "2.00", 5)
	line, err := order.NewLine(p.ID(), 1, kernel.MustMoney("2.00"))
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), merchantID, nil, []order.Line{line},
		order.PaymentCash, "", time.Now().UTC())
	s.Require().NoError(err)

	holder := s.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()
	s.Require().NoError(holder.OrderRepository().Add(ctx, o))

	waiter := s.factory.Create()
	s.Require().NoError(waiter.Begin(ctx))
	defer func() { _ = waiter.Rollback(ctx) }()
	err = waiter.OrderRepository().Add(ctx, o)

	s.ErrorIs(err, errs.ErrConcurrencyConflict)
}

func (s *UnitOfWorkIntegrationTestSuite) TestNotificationAdd_DeduplicatesPerEventAndUser() {
	ctx := context.Background()
	eventID, userID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	newNotification := func() *notification.Notification {
		n, err := notification.NewNotification(kernel.NewUUID(), eventID, userID, &orderID,
			string(event.OrderReady), "Order ready", "Order is ready for pickup", time.Now())
		s.Require().NoError(err)
		return n
	}

	repo := s.factory.Create().NotificationRepository()
	added, err := repo.Add(ctx, newNotification())
	s.Require().NoError(err)
	s.True(added)

	added, err = repo.Add(ctx, newNotification())
	s.Require().NoError(err)
	s.False(added)

	var count int64
	s.Require().NoError(s.db.Model(&notificationrepo.NotificationDTO{}).Count(&count).Error)
	s.EqualValues(1, count)
}

var _ ports.UnitOfWorkFactory = (*postgres_adapter.GormUnitOfWorkFactory)(nil)
