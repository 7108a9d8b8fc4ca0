package cmd

import (
	"log/slog"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	kafkain "marketplace/internal/adapters/in/kafka"
	"marketplace/internal/adapters/out/events"
	kafkaout "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	redisout "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const notificationConsumerName = "notification_recorder"

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	redis      goredis.UniversalClient
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	kafka      *kafkaout.Publisher
	logger     *slog.Logger
}

// NewCompositionRoot wires events to Redis pub/sub for live delivery and to
// Kafka as the durable stream the notification inbox is built from.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient goredis.UniversalClient,
	kafkaWriter kafkaout.MessageWriter,
	lockTimeout time.Duration,
	logger *slog.Logger,
) CompositionRoot {
	kafkaPublisher := kafkaout.NewPublisher(kafkaWriter, configs.Producer(), logger)
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		redis:      redisClient,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, lockTimeout),
		publisher:  events.NewFanOut(redisout.NewPublisher(redisClient), kafkaPublisher),
		kafka:      kafkaPublisher,
		logger:     logger,
	}
}

// Close flushes events still queued for Kafka and closes the writer.
func (c *CompositionRoot) Close() error {
	return c.kafka.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() *commands.TransitionOrderCommandHandler {
	h := commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRemindReadyOrdersCommandHandler() *commands.RemindReadyOrdersCommandHandler {
	h := commands.NewRemindReadyOrdersCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeProductCommandHandler() *commands.ChangeProductCommandHandler {
	h := commands.NewChangeProductCommandHandler(c.productUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() *commands.RegisterCourierCommandHandler {
	h := commands.NewRegisterCourierCommandHandler(c.courierUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeCourierAvailabilityCommandHandler() *commands.ChangeCourierAvailabilityCommandHandler {
	h := commands.NewChangeCourierAvailabilityCommandHandler(c.courierUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() *commands.UpdateCourierLocationCommandHandler {
	h := commands.NewUpdateCourierLocationCommandHandler(c.courierUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRecordNotificationCommandHandler() *commands.RecordNotificationCommandHandler {
	h := commands.NewRecordNotificationCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:               c.CreateCreateOrderCommandHandler(),
		TransitionOrder:           c.CreateTransitionOrderCommandHandler(),
		CancelOrder:               c.CreateCancelOrderCommandHandler(),
		CreateProduct:             c.CreateCreateProductCommandHandler(),
		ChangeProduct:             c.CreateChangeProductCommandHandler(),
		RegisterCourier:           c.CreateRegisterCourierCommandHandler(),
		ChangeCourierAvailability: c.CreateChangeCourierAvailabilityCommandHandler(),
		UpdateCourierLocation:     c.CreateUpdateCourierLocationCommandHandler(),
		MarkNotificationRead:      c.CreateMarkNotificationReadCommandHandler(),
		GetOrder:                  queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:                queries.NewListOrdersQueryHandler(c.gormDB),
		ListProducts:              queries.NewListProductsQueryHandler(c.gormDB),
		ListNotifications:         queries.NewListNotificationsQueryHandler(c.gormDB),
		GetCourierProfile:         queries.NewGetCourierProfileQueryHandler(c.gormDB),
		GetCourierLocation:        queries.NewGetCourierLocationQueryHandler(c.gormDB),
	}, c.logger)
}

func (c *CompositionRoot) CreateAuthenticator() ports.Authenticator {
	return redisout.NewSessionAuthenticator(c.redis)
}

func (c *CompositionRoot) CreateNotificationRecorder() *kafkain.NotificationRecorder {
	return kafkain.NewNotificationRecorder(
		c.CreateRecordNotificationCommandHandler(),
		redisout.NewDeduplicator(c.redis, notificationConsumerName),
		c.logger,
	)
}

func (c *CompositionRoot) CreateNotificationConsumer() *kafkain.Consumer {
	reader := kafkain.NewReader(c.configs.KafkaBrokers(), c.configs.KafkaConsumerGroup, c.configs.KafkaEventsTopic)
	return kafkain.NewConsumer(reader, c.logger)
}

func (c *CompositionRoot) CreateJobManager(reminderWaitingFor time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewReadyOrdersReminderJob(
			c.CreateRemindReadyOrdersCommandHandler(),
			c.configs.ReminderSchedule,
			reminderWaitingFor,
			c.logger,
		),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
