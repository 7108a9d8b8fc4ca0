package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/api"
	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	kafkaout "marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	redisout "marketplace/internal/adapters/out/redis"
	"marketplace/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	lockTimeout, err := configs.LockTimeout()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	reminderWaitingFor, err := configs.ReminderWait()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	redisDB, err := configs.RedisDatabase()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient := redisout.NewClient(configs.RedisAddr, configs.RedisPassword, redisDB)
	defer func() { _ = redisClient.Close() }()

	kafkaWriter := kafkaout.NewWriter(configs.KafkaBrokers(), configs.KafkaEventsTopic)

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, kafkaWriter, lockTimeout, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to flush kafka publisher", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager(reminderWaitingFor)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(ctx, &app, logger)
	if err != nil {
		log.Fatalf("failed to set up web server: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.CreateNotificationConsumer().Run(gctx, app.CreateNotificationRecorder().Handle)
	})
	g.Go(func() error {
		err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("marketplace stopped", "error", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		DBLockTimeout:      goDotEnvVariable("DB_LOCK_TIMEOUT"),
		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup: goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaEventsTopic:   goDotEnvVariable("KAFKA_EVENTS_TOPIC"),
		KafkaProducer:      goDotEnvVariable("KAFKA_PRODUCER"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:            goDotEnvVariable("REDIS_DB"),
		ReminderSchedule:   goDotEnvVariable("REMINDER_SCHEDULE"),
		ReminderWaitingFor: goDotEnvVariable("REMINDER_WAITING_FOR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwagger(doc); err != nil {
		return nil, err
	}
	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed", slog.Group("http", attrs...), slog.String("error", v.Error.Error()))
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", slog.Group("http", attrs...))
			return nil
		},
	}))
	e.Use(httpin.Authenticate(app.CreateAuthenticator(), logger), validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, app.CreateHTTPServer())
	return e, nil
}
