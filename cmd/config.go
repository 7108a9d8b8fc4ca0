package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLockTimeout        = 3 * time.Second
	defaultReminderWaitingFor = 2 * time.Minute
	defaultProducer           = "marketplace-api"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBLockTimeout      string
	KafkaHost          string
	KafkaConsumerGroup string
	KafkaEventsTopic   string
	KafkaProducer      string
	RedisAddr          string
	RedisPassword      string
	RedisDB            string
	ReminderSchedule   string
	ReminderWaitingFor string
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits the comma separated KAFKA_HOST list.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.KafkaHost, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func (c Config) LockTimeout() (time.Duration, error) {
	return durationOr(c.DBLockTimeout, defaultLockTimeout, "DB_LOCK_TIMEOUT")
}

func (c Config) ReminderWait() (time.Duration, error) {
	return durationOr(c.ReminderWaitingFor, defaultReminderWaitingFor, "REMINDER_WAITING_FOR")
}

func (c Config) RedisDatabase() (int, error) {
	if c.RedisDB == "" {
		return 0, nil
	}
	db, err := strconv.Atoi(c.RedisDB)
	if err != nil || db < 0 {
		return 0, fmt.Errorf("REDIS_DB: %q is not a database number", c.RedisDB)
	}
	return db, nil
}

func (c Config) Producer() string {
	if c.KafkaProducer == "" {
		return defaultProducer
	}
	return c.KafkaProducer
}

func durationOr(raw string, fallback time.Duration, name string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: %s is negative", name, raw)
	}
	return d, nil
}
