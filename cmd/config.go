package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	LogLevel               string
	KafkaHost              string
	KafkaOrderChangedTopic string
	OrderPaymentTimeout    time.Duration
}

// DSN addresses the service database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// AdminDSN addresses the maintenance database, used to create the service
// database when it is missing.
func (c Config) AdminDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {c.sslMode()}}.Encode(),
	}
	return u.String()
}

func (c Config) sslMode() string {
	if c.DBSslMode == "" {
		return "disable"
	}
	return c.DBSslMode
}

// KafkaBrokers splits KafkaHost on commas. Empty means no broker.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Validate reports missing settings the service cannot start without.
func (c Config) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"HTTP_PORT": c.HTTPPort,
		"DB_HOST":   c.DBHost,
		"DB_PORT":   c.DBPort,
		"DB_USER":   c.DBUser,
		"DB_NAME":   c.DBName,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	if len(c.KafkaBrokers()) > 0 && c.KafkaOrderChangedTopic == "" {
		return errors.New("missing configuration: KAFKA_ORDER_CHANGED_TOPIC")
	}
	if c.OrderPaymentTimeout < 0 {
		return fmt.Errorf("ORDER_PAYMENT_TIMEOUT must not be negative, got %s", c.OrderPaymentTimeout)
	}
	return nil
}
