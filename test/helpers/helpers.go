// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	redis_a "github.com/awidjaja/stokgate/internal/adapters/redis_adapter"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
	"github.com/awidjaja/stokgate/internal/pkg/config"
	"github.com/awidjaja/stokgate/internal/pkg/logger"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// NewTestCache wraps a Redis client in the query cache adapter with a TTL
// long enough that tests never race expiry.
func NewTestCache(t *testing.T, client *redis.Client) ports.QueryCache {
	t.Helper()
	return redis_a.NewCache(client, 5*time.Minute, TestLogger())
}

// NewTestLogger builds the structured logger used by the request middleware.
func NewTestLogger() *logger.Logger {
	level := "error"
	if testing.Verbose() {
		level = "debug"
	}
	return logger.NewLogger(&logger.LogConfig{
		Level:       level,
		Format:      "text",
		Output:      "stdout",
		Environment: "test",
		ServiceName: "stokgate-test",
	})
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-gateway",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Backend: config.BackendConfig{
			BaseURL: "http://localhost:9090",
			Timeout: 5 * time.Second,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			SessionSecret:     "test-secret",
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		UI: config.UIConfig{
			PageSize:       10,
			SearchDebounce: 25 * time.Millisecond,
			CacheTTL:       time.Minute,
		},
	}
}

// CreateTestItem creates a test inventory item
func CreateTestItem(overrides ...func(*domain.Item)) *domain.Item {
	item := &domain.Item{
		ID:           1,
		SerialNumber: "SN-0001",
		RFIDTag:      "RFID-0001",
		ItemName:     "hAP ax2",
		Warranty:     "2026-12-01",
		Sold:         false,
		Cost:         decimal.NewFromFloat(650000),
		Margin:       decimal.NewFromFloat(150000),
		Quantity:     1,
		Batch:        1,
		Status:       domain.StatusNotSold,
		TypeRef:      "hAP ax2",
		CreatedAt:    time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestItems creates multiple test inventory items
func CreateTestItems(count int) []domain.Item {
	types := []string{"hAP ax2", "hEX S", "cAP ac"}
	items := make([]domain.Item, count)

	for i := 0; i < count; i++ {
		items[i] = *CreateTestItem(func(item *domain.Item) {
			item.ID = i + 1
			item.SerialNumber = fmt.Sprintf("SN-%04d", i+1)
			item.RFIDTag = fmt.Sprintf("RFID-%04d", i+1)
			item.ItemName = fmt.Sprintf("Router %d", i+1)
			item.TypeRef = types[i%len(types)]
		})
	}

	return items
}

// CreateTestSoldRecords creates sold records for testing
func CreateTestSoldRecords(count int) []domain.SoldRecord {
	records := make([]domain.SoldRecord, count)
	for i := 0; i < count; i++ {
		records[i] = domain.SoldRecord{
			ID:            i + 1,
			ItemSN:        fmt.Sprintf("SN-%04d", i+1),
			ItemTag:       fmt.Sprintf("RFID-%04d", i+1),
			DatetimeSold:  time.Now().AddDate(0, 0, -i),
			Invoice:       fmt.Sprintf("INV-%03d", i+1),
			OnlineShop:    "tokopedia",
			PaymentStatus: "paid",
			Journaled:     false,
		}
	}
	return records
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
