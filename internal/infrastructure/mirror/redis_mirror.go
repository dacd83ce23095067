package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisStockMirror implements catalog.StockMirror using a Redis hash per product
type RedisStockMirror struct {
	client    *redis.Client
	keyPrefix string
	timeout   time.Duration
}

// NewRedisStockMirror creates a mirror connected to the configured Redis instance
func NewRedisStockMirror(cfg *config.MirrorConfig) (*RedisStockMirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to stock mirror: %w", err)
	}

	return &RedisStockMirror{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		timeout:   cfg.Timeout,
	}, nil
}

// NewRedisStockMirrorWithClient creates a mirror with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisStockMirrorWithClient(client *redis.Client, keyPrefix string, timeout time.Duration) *RedisStockMirror {
	if keyPrefix == "" {
		keyPrefix = "inventory:"
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &RedisStockMirror{
		client:    client,
		keyPrefix: keyPrefix,
		timeout:   timeout,
	}
}

// PublishStock overwrites the mirrored stock level for a product. The write
// is keyed by product ID, so republishing the same product is idempotent.
func (m *RedisStockMirror) PublishStock(ctx context.Context, productID uuid.UUID, stockQuantity int) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	key := m.keyPrefix + productID.String()
	if err := m.client.HSet(ctx, key, "stock_quantity", stockQuantity).Err(); err != nil {
		return fmt.Errorf("failed to publish stock for product %s: %w", productID, err)
	}
	return nil
}

// Close closes the underlying Redis connection
func (m *RedisStockMirror) Close() error {
	return m.client.Close()
}

// NoopStockMirror is a mirror that does nothing. Used when no mirror
// is configured, so stock workflows stay functional without Redis.
type NoopStockMirror struct{}

// PublishStock implements catalog.StockMirror
func (NoopStockMirror) PublishStock(ctx context.Context, productID uuid.UUID, stockQuantity int) error {
	return nil
}

var (
	_ catalog.StockMirror = (*RedisStockMirror)(nil)
	_ catalog.StockMirror = NoopStockMirror{}
)
