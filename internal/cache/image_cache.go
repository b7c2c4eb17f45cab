package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/model"
)

// defaultTTL ограничивает жизнь отрисованного дня: ключ включает хэш
// снимка записей, поэтому после любой мутации кэш промахивается сам,
// а старые ключи доживают до TTL
const defaultTTL = 10 * time.Minute

// ImageCache кэширует отрисованные PNG дня в Redis.
// Мемоизация по (дата, снимок записей) — необязательная оптимизация,
// при nil-клиенте кэш превращается в no-op.
type ImageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewImageCache(client *redis.Client, logger *zap.Logger) *ImageCache {
	return &ImageCache{
		client: client,
		ttl:    defaultTTL,
		logger: logger,
	}
}

// SnapshotHash строит хэш снимка записей дня. Любое изменение состава,
// времени, длительности или статуса меняет ключ.
func SnapshotHash(appts []*model.Appointment) string {
	h := sha256.New()
	for _, a := range appts {
		fmt.Fprintf(h, "%s|%s|%d|%s\n", a.ID, a.Time, a.DurationMinutes, a.Status)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func key(chatID int64, date time.Time, snapshotHash string) string {
	return fmt.Sprintf("dayview:%d:%s:%s", chatID, date.Format("2006-01-02"), snapshotHash)
}

// Get возвращает отрисованный день из кэша, ok=false при промахе
func (c *ImageCache) Get(ctx context.Context, chatID int64, date time.Time, snapshotHash string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key(chatID, date, snapshotHash)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Day image cache read failed", zap.Error(err))
		}
		return nil, false
	}

	return data, true
}

// Set сохраняет отрисованный день в кэш
func (c *ImageCache) Set(ctx context.Context, chatID int64, date time.Time, snapshotHash string, png []byte) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key(chatID, date, snapshotHash), png, c.ttl).Err(); err != nil {
		c.logger.Warn("Day image cache write failed", zap.Error(err))
	}
}
