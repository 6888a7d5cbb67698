// Package schedule is a read-through Redis cache in front of the schedule source.
// Only schedule envelopes are cached; appointments always come from the source.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/domain"
	"github.com/GbFerrera/LC-MOBILE-WEB-sub000/internal/normalize"
)

// Результаты обращения к кэшу для метрик
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Cache кэширует ответы GetSchedule в Redis.
// Ошибки Redis не ломают запрос: данные берутся из источника
type Cache struct {
	client  redis.Cmdable
	source  Source
	ttl     time.Duration
	prefix  string
	log     Logger
	metrics Metrics
}

// New создает кэш поверх source
func New(client redis.Cmdable, source Source, ttl time.Duration, prefix string, log Logger, metrics Metrics) *Cache {
	return &Cache{
		client:  client,
		source:  source,
		ttl:     ttl,
		prefix:  prefix,
		log:     log,
		metrics: metrics,
	}
}

// GetSchedule отдает расписание из кэша или загружает его из источника
func (c *Cache) GetSchedule(ctx context.Context, professionalID int64, date time.Time) (*normalize.ScheduleEnvelope, error) {
	key := c.key(professionalID, date)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var env normalize.ScheduleEnvelope
		if err := json.Unmarshal(data, &env); err == nil {
			c.metrics.CacheResult(ResultHit)
			return &env, nil
		}
		c.log.Warn("ScheduleCache: corrupted entry %s, reloading", key)
		c.metrics.CacheResult(ResultError)
	case errors.Is(err, redis.Nil):
		c.metrics.CacheResult(ResultMiss)
	default:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.log.Warn("ScheduleCache: get %s: %v", key, err)
		c.metrics.CacheResult(ResultError)
	}

	env, err := c.source.GetSchedule(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(env); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("ScheduleCache: set %s: %v", key, err)
		}
	}

	return env, nil
}

// GetAppointments всегда идет в источник
func (c *Cache) GetAppointments(ctx context.Context, professionalID int64, date time.Time) ([]normalize.RawAppointment, error) {
	return c.source.GetAppointments(ctx, professionalID, date)
}

func (c *Cache) key(professionalID int64, date time.Time) string {
	return fmt.Sprintf("%s:%d:%s", c.prefix, professionalID, date.Format(domain.DateFormat))
}
