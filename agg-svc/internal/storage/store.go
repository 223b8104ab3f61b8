package storage

import (
	"context"
	"strconv"
	"time"

	"food-ordering/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	AllTimeKey = "analytics:alltime"
	RatingsKey = "analytics:ratings"
	OrdersKey  = "analytics:orders"

	// OrderRatingsKey maps order id to its current rating.
	OrderRatingsKey = "analytics:order_ratings"

	dailyTTL     = 7 * 24 * time.Hour
	processedTTL = 7 * 24 * time.Hour
)

func DailyKey(day time.Time) string {
	return "analytics:daily:" + day.Format("2006-01-02")
}

func processedKey(eventID string) string {
	return "analytics:processed:" + eventID
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// MarkProcessed records eventID and reports whether it was seen for the
// first time.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, processedKey(eventID), 1, processedTTL).Result()
}

// ClearProcessed forgets eventID so a redelivered copy is applied again.
func (s *Store) ClearProcessed(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, processedKey(eventID)).Err()
}

// RecordOrderCreated bumps the food rankings and the created counter in one
// MULTI block.
func (s *Store) RecordOrderCreated(ctx context.Context, day time.Time, items []domain.EventItem) error {
	dailyKey := DailyKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			member := strconv.Itoa(item.FoodID)
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), member)
			pipe.ZIncrBy(ctx, AllTimeKey, float64(item.Quantity), member)
		}
		if len(items) > 0 {
			pipe.Expire(ctx, dailyKey, dailyTTL)
		}
		pipe.HIncrBy(ctx, OrdersKey, domain.CounterCreated, 1)
		return nil
	})
	return err
}

// KEYS: order ratings, rating buckets. ARGV: order id, rating.
var rateScript = redis.NewScript(`
local prev = redis.call('HGET', KEYS[1], ARGV[1])
if prev then
	redis.call('HINCRBY', KEYS[2], prev, -1)
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HINCRBY', KEYS[2], ARGV[2], 1)
return 1
`)

// KEYS: order ratings, rating buckets, order counters. ARGV: order id,
// deleted counter field.
var deleteScript = redis.NewScript(`
local prev = redis.call('HGET', KEYS[1], ARGV[1])
if prev then
	redis.call('HINCRBY', KEYS[2], prev, -1)
	redis.call('HDEL', KEYS[1], ARGV[1])
end
redis.call('HINCRBY', KEYS[3], ARGV[2], 1)
return 1
`)

// RecordRating keeps one rating per order; re-rating moves the order to
// its new bucket.
func (s *Store) RecordRating(ctx context.Context, orderID, rating int) error {
	return rateScript.Run(ctx, s.rdb, []string{OrderRatingsKey, RatingsKey},
		strconv.Itoa(orderID), strconv.Itoa(rating)).Err()
}

// RecordOrderDeleted drops the order's rating from its bucket and bumps the
// deleted counter.
func (s *Store) RecordOrderDeleted(ctx context.Context, orderID int) error {
	return deleteScript.Run(ctx, s.rdb, []string{OrderRatingsKey, RatingsKey, OrdersKey},
		strconv.Itoa(orderID), domain.CounterDeleted).Err()
}
