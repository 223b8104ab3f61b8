package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"food-ordering/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DraftStore keeps each user's in-progress order as a JSON snapshot.
type DraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{Client: client, TTL: ttl}
}

func (s *DraftStore) DraftKey(userID int) string {
	return "draft:" + strconv.Itoa(userID)
}

// Load returns the user's draft, or a fresh empty one when none is stored.
func (s *DraftStore) Load(ctx context.Context, userID int) (*domain.Order, error) {
	payload, err := s.Client.Get(ctx, s.DraftKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewOrder(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	order.UserID = userID
	return &order, nil
}

func (s *DraftStore) Save(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.Client.Set(ctx, s.DraftKey(order.UserID), payload, s.TTL).Err()
}

func (s *DraftStore) Reset(ctx context.Context, userID int) error {
	return s.Client.Del(ctx, s.DraftKey(userID)).Err()
}
