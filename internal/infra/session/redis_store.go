package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/corporate-ask/internal/usecase"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: WizardTTL}
}

func (s *RedisStore) SaveWizard(ctx context.Context, w *usecase.BookingWizard) error {
	body, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode wizard: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.client.Set(ctx, wizardPrefix+w.ID, body, s.ttl).Err()
}

// LoadWizard also pushes the expiry back, so the TTL slides with activity.
func (s *RedisStore) LoadWizard(ctx context.Context, id string) (*usecase.BookingWizard, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	body, err := s.client.GetEx(ctx, wizardPrefix+id, s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wizard from Redis: %w", err)
	}

	var w usecase.BookingWizard
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("decode wizard: %w", err)
	}
	return &w, nil
}

func (s *RedisStore) DeleteWizard(ctx context.Context, id string) error {
	return s.client.Del(ctx, wizardPrefix+id).Err()
}

// Revoke remembers tokenID until the token would have expired anyway.
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
