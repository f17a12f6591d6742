package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const quotaKeyPrefix = "guide-catalog:quota:"

type QuotaCacheRepositoryImpl struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuotaCacheRepository(rdb *redis.Client, ttl time.Duration) contract.QuotaCacheRepository {
	return &QuotaCacheRepositoryImpl{
		rdb: rdb,
		ttl: ttl,
	}
}

func quotaKey(userId uuid.UUID) string {
	return quotaKeyPrefix + userId.String()
}

func (r *QuotaCacheRepositoryImpl) Get(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionQuota, error) {
	data, err := r.rdb.Get(ctx, quotaKey(userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached quota: %w", err)
	}

	var quota entity.SubscriptionQuota
	if err := json.Unmarshal(data, &quota); err != nil {
		return nil, fmt.Errorf("failed to decode cached quota: %w", err)
	}
	return &quota, nil
}

func (r *QuotaCacheRepositoryImpl) Set(ctx context.Context, userId uuid.UUID, quota entity.SubscriptionQuota) error {
	data, err := json.Marshal(quota)
	if err != nil {
		return fmt.Errorf("failed to encode quota: %w", err)
	}
	if err := r.rdb.Set(ctx, quotaKey(userId), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache quota: %w", err)
	}
	return nil
}

func (r *QuotaCacheRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.rdb.Del(ctx, quotaKey(userId)).Err()
}
