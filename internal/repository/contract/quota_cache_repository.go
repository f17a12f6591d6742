package contract

import (
	"context"

	"guide-catalog-be/internal/entity"

	"github.com/google/uuid"
)

// QuotaCacheRepository shares resolved subscription quotas between instances
type QuotaCacheRepository interface {
	Get(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionQuota, error) // nil, nil on miss
	Set(ctx context.Context, userId uuid.UUID, quota entity.SubscriptionQuota) error
	Delete(ctx context.Context, userId uuid.UUID) error
}
