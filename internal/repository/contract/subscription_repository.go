package contract

import (
	"context"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/repository/specification"
)

// SubscriptionRepository is read-only here; plans and subscriptions are
// written by the billing service.
type SubscriptionRepository interface {
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)
}
