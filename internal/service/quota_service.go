// FILE: internal/service/quota_service.go
// Resolves the subscription quota that gates SAML guides
package service

import (
	"context"
	"fmt"
	"time"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/internal/repository/contract"
	"guide-catalog-be/internal/repository/specification"
	"guide-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type QuotaService interface {
	GetCurrentQuota(ctx context.Context, userId uuid.UUID) (entity.SubscriptionQuota, error)
	InvalidateQuota(ctx context.Context, userId uuid.UUID) error
}

type quotaService struct {
	uowFactory unitofwork.RepositoryFactory
	quotaCache contract.QuotaCacheRepository // Optional
	logger     logger.ILogger
	now        func() time.Time
}

func NewQuotaService(
	uowFactory unitofwork.RepositoryFactory,
	quotaCache contract.QuotaCacheRepository,
	logger logger.ILogger,
) QuotaService {
	return &quotaService{
		uowFactory: uowFactory,
		quotaCache: quotaCache,
		logger:     logger,
		now:        time.Now,
	}
}

// GetCurrentQuota returns the quota of the user's current plan. Anonymous
// callers (uuid.Nil) get an unknown quota.
func (s *quotaService) GetCurrentQuota(ctx context.Context, userId uuid.UUID) (entity.SubscriptionQuota, error) {
	if userId == uuid.Nil {
		return entity.SubscriptionQuota{}, nil
	}

	if s.quotaCache != nil {
		cached, err := s.quotaCache.Get(ctx, userId)
		if err != nil {
			s.logger.Warn("QUOTA", "Quota cache read failed, falling back to database", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		} else if cached != nil {
			return *cached, nil
		}
	}

	plan, err := s.getUserPlan(ctx, userId)
	if err != nil {
		return entity.SubscriptionQuota{}, fmt.Errorf("failed to resolve subscription plan: %w", err)
	}
	quota := plan.Quota()

	if s.quotaCache != nil {
		if err := s.quotaCache.Set(ctx, userId, quota); err != nil {
			s.logger.Warn("QUOTA", "Failed to cache quota", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	s.logger.Debug("QUOTA", "Quota resolved", map[string]interface{}{
		"user_id": userId.String(),
		"plan":    plan.Slug,
	})
	return quota, nil
}

// InvalidateQuota forgets the cached quota so the next lookup reads the current plan
func (s *quotaService) InvalidateQuota(ctx context.Context, userId uuid.UUID) error {
	if s.quotaCache == nil {
		return nil
	}
	if err := s.quotaCache.Delete(ctx, userId); err != nil {
		return fmt.Errorf("failed to invalidate quota for user %s: %w", userId, err)
	}
	return nil
}

// getUserPlan gets the user's current plan or the free plan
func (s *quotaService) getUserPlan(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionPlan, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := s.now()

	// Newest first
	subs, err := uow.SubscriptionRepository().FindAllSubscriptions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.PeriodEndsAfter{Time: now},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		if !sub.GrantsAccess(now) {
			continue
		}

		plan, err := uow.SubscriptionRepository().FindOnePlan(ctx, specification.ByID{ID: sub.PlanId})
		if err != nil {
			return nil, err
		}
		if plan != nil {
			return plan, nil
		}
		break
	}

	return entity.FreePlan(), nil
}
