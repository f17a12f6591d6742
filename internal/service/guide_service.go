// FILE: internal/service/guide_service.go
// Query API over the application guide catalog
package service

import (
	"context"
	"slices"
	"strconv"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/internal/repository/memory"
	"guide-catalog-be/pkg/guide"

	"github.com/google/uuid"
)

type GuideService interface {
	GetApiGuides(ctx context.Context) []entity.Guide
	GetFilteredGuides(ctx context.Context, userId uuid.UUID, filters *guide.FilterOptions) ([]entity.Guide, error)
	GetStructuredGuides(ctx context.Context, userId uuid.UUID, filters *guide.FilterOptions) (*entity.StructuredMetadata, error)
	GetGuide(ctx context.Context, userId uuid.UUID, guideId string) (*entity.Guide, error)
}

type guideService struct {
	corpus       []entity.Guide
	env          entity.Environment
	quotaService QuotaService
	guideCache   *memory.GuideCacheRepository
	logger       logger.ILogger
}

// NewGuideService serves queries over corpus. env is fixed for the process;
// the quota is resolved per caller so a plan change shows up on the next request.
func NewGuideService(
	corpus []entity.Guide,
	env entity.Environment,
	quotaService QuotaService,
	guideCache *memory.GuideCacheRepository,
	logger logger.ILogger,
) GuideService {
	return &guideService{
		corpus:       corpus,
		env:          env,
		quotaService: quotaService,
		guideCache:   guideCache,
		logger:       logger,
	}
}

func (s *guideService) GetApiGuides(ctx context.Context) []entity.Guide {
	const key = "api"
	if cached, found := s.guideCache.GetGuides(key); found {
		return slices.Clone(cached)
	}

	api := guide.ApiGuides(s.corpus)
	s.guideCache.SaveGuides(key, api)
	return slices.Clone(api)
}

func (s *guideService) GetFilteredGuides(ctx context.Context, userId uuid.UUID, filters *guide.FilterOptions) ([]entity.Guide, error) {
	quota, err := s.quotaService.GetCurrentQuota(ctx, userId)
	if err != nil {
		return nil, err
	}

	key := "filtered:" + quotaKey(quota) + ":" + filters.CacheKey()
	if cached, found := s.guideCache.GetGuides(key); found {
		return slices.Clone(cached), nil
	}

	filtered := guide.FilterGuides(s.visibleGuides(quota), filters)
	s.guideCache.SaveGuides(key, filtered)
	return slices.Clone(filtered), nil
}

func (s *guideService) GetStructuredGuides(ctx context.Context, userId uuid.UUID, filters *guide.FilterOptions) (*entity.StructuredMetadata, error) {
	quota, err := s.quotaService.GetCurrentQuota(ctx, userId)
	if err != nil {
		return nil, err
	}

	key := quotaKey(quota) + ":" + filters.CacheKey()
	if cached, found := s.guideCache.GetStructured(key); found {
		structured := cached.Clone()
		return &structured, nil
	}

	structured := guide.Structure(s.visibleGuides(quota), filters)
	s.guideCache.SaveStructured(key, structured)

	out := structured.Clone()
	return &out, nil
}

// GetGuide looks a guide up by id among the caller's visible guides and the API guides
func (s *guideService) GetGuide(ctx context.Context, userId uuid.UUID, guideId string) (*entity.Guide, error) {
	quota, err := s.quotaService.GetCurrentQuota(ctx, userId)
	if err != nil {
		return nil, err
	}

	for _, candidates := range [][]entity.Guide{s.visibleGuides(quota), s.GetApiGuides(ctx)} {
		for _, g := range candidates {
			if g.Id == guideId {
				found := g
				return &found, nil
			}
		}
	}
	return nil, entity.ErrGuideNotFound
}

// visibleGuides is computed once per quota value
func (s *guideService) visibleGuides(quota entity.SubscriptionQuota) []entity.Guide {
	key := "visible:" + quotaKey(quota)
	if cached, found := s.guideCache.GetGuides(key); found {
		return cached
	}

	visible := guide.VisibleGuides(s.corpus, s.env, quota)
	s.guideCache.SaveGuides(key, visible)

	s.logger.Info("GUIDE", "Visible guide subset computed", map[string]interface{}{
		"quota":          quotaKey(quota),
		"corpus_size":    len(s.corpus),
		"visible_guides": len(visible),
	})
	return visible
}

func quotaKey(quota entity.SubscriptionQuota) string {
	if quota.SamlApplicationsLimit == nil {
		return "saml=unknown"
	}
	return "saml=" + strconv.Itoa(*quota.SamlApplicationsLimit)
}
