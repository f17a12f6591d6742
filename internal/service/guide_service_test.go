package service

import (
	"context"
	"errors"
	"testing"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/internal/repository/memory"
	"guide-catalog-be/pkg/guide"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuotaService hands out a fixed quota per user
type stubQuotaService struct {
	quotas      map[uuid.UUID]entity.SubscriptionQuota
	err         error
	invalidated []uuid.UUID
}

func (s *stubQuotaService) GetCurrentQuota(ctx context.Context, userId uuid.UUID) (entity.SubscriptionQuota, error) {
	if s.err != nil {
		return entity.SubscriptionQuota{}, s.err
	}
	return s.quotas[userId], nil
}

func (s *stubQuotaService) InvalidateQuota(ctx context.Context, userId uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.invalidated = append(s.invalidated, userId)
	return nil
}

var testGuides = []entity.Guide{
	{Id: "next", Name: "Next.js", Target: entity.TargetTraditional, IsFeatured: true},
	{Id: "api-express", Name: "Express API", Target: entity.TargetAPI},
	{Id: "react", Name: "React", Target: entity.TargetSPA, IsFeatured: true},
	{Id: "react-native", Name: "React Native", Target: entity.TargetNative},
	{Id: "saml", Name: "SAML", Target: entity.TargetSAML, IsCloud: true, IsDevFeature: true},
	{Id: "oidc-3p", Name: "OIDC third-party", Target: entity.TargetTraditional, IsThirdParty: true},
}

func guideIds(guides []entity.Guide) []string {
	out := make([]string, 0, len(guides))
	for _, g := range guides {
		out = append(out, g.Id)
	}
	return out
}

func newTestGuideService(quotas *stubQuotaService) (GuideService, *memory.GuideCacheRepository) {
	cache := memory.NewGuideCacheRepository()
	env := entity.Environment{IsCloud: true, IsDevFeaturesEnabled: true}
	return NewGuideService(testGuides, env, quotas, cache, logger.NewNopLogger()), cache
}

func TestGuideService_GetApiGuides(t *testing.T) {
	s, _ := newTestGuideService(&stubQuotaService{})

	assert.Equal(t, []string{"api-express"}, guideIds(s.GetApiGuides(context.Background())))
}

func TestGuideService_SamlFollowsUserQuota(t *testing.T) {
	paid, free := uuid.New(), uuid.New()
	quotas := &stubQuotaService{quotas: map[uuid.UUID]entity.SubscriptionQuota{
		paid: {SamlApplicationsLimit: intPtr(5)},
		free: {SamlApplicationsLimit: intPtr(0)},
	}}
	s, _ := newTestGuideService(quotas)
	ctx := context.Background()

	paidGuides, err := s.GetFilteredGuides(ctx, paid, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"next", "react", "react-native", "saml", "oidc-3p"}, guideIds(paidGuides))

	freeGuides, err := s.GetFilteredGuides(ctx, free, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"next", "react", "react-native", "oidc-3p"}, guideIds(freeGuides))

	// Quota refresh: same user, new limit
	quotas.quotas[paid] = entity.SubscriptionQuota{SamlApplicationsLimit: intPtr(0)}
	refreshed, err := s.GetFilteredGuides(ctx, paid, nil)
	require.NoError(t, err)
	assert.NotContains(t, guideIds(refreshed), "saml")
}

func TestGuideService_MemoizesByQuotaAndFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	quotas := &stubQuotaService{quotas: map[uuid.UUID]entity.SubscriptionQuota{
		a: {SamlApplicationsLimit: intPtr(2)},
		b: {SamlApplicationsLimit: intPtr(2)},
	}}
	s, cache := newTestGuideService(quotas)
	ctx := context.Background()
	filters := &guide.FilterOptions{Keyword: "react"}

	first, err := s.GetFilteredGuides(ctx, a, filters)
	require.NoError(t, err)
	entries := cache.Count()

	// Same quota value and filter from another user reuses the entries
	second, err := s.GetFilteredGuides(ctx, b, &guide.FilterOptions{Keyword: "REACT"})
	require.NoError(t, err)
	assert.Equal(t, entries, cache.Count())
	assert.Equal(t, first, second)
}

func TestGuideService_ResultsAreCopies(t *testing.T) {
	s, _ := newTestGuideService(&stubQuotaService{})
	ctx := context.Background()

	got, err := s.GetFilteredGuides(ctx, uuid.Nil, nil)
	require.NoError(t, err)
	got[0].Name = "mutated"

	again, err := s.GetFilteredGuides(ctx, uuid.Nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Next.js", again[0].Name)

	structured, err := s.GetStructuredGuides(ctx, uuid.Nil, nil)
	require.NoError(t, err)
	structured.Featured[0].Name = "mutated"

	structuredAgain, err := s.GetStructuredGuides(ctx, uuid.Nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Next.js", structuredAgain.Featured[0].Name)
}

func TestGuideService_GetStructuredGuides(t *testing.T) {
	s, _ := newTestGuideService(&stubQuotaService{})

	structured, err := s.GetStructuredGuides(context.Background(), uuid.Nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"next", "react"}, guideIds(structured.Featured))
	assert.Equal(t, []string{"next"}, guideIds(structured.Traditional))
	assert.Equal(t, []string{"saml"}, guideIds(structured.SAML))
	assert.Equal(t, []string{"oidc-3p"}, guideIds(structured.ThirdParty))
	assert.Empty(t, structured.Protected)
	assert.NotNil(t, structured.Protected)
}

func TestGuideService_GetGuide(t *testing.T) {
	free := uuid.New()
	quotas := &stubQuotaService{quotas: map[uuid.UUID]entity.SubscriptionQuota{
		free: {SamlApplicationsLimit: intPtr(0)},
	}}
	s, _ := newTestGuideService(quotas)
	ctx := context.Background()

	g, err := s.GetGuide(ctx, free, "react")
	require.NoError(t, err)
	assert.Equal(t, "React", g.Name)

	g, err = s.GetGuide(ctx, free, "api-express")
	require.NoError(t, err)
	assert.Equal(t, entity.TargetAPI, g.Target)

	_, err = s.GetGuide(ctx, free, "saml")
	assert.ErrorIs(t, err, entity.ErrGuideNotFound)

	_, err = s.GetGuide(ctx, free, "does-not-exist")
	assert.ErrorIs(t, err, entity.ErrGuideNotFound)
}

func TestGuideService_QuotaError(t *testing.T) {
	s, _ := newTestGuideService(&stubQuotaService{err: errors.New("db down")})
	ctx := context.Background()

	_, err := s.GetFilteredGuides(ctx, uuid.New(), nil)
	assert.Error(t, err)

	_, err = s.GetStructuredGuides(ctx, uuid.New(), nil)
	assert.Error(t, err)

	_, err = s.GetGuide(ctx, uuid.New(), "react")
	assert.Error(t, err)
}

func TestGuideService_EmptyCorpus(t *testing.T) {
	s := NewGuideService(nil, entity.Environment{}, &stubQuotaService{}, memory.NewGuideCacheRepository(), logger.NewNopLogger())
	ctx := context.Background()

	assert.Empty(t, s.GetApiGuides(ctx))

	filtered, err := s.GetFilteredGuides(ctx, uuid.Nil, &guide.FilterOptions{Keyword: "react"})
	require.NoError(t, err)
	assert.Empty(t, filtered)

	structured, err := s.GetStructuredGuides(ctx, uuid.Nil, nil)
	require.NoError(t, err)
	for _, c := range entity.Categories {
		assert.Empty(t, structured.Bucket(c))
	}
}
