package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/logger"
	"guide-catalog-be/internal/pkg/serverutils"
	"guide-catalog-be/internal/repository/memory"
	"guide-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fixedQuotaService struct {
	quota entity.SubscriptionQuota
}

func (s *fixedQuotaService) GetCurrentQuota(ctx context.Context, userId uuid.UUID) (entity.SubscriptionQuota, error) {
	return s.quota, nil
}

func (s *fixedQuotaService) InvalidateQuota(ctx context.Context, userId uuid.UUID) error {
	return nil
}

var controllerGuides = []entity.Guide{
	{Id: "next", Name: "Next.js", Target: entity.TargetTraditional, IsFeatured: true},
	{Id: "react", Name: "React", Target: entity.TargetSPA, IsFeatured: true},
	{Id: "react-native", Name: "React Native", Target: entity.TargetNative},
	{Id: "saml", Name: "SAML", Target: entity.TargetSAML, IsCloud: true, IsDevFeature: true},
	{Id: "oidc-3p", Name: "OIDC third-party", Target: entity.TargetTraditional, IsThirdParty: true},
	{Id: "api-express", Name: "Express API", Target: entity.TargetAPI},
}

func setupApp(t *testing.T, samlLimit int) *fiber.App {
	t.Helper()
	guideService := service.NewGuideService(
		controllerGuides,
		entity.Environment{IsCloud: true, IsDevFeaturesEnabled: true},
		&fixedQuotaService{quota: entity.SubscriptionQuota{SamlApplicationsLimit: &samlLimit}},
		memory.NewGuideCacheRepository(),
		logger.NewNopLogger(),
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewGuideController(guideService).RegisterRoutes(app.Group("/api"), serverutils.NewJwtMiddleware(testSecret))
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString()})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func doRequest[T any](t *testing.T, app *fiber.App, target string, auth bool) (int, envelope[T]) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if auth {
		req.Header.Set("Authorization", bearer(t))
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out envelope[T]
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func names(guides []entity.Guide) []string {
	out := make([]string, 0, len(guides))
	for _, g := range guides {
		out = append(out, g.Id)
	}
	return out
}

func TestGetApiGuides_IsPublic(t *testing.T) {
	app := setupApp(t, 0)

	status, body := doRequest[[]entity.Guide](t, app, "/api/guides/api", false)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"api-express"}, names(body.Data))
}

func TestGetGuides(t *testing.T) {
	app := setupApp(t, 3)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"no filter", "/api/guides", []string{"next", "react", "react-native", "saml", "oidc-3p"}},
		{"keyword", "/api/guides?keyword=REACT", []string{"react", "react-native"}},
		{"categories", "/api/guides?categories=Native,ThirdParty", []string{"react-native", "oidc-3p"}},
		{"combined ignores third-party token", "/api/guides?categories=ThirdParty&keyword=oidc", []string{}},
		{"no match", "/api/guides?keyword=cobol", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest[[]entity.Guide](t, app, tt.target, true)
			assert.Equal(t, http.StatusOK, status)
			assert.True(t, body.Success)
			assert.Equal(t, tt.want, names(body.Data))
		})
	}
}

func TestGetGuides_ZeroQuotaHidesSaml(t *testing.T) {
	app := setupApp(t, 0)

	_, body := doRequest[[]entity.Guide](t, app, "/api/guides?categories=SAML", true)

	assert.Empty(t, body.Data)
}

func TestGetGuides_RequiresToken(t *testing.T) {
	app := setupApp(t, 0)

	status, body := doRequest[any](t, app, "/api/guides", false)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)
}

func TestGetGuides_UnknownCategory(t *testing.T) {
	app := setupApp(t, 0)

	status, body := doRequest[any](t, app, "/api/guides?categories=Desktop", true)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Message, "Desktop")
}

func TestGetStructuredGuides(t *testing.T) {
	app := setupApp(t, 3)

	status, body := doRequest[map[string][]entity.Guide](t, app, "/api/guides/structured", true)

	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body.Data, 8)
	assert.Equal(t, []string{"next", "react"}, names(body.Data["featured"]))
	assert.Equal(t, []string{"oidc-3p"}, names(body.Data["ThirdParty"]))
	assert.Equal(t, []string{"next"}, names(body.Data["Traditional"]))
	assert.NotNil(t, body.Data["Protected"])
	assert.Empty(t, body.Data["Protected"])
}

func TestGetGuide(t *testing.T) {
	app := setupApp(t, 0)

	status, body := doRequest[entity.Guide](t, app, "/api/guides/react", true)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "React", body.Data.Name)

	status, _ = doRequest[any](t, app, "/api/guides/saml", true)
	assert.Equal(t, http.StatusNotFound, status)
}
