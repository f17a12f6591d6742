// FILE: internal/controller/guide_controller.go
// Controller for application guide catalog endpoints
package controller

import (
	"errors"

	"guide-catalog-be/internal/dto"
	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/serverutils"
	"guide-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GuideController interface {
	RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler)
}

type guideController struct {
	guideService service.GuideService
}

func NewGuideController(guideService service.GuideService) GuideController {
	return &guideController{
		guideService: guideService,
	}
}

func (c *guideController) RegisterRoutes(api fiber.Router, jwtMiddleware fiber.Handler) {
	// Public
	api.Get("/guides/api", c.GetApiGuides)

	// Authenticated, the caller's plan decides SAML visibility
	api.Get("/guides", jwtMiddleware, c.GetGuides)
	api.Get("/guides/structured", jwtMiddleware, c.GetStructuredGuides)
	api.Get("/guides/:id", jwtMiddleware, c.GetGuide)
}

// GetApiGuides returns the API protection guides
// @Summary List API guides
// @Tags Guides
// @Produce json
// @Success 200 {object} []entity.Guide
// @Router /api/guides/api [get]
func (c *guideController) GetApiGuides(ctx *fiber.Ctx) error {
	guides := c.guideService.GetApiGuides(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("API guides retrieved", guides))
}

// GetGuides returns the application guides matching the filter, in catalog order
// @Summary List application guides
// @Tags Guides
// @Security BearerAuth
// @Param categories query string false "Comma separated categories"
// @Param keyword query string false "Case-insensitive name search"
// @Produce json
// @Success 200 {object} []entity.Guide
// @Router /api/guides [get]
func (c *guideController) GetGuides(ctx *fiber.Ctx) error {
	userId, req, err := c.parseRequest(ctx)
	if err != nil {
		return err
	}

	guides, err := c.guideService.GetFilteredGuides(ctx.UserContext(), userId, req.ToFilterOptions())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Guides retrieved", guides))
}

// GetStructuredGuides returns the filtered guides grouped into display buckets
// @Summary Structured application guides
// @Tags Guides
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.StructuredMetadata
// @Router /api/guides/structured [get]
func (c *guideController) GetStructuredGuides(ctx *fiber.Ctx) error {
	userId, req, err := c.parseRequest(ctx)
	if err != nil {
		return err
	}

	structured, err := c.guideService.GetStructuredGuides(ctx.UserContext(), userId, req.ToFilterOptions())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Structured guides retrieved", structured))
}

// GetGuide returns one guide by id
// @Summary Get guide
// @Tags Guides
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.Guide
// @Router /api/guides/{id} [get]
func (c *guideController) GetGuide(ctx *fiber.Ctx) error {
	userId, err := userIdFromLocals(ctx)
	if err != nil {
		return err
	}

	g, err := c.guideService.GetGuide(ctx.UserContext(), userId, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, entity.ErrGuideNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Guide retrieved", g))
}

func (c *guideController) parseRequest(ctx *fiber.Ctx) (uuid.UUID, dto.GuideFilterRequest, error) {
	userId, err := userIdFromLocals(ctx)
	if err != nil {
		return uuid.Nil, dto.GuideFilterRequest{}, err
	}

	req := dto.NewGuideFilterRequest(ctx.Query("categories"), ctx.Query("keyword"))
	if err := serverutils.ValidateStruct(req); err != nil {
		return uuid.Nil, req, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return userId, req, nil
}

func userIdFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	return userId, nil
}
