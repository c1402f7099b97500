package handlers

import (
	"log/slog"
	"strings"

	"configurator-service/internal/models"
	"configurator-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) Register(app *fiber.App) {
	publicGr := app.Group("configurator/public/api/v1")

	publicGr.Post("/recommendations", rh.Recommend)
}

func (rh *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing recommendation request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if strings.TrimSpace(req.Description) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "description is required"))
	}

	recommendation := rh.recommendationService.Recommend(c.Context(), req.Description)
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{
		"recommendation": recommendation,
	}))
}
