package handlers

import (
	"log/slog"

	"configurator-service/internal/models"
	"configurator-service/internal/services"

	"github.com/gofiber/fiber/v3"
)

type PricingHandler struct {
	rates services.IExchangeRateService
	calc  *services.PriceCalculator
}

func NewPricingHandler(rates services.IExchangeRateService, calc *services.PriceCalculator) *PricingHandler {
	return &PricingHandler{
		rates: rates,
		calc:  calc,
	}
}

func (ph *PricingHandler) Register(app *fiber.App) {
	publicGr := app.Group("configurator/public/api/v1")

	publicGr.Post("/quotes", ph.CreateQuote)
	publicGr.Get("/exchange-rate", ph.GetExchangeRate)
}

// CreateQuote derives a price for an arbitrary selection without touching
// any session or order state.
func (ph *PricingHandler) CreateQuote(c fiber.Ctx) error {
	var req models.QuoteRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing quote request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}

	rate := ph.rates.GetRate(c.Context())
	price := ph.calc.Calculate(req.ServiceType, req.PackageID, req.Customizations, rate.Rate)
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(price))
}

func (ph *PricingHandler) GetExchangeRate(c fiber.Ctx) error {
	rate := ph.rates.GetRate(c.Context())
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(rate))
}
