package handlers

import (
	"configurator-service/internal/catalog"
	"configurator-service/internal/models"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (ch *CatalogHandler) Register(app *fiber.App) {
	publicGr := app.Group("configurator/public/api/v1")

	catalogGroup := publicGr.Group("/catalog")
	catalogGroup.Get("/", ch.GetCatalog)
	catalogGroup.Get("/services/:service/packages", ch.GetPackages)
	catalogGroup.Get("/addons", ch.GetAddOns)
	catalogGroup.Get("/hosting/:category", ch.GetHostingPlans)
}

type serviceListing struct {
	ID          models.ServiceType `json:"id"`
	DisplayName string             `json:"display_name"`
	Packages    []models.Package   `json:"packages"`
}

// GetCatalog returns the entire pricing table in one response, the shape
// the configurator UI renders from.
func (ch *CatalogHandler) GetCatalog(c fiber.Ctx) error {
	services := make([]serviceListing, 0, len(models.AllServiceTypes))
	for _, st := range models.AllServiceTypes {
		services = append(services, serviceListing{
			ID:          st,
			DisplayName: st.DisplayName(),
			Packages:    catalog.Packages(st),
		})
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(fiber.Map{
		"services": services,
		"add_ons":  catalog.AddOns(),
		"hosting": fiber.Map{
			string(models.HostingWebsite): catalog.HostingPlans(models.HostingWebsite),
			string(models.HostingApp):     catalog.HostingPlans(models.HostingApp),
		},
	}))
}

func (ch *CatalogHandler) GetPackages(c fiber.Ctx) error {
	serviceType := models.ServiceType(c.Params("service"))
	if !serviceType.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_SERVICE_TYPE", "unknown service type"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(catalog.Packages(serviceType)))
}

func (ch *CatalogHandler) GetAddOns(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(catalog.AddOns()))
}

func (ch *CatalogHandler) GetHostingPlans(c fiber.Ctx) error {
	category := models.HostingCategory(c.Params("category"))
	plans := catalog.HostingPlans(category)
	if len(plans) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_HOSTING_CATEGORY", "unknown hosting category"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(plans))
}
