package handlers

import (
	"log/slog"
	"strings"

	"configurator-service/internal/models"
	"configurator-service/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService    *services.OrderService
	documentService *services.DocumentService
}

func NewOrderHandler(orderService *services.OrderService, documentService *services.DocumentService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		documentService: documentService,
	}
}

func (oh *OrderHandler) Register(app *fiber.App) {
	publicGr := app.Group("configurator/public/api/v1")

	orderGroup := publicGr.Group("/orders")
	orderGroup.Post("/", oh.CreateOrder)
	orderGroup.Get("/", oh.ListOrders)
	orderGroup.Get("/:id", oh.GetOrder)
	orderGroup.Patch("/:id/status", oh.UpdateStatus)
	orderGroup.Post("/:id/invoice", oh.GenerateInvoice)
	orderGroup.Post("/:id/contract", oh.GenerateContract)
}

func (oh *OrderHandler) CreateOrder(c fiber.Ctx) error {
	var req models.CreateOrderRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing order request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}

	response, err := oh.orderService.CreateOrder(c.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid service type") {
			return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_SERVICE_TYPE", err.Error()))
		}
		slog.Error("failed to create order", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to create order"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateSuccessResponse(response))
}

func (oh *OrderHandler) ListOrders(c fiber.Ctx) error {
	orders, err := oh.orderService.ListOrders()
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to retrieve orders"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(orders))
}

func (oh *OrderHandler) GetOrder(c fiber.Ctx) error {
	order, ok := oh.lookupOrder(c)
	if !ok {
		return nil
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(order))
}

func (oh *OrderHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ORDER_ID", "order id must be a UUID"))
	}

	var req models.UpdateOrderStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing status request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}

	order, err := oh.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ORDER_STATUS", err.Error()))
		}
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(models.CreateErrorResponse("ORDER_NOT_FOUND", "order not found"))
		}
		slog.Error("failed to update order status", "order_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to update order status"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(order))
}

func (oh *OrderHandler) GenerateInvoice(c fiber.Ctx) error {
	if oh.documentService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.CreateErrorResponse("DOCUMENTS_UNAVAILABLE", "document storage is not configured"))
	}
	order, ok := oh.lookupOrder(c)
	if !ok {
		return nil
	}

	doc, err := oh.documentService.GenerateInvoice(c.Context(), order)
	if err != nil {
		slog.Error("failed to generate invoice", "order_id", order.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to generate invoice"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(doc))
}

func (oh *OrderHandler) GenerateContract(c fiber.Ctx) error {
	if oh.documentService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.CreateErrorResponse("DOCUMENTS_UNAVAILABLE", "document storage is not configured"))
	}
	order, ok := oh.lookupOrder(c)
	if !ok {
		return nil
	}

	doc, err := oh.documentService.GenerateContract(c.Context(), order)
	if err != nil {
		slog.Error("failed to generate contract", "order_id", order.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to generate contract"))
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(doc))
}

// lookupOrder resolves the :id param. On failure it has already written the
// error response and returns ok=false.
func (oh *OrderHandler) lookupOrder(c fiber.Ctx) (*models.Order, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_ORDER_ID", "order id must be a UUID"))
		return nil, false
	}

	order, err := oh.orderService.GetOrder(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			_ = c.Status(fiber.StatusNotFound).JSON(models.CreateErrorResponse("ORDER_NOT_FOUND", "order not found"))
			return nil, false
		}
		slog.Error("failed to get order", "order_id", id, "error", err)
		_ = c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to retrieve order"))
		return nil, false
	}
	return order, true
}
