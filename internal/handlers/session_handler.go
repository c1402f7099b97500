package handlers

import (
	"log/slog"
	"strings"

	"configurator-service/internal/models"
	"configurator-service/internal/services"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (sh *SessionHandler) Register(app *fiber.App) {
	publicGr := app.Group("configurator/public/api/v1")

	sessionGroup := publicGr.Group("/sessions")
	sessionGroup.Post("/", sh.CreateSession)
	sessionGroup.Get("/:id", sh.GetSession)
	sessionGroup.Put("/:id/selection", sh.UpdateSelection)
	sessionGroup.Get("/:id/price", sh.GetPrice)
}

func (sh *SessionHandler) CreateSession(c fiber.Ctx) error {
	session, err := sh.sessionService.CreateSession(c.Context())
	if err != nil {
		slog.Error("failed to create session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", "failed to create session"))
	}
	return c.Status(fiber.StatusCreated).JSON(models.CreateSuccessResponse(session))
}

func (sh *SessionHandler) GetSession(c fiber.Ctx) error {
	id, ok := sh.sessionID(c)
	if !ok {
		return nil
	}

	session, err := sh.sessionService.GetSession(c.Context(), id)
	if err != nil {
		return sh.sessionError(c, id, err, "failed to retrieve session")
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(session))
}

func (sh *SessionHandler) UpdateSelection(c fiber.Ctx) error {
	id, ok := sh.sessionID(c)
	if !ok {
		return nil
	}

	var req models.UpdateSelectionRequest
	if err := c.Bind().Body(&req); err != nil {
		slog.Error("error parsing selection request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_REQUEST", "Invalid request body"))
	}
	if req.ServiceType != "" && !req.ServiceType.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_SERVICE_TYPE", "unknown service type"))
	}

	session, err := sh.sessionService.UpdateSelection(c.Context(), id, models.Selection{
		ServiceType:        req.ServiceType,
		PackageID:          req.PackageID,
		Customizations:     req.Customizations,
		ProjectDescription: req.ProjectDescription,
	})
	if err != nil {
		return sh.sessionError(c, id, err, "failed to update selection")
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(session))
}

func (sh *SessionHandler) GetPrice(c fiber.Ctx) error {
	id, ok := sh.sessionID(c)
	if !ok {
		return nil
	}

	price, err := sh.sessionService.GetPrice(c.Context(), id)
	if err != nil {
		return sh.sessionError(c, id, err, "failed to derive price")
	}
	return c.Status(fiber.StatusOK).JSON(models.CreateSuccessResponse(price))
}

func (sh *SessionHandler) sessionID(c fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(models.CreateErrorResponse("INVALID_SESSION_ID", "session id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (sh *SessionHandler) sessionError(c fiber.Ctx, id uuid.UUID, err error, message string) error {
	if strings.Contains(err.Error(), "not found") {
		return c.Status(fiber.StatusNotFound).JSON(models.CreateErrorResponse("SESSION_NOT_FOUND", "session not found"))
	}
	slog.Error(message, "session_id", id, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.CreateErrorResponse("INTERNAL_SERVER_ERROR", message))
}
