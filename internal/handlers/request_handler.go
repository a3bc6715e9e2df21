package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"aris-service/internal/middleware"
	"aris-service/internal/models"
	"aris-service/internal/service"
)

type RequestHandler struct {
	service *service.RequestService
}

func NewRequestHandler(s *service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

func (h *RequestHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/skill-requests")
	group.Get("/", h.SearchRequests, middleware.RequirePermission(middleware.PermRequestRead))
	group.Get("/:requestId", h.GetRequest, middleware.RequirePermission(middleware.PermRequestRead))
	group.Post("/", h.CreateRequest, middleware.RequirePermission(middleware.PermRequestWrite))
	group.Put("/:requestId", h.UpdateRequest, middleware.RequirePermission(middleware.PermRequestWrite))
	group.Patch("/:requestId/status", h.UpdateStatus, middleware.RequirePermission(middleware.PermRequestWrite))
	group.Delete("/:requestId", h.DeleteRequest, middleware.RequirePermission(middleware.PermRequestWrite))
}

func (h *RequestHandler) CreateRequest(c fiber.Ctx) error {
	var body models.CreateRequestBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateRequest(ctx, &body)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create skill request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    created,
		"message": "Skill request created successfully",
	})
}

func (h *RequestHandler) GetRequest(c fiber.Ctx) error {
	requestID := c.Params("requestId")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	req, err := h.service.GetRequest(ctx, requestID)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Skill request not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch skill request",
		})
	}

	return c.JSON(fiber.Map{
		"data": req,
	})
}

func (h *RequestHandler) SearchRequests(c fiber.Ctx) error {
	query := &models.RequestSearchQuery{
		Status:   models.RequestStatus(c.Query("status")),
		Client:   c.Query("client"),
		Page:     fiber.Query(c, "page", 1),
		PageSize: fiber.Query(c, "pageSize", 20),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	result, err := h.service.SearchRequests(ctx, query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search skill requests",
		})
	}

	return c.JSON(fiber.Map{
		"data": result,
	})
}

func (h *RequestHandler) UpdateRequest(c fiber.Ctx) error {
	requestID := c.Params("requestId")

	var body models.UpdateRequestBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateRequest(ctx, requestID, &body)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Skill request not found",
			})
		}
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update skill request",
		})
	}

	return c.JSON(fiber.Map{
		"data":    updated,
		"message": "Skill request updated successfully",
	})
}

func (h *RequestHandler) UpdateStatus(c fiber.Ctx) error {
	requestID := c.Params("requestId")

	var body struct {
		Status models.RequestStatus `json:"status"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.UpdateStatus(ctx, requestID, body.Status); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Skill request not found",
			})
		}
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update request status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Request status updated successfully",
	})
}

func (h *RequestHandler) DeleteRequest(c fiber.Ctx) error {
	requestID := c.Params("requestId")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteRequest(ctx, requestID); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Skill request not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete skill request",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Skill request deleted successfully",
	})
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "no documents") ||
		strings.Contains(err.Error(), "not found")
}

func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must be")
}
