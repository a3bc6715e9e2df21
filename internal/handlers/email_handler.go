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

type EmailHandler struct {
	service *service.NotificationService
}

func NewEmailHandler(s *service.NotificationService) *EmailHandler {
	return &EmailHandler{service: s}
}

func (h *EmailHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/email")
	group.Post("/", h.SendEmail, middleware.RequirePermission(middleware.PermEmailSend))
}

func (h *EmailHandler) SendEmail(c fiber.Ctx) error {
	var body models.SendEmailBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.SendEmail(ctx, &body)
	if err != nil {
		if isValidationError(err) || strings.Contains(err.Error(), "email address") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send email",
		})
	}

	return c.JSON(fiber.Map{
		"data":    result,
		"message": "Email sent successfully",
	})
}
