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

type AnalysisHandler struct {
	service *service.AnalysisService
}

func NewAnalysisHandler(s *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: s}
}

func (h *AnalysisHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/analysis")
	group.Post("/", h.RunAnalysis, middleware.RequirePermission(middleware.PermAnalysisRun))
	group.Get("/:requestId", h.GetAnalysis, middleware.RequirePermission(middleware.PermRequestRead))
}

// RunAnalysis classifies the roster against the posted skill requirements.
// Bucket filter headers trim the response to a single readiness tier.
func (h *AnalysisHandler) RunAnalysis(c fiber.Ctx) error {
	var body models.AnalyzeRequestBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.Analyze(ctx, &body)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Analysis failed: employee roster unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"data":    applyBucketFilters(c, result),
		"message": "Analysis completed successfully",
	})
}

func (h *AnalysisHandler) GetAnalysis(c fiber.Ctx) error {
	requestID := c.Params("requestId")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.GetSnapshot(ctx, requestID)
	if err != nil {
		if isNotFound(err) || isNoSnapshot(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No analysis found for this request",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch analysis",
		})
	}

	return c.JSON(fiber.Map{
		"data": applyBucketFilters(c, result),
	})
}

// applyBucketFilters honors the x-ready-*-only headers by emptying the
// other buckets. Aggregate fields are left untouched.
func applyBucketFilters(c fiber.Ctx, result *models.AnalysisResult) *models.AnalysisResult {
	readyNowOnly := c.Get("x-ready-now-only") == "true"
	ready2Only := c.Get("x-ready-2weeks-only") == "true"
	ready4Only := c.Get("x-ready-4weeks-only") == "true"

	if !readyNowOnly && !ready2Only && !ready4Only {
		return result
	}

	filtered := *result
	if !readyNowOnly {
		filtered.ReadyNow = []models.ResourceMatch{}
	}
	if !ready2Only {
		filtered.Ready2Weeks = []models.ResourceMatch{}
	}
	if !ready4Only {
		filtered.Ready4Weeks = []models.ResourceMatch{}
	}
	return &filtered
}

func isNoSnapshot(err error) bool {
	return strings.Contains(err.Error(), "no analysis snapshot")
}
