package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/bson"

	"aris-service/internal/middleware"
	"aris-service/internal/models"
	"aris-service/internal/service"
)

type EmployeeHandler struct {
	service *service.EmployeeService
}

func NewEmployeeHandler(s *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

func (h *EmployeeHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/api/employees")
	group.Get("/", h.ListEmployees, middleware.RequirePermission(middleware.PermEmployeeRead))
	group.Get("/:employeeNumber", h.GetEmployee, middleware.RequirePermission(middleware.PermEmployeeRead))
	group.Post("/", h.CreateEmployee, middleware.RequirePermission(middleware.PermEmployeeWrite))
	group.Put("/:id", h.UpdateEmployee, middleware.RequirePermission(middleware.PermEmployeeWrite))
	group.Delete("/:id", h.DeleteEmployee, middleware.RequirePermission(middleware.PermEmployeeWrite))
	group.Post("/import", h.ImportEmployees, middleware.RequirePermission(middleware.PermEmployeeWrite))
}

func (h *EmployeeHandler) ListEmployees(c fiber.Ctx) error {
	page := fiber.Query(c, "page", 1)
	limit := fiber.Query(c, "limit", 50)

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	employees, total, err := h.service.ListEmployees(ctx, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list employees",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"employees":  employees,
			"totalCount": total,
			"page":       page,
		},
	})
}

func (h *EmployeeHandler) GetEmployee(c fiber.Ctx) error {
	employeeNumber := c.Params("employeeNumber")

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.service.GetEmployee(ctx, employeeNumber)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Employee not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch employee",
		})
	}

	return c.JSON(fiber.Map{
		"data": emp,
	})
}

func (h *EmployeeHandler) CreateEmployee(c fiber.Ctx) error {
	var emp models.Employee
	if err := json.Unmarshal(c.Body(), &emp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.CreateEmployee(ctx, &emp)
	if err != nil {
		if isValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create employee",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    created,
		"message": "Employee created successfully",
	})
}

func (h *EmployeeHandler) UpdateEmployee(c fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employee ID",
		})
	}

	var emp models.Employee
	if err := json.Unmarshal(c.Body(), &emp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.UpdateEmployee(ctx, id, &emp)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Employee not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update employee",
		})
	}

	return c.JSON(fiber.Map{
		"data":    updated,
		"message": "Employee updated successfully",
	})
}

func (h *EmployeeHandler) DeleteEmployee(c fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employee ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteEmployee(ctx, id); err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Employee not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete employee",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Employee deleted successfully",
	})
}

func (h *EmployeeHandler) ImportEmployees(c fiber.Ctx) error {
	var body struct {
		Employees []*models.Employee `json:"employees"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	count, err := h.service.ImportEmployees(ctx, body.Employees)
	if err != nil {
		if isValidationError(err) || err.Error() == "import payload is empty" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to import employees",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"imported": count,
		},
		"message": "Employees imported successfully",
	})
}
