package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"aris-service/internal/models"
	"aris-service/internal/repository"
)

// SnapshotInvalidator is satisfied by AnalysisService; roster mutations must
// not leave stale classifications in the cache.
type SnapshotInvalidator interface {
	InvalidateSnapshots(ctx context.Context) error
}

type EmployeeService struct {
	repo        *repository.EmployeeRepository
	invalidator SnapshotInvalidator
}

func NewEmployeeService(repo *repository.EmployeeRepository, invalidator SnapshotInvalidator) *EmployeeService {
	return &EmployeeService{
		repo:        repo,
		invalidator: invalidator,
	}
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeNumber string) (*models.Employee, error) {
	emp, err := s.repo.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeNumber, err)
	}
	return emp, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, page, limit int) ([]*models.Employee, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 0 || limit > 500 {
		limit = 50
	}

	employees, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return employees, total, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, emp *models.Employee) (*models.Employee, error) {
	if strings.TrimSpace(emp.EmployeeNumber) == "" {
		return nil, fmt.Errorf("employeeNumber is required")
	}
	if strings.TrimSpace(emp.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := int(time.Now().Unix())
	emp.Metadata.CreatedAt = now
	emp.Metadata.UpdatedAt = now

	created, err := s.repo.New(ctx, emp)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.invalidate(ctx)
	return created, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id bson.ObjectID, emp *models.Employee) (*models.Employee, error) {
	emp.Metadata.UpdatedAt = int(time.Now().Unix())

	updated, err := s.repo.Update(ctx, id, emp)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id bson.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// ImportEmployees upserts a batch keyed by employee number, used to load
// roster exports from the HR system.
func (s *EmployeeService) ImportEmployees(ctx context.Context, employees []*models.Employee) (int, error) {
	if len(employees) == 0 {
		return 0, fmt.Errorf("import payload is empty")
	}
	now := int(time.Now().Unix())
	for i, emp := range employees {
		if strings.TrimSpace(emp.EmployeeNumber) == "" {
			return 0, fmt.Errorf("employees[%d].employeeNumber is required", i)
		}
		emp.Metadata.UpdatedAt = now
		if emp.Metadata.CreatedAt == 0 {
			emp.Metadata.CreatedAt = now
		}
	}

	count, err := s.repo.BulkUpsert(ctx, employees)
	if err != nil {
		return 0, fmt.Errorf("failed to import employees: %w", err)
	}

	s.invalidate(ctx)
	return count, nil
}

func (s *EmployeeService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateSnapshots(ctx); err != nil {
		log.Printf("Warning: snapshot invalidation failed: %v", err)
	}
}
