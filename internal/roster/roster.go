// Package roster assembles the employee roster the classifier runs over.
// The primary source is the Mongo store; when it is unreachable a
// Consul-resolved HTTP endpoint serving pre-joined employees is tried, and
// only when both fail does the fetch error out.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"aris-service/internal/models"
	"aris-service/internal/repository"
	"aris-service/pkg/discovery"
)

// Source yields the full roster with skills and allocations attached.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Employee, error)
}

type Service struct {
	repo            *repository.EmployeeRepository
	registry        *discovery.ServiceRegistry
	fallbackService string
	client          *http.Client
}

func NewService(repo *repository.EmployeeRepository, registry *discovery.ServiceRegistry, fallbackService string) *Service {
	return &Service{
		repo:            repo,
		registry:        registry,
		fallbackService: fallbackService,
		client:          &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Service) FetchAll(ctx context.Context) ([]models.Employee, error) {
	employees, primaryErr := s.fetchFromStore(ctx)
	if primaryErr == nil {
		return employees, nil
	}
	log.Printf("Warning: primary roster fetch failed, trying fallback: %v", primaryErr)

	employees, fallbackErr := s.fetchFromFallback(ctx)
	if fallbackErr == nil {
		return employees, nil
	}

	return nil, fmt.Errorf("roster unavailable: primary: %v; fallback: %w", primaryErr, fallbackErr)
}

func (s *Service) fetchFromStore(ctx context.Context) ([]models.Employee, error) {
	master, err := s.repo.FindAll(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee master: %w", err)
	}

	skills, err := s.repo.FindAllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skill records: %w", err)
	}

	allocations, err := s.repo.FindAllAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocation records: %w", err)
	}

	return Join(master, skills, allocations), nil
}

// Join attaches skill and allocation rows to their owning employees.
// Employees may already carry embedded skills from bulk import; rows from
// the side collections are appended after them.
func Join(master []*models.Employee, skills []*models.SkillRecord, allocations []*models.AllocationRecord) []models.Employee {
	skillsByOwner := make(map[string][]models.EmployeeSkill)
	for _, rec := range skills {
		skillsByOwner[rec.EmployeeNumber] = append(skillsByOwner[rec.EmployeeNumber], rec.EmployeeSkill)
	}

	allocationsByOwner := make(map[string][]models.Allocation)
	for _, rec := range allocations {
		allocationsByOwner[rec.EmployeeNumber] = append(allocationsByOwner[rec.EmployeeNumber], rec.Allocation)
	}

	joined := make([]models.Employee, 0, len(master))
	for _, emp := range master {
		e := *emp
		e.Skills = append(e.Skills, skillsByOwner[e.EmployeeNumber]...)
		e.Allocations = append(e.Allocations, allocationsByOwner[e.EmployeeNumber]...)
		joined = append(joined, e)
	}
	return joined
}

type fallbackResponse struct {
	Success   bool              `json:"success"`
	Employees []models.Employee `json:"employees"`
}

func (s *Service) fetchFromFallback(ctx context.Context) ([]models.Employee, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("no fallback registry configured")
	}

	address, err := s.registry.GetServiceAddress(s.fallbackService, "http")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fallback roster service: %w", err)
	}

	url := fmt.Sprintf("http://%s/api/employees", address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fallback request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fallback roster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fallback roster service returned status %d", resp.StatusCode)
	}

	var body fallbackResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode fallback roster response: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("fallback roster service reported failure")
	}

	return body.Employees, nil
}
