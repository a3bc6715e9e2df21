package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"aris-service/internal/event"
	"aris-service/internal/models"
	"aris-service/internal/repository"
)

// RequestService owns the skill request lifecycle from intake to fulfilment.
type RequestService struct {
	repo      *repository.RequestRepository
	publisher event.Publisher
}

func NewRequestService(repo *repository.RequestRepository, publisher event.Publisher) *RequestService {
	return &RequestService{
		repo:      repo,
		publisher: publisher,
	}
}

// statusOrder enforces the forward-only request lifecycle. A request can
// always be re-analyzed, so analyzing is reachable from any non-final state.
var statusOrder = map[models.RequestStatus]int{
	models.StatusPending:             0,
	models.StatusAnalyzing:           1,
	models.StatusProposed:            2,
	models.StatusTrainingScheduled:   3,
	models.StatusProfilesSent:        4,
	models.StatusInterviewsScheduled: 5,
	models.StatusFulfilled:           6,
}

func validStatus(status models.RequestStatus) bool {
	_, ok := statusOrder[status]
	return ok
}

// validTransition reports whether a request may move between two statuses.
// Repeating the current status is allowed so retried notifications stay
// idempotent.
func validTransition(from, to models.RequestStatus) bool {
	if to == models.StatusAnalyzing {
		return from != models.StatusFulfilled
	}
	return statusOrder[to] >= statusOrder[from]
}

func (s *RequestService) CreateRequest(ctx context.Context, body *models.CreateRequestBody) (*models.SkillRequest, error) {
	if strings.TrimSpace(body.ClientName) == "" {
		return nil, fmt.Errorf("clientName is required")
	}
	if strings.TrimSpace(body.ProjectName) == "" {
		return nil, fmt.Errorf("projectName is required")
	}
	if len(body.Skills) == 0 {
		return nil, fmt.Errorf("at least one skill requirement is required")
	}
	for i, skill := range body.Skills {
		if strings.TrimSpace(skill.Skill) == "" {
			return nil, fmt.Errorf("skills[%d].skill is required", i)
		}
	}

	priority := body.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	switch priority {
	case models.PriorityUrgent, models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	teamSize := body.TeamSizeRequired
	if teamSize <= 0 {
		teamSize = 1
	}

	now := time.Now()
	req := &models.SkillRequest{
		RequestID:            newRequestID(now),
		ClientName:           body.ClientName,
		ClientEmail:          body.ClientEmail,
		ProjectName:          body.ProjectName,
		ProjectDescription:   body.ProjectDescription,
		RequestedBy:          body.RequestedBy,
		RequestDate:          now.Format("2006-01-02"),
		RequiredStartDate:    body.RequiredStartDate,
		ProjectDurationWeeks: body.ProjectDurationWeeks,
		TeamSizeRequired:     teamSize,
		Priority:             priority,
		Status:               models.StatusPending,
		Skills:               body.Skills,
		Metadata: models.Metadata{
			CreatedAt: int(now.Unix()),
			UpdatedAt: int(now.Unix()),
		},
	}

	created, err := s.repo.New(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill request: %w", err)
	}

	if err := s.publisher.PublishRequestEvent(ctx, models.EventTypeRequestCreated, &models.RequestEvent{
		RequestID: created.RequestID,
		ClientID:  created.ClientName,
	}); err != nil {
		log.Printf("Warning: failed to publish request.created event: %v", err)
	}

	return created, nil
}

func (s *RequestService) GetRequest(ctx context.Context, requestID string) (*models.SkillRequest, error) {
	req, err := s.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	return req, nil
}

func (s *RequestService) SearchRequests(ctx context.Context, query *models.RequestSearchQuery) (*models.RequestSearchResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	requests, total, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search requests: %w", err)
	}

	pageCount := int((total + int64(query.PageSize) - 1) / int64(query.PageSize))
	return &models.RequestSearchResult{
		Requests:    requests,
		TotalCount:  total,
		PageCount:   pageCount,
		CurrentPage: query.Page,
	}, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, requestID string, body *models.UpdateRequestBody) (*models.SkillRequest, error) {
	existing, err := s.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request %s: %w", requestID, err)
	}

	if body.ClientName != nil {
		existing.ClientName = *body.ClientName
	}
	if body.ClientEmail != nil {
		existing.ClientEmail = *body.ClientEmail
	}
	if body.ProjectName != nil {
		existing.ProjectName = *body.ProjectName
	}
	if body.ProjectDescription != nil {
		existing.ProjectDescription = *body.ProjectDescription
	}
	if body.RequiredStartDate != nil {
		existing.RequiredStartDate = *body.RequiredStartDate
	}
	if body.ProjectDurationWeeks != nil {
		existing.ProjectDurationWeeks = *body.ProjectDurationWeeks
	}
	if body.TeamSizeRequired != nil {
		if *body.TeamSizeRequired <= 0 {
			return nil, fmt.Errorf("teamSizeRequired must be positive")
		}
		existing.TeamSizeRequired = *body.TeamSizeRequired
	}
	if body.Priority != nil {
		existing.Priority = *body.Priority
	}
	if body.Status != nil {
		if !validStatus(*body.Status) {
			return nil, fmt.Errorf("invalid status: %s", *body.Status)
		}
		if !validTransition(existing.Status, *body.Status) {
			return nil, fmt.Errorf("invalid status transition: %s to %s", existing.Status, *body.Status)
		}
		existing.Status = *body.Status
	}
	if body.Skills != nil {
		existing.Skills = body.Skills
	}
	existing.Metadata.UpdatedAt = int(time.Now().Unix())

	updated, err := s.repo.Update(ctx, existing.ID, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update request %s: %w", requestID, err)
	}

	if err := s.publisher.PublishRequestEvent(ctx, models.EventTypeRequestUpdated, &models.RequestEvent{
		RequestID: updated.RequestID,
		ClientID:  updated.ClientName,
	}); err != nil {
		log.Printf("Warning: failed to publish request.updated event: %v", err)
	}

	return updated, nil
}

func (s *RequestService) UpdateStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	if !validStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}
	existing, err := s.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	if !validTransition(existing.Status, status) {
		return fmt.Errorf("invalid status transition: %s to %s", existing.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, requestID, status); err != nil {
		return fmt.Errorf("failed to update status of %s: %w", requestID, err)
	}
	return nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, requestID string) error {
	existing, err := s.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to find request %s: %w", requestID, err)
	}
	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete request %s: %w", requestID, err)
	}
	return nil
}

// newRequestID produces a human-scannable identifier like REQ-2026-a4f91c.
func newRequestID(now time.Time) string {
	fragment := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("REQ-%d-%s", now.Year(), fragment)
}
