package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"aris-service/internal/event"
	"aris-service/internal/models"
)

func TestCreateRequestValidation(t *testing.T) {
	svc := NewRequestService(nil, event.NewMockPublisher())
	ctx := context.Background()

	cases := []struct {
		name string
		body models.CreateRequestBody
	}{
		{"missing client", models.CreateRequestBody{
			ProjectName: "Apollo",
			Skills:      []models.SkillRequirement{{Skill: "Java"}},
		}},
		{"missing project", models.CreateRequestBody{
			ClientName: "TechCorp",
			Skills:     []models.SkillRequirement{{Skill: "Java"}},
		}},
		{"no skills", models.CreateRequestBody{
			ClientName:  "TechCorp",
			ProjectName: "Apollo",
		}},
		{"blank skill name", models.CreateRequestBody{
			ClientName:  "TechCorp",
			ProjectName: "Apollo",
			Skills:      []models.SkillRequirement{{Skill: "   "}},
		}},
		{"bad priority", models.CreateRequestBody{
			ClientName:  "TechCorp",
			ProjectName: "Apollo",
			Priority:    "critical",
			Skills:      []models.SkillRequirement{{Skill: "Java"}},
		}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateRequest(ctx, &tc.body); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewRequestService(nil, event.NewMockPublisher())
	if err := svc.UpdateStatus(context.Background(), "REQ-2026-abc123", "on_hold"); err == nil {
		t.Error("unknown status must be rejected before hitting the store")
	}
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from models.RequestStatus
		to   models.RequestStatus
		want bool
	}{
		{models.StatusPending, models.StatusAnalyzing, true},
		{models.StatusAnalyzing, models.StatusProposed, true},
		{models.StatusProposed, models.StatusTrainingScheduled, true},
		{models.StatusProfilesSent, models.StatusProfilesSent, true},
		{models.StatusProfilesSent, models.StatusProposed, false},
		{models.StatusFulfilled, models.StatusPending, false},
		// Re-analysis is open until the request is fulfilled.
		{models.StatusProfilesSent, models.StatusAnalyzing, true},
		{models.StatusFulfilled, models.StatusAnalyzing, false},
	}

	for _, tc := range cases {
		if got := validTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("validTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestNewRequestID(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	id := newRequestID(now)

	if !strings.HasPrefix(id, "REQ-2026-") {
		t.Errorf("request ID = %s, want REQ-2026- prefix", id)
	}
	fragment := strings.TrimPrefix(id, "REQ-2026-")
	if len(fragment) != 6 {
		t.Errorf("request ID fragment = %q, want 6 characters", fragment)
	}

	if other := newRequestID(now); other == id {
		t.Error("consecutive request IDs must differ")
	}
}
