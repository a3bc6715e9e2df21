package analysis

import (
	"reflect"
	"testing"
	"time"

	"aris-service/internal/models"
)

var frozenNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func frozenAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(func() time.Time { return frozenNow })
}

func javaExpertRequirement() []models.SkillRequirement {
	return []models.SkillRequirement{
		{Skill: "Java", Level: "expert", Category: "Backend"},
	}
}

func TestClassifyAvailableFullMatch(t *testing.T) {
	a := frozenAnalyzer()
	emp := models.Employee{
		EmployeeNumber:    "E001",
		Name:              "Asha Rao",
		Email:             "asha@example.com",
		AvailabilityLabel: "Available",
		Skills: []models.EmployeeSkill{
			{Skill: "Java", Level: "expert", Category: "Backend"},
		},
	}

	match := a.Classify(emp, javaExpertRequirement())
	if match.ReadinessStatus != models.ReadyNow {
		t.Errorf("status = %s, want ready_now", match.ReadinessStatus)
	}
	if match.MatchPercentage != 100 {
		t.Errorf("match percentage = %d, want 100", match.MatchPercentage)
	}
	if match.Availability != models.Available {
		t.Errorf("availability = %s, want Available", match.Availability)
	}
	if match.EstimatedReadyDate != "2026-03-01" {
		t.Errorf("ready date = %s, want 2026-03-01", match.EstimatedReadyDate)
	}
}

func TestClassifyWeakSkillNeedsHiring(t *testing.T) {
	a := frozenAnalyzer()
	emp := models.Employee{
		EmployeeNumber:    "E002",
		Name:              "Ben Okafor",
		AvailabilityLabel: "busy",
		Skills: []models.EmployeeSkill{
			{Skill: "Java", Level: "beginner", Category: "Infrastructure"},
		},
	}

	// beginner against expert is 33%, below every threshold.
	match := a.Classify(emp, javaExpertRequirement())
	if match.ReadinessStatus != models.NeedsHiring {
		t.Errorf("status = %s, want needs_hiring", match.ReadinessStatus)
	}
	if match.MatchPercentage != 33 {
		t.Errorf("match percentage = %d, want 33", match.MatchPercentage)
	}
	if match.EstimatedReadyDate != "" {
		t.Errorf("ready date = %s, want empty", match.EstimatedReadyDate)
	}
}

func TestClassifyAllocationEndingSoon(t *testing.T) {
	a := frozenAnalyzer()
	emp := models.Employee{
		EmployeeNumber: "E003",
		Name:           "Chitra Iyer",
		Skills: []models.EmployeeSkill{
			{Skill: "Java", Level: "expert", Category: "Backend"},
		},
		Allocations: []models.Allocation{
			{ProjectName: "Apollo", StartDate: "2026-02-01", EndDate: "2026-03-11", Percent: 80},
		},
	}

	// Allocation active today, ending 10 days out.
	match := a.Classify(emp, javaExpertRequirement())
	if match.Availability != models.Busy {
		t.Errorf("availability = %s, want Busy", match.Availability)
	}
	if match.ReadinessStatus != models.Ready2Weeks {
		t.Errorf("status = %s, want ready_2weeks", match.ReadinessStatus)
	}
	if match.EstimatedReadyDate != "2026-03-11" {
		t.Errorf("ready date = %s, want 2026-03-11", match.EstimatedReadyDate)
	}
}

func TestClassifyAllocationEndingInFourWeeks(t *testing.T) {
	a := frozenAnalyzer()
	emp := models.Employee{
		EmployeeNumber: "E004",
		Name:           "Dinh Tran",
		Skills: []models.EmployeeSkill{
			{Skill: "Java", Level: "expert", Category: "Backend"},
		},
		Allocations: []models.Allocation{
			{ProjectName: "Borealis", StartDate: "2026-02-01", EndDate: "2026-03-22", Percent: 100},
		},
	}

	match := a.Classify(emp, javaExpertRequirement())
	if match.ReadinessStatus != models.Ready4Weeks {
		t.Errorf("status = %s, want ready_4weeks", match.ReadinessStatus)
	}
	if match.EstimatedReadyDate != "2026-03-22" {
		t.Errorf("ready date = %s, want 2026-03-22", match.EstimatedReadyDate)
	}
}

func TestClassifyThresholdFallback(t *testing.T) {
	a := frozenAnalyzer()
	// Busy label, no allocation rows: classification falls to thresholds.
	emp := models.Employee{
		EmployeeNumber:    "E005",
		Name:              "Elif Demir",
		AvailabilityLabel: "busy",
		Skills: []models.EmployeeSkill{
			{Skill: "Java", Level: "expert", Category: "Backend"},
		},
	}

	// 100% lands in the top band but the employee is not free today,
	// so the result is ready_2weeks, not ready_now.
	match := a.Classify(emp, javaExpertRequirement())
	if match.ReadinessStatus != models.Ready2Weeks {
		t.Errorf("status = %s, want ready_2weeks", match.ReadinessStatus)
	}
	if match.EstimatedReadyDate != "2026-03-15" {
		t.Errorf("ready date = %s, want 2026-03-15", match.EstimatedReadyDate)
	}
}

func TestAnalyzeEmptyRoster(t *testing.T) {
	a := frozenAnalyzer()
	result := a.Analyze("REQ-2026-test", javaExpertRequirement(), 3, nil)

	if result.ExternalHireNeeded != 3 {
		t.Errorf("external hires = %d, want 3", result.ExternalHireNeeded)
	}
	if len(result.ReadyNow)+len(result.Ready2Weeks)+len(result.Ready4Weeks) != 0 {
		t.Error("empty roster must produce empty buckets")
	}
	if len(result.RecommendedActions) == 0 {
		t.Error("empty roster must still recommend actions")
	}
	if result.ConfidenceScore != 0 {
		t.Errorf("confidence = %d, want 0", result.ConfidenceScore)
	}
}

func TestAnalyzeNobodyPlaceable(t *testing.T) {
	a := frozenAnalyzer()
	roster := []models.Employee{
		{
			EmployeeNumber:    "E010",
			Name:              "Farid Khan",
			AvailabilityLabel: "busy",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "beginner", Category: "Infrastructure"},
			},
		},
		{
			EmployeeNumber:    "E011",
			Name:              "Grace Lee",
			AvailabilityLabel: "busy",
			Skills: []models.EmployeeSkill{
				{Skill: "COBOL", Level: "expert", Category: "Legacy"},
			},
		},
	}

	result := a.Analyze("REQ-2026-test", javaExpertRequirement(), 3, roster)
	if result.Placed() != 0 {
		t.Errorf("placed = %d, want 0", result.Placed())
	}
	if result.ExternalHireNeeded != 3 {
		t.Errorf("external hires = %d, want 3", result.ExternalHireNeeded)
	}
	if result.ConfidenceScore != 0 {
		t.Errorf("confidence = %d, want 0", result.ConfidenceScore)
	}
}

func TestAnalyzeSimilarOnlyCandidates(t *testing.T) {
	a := frozenAnalyzer()
	// Below the required level but in the same category with a strong
	// partial score: trainable, yet not placed without an allocation end
	// date, so the aggregate reports training confidence.
	roster := []models.Employee{
		{
			EmployeeNumber:    "E020",
			Name:              "Hana Sato",
			AvailabilityLabel: "busy",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "intermediate", Category: "Backend"},
			},
		},
	}

	result := a.Analyze("REQ-2026-test", javaExpertRequirement(), 2, roster)
	if result.Placed() != 0 {
		t.Errorf("placed = %d, want 0", result.Placed())
	}
	if result.ConfidenceScore != 70 {
		t.Errorf("confidence = %d, want 70", result.ConfidenceScore)
	}
	if result.ExternalHireNeeded != 2 {
		t.Errorf("external hires = %d, want 2", result.ExternalHireNeeded)
	}
}

func TestAnalyzeSimilarCountedBelowThreshold(t *testing.T) {
	a := frozenAnalyzer()
	// No required skill at all, so the score is 0 and the employee lands in
	// needs_hiring. The shared category still makes them trainable, so the
	// aggregate reports training confidence rather than external hiring.
	roster := []models.Employee{
		{
			EmployeeNumber:    "E022",
			Name:              "Jonas Weber",
			AvailabilityLabel: "busy",
			Skills: []models.EmployeeSkill{
				{Skill: "Python", Level: "expert", Category: "Backend"},
			},
		},
	}

	result := a.Analyze("REQ-2026-test", javaExpertRequirement(), 2, roster)
	if result.Placed() != 0 {
		t.Errorf("placed = %d, want 0", result.Placed())
	}
	if result.ConfidenceScore != 70 {
		t.Errorf("confidence = %d, want 70", result.ConfidenceScore)
	}
	if result.ExternalHireNeeded != 2 {
		t.Errorf("external hires = %d, want 2", result.ExternalHireNeeded)
	}
	if len(result.RecommendedActions) == 0 ||
		result.RecommendedActions[0] != "Start training programs for trainable candidates" {
		t.Errorf("actions = %v, want the training set", result.RecommendedActions)
	}
}

func TestAnalyzeSimilarPlacedWhenAllocationDerived(t *testing.T) {
	a := frozenAnalyzer()
	// No direct match, but the category overlaps and the allocation ends
	// inside the training window, which places the employee.
	roster := []models.Employee{
		{
			EmployeeNumber: "E021",
			Name:           "Ivan Petrov",
			Skills: []models.EmployeeSkill{
				{Skill: "Kotlin", Level: "expert", Category: "Backend"},
			},
			Allocations: []models.Allocation{
				{ProjectName: "Cygnus", StartDate: "2026-02-15", EndDate: "2026-03-10", Percent: 100},
			},
		},
	}

	result := a.Analyze("REQ-2026-test", javaExpertRequirement(), 1, roster)
	if len(result.Ready2Weeks) != 1 {
		t.Fatalf("ready_2weeks = %d, want 1", len(result.Ready2Weeks))
	}
	if result.ExternalHireNeeded != 0 {
		t.Errorf("external hires = %d, want 0", result.ExternalHireNeeded)
	}
	if result.ConfidenceScore != 100 {
		t.Errorf("confidence = %d, want 100", result.ConfidenceScore)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := frozenAnalyzer()
	roster := []models.Employee{
		{
			EmployeeNumber:    "E040",
			Name:              "Asha Rao",
			AvailabilityLabel: "available",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "expert", Category: "Backend"},
			},
		},
		{
			EmployeeNumber: "E041",
			Name:           "Chitra Iyer",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "intermediate", Category: "Backend"},
			},
			Allocations: []models.Allocation{
				{ProjectName: "Apollo", StartDate: "2026-02-01", EndDate: "2026-03-11", Percent: 80},
			},
		},
	}

	first := a.Analyze("REQ-2026-test", javaExpertRequirement(), 2, roster)
	second := a.Analyze("REQ-2026-test", javaExpertRequirement(), 2, roster)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis diverged:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestAnalyzeBucketsSortedByMatch(t *testing.T) {
	a := frozenAnalyzer()
	required := []models.SkillRequirement{
		{Skill: "Java", Level: "beginner", Category: "Backend"},
		{Skill: "AWS", Level: "beginner", Category: "Cloud"},
	}
	roster := []models.Employee{
		{
			EmployeeNumber:    "E030",
			Name:              "Half Match",
			AvailabilityLabel: "available",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "expert", Category: "Backend"},
			},
		},
		{
			EmployeeNumber:    "E031",
			Name:              "Full Match",
			AvailabilityLabel: "available",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "expert", Category: "Backend"},
				{Skill: "AWS", Level: "expert", Category: "Cloud"},
			},
		},
	}

	result := a.Analyze("REQ-2026-test", required, 2, roster)
	if len(result.ReadyNow) != 2 {
		t.Fatalf("ready_now = %d, want 2", len(result.ReadyNow))
	}
	if result.ReadyNow[0].Name != "Full Match" {
		t.Errorf("first ready_now = %s, want the higher match", result.ReadyNow[0].Name)
	}
	if result.ExternalHireNeeded != 0 {
		t.Errorf("external hires = %d, want 0", result.ExternalHireNeeded)
	}
}
