package roster

import (
	"testing"

	"aris-service/internal/models"
)

func TestJoinAttachesRecordsByOwner(t *testing.T) {
	master := []*models.Employee{
		{
			EmployeeNumber: "E001",
			Name:           "Asha Rao",
			Skills: []models.EmployeeSkill{
				{Skill: "Java", Level: "expert"},
			},
		},
		{EmployeeNumber: "E002", Name: "Ben Okafor"},
	}
	skills := []*models.SkillRecord{
		{EmployeeNumber: "E001", EmployeeSkill: models.EmployeeSkill{Skill: "AWS", Level: "intermediate"}},
		{EmployeeNumber: "E002", EmployeeSkill: models.EmployeeSkill{Skill: "Python", Level: "expert"}},
		{EmployeeNumber: "E999", EmployeeSkill: models.EmployeeSkill{Skill: "Orphan", Level: "expert"}},
	}
	allocations := []*models.AllocationRecord{
		{EmployeeNumber: "E002", Allocation: models.Allocation{ProjectName: "Apollo", Percent: 50}},
	}

	joined := Join(master, skills, allocations)
	if len(joined) != 2 {
		t.Fatalf("joined count = %d, want 2", len(joined))
	}

	// Embedded skills stay first, record rows are appended.
	first := joined[0]
	if len(first.Skills) != 2 || first.Skills[0].Skill != "Java" || first.Skills[1].Skill != "AWS" {
		t.Errorf("E001 skills = %v, want embedded Java then AWS", first.Skills)
	}
	if len(first.Allocations) != 0 {
		t.Errorf("E001 allocations = %v, want none", first.Allocations)
	}

	second := joined[1]
	if len(second.Skills) != 1 || second.Skills[0].Skill != "Python" {
		t.Errorf("E002 skills = %v, want [Python]", second.Skills)
	}
	if len(second.Allocations) != 1 || second.Allocations[0].ProjectName != "Apollo" {
		t.Errorf("E002 allocations = %v, want [Apollo]", second.Allocations)
	}
}

func TestJoinEmptyMaster(t *testing.T) {
	joined := Join(nil, []*models.SkillRecord{
		{EmployeeNumber: "E001", EmployeeSkill: models.EmployeeSkill{Skill: "Java"}},
	}, nil)
	if len(joined) != 0 {
		t.Errorf("joined count = %d, want 0", len(joined))
	}
}
