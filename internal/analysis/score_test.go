package analysis

import (
	"testing"

	"aris-service/internal/models"
)

func TestScoreSkillsFullMatch(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "Java", Level: "expert"},
		{Skill: "AWS", Level: "intermediate"},
	}
	have := []models.EmployeeSkill{
		{Skill: "Java", Level: "expert"},
		{Skill: "AWS", Level: "expert"},
	}

	score := ScoreSkills(required, have)
	if score.Percentage != 100 {
		t.Errorf("full match percentage = %d, want 100", score.Percentage)
	}
	if !score.DirectMatch {
		t.Error("full match must set DirectMatch")
	}
	if len(score.Missing) != 0 {
		t.Errorf("full match missing = %v, want empty", score.Missing)
	}
}

func TestScoreSkillsPartialCredit(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "Kubernetes", Level: "expert"},
	}
	have := []models.EmployeeSkill{
		{Skill: "Kubernetes", Level: "beginner"},
	}

	// beginner(1) against expert(3) gives 1/3 credit.
	score := ScoreSkills(required, have)
	if score.Percentage != 33 {
		t.Errorf("partial credit percentage = %d, want 33", score.Percentage)
	}
	if score.DirectMatch {
		t.Error("below-level skill must not count as a direct match")
	}
	if len(score.Missing) != 1 || score.Missing[0] != "Kubernetes" {
		t.Errorf("missing = %v, want [Kubernetes]", score.Missing)
	}
}

func TestScoreSkillsCaseInsensitiveNames(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "  java ", Level: "intermediate"},
	}
	have := []models.EmployeeSkill{
		{Skill: "JAVA", Level: "expert"},
	}

	score := ScoreSkills(required, have)
	if score.Percentage != 100 {
		t.Errorf("case-insensitive match percentage = %d, want 100", score.Percentage)
	}
}

func TestScoreSkillsAtLeastOneDirect(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "Java", Level: "beginner"},
		{Skill: "Rust", Level: "expert"},
	}
	have := []models.EmployeeSkill{
		{Skill: "Java", Level: "intermediate"},
	}

	score := ScoreSkills(required, have)
	if !score.DirectMatch {
		t.Error("one skill at or above level must set DirectMatch")
	}
	if len(score.Missing) != 1 || score.Missing[0] != "Rust" {
		t.Errorf("missing = %v, want [Rust]", score.Missing)
	}
	// 1 full + 0 for absent Rust over 2 requirements.
	if score.Percentage != 50 {
		t.Errorf("percentage = %d, want 50", score.Percentage)
	}
}

func TestScoreSkillsEmptyInputs(t *testing.T) {
	have := []models.EmployeeSkill{{Skill: "Java", Level: "expert"}}
	if score := ScoreSkills(nil, have); score.Percentage != 0 || score.DirectMatch {
		t.Error("empty requirements must score 0 with no direct match")
	}

	required := []models.SkillRequirement{
		{Skill: "Java", Level: "expert"},
		{Skill: "AWS", Level: "expert"},
	}
	score := ScoreSkills(required, nil)
	if score.Percentage != 0 {
		t.Errorf("empty skills percentage = %d, want 0", score.Percentage)
	}
	if len(score.Missing) != 2 {
		t.Errorf("empty skills missing = %v, want both requirements", score.Missing)
	}
}

func TestScoreSkillsDuplicateEmployeeSkill(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "Java", Level: "expert"},
	}
	// First occurrence wins.
	have := []models.EmployeeSkill{
		{Skill: "Java", Level: "expert"},
		{Skill: "java", Level: "beginner"},
	}

	if score := ScoreSkills(required, have); score.Percentage != 100 {
		t.Errorf("duplicate-skill percentage = %d, want 100", score.Percentage)
	}
}

func TestHasSimilarSkill(t *testing.T) {
	required := []models.SkillRequirement{
		{Skill: "React", Level: "expert", Category: "Frontend"},
	}

	similar := []models.EmployeeSkill{
		{Skill: "Angular", Level: "expert", Category: "frontend"},
	}
	if !HasSimilarSkill(required, similar) {
		t.Error("matching category (case-insensitive) must count as similar")
	}

	unrelated := []models.EmployeeSkill{
		{Skill: "Terraform", Level: "expert", Category: "Infrastructure"},
	}
	if HasSimilarSkill(required, unrelated) {
		t.Error("different category must not count as similar")
	}

	uncategorized := []models.SkillRequirement{{Skill: "React", Level: "expert"}}
	if HasSimilarSkill(uncategorized, similar) {
		t.Error("requirement without category must not match")
	}
}
