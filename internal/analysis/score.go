package analysis

import (
	"math"
	"strings"

	"aris-service/internal/models"
)

type ScoreResult struct {
	// Percentage is 0-100: full credit per requirement met at or above the
	// required level, partial credit employeeOrdinal/requiredOrdinal below it.
	Percentage int
	// Missing lists every required skill the employee lacks entirely or
	// holds below the required level.
	Missing []string
	// DirectMatch is true when at least one required skill is held at or
	// above its required level.
	DirectMatch bool
}

// ScoreSkills computes how well an employee's skill set satisfies a
// requirement set. Empty requirements or an empty skill set score 0.
func ScoreSkills(required []models.SkillRequirement, have []models.EmployeeSkill) ScoreResult {
	result := ScoreResult{}
	if len(required) == 0 {
		return result
	}
	if len(have) == 0 {
		for _, req := range required {
			result.Missing = append(result.Missing, strings.TrimSpace(req.Skill))
		}
		return result
	}

	byName := make(map[string]models.EmployeeSkill, len(have))
	for _, skill := range have {
		key := matchKey(skill.Skill)
		if _, exists := byName[key]; !exists {
			byName[key] = skill
		}
	}

	sum := 0.0
	for _, req := range required {
		name := strings.TrimSpace(req.Skill)
		empSkill, ok := byName[matchKey(req.Skill)]
		if !ok {
			result.Missing = append(result.Missing, name)
			continue
		}

		reqOrdinal := NormalizeLevel(req.Level).Ordinal()
		empOrdinal := NormalizeLevel(empSkill.Level).Ordinal()
		if empOrdinal >= reqOrdinal {
			sum += 1.0
			result.DirectMatch = true
		} else {
			sum += float64(empOrdinal) / float64(reqOrdinal)
			result.Missing = append(result.Missing, name)
		}
	}

	result.Percentage = int(math.Round(100 * sum / float64(len(required))))
	return result
}

// HasSimilarSkill reports whether the employee shares a skill category with
// any requirement, the trainability signal for employees without a direct
// match.
func HasSimilarSkill(required []models.SkillRequirement, have []models.EmployeeSkill) bool {
	for _, req := range required {
		if strings.TrimSpace(req.Category) == "" {
			continue
		}
		for _, skill := range have {
			if strings.EqualFold(strings.TrimSpace(skill.Category), strings.TrimSpace(req.Category)) {
				return true
			}
		}
	}
	return false
}

func matchKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
