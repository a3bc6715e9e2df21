// Package analysis implements the readiness classifier: skill-level and
// availability normalization, requirement scoring and the per-employee
// readiness state machine that buckets the roster for a skill request.
package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"aris-service/internal/models"
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*(?:\+|-\d+)?\s*(?:years?|yrs?)`)

var (
	expertWords       = []string{"expert", "senior", "lead"}
	intermediateWords = []string{"intermediate", "mid", "associate"}
	beginnerWords     = []string{"beginner", "junior", "fresher"}
)

// NormalizeLevel maps a raw proficiency descriptor (free text, seniority
// title or a "N years" phrase) onto the three-step scale. It never fails:
// unrecognized or empty input defaults to intermediate.
func NormalizeLevel(raw string) models.SkillLevel {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return models.LevelIntermediate
	}

	years, hasYears := parseYears(s)

	if containsAny(s, expertWords) || (hasYears && years >= 6) {
		return models.LevelExpert
	}
	if containsAny(s, intermediateWords) || (hasYears && years >= 3) {
		return models.LevelIntermediate
	}
	if containsAny(s, beginnerWords) || hasYears {
		return models.LevelBeginner
	}
	return models.LevelIntermediate
}

func parseYears(s string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
