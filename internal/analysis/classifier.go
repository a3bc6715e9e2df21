package analysis

import (
	"sort"
	"time"

	"aris-service/internal/models"
)

// Analyzer runs the readiness classification over a roster. The clock is a
// field so callers can freeze time; classification is otherwise stateless
// and recomputed from scratch on every call.
type Analyzer struct {
	now func() time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

func NewAnalyzerWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

type classification struct {
	match models.ResourceMatch
	// placed is false for needs_hiring employees and for employees with
	// neither a direct match nor a qualifying similarity placement; they
	// count toward external hiring instead.
	placed bool
	// similar marks a trainable candidate: no direct skill match but an
	// overlapping skill category.
	similar bool
}

// Classify assigns one employee to a readiness tier: available employees
// are ready now, allocated employees are classified by their soonest future
// allocation end date, and everyone else falls through to match-percentage
// thresholds.
func (a *Analyzer) Classify(emp models.Employee, required []models.SkillRequirement) models.ResourceMatch {
	return a.classifyEmployee(emp, required).match
}

func (a *Analyzer) classifyEmployee(emp models.Employee, required []models.SkillRequirement) classification {
	now := a.now()
	score := ScoreSkills(required, emp.Skills)

	var availability models.Availability
	if percent, active := CurrentAllocationPercent(emp.Allocations, now); active {
		availability = NormalizeAvailability(&percent, emp.AvailabilityLabel)
	} else {
		availability = NormalizeAvailability(nil, emp.AvailabilityLabel)
	}

	status := models.NeedsHiring
	readyDate := ""
	allocationDerived := false

	if availability == models.Available {
		status = models.ReadyNow
		readyDate = dateString(now)
	} else if end, ok := soonestFutureEnd(emp.Allocations, now); ok {
		diffDays := ceilDays(end.Sub(now))
		switch {
		case diffDays <= 14:
			status = models.Ready2Weeks
			readyDate = dateString(now.AddDate(0, 0, diffDays))
			allocationDerived = true
		case diffDays <= 28:
			status = models.Ready4Weeks
			readyDate = dateString(now.AddDate(0, 0, diffDays))
			allocationDerived = true
		default:
			status, readyDate = a.thresholdClassify(score.Percentage, now)
		}
	} else {
		status, readyDate = a.thresholdClassify(score.Percentage, now)
	}

	match := models.ResourceMatch{
		ID:                 emp.EmployeeNumber,
		Name:               emp.Name,
		Email:              emp.Email,
		Department:         emp.Department,
		Role:               emp.Role,
		MatchPercentage:    score.Percentage,
		ReadinessStatus:    status,
		CurrentSkills:      emp.Skills,
		TrainingNeeded:     score.Missing,
		EstimatedReadyDate: readyDate,
		Availability:       availability,
	}

	c := classification{match: match}
	if score.DirectMatch {
		c.placed = status != models.NeedsHiring
	} else if HasSimilarSkill(required, emp.Skills) {
		// Category overlap marks a trainable candidate even when the score
		// falls below every threshold. Similarity alone only places an
		// employee whose allocation end date already lands in a training
		// window.
		c.similar = true
		c.placed = allocationDerived
	}
	return c
}

// thresholdClassify is the fallback for employees with no usable allocation
// signal. It is only reached for employees who are not available today, so
// the top band lands in ready_2weeks rather than ready_now.
func (a *Analyzer) thresholdClassify(percentage int, now time.Time) (models.ReadinessStatus, string) {
	switch {
	case percentage >= 60:
		return models.Ready2Weeks, dateString(now.AddDate(0, 0, 14))
	case percentage >= 40:
		return models.Ready4Weeks, dateString(now.AddDate(0, 0, 28))
	default:
		return models.NeedsHiring, ""
	}
}

// Analyze classifies the whole roster against a requirement set and builds
// the aggregate recommendation. An empty roster short-circuits to an
// external-hire result without per-employee work.
func (a *Analyzer) Analyze(requestID string, required []models.SkillRequirement, teamSize int, roster []models.Employee) models.AnalysisResult {
	now := a.now()
	result := models.AnalysisResult{
		RequestID:    requestID,
		ReadyNow:     []models.ResourceMatch{},
		Ready2Weeks:  []models.ResourceMatch{},
		Ready4Weeks:  []models.ResourceMatch{},
		AnalysisTime: now,
		LastUpdated:  now,
	}

	if len(roster) == 0 {
		result.ExternalHireNeeded = teamSize
		result.RecommendedActions = []string{
			"No employees available - external hiring required",
			"Consider using contractors or external consultants",
		}
		return result
	}

	similarCandidates := 0
	for _, emp := range roster {
		c := a.classifyEmployee(emp, required)
		if c.similar {
			similarCandidates++
		}
		if !c.placed {
			continue
		}
		switch c.match.ReadinessStatus {
		case models.ReadyNow:
			result.ReadyNow = append(result.ReadyNow, c.match)
		case models.Ready2Weeks:
			result.Ready2Weeks = append(result.Ready2Weeks, c.match)
		case models.Ready4Weeks:
			result.Ready4Weeks = append(result.Ready4Weeks, c.match)
		}
	}

	sortByMatch(result.ReadyNow)
	sortByMatch(result.Ready2Weeks)
	sortByMatch(result.Ready4Weeks)

	placed := result.Placed()
	result.ExternalHireNeeded = teamSize - placed
	if result.ExternalHireNeeded < 0 {
		result.ExternalHireNeeded = 0
	}

	switch {
	case placed > 0:
		result.ConfidenceScore = 100
		result.RecommendedActions = []string{
			"Team can be formed with available and soon-to-be-available resources",
			"Schedule interviews with top candidates",
			"Prepare project onboarding materials",
		}
	case similarCandidates > 0:
		result.ConfidenceScore = 70
		result.RecommendedActions = []string{
			"Start training programs for trainable candidates",
			"Begin interviews with candidates holding related skills",
			"Schedule training for skill gaps",
		}
	default:
		result.ConfidenceScore = 0
		result.RecommendedActions = []string{
			"Begin external hiring process immediately",
			"Consider augmenting team with contractors",
			"Review project scope and timeline",
		}
	}

	return result
}

func sortByMatch(matches []models.ResourceMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
}

func soonestFutureEnd(allocations []models.Allocation, now time.Time) (time.Time, bool) {
	var soonest time.Time
	found := false
	for _, alloc := range allocations {
		end, ok := parseDate(alloc.EndDate)
		if !ok || !end.After(now) {
			continue
		}
		if !found || end.Before(soonest) {
			soonest = end
			found = true
		}
	}
	return soonest, found
}

func ceilDays(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}
