package analysis

import (
	"strings"
	"time"

	"aris-service/internal/models"
)

var (
	availableWords = []string{"available", "bench", "unassigned", "free"}
	busyWords      = []string{"busy", "allocated", "on project", "engaged", "assigned"}
)

// NormalizeAvailability decides whether an employee is presently available.
// A numeric allocation percentage takes precedence over any text label;
// unrecognized or missing labels default to Available.
func NormalizeAvailability(percent *float64, label string) models.Availability {
	if percent != nil {
		if *percent > 0 {
			return models.Busy
		}
		return models.Available
	}

	s := strings.ToLower(strings.TrimSpace(label))
	if containsAny(s, availableWords) {
		return models.Available
	}
	if containsAny(s, busyWords) {
		return models.Busy
	}
	return models.Available
}

// CurrentAllocationPercent sums the allocation percentages of records whose
// window covers now. The second return is false when the employee has no
// allocation active at this moment, in which case the text label decides.
func CurrentAllocationPercent(allocations []models.Allocation, now time.Time) (float64, bool) {
	total := 0.0
	active := false
	for _, alloc := range allocations {
		start, startOK := parseDate(alloc.StartDate)
		end, endOK := parseDate(alloc.EndDate)
		if startOK && start.After(now) {
			continue
		}
		if endOK && end.Before(now) {
			continue
		}
		if !startOK && !endOK {
			// Undated allocation rows carry no timing signal.
			continue
		}
		active = true
		total += alloc.Percent
	}
	return total, active
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"01/02/2006",
}

// parseDate tolerates the date formats seen in HR imports; anything
// unparseable is treated as absent rather than misclassifying on a bad date.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
