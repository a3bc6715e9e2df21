package analysis

import (
	"testing"
	"time"

	"aris-service/internal/models"
)

func TestNormalizeAvailabilityPercentPrecedence(t *testing.T) {
	fifty := 50.0
	zero := 0.0

	// Percent wins even when the label says otherwise.
	if got := NormalizeAvailability(&fifty, "available"); got != models.Busy {
		t.Errorf("percent 50 with available label = %s, want Busy", got)
	}
	if got := NormalizeAvailability(&zero, "busy"); got != models.Available {
		t.Errorf("percent 0 with busy label = %s, want Available", got)
	}
}

func TestNormalizeAvailabilityLabels(t *testing.T) {
	cases := []struct {
		label string
		want  models.Availability
	}{
		{"Available", models.Available},
		{"on bench", models.Available},
		{"unassigned", models.Available},
		{"free", models.Available},
		{"Busy", models.Busy},
		{"allocated", models.Busy},
		{"On Project X", models.Busy},
		{"engaged", models.Busy},
		{"", models.Available},
		{"sabbatical", models.Available},
	}

	for _, tc := range cases {
		if got := NormalizeAvailability(nil, tc.label); got != tc.want {
			t.Errorf("NormalizeAvailability(nil, %q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestCurrentAllocationPercent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	allocations := []models.Allocation{
		{ProjectName: "Active", StartDate: "2026-03-01", EndDate: "2026-03-31", Percent: 60},
		{ProjectName: "AlsoActive", StartDate: "2026-02-01", EndDate: "2026-04-30", Percent: 20},
		{ProjectName: "Past", StartDate: "2025-01-01", EndDate: "2025-12-31", Percent: 100},
		{ProjectName: "Future", StartDate: "2026-06-01", EndDate: "2026-12-31", Percent: 100},
	}

	total, active := CurrentAllocationPercent(allocations, now)
	if !active {
		t.Fatal("expected an active allocation window")
	}
	if total != 80 {
		t.Errorf("active allocation total = %v, want 80", total)
	}
}

func TestCurrentAllocationPercentNoSignal(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Undated and malformed rows carry no timing signal.
	allocations := []models.Allocation{
		{ProjectName: "Undated", Percent: 50},
		{ProjectName: "Garbage", StartDate: "soon", EndDate: "later", Percent: 50},
	}

	if _, active := CurrentAllocationPercent(allocations, now); active {
		t.Error("undated allocations must not count as active")
	}

	if _, active := CurrentAllocationPercent(nil, now); active {
		t.Error("empty allocation list must not count as active")
	}
}

func TestParseDateFormats(t *testing.T) {
	cases := []string{
		"2026-03-15",
		"2026-03-15T10:30:00Z",
		"2026-03-15 10:30:00",
		"15-03-2026",
		"03/15/2026",
	}
	for _, raw := range cases {
		if _, ok := parseDate(raw); !ok {
			t.Errorf("parseDate(%q) failed, want success", raw)
		}
	}

	if _, ok := parseDate("not a date"); ok {
		t.Error("parseDate accepted garbage input")
	}
	if _, ok := parseDate(""); ok {
		t.Error("parseDate accepted empty input")
	}
}
