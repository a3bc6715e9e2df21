package models

import "time"

// SkillLevel is the three-step proficiency scale every raw level descriptor
// is normalized into. Ordinals are used for numeric comparison and
// partial-credit scoring.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelExpert       SkillLevel = "expert"
)

func (l SkillLevel) Ordinal() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelExpert:
		return 3
	}
	return 0
}

type Availability string

const (
	Available Availability = "Available"
	Busy      Availability = "Busy"
)

type ReadinessStatus string

const (
	ReadyNow    ReadinessStatus = "ready_now"
	Ready2Weeks ReadinessStatus = "ready_2weeks"
	Ready4Weeks ReadinessStatus = "ready_4weeks"
	NeedsHiring ReadinessStatus = "needs_hiring"
)

type ResourceMatch struct {
	ID              string          `json:"id" bson:"id"`
	Name            string          `json:"name" bson:"name"`
	Email           string          `json:"email" bson:"email"`
	Department      string          `json:"department,omitempty" bson:"department,omitempty"`
	Role            string          `json:"role,omitempty" bson:"role,omitempty"`
	MatchPercentage int             `json:"matchPercentage" bson:"matchPercentage"`
	ReadinessStatus ReadinessStatus `json:"readinessStatus" bson:"readinessStatus"`
	CurrentSkills   []EmployeeSkill `json:"currentSkills" bson:"currentSkills"`
	TrainingNeeded  []string        `json:"trainingNeeded" bson:"trainingNeeded"`
	// ISO date (2006-01-02); today's date for employees who are ready now,
	// empty only for needs_hiring.
	EstimatedReadyDate string       `json:"estimatedReadyDate,omitempty" bson:"estimatedReadyDate,omitempty"`
	Availability       Availability `json:"availability" bson:"availability"`
}

type AnalysisResult struct {
	RequestID          string          `json:"requestId" bson:"requestId"`
	ReadyNow           []ResourceMatch `json:"readyNow" bson:"readyNow"`
	Ready2Weeks        []ResourceMatch `json:"ready2Weeks" bson:"ready2Weeks"`
	Ready4Weeks        []ResourceMatch `json:"ready4Weeks" bson:"ready4Weeks"`
	ExternalHireNeeded int             `json:"externalHireNeeded" bson:"externalHireNeeded"`
	RecommendedActions []string        `json:"recommendedActions" bson:"recommendedActions"`
	ConfidenceScore    int             `json:"confidenceScore" bson:"confidenceScore"`
	AnalysisTime       time.Time       `json:"analysisTime" bson:"analysisTime"`
	LastUpdated        time.Time       `json:"lastUpdated" bson:"lastUpdated"`
}

// Placed reports how many employees landed in any readiness bucket.
func (r *AnalysisResult) Placed() int {
	return len(r.ReadyNow) + len(r.Ready2Weeks) + len(r.Ready4Weeks)
}
