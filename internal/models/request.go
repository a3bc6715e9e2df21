package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type RequestStatus string

const (
	StatusPending             RequestStatus = "pending"
	StatusAnalyzing           RequestStatus = "analyzing"
	StatusProposed            RequestStatus = "proposed"
	StatusTrainingScheduled   RequestStatus = "training_scheduled"
	StatusProfilesSent        RequestStatus = "profiles_sent"
	StatusInterviewsScheduled RequestStatus = "interviews_scheduled"
	StatusFulfilled           RequestStatus = "fulfilled"
)

type SkillRequirement struct {
	Skill     string `json:"skill" bson:"skill"`
	Level     string `json:"level" bson:"level"`
	Count     int    `json:"count,omitempty" bson:"count,omitempty"`
	Mandatory bool   `json:"mandatory" bson:"mandatory"`
	Category  string `json:"category,omitempty" bson:"category,omitempty"`
}

type SkillRequest struct {
	ID                   bson.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	RequestID            string             `json:"requestId" bson:"requestId"`
	ClientName           string             `json:"clientName" bson:"clientName"`
	ClientEmail          string             `json:"clientEmail,omitempty" bson:"clientEmail,omitempty"`
	ProjectName          string             `json:"projectName" bson:"projectName"`
	ProjectDescription   string             `json:"projectDescription,omitempty" bson:"projectDescription,omitempty"`
	RequestedBy          string             `json:"requestedBy" bson:"requestedBy"`
	RequestDate          string             `json:"requestDate" bson:"requestDate"`
	RequiredStartDate    string             `json:"requiredStartDate,omitempty" bson:"requiredStartDate,omitempty"`
	ProjectDurationWeeks int                `json:"projectDurationWeeks" bson:"projectDurationWeeks"`
	TeamSizeRequired     int                `json:"teamSizeRequired" bson:"teamSizeRequired"`
	Priority             Priority           `json:"priority" bson:"priority"`
	Status               RequestStatus      `json:"status" bson:"status"`
	Skills               []SkillRequirement `json:"skills" bson:"skills"`
	// Latest classification outcome for this request, refreshed on every
	// analysis run; point-in-time only, never treated as authoritative.
	AnalysisSnapshot *AnalysisResult `json:"analysis,omitempty" bson:"analysisSnapshot,omitempty"`
	Metadata         Metadata        `json:"metadata" bson:"metadata"`
}
