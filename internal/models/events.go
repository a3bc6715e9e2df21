package models

import (
	"time"
)

type EventType string

const (
	EventTypeRequestCreated    EventType = "request.created"
	EventTypeRequestUpdated    EventType = "request.updated"
	EventTypeAnalysisCompleted EventType = "analysis.completed"
	EventTypeEmployeeUpdated   EventType = "employee.updated"
)

type RequestEvent struct {
	EventType EventType `json:"eventType"`
	RequestID string    `json:"requestId"`
	ClientID  string    `json:"clientId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	// Populated on analysis.completed events.
	Placed             int `json:"placed,omitempty"`
	ExternalHireNeeded int `json:"externalHireNeeded,omitempty"`
	ConfidenceScore    int `json:"confidenceScore,omitempty"`
}

type EmployeeEvent struct {
	EventType      EventType `json:"eventType"`
	EmployeeNumber string    `json:"employeeNumber"`
	Timestamp      time.Time `json:"timestamp"`
	ChangedFields  []string  `json:"changedFields,omitempty"`
}
