package models

type CreateRequestBody struct {
	ClientName           string             `json:"clientName"`
	ClientEmail          string             `json:"clientEmail,omitempty"`
	ProjectName          string             `json:"projectName"`
	ProjectDescription   string             `json:"projectDescription,omitempty"`
	RequestedBy          string             `json:"requestedBy,omitempty"`
	RequiredStartDate    string             `json:"requiredStartDate,omitempty"`
	ProjectDurationWeeks int                `json:"projectDurationWeeks,omitempty"`
	TeamSizeRequired     int                `json:"teamSizeRequired,omitempty"`
	Priority             Priority           `json:"priority,omitempty"`
	Skills               []SkillRequirement `json:"skills,omitempty"`
}

type UpdateRequestBody struct {
	ClientName           *string            `json:"clientName,omitempty"`
	ClientEmail          *string            `json:"clientEmail,omitempty"`
	ProjectName          *string            `json:"projectName,omitempty"`
	ProjectDescription   *string            `json:"projectDescription,omitempty"`
	RequiredStartDate    *string            `json:"requiredStartDate,omitempty"`
	ProjectDurationWeeks *int               `json:"projectDurationWeeks,omitempty"`
	TeamSizeRequired     *int               `json:"teamSizeRequired,omitempty"`
	Priority             *Priority          `json:"priority,omitempty"`
	Status               *RequestStatus     `json:"status,omitempty"`
	Skills               []SkillRequirement `json:"skills,omitempty"`
}

type AnalyzeRequestBody struct {
	RequestID string             `json:"requestId"`
	Skills    []SkillRequirement `json:"skills"`
	TeamSize  int                `json:"teamSize"`
}

type SendEmailBody struct {
	To      string         `json:"to"`
	Subject string         `json:"subject"`
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

type RequestSearchQuery struct {
	Status   RequestStatus `json:"status,omitempty"`
	Client   string        `json:"client,omitempty"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type RequestSearchResult struct {
	Requests    []*SkillRequest `json:"requests"`
	TotalCount  int64           `json:"totalCount"`
	PageCount   int             `json:"pageCount"`
	CurrentPage int             `json:"currentPage"`
}
