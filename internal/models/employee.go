package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type EmployeeSkill struct {
	Skill         string `json:"skill" bson:"skill"`
	Level         string `json:"level" bson:"level"`
	Category      string `json:"category,omitempty" bson:"category,omitempty"`
	Certification string `json:"certification,omitempty" bson:"certification,omitempty"`
}

// Allocation dates arrive as free-form date strings from upstream HR
// imports; malformed values are tolerated and skipped during analysis.
type Allocation struct {
	ProjectName string  `json:"projectName,omitempty" bson:"projectName,omitempty"`
	StartDate   string  `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Percent     float64 `json:"percent" bson:"percent"`
}

type Employee struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeNumber string        `json:"employeeNumber" bson:"employeeNumber"`
	Name           string        `json:"name" bson:"name"`
	Email          string        `json:"email" bson:"email"`
	Department     string        `json:"department,omitempty" bson:"department,omitempty"`
	Role           string        `json:"role,omitempty" bson:"role,omitempty"`
	// Raw availability label from the source system ("bench", "on project",
	// ...). Allocation percentages take precedence over it.
	AvailabilityLabel string          `json:"availability,omitempty" bson:"availability,omitempty"`
	Skills            []EmployeeSkill `json:"skills,omitempty" bson:"skills,omitempty"`
	Allocations       []Allocation    `json:"allocations,omitempty" bson:"allocations,omitempty"`
	Metadata          Metadata        `json:"metadata" bson:"metadata"`
}

// SkillRecord is a skill row as stored in the SkillsMaster collection,
// keyed by its owning employee.
type SkillRecord struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeNumber string        `json:"employeeNumber" bson:"employeeNumber"`
	EmployeeSkill  `bson:",inline"`
}

// AllocationRecord is an allocation row from the EmployeeAllocation
// collection, keyed by its owning employee.
type AllocationRecord struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeNumber string        `json:"employeeNumber" bson:"employeeNumber"`
	Allocation     `bson:",inline"`
}

type Metadata struct {
	CreatedAt int `json:"createdAt" bson:"createdAt"`
	UpdatedAt int `json:"updatedAt" bson:"updatedAt"`
}
