package model

import "time"

// Project statuses.
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on_hold"
)

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	ClientID           uint       `gorm:"not null;index:idx_projects_client" json:"client_id"`
	Name               string     `gorm:"type:varchar(128);not null" json:"name"`
	Description        string     `gorm:"type:text" json:"description"`
	Status             string     `gorm:"type:varchar(16);default:planning;index:idx_status" json:"status"`
	StartDate          *time.Time `json:"start_date"`
	ExpectedCompletion *time.Time `json:"expected_completion"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Client    *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Questions []Question `gorm:"foreignKey:ProjectID" json:"questions,omitempty"`
}

func (Project) TableName() string { return "projects" }
