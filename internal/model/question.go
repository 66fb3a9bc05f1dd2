package model

import "time"

// Question priorities, ordinal High > Medium > Low.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	// PriorityMixed is a generation-request value only, never stored.
	PriorityMixed = "Mixed"
)

func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Question struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectID   uint       `gorm:"not null;index:idx_questions_project" json:"project_id"`
	Category    string     `gorm:"type:varchar(64);index:idx_questions_category" json:"category"`
	Subcategory string     `gorm:"type:varchar(64)" json:"subcategory"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	Priority    string     `gorm:"type:varchar(8);default:Medium" json:"priority"`
	IsAnswered  bool       `gorm:"default:false;index:idx_answered" json:"is_answered"`
	Answer      string     `gorm:"type:text" json:"answer"`
	Notes       string     `gorm:"type:text" json:"notes"`
	AIGenerated bool       `gorm:"default:false" json:"ai_generated"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AnsweredAt  *time.Time `json:"answered_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Question) TableName() string { return "questions" }
