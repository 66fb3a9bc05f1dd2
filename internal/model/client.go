package model

import "time"

type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(128);not null" json:"name"`
	Industry     string    `gorm:"type:varchar(64);index:idx_industry" json:"industry"`
	CompanySize  string    `gorm:"type:varchar(32)" json:"company_size"`
	Location     string    `gorm:"type:varchar(128)" json:"location"`
	ContactEmail string    `gorm:"type:varchar(128)" json:"contact_email"`
	ContactPhone string    `gorm:"type:varchar(32)" json:"contact_phone"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Projects []Project        `gorm:"foreignKey:ClientID" json:"projects,omitempty"`
	Research []ResearchRecord `gorm:"foreignKey:ClientID" json:"research,omitempty"`
}

func (Client) TableName() string { return "clients" }
