package model

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList stores a slice of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, l)
}

// WMSProcess is read-only reference data seeded from the catalog at boot.
type WMSProcess struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	Category                string     `gorm:"type:varchar(32);not null;index:idx_wms_category" json:"category"`
	Name                    string     `gorm:"type:varchar(64);not null" json:"name"`
	Description             string     `gorm:"type:text" json:"description"`
	TypicalQuestions        StringList `gorm:"type:json" json:"typical_questions"`
	TechnicalConsiderations StringList `gorm:"type:json" json:"technical_considerations"`
}

func (WMSProcess) TableName() string { return "wms_processes" }
