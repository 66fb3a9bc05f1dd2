package model

import "time"

// Research types.
const (
	ResearchCompanyOverview      = "company_overview"
	ResearchSupplyChainAnalysis  = "supply_chain_analysis"
	ResearchCompetitorAnalysis   = "competitor_analysis"
	ResearchTechnologyAssessment = "technology_assessment"

	// ResearchComprehensive is a request value meaning "run every type".
	ResearchComprehensive = "comprehensive"
)

// AllResearchTypes lists the concrete types in conduct order.
var AllResearchTypes = []string{
	ResearchCompanyOverview,
	ResearchSupplyChainAnalysis,
	ResearchCompetitorAnalysis,
	ResearchTechnologyAssessment,
}

func ValidResearchType(t string) bool {
	for _, rt := range AllResearchTypes {
		if t == rt {
			return true
		}
	}
	return t == ResearchComprehensive
}

// SourcesUnavailable is the sentinel recorded when research falls back to
// the static template. Sources must never be empty.
const SourcesUnavailable = "unavailable"

// ResearchRecord is append-only: conducting research always creates a new
// record, prior records are never mutated.
type ResearchRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ClientID     uint       `gorm:"not null;index:idx_research_client" json:"client_id"`
	ResearchType string     `gorm:"type:varchar(32);not null" json:"research_type"`
	Content      string     `gorm:"type:text" json:"content"`
	Sources      StringList `gorm:"type:json" json:"sources"`
	AIGenerated  bool       `gorm:"default:false" json:"ai_generated"`
	CreatedAt    time.Time  `json:"created_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (ResearchRecord) TableName() string { return "research_records" }
