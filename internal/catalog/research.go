package catalog

import (
	"fmt"

	"github.com/wmsConsultant/backend/internal/model"
)

// ResearchTitle maps a research type to its display title.
func ResearchTitle(researchType string) string {
	switch researchType {
	case model.ResearchCompanyOverview:
		return "Company Overview"
	case model.ResearchSupplyChainAnalysis:
		return "Supply Chain Analysis"
	case model.ResearchCompetitorAnalysis:
		return "Competitor Analysis"
	case model.ResearchTechnologyAssessment:
		return "Technology Assessment"
	}
	return researchType
}

// FallbackResearch renders the deterministic research text used when the
// generation capability is unavailable or fails. Never returns empty.
func FallbackResearch(researchType, name, industry string) string {
	if industry == "" {
		industry = "their"
	}
	header := fmt.Sprintf("## %s: %s\n\n", ResearchTitle(researchType), name)
	switch researchType {
	case model.ResearchCompanyOverview:
		return header + fmt.Sprintf(`**Financial Overview:**
%[1]s is an established player in the %[2]s sector. Revenue figures were not available without external research; treat sizing as an open discovery item.

**Business Operations:**
Primary operations involve %[2]s activity with warehouse and distribution requirements typical of the sector. Confirm facility count, footprint, and order profile during discovery.

**Market Position:**
%[1]s competes in a market where fulfillment speed and inventory accuracy are differentiators. Validate market share and growth trajectory with the client.

**Key Facilities:**
Facility network details pending client confirmation. Capture locations, square footage, and automation level per site.

**Recent Developments:**
No external research was performed. Ask about recent expansions, system replacements, and automation investments.`, name, industry)

	case model.ResearchSupplyChainAnalysis:
		return header + fmt.Sprintf(`**Warehouse Infrastructure:**
%[1]s operates distribution facilities supporting %[2]s operations. Capture storage types, throughput, and peak profiles per site during discovery.

**Transportation & Logistics:**
Carrier mix, inbound routing, and outbound service levels were not externally researched; confirm directly with the client.

**Technology Stack:**
Current WMS, ERP, and TMS landscape to be confirmed. Identify integration points and data ownership early.

**Inventory Management:**
Review replenishment strategy, safety stock policy, and accuracy measurement with operations leadership.

**Key Partners:**
List 3PLs, carriers, and technology vendors during stakeholder interviews.`, name, industry)

	case model.ResearchCompetitorAnalysis:
		return header + fmt.Sprintf(`**Main Competitors:**
Key competitors are other %[2]s operators with comparable fulfillment complexity. Build the competitor list with the client's commercial team.

**Competitive Advantages:**
Assess %[1]s's scale, network coverage, and service capabilities against the segment during discovery.

**Market Position:**
Position within the %[2]s segment to be validated; note pressure from digitally native entrants where relevant.

**Technology Comparison:**
Benchmark WMS sophistication and automation adoption against segment leaders once the current stack is documented.

**Strategic Insights:**
Focus areas typically include automation, labor productivity, and fulfillment speed; confirm priorities with sponsors.`, name, industry)

	case model.ResearchTechnologyAssessment:
		return header + fmt.Sprintf(`**Current Systems:**
%[1]s's existing WMS, ERP, and execution systems were not externally researched; inventory them during technical discovery.

**Integration Landscape:**
Map interfaces between host systems, material handling equipment, and carrier platforms for %[2]s operations.

**Automation & Devices:**
Document RF device fleet, scanning standards, and any conveyor, sortation, or robotic systems in place.

**Data & Reporting:**
Identify the reporting stack, data retention needs, and KPI definitions used by operations today.

**Modernization Opportunities:**
Typical %[2]s opportunities include directed workflows, labor standards, and real-time visibility; validate against observed gaps.`, name, industry)
	}

	return fmt.Sprintf("Research for %s - %s. External research services were unavailable; this placeholder should be replaced once discovery data is collected.", name, researchType)
}
