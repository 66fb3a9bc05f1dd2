package service

import (
	"fmt"
	"strings"

	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/model"
)

const questionSystemPrompt = `You are a WMS (Warehouse Management System) implementation expert who generates highly specific, actionable questions for warehouse management consultants. Always return valid JSON arrays.`

const researchSystemPrompt = `You are a supply chain and logistics research analyst. Provide detailed, factual analysis based on the provided search results.`

func priorityInstruction(priority string) string {
	switch priority {
	case model.PriorityHigh:
		return "All questions should be High priority - critical for WMS success"
	case model.PriorityMedium:
		return "All questions should be Medium priority - important but not critical"
	case model.PriorityLow:
		return "All questions should be Low priority - nice to have or future considerations"
	default:
		return "Mix priority levels: 40% High, 40% Medium, 20% Low priority questions"
	}
}

func complexityInstruction(complexity string) string {
	switch complexity {
	case "Basic":
		return "Focus on fundamental, straightforward questions suitable for basic implementations"
	case "Advanced":
		return "Focus on complex, technical questions for sophisticated WMS implementations"
	case "Expert":
		return "Focus on expert-level questions covering edge cases and complex scenarios"
	default:
		return "Mix complexity levels from basic operational questions to advanced technical requirements"
	}
}

func buildQuestionPrompt(cat catalog.Category, count int, priority, complexity string) string {
	return fmt.Sprintf(`Generate %[1]d highly specific, actionable questions for the "%[2]s" category of a WMS implementation.

CATEGORY DESCRIPTION: %[3]s

FOCUS AREAS: %[4]s

REQUIREMENTS:
- Generate exactly %[1]d questions
- %[5]s
- %[6]s
- Questions should be specific, actionable, and relevant to WMS implementations
- Each question should help consultants understand client requirements
- Avoid generic questions - be specific to WMS processes

FORMAT: Return ONLY a JSON array with this exact structure:
[
  {
    "text": "Detailed question text here?",
    "priority": "High|Medium|Low",
    "focus_area": "specific_focus_area"
  }
]`,
		count, cat.Title, cat.Description, strings.Join(cat.FocusAreas, ", "),
		priorityInstruction(priority), complexityInstruction(complexity))
}

func researchQuery(researchType, name, industry string) string {
	switch researchType {
	case model.ResearchCompanyOverview:
		return fmt.Sprintf("%s company revenue warehouse supply chain technology", name)
	case model.ResearchSupplyChainAnalysis:
		return fmt.Sprintf("%s warehouse management system WMS transportation logistics supply chain technology ERP", name)
	case model.ResearchCompetitorAnalysis:
		return fmt.Sprintf("%s competitors %s supply chain warehouse logistics", name, industry)
	case model.ResearchTechnologyAssessment:
		return fmt.Sprintf("%s WMS ERP TMS automation technology stack systems", name)
	}
	return name
}

func buildResearchPrompt(researchType, name string, results []capability.SearchResult) string {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", r.Title, r.Snippet, r.Link)
	}
	searchBlock := sb.String()
	if searchBlock == "" {
		searchBlock = "(no search results available)\n"
	}

	var body string
	switch researchType {
	case model.ResearchCompanyOverview:
		body = fmt.Sprintf(`Analyze the following search results about %s and provide a comprehensive company overview focusing on annual revenue, business model, market position, key facilities, and recent developments.

Format:
**Financial Overview:**
**Business Operations:**
**Market Position:**
**Key Facilities:**
**Recent Developments:**`, name)
	case model.ResearchSupplyChainAnalysis:
		body = fmt.Sprintf(`Analyze %s's supply chain infrastructure: warehouse and distribution centers, transportation and logistics, supply chain technology (WMS, ERP, TMS), inventory management approach, and key partners.

Format:
**Warehouse Infrastructure:**
**Transportation & Logistics:**
**Technology Stack:**
**Inventory Management:**
**Key Partners:**`, name)
	case model.ResearchCompetitorAnalysis:
		body = fmt.Sprintf(`Analyze %s's competitive landscape: main competitors in supply chain/logistics, competitive advantages and disadvantages, market share, technology adoption versus competitors, and strategic positioning.

Format:
**Main Competitors:**
**Competitive Advantages:**
**Market Position:**
**Technology Comparison:**
**Strategic Insights:**`, name)
	case model.ResearchTechnologyAssessment:
		body = fmt.Sprintf(`Assess %s's technology landscape relevant to a WMS implementation: current systems (WMS, ERP, TMS), integration landscape, automation and device fleet, data and reporting, and modernization opportunities.

Format:
**Current Systems:**
**Integration Landscape:**
**Automation & Devices:**
**Data & Reporting:**
**Modernization Opportunities:**`, name)
	}

	return body + "\n\nSearch Results:\n" + searchBlock
}
