// Package advisor is the single surface through which the service talks to
// the generative AI collaborator: narrative and suggestion generation,
// occupation deep dives, career imagery, and the mentor chat.
package advisor

// OccupationDeepDive is the AI-generated labor-market briefing for one
// occupation, India-focused where possible.
type OccupationDeepDive struct {
	SalaryIndia       string   `json:"salaryIndia"`
	MarketDemand      string   `json:"marketDemand"`
	AutomationRisk    string   `json:"automationRisk"`
	TopSkills         []string `json:"topSkills"`
	GrowthPotential   string   `json:"growthPotential"`
	CareerPathSummary string   `json:"careerPathSummary"`
}
