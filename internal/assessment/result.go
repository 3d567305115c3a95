package assessment

// CareerSuggestion is one AI-suggested occupation. DayInTheLifeNarrative,
// DayInTheLifeImageURL, and ISCOCode are optional enrichments; a failed
// enrichment leaves them empty without invalidating the suggestion.
type CareerSuggestion struct {
	Name                  string `json:"name"`
	Description           string `json:"description"`
	Rationale             string `json:"rationale"`
	EducationPathIndia    string `json:"educationPathIndia"`
	DayInTheLifeNarrative string `json:"dayInTheLifeNarrative,omitempty"`
	DayInTheLifeImageURL  string `json:"dayInTheLifeImageUrl,omitempty"`
	ISCOCode              string `json:"iscoCode,omitempty"`
}

// StreamSuggestion is one AI-suggested academic stream for the Indian
// senior-secondary system.
type StreamSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale"`
	Subjects    []string `json:"subjects"`
}

// LearningResource points at one place to learn a recommended skill.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// SkillRecommendation is one AI-suggested skill with starting resources.
type SkillRecommendation struct {
	SkillName         string             `json:"skillName"`
	Description       string             `json:"description"`
	Relevance         string             `json:"relevance"`
	LearningResources []LearningResource `json:"learningResources"`
}

// Result is everything produced by one assessment run: the scored profile
// plus the generative enrichments. Empty slices, not nil, mark enrichments
// that failed or were skipped.
type Result struct {
	Profile              Profile               `json:"profile"`
	Narrative            string                `json:"profileNarrative,omitempty"`
	CareerSuggestions    []CareerSuggestion    `json:"careerSuggestions"`
	StreamSuggestions    []StreamSuggestion    `json:"streamSuggestions"`
	SkillRecommendations []SkillRecommendation `json:"skillRecommendations,omitempty"`
}
