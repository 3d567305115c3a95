package education

// CompetitiveExam describes an entrance or eligibility examination that
// gates admission into a stage of the education system.
type CompetitiveExam struct {
	ID                     string   `yaml:"id" json:"id"`
	Name                   string   `yaml:"name" json:"name"`
	ShortName              string   `yaml:"short_name,omitempty" json:"shortName,omitempty"`
	Description            string   `yaml:"description" json:"description"`
	Level                  string   `yaml:"level" json:"level"`
	TargetStages           []string `yaml:"target_stages" json:"targetStages"`
	TypicalSubjectsCovered []string `yaml:"typical_subjects_covered,omitempty" json:"typicalSubjectsCovered,omitempty"`
	OfficialWebsite        string   `yaml:"official_website,omitempty" json:"officialWebsite,omitempty"`
}

// PhdOption is a doctoral programme reachable from a postgraduate degree.
type PhdOption struct {
	ID                        string            `json:"id"`
	Name                      string            `json:"name"`
	Description               string            `json:"description"`
	TypicalDurationYearsRange [2]int            `json:"typicalDurationYearsRange"`
	CommonResearchAreas       []string          `json:"commonResearchAreas"`
	CompetitiveExamsForPhD    []CompetitiveExam `json:"competitiveExamsForPhD,omitempty"`
}

// PgDegreeOption is a postgraduate degree reachable from an undergraduate degree.
type PgDegreeOption struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Description            string            `json:"description"`
	DurationYears          float64           `json:"durationYears"`
	TypicalSpecializations []string          `json:"typicalSpecializations,omitempty"`
	CompetitiveExamsForPG  []CompetitiveExam `json:"competitiveExamsForPG,omitempty"`
	PhdOptions             []PhdOption       `json:"phdOptions,omitempty"`
}

// UgDegreeOption is an undergraduate degree reachable from a grade 11-12 stream.
type UgDegreeOption struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	DurationYears         float64           `json:"durationYears"`
	TypicalSubjectsCore   []string          `json:"typicalSubjectsCore,omitempty"`
	CompetitiveExamsForUG []CompetitiveExam `json:"competitiveExamsForUG,omitempty"`
	PgOptions             []PgDegreeOption  `json:"pgOptions,omitempty"`
}

// Stream is a subject combination chosen after grade 10.
type Stream struct {
	ID                        string            `json:"id"`
	Name                      string            `json:"name"`
	Description               string            `json:"description"`
	TypicalSubjects           []string          `json:"typicalSubjects"`
	Grade12EquivalentExamName string            `json:"grade12EquivalentExamName"`
	CompetitiveExamsPost10th  []CompetitiveExam `json:"competitiveExamsPost10th,omitempty"`
	UgOptions                 []UgDegreeOption  `json:"ugOptions"`
}

// Curriculum is a school board or programme (CBSE, CISCE, IB, and so on).
type Curriculum struct {
	ID                        string   `json:"id"`
	Name                      string   `json:"name"`
	ShortName                 string   `json:"shortName,omitempty"`
	Description               string   `json:"description"`
	Grade10EquivalentExamName string   `json:"grade10EquivalentExamName"`
	StreamsAfter10th          []Stream `json:"streamsAfter10th"`
}
