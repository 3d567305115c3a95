package education

import (
	"embed"
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Curriculum files in the order they are presented to users.
var curriculumFiles = []string{
	"data/cbse.yaml",
	"data/cisce.yaml",
	"data/ib.yaml",
	"data/cambridge.yaml",
	"data/nios.yaml",
}

const examsFile = "data/exams.yaml"

// The YAML files reference competitive exams by ID so each exam is
// defined exactly once. These raw types carry the unresolved form.
type rawCurriculum struct {
	ID                        string      `yaml:"id"`
	Name                      string      `yaml:"name"`
	ShortName                 string      `yaml:"short_name"`
	Description               string      `yaml:"description"`
	Grade10EquivalentExamName string      `yaml:"grade10_equivalent_exam_name"`
	StreamsAfter10th          []rawStream `yaml:"streams_after_10th"`
}

type rawStream struct {
	ID                        string   `yaml:"id"`
	Name                      string   `yaml:"name"`
	Description               string   `yaml:"description"`
	TypicalSubjects           []string `yaml:"typical_subjects"`
	Grade12EquivalentExamName string   `yaml:"grade12_equivalent_exam_name"`
	CompetitiveExamsPost10th  []string `yaml:"competitive_exams_post_10th"`
	UgOptions                 []rawUg  `yaml:"ug_options"`
}

type rawUg struct {
	ID                    string   `yaml:"id"`
	Name                  string   `yaml:"name"`
	Description           string   `yaml:"description"`
	DurationYears         float64  `yaml:"duration_years"`
	TypicalSubjectsCore   []string `yaml:"typical_subjects_core"`
	CompetitiveExamsForUG []string `yaml:"competitive_exams_for_ug"`
	PgOptions             []rawPg  `yaml:"pg_options"`
}

type rawPg struct {
	ID                     string   `yaml:"id"`
	Name                   string   `yaml:"name"`
	Description            string   `yaml:"description"`
	DurationYears          float64  `yaml:"duration_years"`
	TypicalSpecializations []string `yaml:"typical_specializations"`
	CompetitiveExamsForPG  []string `yaml:"competitive_exams_for_pg"`
	PhdOptions             []rawPhd `yaml:"phd_options"`
}

type rawPhd struct {
	ID                        string   `yaml:"id"`
	Name                      string   `yaml:"name"`
	Description               string   `yaml:"description"`
	TypicalDurationYearsRange [2]int   `yaml:"typical_duration_years_range"`
	CommonResearchAreas       []string `yaml:"common_research_areas"`
	CompetitiveExamsForPhD    []string `yaml:"competitive_exams_for_phd"`
}

// Loader holds the education system loaded from the embedded YAML data.
type Loader struct {
	exams     map[string]CompetitiveExam
	curricula []Curriculum
}

// NewLoader parses the embedded education data and resolves exam references.
func NewLoader() (*Loader, error) {
	l := &Loader{exams: make(map[string]CompetitiveExam)}

	if err := l.loadExams(); err != nil {
		return nil, fmt.Errorf("loading exams: %w", err)
	}
	for _, path := range curriculumFiles {
		if err := l.loadCurriculum(path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	slog.Info("education system loaded", "curricula", len(l.curricula), "exams", len(l.exams))
	return l, nil
}

// Curricula returns all curricula in presentation order.
func (l *Loader) Curricula() []Curriculum {
	out := make([]Curriculum, len(l.curricula))
	copy(out, l.curricula)
	return out
}

// Curriculum returns a curriculum by ID.
func (l *Loader) Curriculum(id string) (Curriculum, bool) {
	for _, c := range l.curricula {
		if c.ID == id {
			return c, true
		}
	}
	return Curriculum{}, false
}

// Exam returns a competitive exam definition by ID.
func (l *Loader) Exam(id string) (CompetitiveExam, bool) {
	e, ok := l.exams[id]
	return e, ok
}

// Exams returns all competitive exam definitions sorted by ID.
func (l *Loader) Exams() []CompetitiveExam {
	out := make([]CompetitiveExam, 0, len(l.exams))
	for _, e := range l.exams {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Loader) loadExams() error {
	data, err := dataFS.ReadFile(examsFile)
	if err != nil {
		return err
	}

	var file struct {
		Exams []CompetitiveExam `yaml:"exams"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	for _, e := range file.Exams {
		if e.ID == "" {
			return fmt.Errorf("exam %q has no id", e.Name)
		}
		if _, dup := l.exams[e.ID]; dup {
			return fmt.Errorf("duplicate exam id %q", e.ID)
		}
		l.exams[e.ID] = e
	}
	return nil
}

func (l *Loader) loadCurriculum(path string) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return err
	}

	var raw rawCurriculum
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == "" {
		return fmt.Errorf("curriculum has no id")
	}

	c := Curriculum{
		ID:                        raw.ID,
		Name:                      raw.Name,
		ShortName:                 raw.ShortName,
		Description:               raw.Description,
		Grade10EquivalentExamName: raw.Grade10EquivalentExamName,
	}
	for _, rs := range raw.StreamsAfter10th {
		s, err := l.resolveStream(rs)
		if err != nil {
			return fmt.Errorf("curriculum %s: %w", raw.ID, err)
		}
		c.StreamsAfter10th = append(c.StreamsAfter10th, s)
	}

	l.curricula = append(l.curricula, c)
	return nil
}

func (l *Loader) resolveStream(raw rawStream) (Stream, error) {
	exams, err := l.resolveExams(raw.CompetitiveExamsPost10th)
	if err != nil {
		return Stream{}, fmt.Errorf("stream %s: %w", raw.ID, err)
	}

	s := Stream{
		ID:                        raw.ID,
		Name:                      raw.Name,
		Description:               raw.Description,
		TypicalSubjects:           raw.TypicalSubjects,
		Grade12EquivalentExamName: raw.Grade12EquivalentExamName,
		CompetitiveExamsPost10th:  exams,
	}
	for _, ru := range raw.UgOptions {
		u, err := l.resolveUg(ru)
		if err != nil {
			return Stream{}, fmt.Errorf("stream %s: %w", raw.ID, err)
		}
		s.UgOptions = append(s.UgOptions, u)
	}
	return s, nil
}

func (l *Loader) resolveUg(raw rawUg) (UgDegreeOption, error) {
	exams, err := l.resolveExams(raw.CompetitiveExamsForUG)
	if err != nil {
		return UgDegreeOption{}, fmt.Errorf("ug option %s: %w", raw.ID, err)
	}

	u := UgDegreeOption{
		ID:                    raw.ID,
		Name:                  raw.Name,
		Description:           raw.Description,
		DurationYears:         raw.DurationYears,
		TypicalSubjectsCore:   raw.TypicalSubjectsCore,
		CompetitiveExamsForUG: exams,
	}
	for _, rp := range raw.PgOptions {
		p, err := l.resolvePg(rp)
		if err != nil {
			return UgDegreeOption{}, fmt.Errorf("ug option %s: %w", raw.ID, err)
		}
		u.PgOptions = append(u.PgOptions, p)
	}
	return u, nil
}

func (l *Loader) resolvePg(raw rawPg) (PgDegreeOption, error) {
	exams, err := l.resolveExams(raw.CompetitiveExamsForPG)
	if err != nil {
		return PgDegreeOption{}, fmt.Errorf("pg option %s: %w", raw.ID, err)
	}

	p := PgDegreeOption{
		ID:                     raw.ID,
		Name:                   raw.Name,
		Description:            raw.Description,
		DurationYears:          raw.DurationYears,
		TypicalSpecializations: raw.TypicalSpecializations,
		CompetitiveExamsForPG:  exams,
	}
	for _, rd := range raw.PhdOptions {
		d, err := l.resolvePhd(rd)
		if err != nil {
			return PgDegreeOption{}, fmt.Errorf("pg option %s: %w", raw.ID, err)
		}
		p.PhdOptions = append(p.PhdOptions, d)
	}
	return p, nil
}

func (l *Loader) resolvePhd(raw rawPhd) (PhdOption, error) {
	exams, err := l.resolveExams(raw.CompetitiveExamsForPhD)
	if err != nil {
		return PhdOption{}, fmt.Errorf("phd option %s: %w", raw.ID, err)
	}

	return PhdOption{
		ID:                        raw.ID,
		Name:                      raw.Name,
		Description:               raw.Description,
		TypicalDurationYearsRange: raw.TypicalDurationYearsRange,
		CommonResearchAreas:       raw.CommonResearchAreas,
		CompetitiveExamsForPhD:    exams,
	}, nil
}

func (l *Loader) resolveExams(ids []string) ([]CompetitiveExam, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]CompetitiveExam, 0, len(ids))
	for _, id := range ids {
		e, ok := l.exams[id]
		if !ok {
			return nil, fmt.Errorf("unknown exam %q", id)
		}
		out = append(out, e)
	}
	return out, nil
}
