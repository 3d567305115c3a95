package assessment_test

import (
	"testing"

	"github.com/nextstep-ai/guide-server/internal/assessment"
)

func TestCompare_Directions(t *testing.T) {
	before := assessment.ComputeProfile(assessment.Answers{
		"b5_o1": 2, "b5_o2": 2,
		"b5_c1": 4, "b5_c2": 4,
		"b5_e1": 3, "b5_e2": 3,
	})
	after := assessment.ComputeProfile(assessment.Answers{
		"b5_o1": 5, "b5_o2": 5,
		"b5_c1": 1, "b5_c2": 1,
		"b5_e1": 3, "b5_e2": 3,
	})

	c := assessment.Compare(before, after)

	byCategory := map[string]assessment.ScoreDelta{}
	for _, d := range c.BigFive {
		byCategory[d.Category] = d
	}

	if got := byCategory["Openness"].Direction; got != assessment.ChangeIncreased {
		t.Errorf("Openness direction = %q, want increased", got)
	}
	if got := byCategory["Conscientiousness"].Direction; got != assessment.ChangeDecreased {
		t.Errorf("Conscientiousness direction = %q, want decreased", got)
	}
	if got := byCategory["Extraversion"].Direction; got != assessment.ChangeUnchanged {
		t.Errorf("Extraversion direction = %q, want unchanged", got)
	}
}

func TestCompare_MissingCategory(t *testing.T) {
	before := assessment.ComputeProfile(assessment.Answers{"b5_o1": 4})
	after := assessment.ComputeProfile(assessment.Answers{})

	c := assessment.Compare(before, after)

	var openness assessment.ScoreDelta
	for _, d := range c.BigFive {
		if d.Category == "Openness" {
			openness = d
		}
	}
	if openness.Before == nil || *openness.Before != 4.0 {
		t.Errorf("Before = %v, want 4.0", openness.Before)
	}
	if openness.After != nil {
		t.Errorf("After = %v, want nil", *openness.After)
	}
	if openness.Direction != "" {
		t.Errorf("Direction = %q, want empty when one side is unscored", openness.Direction)
	}
}

func TestCompare_AllCategoriesPresent(t *testing.T) {
	c := assessment.Compare(assessment.ComputeProfile(nil), assessment.ComputeProfile(nil))

	if len(c.BigFive) != len(assessment.BigFiveCategories) {
		t.Errorf("len(BigFive) = %d, want %d", len(c.BigFive), len(assessment.BigFiveCategories))
	}
	if len(c.RIASEC) != len(assessment.RIASECCategories) {
		t.Errorf("len(RIASEC) = %d, want %d", len(c.RIASEC), len(assessment.RIASECCategories))
	}
	if len(c.Values) != len(assessment.ValueCategories) {
		t.Errorf("len(Values) = %d, want %d", len(c.Values), len(assessment.ValueCategories))
	}
	if len(c.MBTI) != len(assessment.MBTIAxes) {
		t.Errorf("len(MBTI) = %d, want %d", len(c.MBTI), len(assessment.MBTIAxes))
	}
}

func TestCompare_PreferenceShift(t *testing.T) {
	before := assessment.ComputeProfile(assessment.Answers{"mbti_ei_e": 5, "mbti_ei_i": 1})
	after := assessment.ComputeProfile(assessment.Answers{"mbti_ei_e": 1, "mbti_ei_i": 5})
	same := assessment.ComputeProfile(assessment.Answers{"mbti_ei_e": 4, "mbti_ei_i": 2})

	c := assessment.Compare(before, after)
	if got := c.MBTI[0]; !got.Shifted || got.Before != assessment.PoleExtraversion || got.After != assessment.PoleIntroversion {
		t.Errorf("E/I shift = %+v, want E -> I shifted", got)
	}

	c = assessment.Compare(before, same)
	if got := c.MBTI[0]; got.Shifted {
		t.Errorf("E/I shift = %+v, want same preference", got)
	}
}
