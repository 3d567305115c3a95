package assessment

import (
	"fmt"
	"strings"
)

// Answers maps a question id to its Likert rating (1..5). Unanswered
// questions are simply absent.
type Answers map[string]int

// MBTIPreference is the resolved preference on one axis. Ties go to the
// axis's first-listed pole.
type MBTIPreference struct {
	DominantPole   MBTIPole `json:"dominantPole"`
	ScoreDominant  float64  `json:"scoreDominant"`
	ScoreRecessive float64  `json:"scoreRecessive"`
}

// Profile is the scored psychometric profile. Categories with no answered
// questions are absent from their map; the maps themselves are always
// non-nil.
type Profile struct {
	BigFive map[BigFiveCategory]float64 `json:"bigFive"`
	MBTI    map[MBTIAxis]MBTIPreference `json:"mbti"`
	RIASEC  map[RIASECCategory]float64  `json:"riasec"`
	Values  map[ValueCategory]float64   `json:"values"`
	Summary string                      `json:"summary,omitempty"`
}

// ComputeProfile scores a (possibly partial) answer set. Each category score
// is the arithmetic mean of its answered questions; MBTI axes resolve to the
// pole with the higher mean, first-listed pole winning ties.
func ComputeProfile(answers Answers) Profile {
	p := Profile{
		BigFive: make(map[BigFiveCategory]float64),
		MBTI:    make(map[MBTIAxis]MBTIPreference),
		RIASEC:  make(map[RIASECCategory]float64),
		Values:  make(map[ValueCategory]float64),
	}

	for _, cat := range BigFiveCategories {
		if avg, ok := categoryMean(answers, FrameworkBigFive, string(cat)); ok {
			p.BigFive[cat] = avg
		}
	}

	for _, axis := range MBTIAxes {
		first, second := axis.Poles()
		s1, n1 := poleMean(answers, axis, first)
		s2, n2 := poleMean(answers, axis, second)
		if n1 == 0 && n2 == 0 {
			continue
		}
		pref := MBTIPreference{DominantPole: first, ScoreDominant: s1, ScoreRecessive: s2}
		if s2 > s1 {
			pref = MBTIPreference{DominantPole: second, ScoreDominant: s2, ScoreRecessive: s1}
		}
		p.MBTI[axis] = pref
	}

	for _, cat := range RIASECCategories {
		if avg, ok := categoryMean(answers, FrameworkRIASEC, string(cat)); ok {
			p.RIASEC[cat] = avg
		}
	}

	for _, cat := range ValueCategories {
		if avg, ok := categoryMean(answers, FrameworkValues, string(cat)); ok {
			p.Values[cat] = avg
		}
	}

	p.Summary = summarize(p)
	return p
}

func categoryMean(answers Answers, fw Framework, category string) (float64, bool) {
	var sum, n int
	for _, q := range questionBank {
		if q.Framework != fw || q.Category != category {
			continue
		}
		if v, ok := answers[q.ID]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// poleMean averages the answered questions for one MBTI pole. A pole with no
// answers scores zero, matching the axis resolution rule.
func poleMean(answers Answers, axis MBTIAxis, pole MBTIPole) (float64, int) {
	var sum, n int
	for _, q := range questionBank {
		if q.Framework != FrameworkMBTI || q.Category != string(axis) || q.Pole != pole {
			continue
		}
		if v, ok := answers[q.ID]; ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return float64(sum) / float64(n), n
}

// summarize renders the deterministic plain-text summary used to seed AI
// prompts. The layout is a stable contract; stored records and prompt
// templates both depend on it.
func summarize(p Profile) string {
	var b strings.Builder
	b.WriteString("Psychometric Profile Summary:\n")

	if len(p.BigFive) > 0 {
		parts := make([]string, 0, len(p.BigFive))
		for _, cat := range BigFiveCategories {
			if score, ok := p.BigFive[cat]; ok {
				parts = append(parts, fmt.Sprintf("%s (%.1f/5)", cat, score))
			}
		}
		b.WriteString("Big Five Traits: " + strings.Join(parts, ", ") + ".\n")
	}

	if len(p.MBTI) > 0 {
		parts := make([]string, 0, len(p.MBTI))
		for _, axis := range MBTIAxes {
			if pref, ok := p.MBTI[axis]; ok {
				parts = append(parts, fmt.Sprintf("%s (Prefers %s: %.1f vs %.1f)", axis, pref.DominantPole, pref.ScoreDominant, pref.ScoreRecessive))
			}
		}
		b.WriteString("MBTI-Style Preferences: " + strings.Join(parts, ", ") + ".\n")
	}

	if len(p.RIASEC) > 0 {
		parts := make([]string, 0, len(p.RIASEC))
		for _, cat := range RIASECCategories {
			if score, ok := p.RIASEC[cat]; ok {
				parts = append(parts, fmt.Sprintf("%s (%.1f/5)", cat, score))
			}
		}
		b.WriteString("RIASEC Interests: " + strings.Join(parts, ", ") + ".\n")
	}

	if len(p.Values) > 0 {
		parts := make([]string, 0, len(p.Values))
		for _, cat := range ValueCategories {
			if score, ok := p.Values[cat]; ok {
				parts = append(parts, fmt.Sprintf("%s (%.1f/5)", cat, score))
			}
		}
		b.WriteString("Work Values: " + strings.Join(parts, ", ") + ".\n")
	}

	return strings.TrimSpace(b.String())
}
