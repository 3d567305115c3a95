package assessment

// ChangeDirection labels how a category score moved between two profiles.
type ChangeDirection string

const (
	ChangeIncreased ChangeDirection = "increased"
	ChangeDecreased ChangeDirection = "decreased"
	ChangeUnchanged ChangeDirection = "unchanged"
)

// ScoreDelta compares one category across two profiles. Before/After are nil
// when the category was not scored in that profile; Direction is empty
// unless both sides are present.
type ScoreDelta struct {
	Category  string          `json:"category"`
	Before    *float64        `json:"before"`
	After     *float64        `json:"after"`
	Direction ChangeDirection `json:"direction,omitempty"`
}

// PreferenceShift compares one MBTI axis across two profiles. Before/After
// are empty when the axis was not scored; Shifted is meaningful only when
// both sides are present.
type PreferenceShift struct {
	Axis    MBTIAxis `json:"axis"`
	Before  MBTIPole `json:"before,omitempty"`
	After   MBTIPole `json:"after,omitempty"`
	Shifted bool     `json:"shifted"`
}

// Comparison holds the full category-by-category diff of two profiles, in
// taxonomy display order.
type Comparison struct {
	BigFive []ScoreDelta      `json:"bigFive"`
	RIASEC  []ScoreDelta      `json:"riasec"`
	Values  []ScoreDelta      `json:"values"`
	MBTI    []PreferenceShift `json:"mbti"`
}

// Compare diffs two profiles category by category. Every taxonomy category
// appears in the result, including those unscored on one or both sides.
func Compare(before, after Profile) Comparison {
	var c Comparison

	for _, cat := range BigFiveCategories {
		c.BigFive = append(c.BigFive, scoreDelta(string(cat), before.BigFive[cat], after.BigFive[cat], hasKey(before.BigFive, cat), hasKey(after.BigFive, cat)))
	}
	for _, cat := range RIASECCategories {
		c.RIASEC = append(c.RIASEC, scoreDelta(string(cat), before.RIASEC[cat], after.RIASEC[cat], hasKey(before.RIASEC, cat), hasKey(after.RIASEC, cat)))
	}
	for _, cat := range ValueCategories {
		c.Values = append(c.Values, scoreDelta(string(cat), before.Values[cat], after.Values[cat], hasKey(before.Values, cat), hasKey(after.Values, cat)))
	}

	for _, axis := range MBTIAxes {
		shift := PreferenceShift{Axis: axis}
		b, bok := before.MBTI[axis]
		a, aok := after.MBTI[axis]
		if bok {
			shift.Before = b.DominantPole
		}
		if aok {
			shift.After = a.DominantPole
		}
		if bok && aok {
			shift.Shifted = b.DominantPole != a.DominantPole
		}
		c.MBTI = append(c.MBTI, shift)
	}

	return c
}

func scoreDelta(category string, before, after float64, hasBefore, hasAfter bool) ScoreDelta {
	d := ScoreDelta{Category: category}
	if hasBefore {
		b := before
		d.Before = &b
	}
	if hasAfter {
		a := after
		d.After = &a
	}
	if hasBefore && hasAfter {
		switch {
		case after > before:
			d.Direction = ChangeIncreased
		case after < before:
			d.Direction = ChangeDecreased
		default:
			d.Direction = ChangeUnchanged
		}
	}
	return d
}

func hasKey[K comparable](m map[K]float64, k K) bool {
	_, ok := m[k]
	return ok
}
