// Package assessment holds the psychometric question bank, the scoring
// engine that turns Likert answers into a multi-framework profile, and the
// stored assessment record lifecycle.
package assessment

// Framework identifies one of the four psychometric frameworks the
// questionnaire draws from.
type Framework string

const (
	FrameworkBigFive Framework = "BigFive"
	FrameworkMBTI    Framework = "MBTI"
	FrameworkRIASEC  Framework = "RIASEC"
	FrameworkValues  Framework = "Values"
)

// BigFiveCategory is one of the five OCEAN traits.
type BigFiveCategory string

const (
	Openness          BigFiveCategory = "Openness"
	Conscientiousness BigFiveCategory = "Conscientiousness"
	Extraversion      BigFiveCategory = "Extraversion"
	Agreeableness     BigFiveCategory = "Agreeableness"
	Neuroticism       BigFiveCategory = "Neuroticism"
)

// BigFiveCategories lists the traits in display order.
var BigFiveCategories = []BigFiveCategory{
	Openness,
	Conscientiousness,
	Extraversion,
	Agreeableness,
	Neuroticism,
}

// MBTIAxis is one of the four MBTI-style preference dimensions.
type MBTIAxis string

const (
	AxisEI MBTIAxis = "E/I"
	AxisSN MBTIAxis = "S/N"
	AxisTF MBTIAxis = "T/F"
	AxisJP MBTIAxis = "J/P"
)

// MBTIAxes lists the axes in display order.
var MBTIAxes = []MBTIAxis{AxisEI, AxisSN, AxisTF, AxisJP}

// MBTIPole is one end of an MBTI axis.
type MBTIPole string

const (
	PoleExtraversion MBTIPole = "E"
	PoleIntroversion MBTIPole = "I"
	PoleSensing      MBTIPole = "S"
	PoleIntuition    MBTIPole = "N"
	PoleThinking     MBTIPole = "T"
	PoleFeeling      MBTIPole = "F"
	PoleJudging      MBTIPole = "J"
	PolePerceiving   MBTIPole = "P"
)

// Poles returns the two poles of an axis. The first pole wins ties when
// scores are equal.
func (a MBTIAxis) Poles() (MBTIPole, MBTIPole) {
	switch a {
	case AxisEI:
		return PoleExtraversion, PoleIntroversion
	case AxisSN:
		return PoleSensing, PoleIntuition
	case AxisTF:
		return PoleThinking, PoleFeeling
	case AxisJP:
		return PoleJudging, PolePerceiving
	}
	return "", ""
}

// RIASECCategory is one of the six Holland interest codes.
type RIASECCategory string

const (
	Realistic     RIASECCategory = "Realistic"
	Investigative RIASECCategory = "Investigative"
	Artistic      RIASECCategory = "Artistic"
	Social        RIASECCategory = "Social"
	Enterprising  RIASECCategory = "Enterprising"
	Conventional  RIASECCategory = "Conventional"
)

// RIASECCategories lists the interest codes in display order.
var RIASECCategories = []RIASECCategory{
	Realistic,
	Investigative,
	Artistic,
	Social,
	Enterprising,
	Conventional,
}

// ValueCategory is one of the five work-values dimensions.
type ValueCategory string

const (
	Autonomy        ValueCategory = "Autonomy"
	Teamwork        ValueCategory = "Teamwork"
	Stability       ValueCategory = "Stability"
	Innovation      ValueCategory = "Innovation"
	WorkLifeBalance ValueCategory = "Work-Life Balance"
)

// ValueCategories lists the work values in display order.
var ValueCategories = []ValueCategory{
	Autonomy,
	Teamwork,
	Stability,
	Innovation,
	WorkLifeBalance,
}
