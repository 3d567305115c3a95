package assessment

import "fmt"

// Phase is a step in the guided assessment flow. The API tracks each
// user's current phase and rejects transitions outside the edge set, so a
// client cannot jump, say, straight from the questionnaire into results.
type Phase string

const (
	PhaseWelcome             Phase = "welcome"
	PhaseLogin               Phase = "login"
	PhaseDashboard           Phase = "dashboard"
	PhaseQuestionnaire       Phase = "questionnaire"
	PhaseLoadingResults      Phase = "loading_results"
	PhaseResults             Phase = "results"
	PhaseCompareAssessments  Phase = "compare_assessments"
	PhaseOccupationsExplorer Phase = "occupations_explorer"
	PhaseEducationExplorer   Phase = "education_explorer"
)

// phaseTransitions is the allowed edge set. Results re-enters itself when a
// different stored record is opened; every other revisit passes through
// Dashboard.
var phaseTransitions = map[Phase][]Phase{
	PhaseWelcome:       {PhaseLogin},
	PhaseLogin:         {PhaseDashboard},
	PhaseDashboard:     {PhaseQuestionnaire, PhaseCompareAssessments, PhaseOccupationsExplorer, PhaseEducationExplorer, PhaseResults, PhaseLogin},
	PhaseQuestionnaire: {PhaseLoadingResults, PhaseDashboard},
	PhaseLoadingResults: {
		PhaseResults,
	},
	PhaseResults:             {PhaseResults, PhaseDashboard},
	PhaseCompareAssessments:  {PhaseDashboard},
	PhaseOccupationsExplorer: {PhaseDashboard},
	PhaseEducationExplorer:   {PhaseDashboard},
}

// CanTransition reports whether moving from one phase to another is allowed.
func CanTransition(from, to Phase) bool {
	for _, next := range phaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a phase change.
func Transition(from, to Phase) (Phase, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("invalid phase transition %s -> %s", from, to)
	}
	return to, nil
}
