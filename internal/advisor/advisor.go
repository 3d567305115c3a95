package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nextstep-ai/guide-server/internal/ai"
	"github.com/nextstep-ai/guide-server/internal/assessment"
)

// Advisor generates profile narratives, suggestions, and deep dives through
// the AI router. Suggestion methods degrade to an empty list when the model
// returns something unusable; only transport failures surface as errors.
type Advisor struct {
	router *ai.Router
}

// New creates an Advisor on top of a provider router.
func New(router *ai.Router) *Advisor {
	return &Advisor{router: router}
}

// Narrative streams the 2-3 paragraph profile overview.
func (a *Advisor) Narrative(ctx context.Context, profile assessment.Profile) (<-chan ai.StreamChunk, error) {
	if profile.Summary == "" {
		return nil, fmt.Errorf("profile summary is empty")
	}
	return a.router.StreamComplete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: "user", Content: narrativePrompt(profile.Summary)}},
		Temperature: 0.7,
		Task:        ai.TaskNarrative,
	})
}

// CareerSuggestions asks for three career paths and enriches each with a
// generated "day in the life" image. Image failures leave the URL empty.
func (a *Advisor) CareerSuggestions(ctx context.Context, profile assessment.Profile) ([]assessment.CareerSuggestion, error) {
	if profile.Summary == "" {
		return nil, fmt.Errorf("profile summary is empty")
	}
	resp, err := a.router.Complete(ctx, ai.CompletionRequest{
		Messages:         []ai.Message{{Role: "user", Content: careerSuggestionsPrompt(profile.Summary)}},
		Temperature:      0.5,
		Task:             ai.TaskSuggestion,
		ResponseMIMEType: "application/json",
		ResponseSchema:   careerResponseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("career suggestions: %w", err)
	}

	suggestions := []assessment.CareerSuggestion{}
	if err := decodeResponse(resp.Content, careerValidator, &suggestions); err != nil {
		slog.Warn("discarding malformed career suggestions", "error", err)
		return []assessment.CareerSuggestion{}, nil
	}

	for i := range suggestions {
		img, err := a.router.GenerateImage(ctx, ai.ImageRequest{
			Prompt:      careerImagePrompt(suggestions[i].Name),
			AspectRatio: "1:1",
		})
		if err != nil {
			slog.Warn("career image generation failed", "career", suggestions[i].Name, "error", err)
			continue
		}
		suggestions[i].DayInTheLifeImageURL = img.DataURL
	}
	return suggestions, nil
}

// StreamSuggestions asks for 2-3 senior-secondary academic streams.
func (a *Advisor) StreamSuggestions(ctx context.Context, profile assessment.Profile) ([]assessment.StreamSuggestion, error) {
	if profile.Summary == "" {
		return nil, fmt.Errorf("profile summary is empty")
	}
	resp, err := a.router.Complete(ctx, ai.CompletionRequest{
		Messages:         []ai.Message{{Role: "user", Content: streamSuggestionsPrompt(profile.Summary)}},
		Temperature:      0.5,
		Task:             ai.TaskSuggestion,
		ResponseMIMEType: "application/json",
		ResponseSchema:   streamResponseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("stream suggestions: %w", err)
	}

	suggestions := []assessment.StreamSuggestion{}
	if err := decodeResponse(resp.Content, streamValidator, &suggestions); err != nil {
		slog.Warn("discarding malformed stream suggestions", "error", err)
		return []assessment.StreamSuggestion{}, nil
	}
	return suggestions, nil
}

// SkillRecommendations asks for 2-3 skills worth developing, optionally
// focused on a career of interest.
func (a *Advisor) SkillRecommendations(ctx context.Context, profile assessment.Profile, careerContext string) ([]assessment.SkillRecommendation, error) {
	if profile.Summary == "" {
		return nil, fmt.Errorf("profile summary is empty")
	}
	resp, err := a.router.Complete(ctx, ai.CompletionRequest{
		Messages:         []ai.Message{{Role: "user", Content: skillRecommendationsPrompt(profile.Summary, careerContext)}},
		Temperature:      0.6,
		Task:             ai.TaskSuggestion,
		ResponseMIMEType: "application/json",
		ResponseSchema:   skillResponseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("skill recommendations: %w", err)
	}

	recommendations := []assessment.SkillRecommendation{}
	if err := decodeResponse(resp.Content, skillValidator, &recommendations); err != nil {
		slog.Warn("discarding malformed skill recommendations", "error", err)
		return []assessment.SkillRecommendation{}, nil
	}
	return recommendations, nil
}

// DeepDive generates a labor-market briefing for one ISCO occupation.
func (a *Advisor) DeepDive(ctx context.Context, title, code string) (OccupationDeepDive, error) {
	resp, err := a.router.Complete(ctx, ai.CompletionRequest{
		Messages:         []ai.Message{{Role: "user", Content: deepDivePrompt(title, code)}},
		Temperature:      0.4,
		Task:             ai.TaskDeepDive,
		ResponseMIMEType: "application/json",
		ResponseSchema:   deepDiveResponseSchema,
	})
	if err != nil {
		return OccupationDeepDive{}, fmt.Errorf("occupation deep dive: %w", err)
	}

	var dive OccupationDeepDive
	if err := decodeResponse(resp.Content, deepDiveValidator, &dive); err != nil {
		return OccupationDeepDive{}, fmt.Errorf("occupation deep dive: %w", err)
	}
	return dive, nil
}
