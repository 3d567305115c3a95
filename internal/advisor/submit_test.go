package advisor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/ai"
	"github.com/nextstep-ai/guide-server/internal/assessment"
)

// scriptedProvider answers each completion based on the prompt so the three
// concurrent suggestion calls get distinct payloads.
type scriptedProvider struct {
	narrativeChunks []string
}

func (p *scriptedProvider) Complete(_ context.Context, req ai.CompletionRequest) (ai.CompletionResponse, error) {
	prompt := req.Messages[0].Content
	switch {
	case strings.Contains(prompt, "career paths"):
		return ai.CompletionResponse{Content: careerJSON, Model: "scripted"}, nil
	case strings.Contains(prompt, "academic streams"):
		return ai.CompletionResponse{Content: streamJSON, Model: "scripted"}, nil
	case strings.Contains(prompt, "key skills"):
		return ai.CompletionResponse{Content: skillJSON, Model: "scripted"}, nil
	}
	return ai.CompletionResponse{}, errors.New("unexpected prompt")
}

func (p *scriptedProvider) StreamComplete(_ context.Context, _ ai.CompletionRequest) (<-chan ai.StreamChunk, error) {
	ch := make(chan ai.StreamChunk, len(p.narrativeChunks)+1)
	for _, c := range p.narrativeChunks {
		ch <- ai.StreamChunk{Content: c}
	}
	ch <- ai.StreamChunk{Done: true}
	close(ch)
	return ch, nil
}

func (p *scriptedProvider) GenerateImage(_ context.Context, _ ai.ImageRequest) (ai.ImageResponse, error) {
	return ai.ImageResponse{DataURL: "data:image/png;base64,aW1n", Model: "scripted"}, nil
}

func (p *scriptedProvider) Models() []ai.ModelInfo { return nil }

func (p *scriptedProvider) HealthCheck(_ context.Context) error { return nil }

func TestSubmit_FullPipeline(t *testing.T) {
	router := ai.NewRouter()
	router.Register("scripted", &scriptedProvider{narrativeChunks: []string{"You show ", "real curiosity."}})

	records := assessment.NewMemoryRecordStore()
	svc := advisor.NewService(advisor.New(router), records)

	rec, warnings, err := svc.Submit(context.Background(), advisor.Submission{
		UserID:         "user-1",
		AssessmentName: "first run",
		Answers:        assessment.Answers{"b5_o1": 5, "b5_o2": 4, "riasec_i1": 5},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if rec.ID == "" {
		t.Error("record was not assigned an id")
	}
	if rec.Narrative != "You show real curiosity." {
		t.Errorf("Narrative = %q", rec.Narrative)
	}
	if len(rec.CareerSuggestions) != 1 || rec.CareerSuggestions[0].Name != "Data Scientist" {
		t.Errorf("CareerSuggestions = %+v", rec.CareerSuggestions)
	}
	if rec.CareerSuggestions[0].DayInTheLifeImageURL == "" {
		t.Error("career suggestion has no generated image")
	}
	if len(rec.StreamSuggestions) != 1 {
		t.Errorf("StreamSuggestions = %+v", rec.StreamSuggestions)
	}
	if len(rec.SkillRecommendations) != 1 {
		t.Errorf("SkillRecommendations = %+v", rec.SkillRecommendations)
	}
	if got := rec.Profile.BigFive[assessment.Openness]; got != 4.5 {
		t.Errorf("BigFive[Openness] = %v, want 4.5", got)
	}

	// The record must be retrievable afterwards.
	stored, err := records.GetByID(rec.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.Narrative != rec.Narrative {
		t.Error("stored record differs from returned record")
	}
}

func TestSubmit_AllCollaboratorsFail(t *testing.T) {
	mock := ai.NewMockProvider("")
	mock.Err = errors.New("model down")
	router := ai.NewRouter()
	router.Register("mock", mock)

	records := assessment.NewMemoryRecordStore()
	svc := advisor.NewService(advisor.New(router), records)

	rec, warnings, err := svc.Submit(context.Background(), advisor.Submission{
		UserID:  "user-1",
		Answers: assessment.Answers{"b5_o1": 3},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v, want nil with warnings", err)
	}
	if len(warnings) != 4 {
		t.Errorf("warnings = %v, want 4 entries", warnings)
	}
	if rec.Narrative != "" {
		t.Errorf("Narrative = %q, want empty", rec.Narrative)
	}
	if rec.CareerSuggestions == nil || len(rec.CareerSuggestions) != 0 {
		t.Errorf("CareerSuggestions = %v, want empty non-nil", rec.CareerSuggestions)
	}
	if rec.StreamSuggestions == nil || rec.SkillRecommendations == nil {
		t.Error("failed sections must still be empty slices")
	}

	// The scored profile survives even with every AI call failing.
	if got := rec.Profile.BigFive[assessment.Openness]; got != 3.0 {
		t.Errorf("BigFive[Openness] = %v, want 3.0", got)
	}
	if _, err := records.GetByID(rec.ID); err != nil {
		t.Errorf("record not persisted: %v", err)
	}
}

func TestSubmit_PersistFailureIsFatal(t *testing.T) {
	router := ai.NewRouter()
	router.Register("scripted", &scriptedProvider{narrativeChunks: []string{"ok"}})
	svc := advisor.NewService(advisor.New(router), assessment.NewMemoryRecordStore())

	_, _, err := svc.Submit(context.Background(), advisor.Submission{
		Answers: assessment.Answers{"b5_o1": 3},
	})
	if err == nil {
		t.Error("Submit() error = nil, want error when record cannot be saved")
	}
}
