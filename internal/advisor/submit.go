package advisor

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/nextstep-ai/guide-server/internal/assessment"
)

// Submission is one completed questionnaire handed in for scoring and
// enrichment.
type Submission struct {
	UserID         string
	AssessmentName string
	Answers        assessment.Answers
}

// Service runs the full assessment pipeline: score the answers, fan out the
// generative calls, persist the record.
type Service struct {
	advisor *Advisor
	records assessment.RecordStore
}

// NewService wires the pipeline.
func NewService(advisor *Advisor, records assessment.RecordStore) *Service {
	return &Service{advisor: advisor, records: records}
}

// Submit scores the answers and runs the narrative stream plus the three
// suggestion calls concurrently. A failed generative call becomes a warning
// and an empty section, never a failed submission; only persistence errors
// are fatal.
func (s *Service) Submit(ctx context.Context, sub Submission) (assessment.Record, []string, error) {
	profile := assessment.ComputeProfile(sub.Answers)

	var (
		wg        sync.WaitGroup
		narrative string
		careers   = []assessment.CareerSuggestion{}
		streams   = []assessment.StreamSuggestion{}
		skills    = []assessment.SkillRecommendation{}

		narrativeWarn, careersWarn, streamsWarn, skillsWarn string
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		ch, err := s.advisor.Narrative(ctx, profile)
		if err != nil {
			narrativeWarn = "profile narrative unavailable"
			slog.Warn("narrative generation failed", "error", err)
			return
		}
		var b strings.Builder
		for chunk := range ch {
			if chunk.Error != nil {
				narrativeWarn = "profile narrative incomplete"
				slog.Warn("narrative stream failed", "error", chunk.Error)
				break
			}
			b.WriteString(chunk.Content)
		}
		narrative = b.String()
	}()

	go func() {
		defer wg.Done()
		got, err := s.advisor.CareerSuggestions(ctx, profile)
		if err != nil {
			careersWarn = "career suggestions unavailable"
			slog.Warn("career suggestions failed", "error", err)
			return
		}
		careers = got
	}()

	go func() {
		defer wg.Done()
		got, err := s.advisor.StreamSuggestions(ctx, profile)
		if err != nil {
			streamsWarn = "stream suggestions unavailable"
			slog.Warn("stream suggestions failed", "error", err)
			return
		}
		streams = got
	}()

	go func() {
		defer wg.Done()
		got, err := s.advisor.SkillRecommendations(ctx, profile, "")
		if err != nil {
			skillsWarn = "skill recommendations unavailable"
			slog.Warn("skill recommendations failed", "error", err)
			return
		}
		skills = got
	}()

	wg.Wait()

	warnings := []string{}
	for _, w := range []string{narrativeWarn, careersWarn, streamsWarn, skillsWarn} {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	rec, err := s.records.Save(assessment.Record{
		UserID:         sub.UserID,
		AssessmentName: sub.AssessmentName,
		Result: assessment.Result{
			Profile:              profile,
			Narrative:            narrative,
			CareerSuggestions:    careers,
			StreamSuggestions:    streams,
			SkillRecommendations: skills,
		},
	})
	if err != nil {
		return assessment.Record{}, warnings, err
	}
	return rec, warnings, nil
}

// Records exposes the underlying store for read paths.
func (s *Service) Records() assessment.RecordStore {
	return s.records
}
