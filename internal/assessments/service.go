package assessments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"placement-backend/internal/shared/metrics"
	"placement-backend/internal/shared/telemetry"
	"placement-backend/internal/textquality"
)

// Service contains business logic for assessments.
type Service struct {
	Repo     Repo
	Analyzer *textquality.Analyzer
}

// AnalyzeRequest carries one answer to score and persist.
type AnalyzeRequest struct {
	UserID         string
	AnswerText     string
	Source         string
	ElapsedSeconds int
	ExpectedPoints []string
}

// AnalyzeOutcome returns both the persisted record and the typed analysis.
type AnalyzeOutcome struct {
	Assessment Assessment
	Result     textquality.Result
	Coverage   *textquality.CoverageResult
}

// Analyze scores the answer, persists an assessment, and returns the result.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeOutcome, error) {
	if req.UserID == "" {
		return AnalyzeOutcome{}, errors.New("userID is required")
	}
	if strings.TrimSpace(req.AnswerText) == "" {
		return AnalyzeOutcome{}, errors.New("answerText is required")
	}
	source := req.Source
	if source == "" {
		source = SourceTyped
	}

	started := time.Now()
	result := s.Analyzer.AnalyzeText(textquality.Input{
		Text:           req.AnswerText,
		ElapsedSeconds: req.ElapsedSeconds,
	})
	var coverage *textquality.CoverageResult
	if len(req.ExpectedPoints) > 0 {
		c := s.Analyzer.MatchCoverage(req.AnswerText, req.ExpectedPoints)
		coverage = &c
	}
	metrics.ObserveAnalyzeDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	resultMap, err := toResultMap(result, coverage)
	if err != nil {
		metrics.IncAssessmentFailed()
		return AnalyzeOutcome{}, err
	}

	assessment := Assessment{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		AnswerText:      req.AnswerText,
		Source:          source,
		ElapsedSeconds:  req.ElapsedSeconds,
		GrammarScore:    result.GrammarScore,
		FluencyScore:    result.FluencyScore,
		VocabularyScore: result.VocabularyScore,
		Result:          resultMap,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, assessment); err != nil {
		metrics.IncAssessmentFailed()
		return AnalyzeOutcome{}, err
	}

	metrics.IncAssessmentCompleted()
	telemetry.Info("assessment.completed", map[string]any{
		"assessment_id":    assessment.ID,
		"user_id":          assessment.UserID,
		"source":           assessment.Source,
		"grammar_score":    assessment.GrammarScore,
		"fluency_score":    assessment.FluencyScore,
		"vocabulary_score": assessment.VocabularyScore,
		"issue_count":      len(result.Errors),
	})
	return AnalyzeOutcome{Assessment: assessment, Result: result, Coverage: coverage}, nil
}

// Get returns one assessment scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, assessmentID string) (Assessment, error) {
	assessment, err := s.Repo.GetByID(ctx, assessmentID)
	if err != nil {
		return Assessment{}, err
	}
	if assessment.UserID != userID {
		return Assessment{}, ErrNotFound
	}
	return assessment, nil
}

// List returns a user's assessments, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// toResultMap flattens the typed result (plus optional coverage) into the
// JSON shape stored in the result column.
func toResultMap(result textquality.Result, coverage *textquality.CoverageResult) (map[string]any, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	if coverage != nil {
		covPayload, err := json.Marshal(coverage)
		if err != nil {
			return nil, err
		}
		cov := map[string]any{}
		if err := json.Unmarshal(covPayload, &cov); err != nil {
			return nil, err
		}
		out["coverage"] = cov
	}
	return out, nil
}
