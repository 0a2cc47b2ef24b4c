package assessments

import (
	"context"
	"errors"
	"testing"

	"placement-backend/internal/textquality"
)

func newTestService() *Service {
	return &Service{
		Repo:     NewMemoryRepo(),
		Analyzer: textquality.NewDefault(),
	}
}

func TestServiceAnalyzePersistsAssessment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	outcome, err := svc.Analyze(ctx, AnalyzeRequest{
		UserID:         "user-1",
		AnswerText:     "I led the migration project. We finished two weeks early.",
		ElapsedSeconds: 30,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if outcome.Assessment.ID == "" {
		t.Fatalf("expected assessment ID")
	}
	if outcome.Assessment.Source != SourceTyped {
		t.Fatalf("expected default source typed, got %q", outcome.Assessment.Source)
	}
	if outcome.Assessment.GrammarScore != outcome.Result.GrammarScore {
		t.Fatalf("score mismatch: %d vs %d", outcome.Assessment.GrammarScore, outcome.Result.GrammarScore)
	}

	stored, err := svc.Repo.GetByID(ctx, outcome.Assessment.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if _, ok := stored.Result["grammarScore"]; !ok {
		t.Fatalf("expected grammarScore in stored result, got %v", stored.Result)
	}
}

func TestServiceAnalyzeIncludesCoverage(t *testing.T) {
	svc := newTestService()

	outcome, err := svc.Analyze(context.Background(), AnalyzeRequest{
		UserID:         "user-1",
		AnswerText:     "I led the migration project and documented every step.",
		ExpectedPoints: []string{"led the migration", "negotiated the budget"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if outcome.Coverage == nil {
		t.Fatalf("expected coverage result")
	}
	if len(outcome.Coverage.Covered) != 1 || len(outcome.Coverage.Missed) != 1 {
		t.Fatalf("unexpected coverage: %+v", outcome.Coverage)
	}
	if _, ok := outcome.Assessment.Result["coverage"]; !ok {
		t.Fatalf("expected coverage in stored result")
	}
}

func TestServiceAnalyzeValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Analyze(ctx, AnalyzeRequest{AnswerText: "hello"}); err == nil {
		t.Fatalf("expected error for missing userID")
	}
	if _, err := svc.Analyze(ctx, AnalyzeRequest{UserID: "user-1", AnswerText: "   "}); err == nil {
		t.Fatalf("expected error for blank answerText")
	}
}

func TestServiceGetEnforcesOwnership(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	outcome, err := svc.Analyze(ctx, AnalyzeRequest{
		UserID:     "user-1",
		AnswerText: "I designed the onboarding flow.",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if _, err := svc.Get(ctx, "user-1", outcome.Assessment.ID); err != nil {
		t.Fatalf("Get as owner: %v", err)
	}
	if _, err := svc.Get(ctx, "user-2", outcome.Assessment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}
