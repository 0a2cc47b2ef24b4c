package textquality

import "testing"

func TestVocabularyShortInputCap(t *testing.T) {
	a := NewDefault()

	// Three non-stopword tokens, all unique: type-token ratio is perfect but
	// unreliable, so the documented cap applies.
	result := a.AnalyzeText(Input{Text: "Remarkable analytical rigor."})
	if result.VocabularyScore > 50 {
		t.Fatalf("expected short-input cap of 50, got %d", result.VocabularyScore)
	}
}

func TestVocabularyAdvancedTermsRaiseScore(t *testing.T) {
	a := NewDefault()

	advanced := "Our project demonstrates how careful planning shapes outcomes. " +
		"We optimize the ingestion pipeline, strengthen scalability, reduce latency, extend the caching layer, and modernize the infrastructure. " +
		"Clear communication keeps the schedule realistic while reviewers confirm each milestone quickly."
	plain := "Our project demonstrates how careful planning shapes outcomes. " +
		"We tune the ingestion pipeline, strengthen growth, reduce delays, extend the saving layer, and modernize the setup. " +
		"Clear communication keeps the schedule realistic while reviewers confirm each milestone quickly."

	withTerms := a.AnalyzeText(Input{Text: advanced}).VocabularyScore
	withoutTerms := a.AnalyzeText(Input{Text: plain}).VocabularyScore

	if withTerms < 70 {
		t.Fatalf("expected advanced vocabulary to reach the good threshold, got %d", withTerms)
	}
	if withoutTerms >= withTerms {
		t.Fatalf("expected common synonyms to score strictly lower: with=%d without=%d", withTerms, withoutTerms)
	}
}

func TestVocabularyBonusIsCapped(t *testing.T) {
	cfg := DefaultConfig()
	a := New(cfg)

	// Ten distinct advanced words would earn 50 uncapped; the cap keeps the
	// bonus at 20, so the score is TTR*80 + 20 = 100.
	text := "Scalable architecture leverages robust caching, modular automation, comprehensive analytics, and resilient infrastructure together."
	result := a.AnalyzeText(Input{Text: text})

	uncappedFloor := 100
	if result.VocabularyScore > uncappedFloor {
		t.Fatalf("score above 100: %d", result.VocabularyScore)
	}
	if result.VocabularyScore != 100 {
		t.Fatalf("expected fully diverse advanced text to score 100, got %d", result.VocabularyScore)
	}
}

func TestVocabularyLowDiversityScoresLower(t *testing.T) {
	a := NewDefault()

	diverse := a.AnalyzeText(Input{Text: "Careful planning shapes outcomes while reviewers confirm milestones quickly."}).VocabularyScore
	repetitive := a.AnalyzeText(Input{Text: "Planning planning planning shapes planning while planning confirms planning quickly."}).VocabularyScore

	if repetitive >= diverse {
		t.Fatalf("expected low diversity to score lower: diverse=%d repetitive=%d", diverse, repetitive)
	}
}

func TestVocabularyAllStopwordsScoresZero(t *testing.T) {
	a := NewDefault()
	result := a.AnalyzeText(Input{Text: "It was what it was."})
	if result.VocabularyScore != 0 {
		t.Fatalf("expected zero vocabulary score for stopword-only text, got %d", result.VocabularyScore)
	}
}
