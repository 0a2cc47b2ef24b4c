package textquality

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeTextDeterminism(t *testing.T) {
	a := NewDefault()
	input := Input{
		Text:           "He go to the market yesterday. I think, um, this is kinda fine and the process improved.",
		ElapsedSeconds: 12,
	}

	first := a.AnalyzeText(input)
	second := a.AnalyzeText(input)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical input:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeTextEmptyInputFloor(t *testing.T) {
	a := NewDefault()
	cases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace_only", text: "   \t\n  "},
		{name: "punctuation_only", text: "... !!! ??"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := a.AnalyzeText(Input{Text: tc.text, ElapsedSeconds: 30})
			if result.GrammarScore != 0 || result.FluencyScore != 0 || result.VocabularyScore != 0 {
				t.Fatalf("expected floor scores, got %d/%d/%d",
					result.GrammarScore, result.FluencyScore, result.VocabularyScore)
			}
			if len(result.Errors) != 0 {
				t.Fatalf("expected no errors on empty input, got %d", len(result.Errors))
			}
			if result.WordsPerMinute != nil || result.Pace != "" {
				t.Fatalf("expected pace fields omitted without any words, got %v %q",
					result.WordsPerMinute, result.Pace)
			}
			if result.Feedback == "" {
				t.Fatalf("expected a feedback string even for empty input")
			}
		})
	}
}

func TestAnalyzeTextPerfectInputCeiling(t *testing.T) {
	a := NewDefault()
	text := "Our team designed a reliable deployment pipeline, and the release process became noticeably smoother. " +
		"Every engineer now reviews changes carefully before merging them. " +
		"We also documented the rollout steps so new colleagues can contribute quickly."

	result := a.AnalyzeText(Input{Text: text})
	if len(result.Errors) != 0 {
		t.Fatalf("expected no grammar issues, got %+v", result.Errors)
	}
	if result.GrammarScore != 100 {
		t.Fatalf("expected grammar score 100, got %d", result.GrammarScore)
	}
}

func TestAnalyzeTextSubjectVerbScenario(t *testing.T) {
	a := NewDefault()
	result := a.AnalyzeText(Input{Text: "He go to the market yesterday."})

	if result.GrammarScore >= 100 {
		t.Fatalf("expected grammar score below 100, got %d", result.GrammarScore)
	}
	found := false
	for _, issue := range result.Errors {
		if issue.Category == CategorySubjectVerbAgreement && strings.Contains(issue.Message, `"go"`) {
			found = true
			if issue.Severity != SeverityMajor {
				t.Fatalf("expected major severity, got %q", issue.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected a subject-verb-agreement issue referencing \"go\", got %+v", result.Errors)
	}
}

func TestAnalyzeTextFillerScenario(t *testing.T) {
	a := NewDefault()
	result := a.AnalyzeText(Input{
		Text:           "I think, um, that, uh, this is like a good solution, you know.",
		ElapsedSeconds: 10,
	})

	if result.FluencyScore >= 70 {
		t.Fatalf("expected fluency below 70 from filler density, got %d", result.FluencyScore)
	}
	if result.WordsPerMinute == nil {
		t.Fatalf("expected words per minute with elapsed seconds given")
	}
	if *result.WordsPerMinute != 78.0 {
		t.Fatalf("expected 78.0 WPM for 13 words over 10s, got %v", *result.WordsPerMinute)
	}
	if result.Pace != PaceTooSlow {
		t.Fatalf("expected too-slow pace, got %q", result.Pace)
	}
}

func TestAnalyzeTextFillerMonotonicity(t *testing.T) {
	a := NewDefault()
	base := "I believe this approach will succeed"

	prev := a.AnalyzeText(Input{Text: base}).FluencyScore
	text := base
	for i := 0; i < 6; i++ {
		text += " um"
		score := a.AnalyzeText(Input{Text: text}).FluencyScore
		if score > prev {
			t.Fatalf("fluency increased from %d to %d after appending filler %d", prev, score, i+1)
		}
		prev = score
	}
}

func TestAnalyzeTextFillerMonotonicityAtSaturation(t *testing.T) {
	a := NewDefault()

	// Filler density here is already past the point where the filler
	// sub-score bottoms out at zero; appending more fillers must still
	// never raise the combined score through the other signals.
	base := "um um um um hello. um um um um hello"

	prev := a.AnalyzeText(Input{Text: base}).FluencyScore
	text := base
	for i := 0; i < 4; i++ {
		text += " um"
		score := a.AnalyzeText(Input{Text: text}).FluencyScore
		if score > prev {
			t.Fatalf("fluency increased from %d to %d after appending filler %d", prev, score, i+1)
		}
		prev = score
	}
}

func TestAnalyzeTextScoreBounds(t *testing.T) {
	a := NewDefault()
	inputs := []string{
		"he go she go it go he don't she don't it like he like we goes they goes",
		strings.Repeat("word ", 500),
		strings.Repeat("He go to market. ", 40),
		"これは日本語のテキストです。完全に範囲外の入力。",
		"a, b! c? d. e",
		"gonna wanna gotta kinda sorta dunno cuz",
	}

	for i, text := range inputs {
		result := a.AnalyzeText(Input{Text: text, ElapsedSeconds: 7})
		for name, score := range map[string]int{
			"grammar":    result.GrammarScore,
			"fluency":    result.FluencyScore,
			"vocabulary": result.VocabularyScore,
		} {
			if score < 0 || score > 100 {
				t.Fatalf("input %d: %s score %d out of [0,100]", i, name, score)
			}
		}
		if result.WordsPerMinute != nil && *result.WordsPerMinute < 0 {
			t.Fatalf("input %d: negative WPM %v", i, *result.WordsPerMinute)
		}
	}
}

func TestAnalyzeTextPaceOmittedWithoutElapsed(t *testing.T) {
	a := NewDefault()
	for _, elapsed := range []int{0, -5} {
		result := a.AnalyzeText(Input{Text: "This sentence is long enough to analyze.", ElapsedSeconds: elapsed})
		if result.WordsPerMinute != nil || result.Pace != "" {
			t.Fatalf("elapsed=%d: expected pace fields omitted, got %v %q", elapsed, result.WordsPerMinute, result.Pace)
		}
	}
}

func TestAnalyzeTextErrorsDriveGrammarScore(t *testing.T) {
	a := NewDefault()
	result := a.AnalyzeText(Input{Text: "He go to the market yesterday."})

	if len(result.Errors) == 0 {
		t.Fatalf("expected at least one error")
	}
	expected := 100
	for _, issue := range result.Errors {
		switch issue.Severity {
		case SeverityMajor:
			expected -= 15
		case SeverityModerate:
			expected -= 10
		case SeverityMinor:
			expected -= 5
		}
	}
	if expected < 0 {
		expected = 0
	}
	if result.GrammarScore != expected {
		t.Fatalf("grammar score %d does not match linear penalty %d", result.GrammarScore, expected)
	}
}

func TestAnalyzeTextFeedbackTemplate(t *testing.T) {
	a := NewDefault()
	cases := []struct {
		name     string
		input    Input
		contains string
	}{
		{
			name:     "slow_pace_mentioned",
			input:    Input{Text: "I think, um, that, uh, this is like a good solution, you know.", ElapsedSeconds: 10},
			contains: "pace was quite slow",
		},
		{
			name:     "clean_answer_praised",
			input:    Input{Text: "Our colleagues reviewed the proposal carefully and shared thoughtful comments afterwards."},
			contains: "good shape",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := a.AnalyzeText(tc.input)
			if !strings.Contains(result.Feedback, tc.contains) {
				t.Fatalf("expected feedback to contain %q, got %q", tc.contains, result.Feedback)
			}
		})
	}
}
