package textquality

import (
	"math"
	"strings"
)

// Analyzer evaluates free-form answer text against the configured heuristics.
// It holds only immutable configuration, so a single instance is safe for
// concurrent use and every call is pure: identical input yields an identical
// Result.
type Analyzer struct {
	cfg Config

	stopwords    map[string]bool
	fillers      map[string]bool
	phrases      [][]string
	advanced     map[string]bool
	pastVerbs    map[string]bool
	presentVerbs map[string]bool
	articlePreps map[string]bool
	articleNouns map[string]bool
	thirdForms   map[string]bool
}

// New constructs an Analyzer from the given configuration. The configuration
// is treated as immutable; callers must not modify it after construction.
func New(cfg Config) *Analyzer {
	a := &Analyzer{
		cfg:          cfg,
		stopwords:    toSet(cfg.Stopwords),
		fillers:      toSet(cfg.FillerWords),
		advanced:     toSet(cfg.AdvancedWords),
		pastVerbs:    toSet(cfg.PastVerbs),
		presentVerbs: toSet(cfg.PresentMarkers),
		articlePreps: toSet(cfg.ArticlePreps),
		articleNouns: toSet(cfg.ArticleNouns),
		thirdForms:   make(map[string]bool, len(cfg.ThirdPersonForms)),
	}
	for _, phrase := range cfg.FillerPhrases {
		words := strings.Fields(strings.ToLower(phrase))
		if len(words) > 0 {
			a.phrases = append(a.phrases, words)
		}
	}
	for _, third := range cfg.ThirdPersonForms {
		a.thirdForms[third] = true
	}
	return a
}

// NewDefault constructs an Analyzer with DefaultConfig.
func NewDefault() *Analyzer {
	return New(DefaultConfig())
}

// AnalyzeText produces the full quality analysis for one answer. It never
// fails: malformed or empty input degrades to the documented floor values.
func (a *Analyzer) AnalyzeText(input Input) Result {
	sentences := segment(input.Text)
	if len(sentences) == 0 {
		// Documented degenerate case: no text means floor scores, not a
		// perfect empty report.
		return Result{
			GrammarScore:    0,
			FluencyScore:    0,
			VocabularyScore: 0,
			Errors:          []GrammarIssue{},
			Feedback:        "No answer content was detected.",
		}
	}

	issues := a.checkGrammar(sentences)
	repetitions := countByCategory(issues, CategoryRepetition)

	result := Result{
		GrammarScore:    a.grammarScore(issues),
		FluencyScore:    a.fluencyScore(sentences, repetitions),
		VocabularyScore: a.vocabularyScore(sentences),
		Errors:          toIssues(issues),
	}

	if input.ElapsedSeconds > 0 {
		wpm, pace := a.calculatePace(totalTokens(sentences), input.ElapsedSeconds)
		result.WordsPerMinute = &wpm
		result.Pace = pace
	}
	result.Feedback = a.feedback(result)
	return result
}

func (a *Analyzer) grammarScore(issues []positionedIssue) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityMajor:
			score -= a.cfg.PenaltyMajor
		case SeverityModerate:
			score -= a.cfg.PenaltyModerate
		case SeverityMinor:
			score -= a.cfg.PenaltyMinor
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func (a *Analyzer) feedback(r Result) string {
	var parts []string
	switch r.Pace {
	case PaceTooSlow:
		parts = append(parts, "Your pace was quite slow; try to deliver your points a little faster.")
	case PaceSlow:
		parts = append(parts, "Your pace was slightly slow.")
	case PaceModerate:
		parts = append(parts, "Your speaking pace was comfortable.")
	case PaceFast:
		parts = append(parts, "Your pace was slightly fast.")
	case PaceTooFast:
		parts = append(parts, "You spoke very quickly; slowing down would improve clarity.")
	}
	needsGrammar := r.GrammarScore < a.cfg.NeedsImprovement
	needsVocab := r.VocabularyScore < a.cfg.NeedsImprovement
	switch {
	case needsGrammar && needsVocab:
		parts = append(parts, "Focus on grammatical accuracy and try to use more varied, professional vocabulary.")
	case needsGrammar:
		parts = append(parts, "Focus on grammatical accuracy; review the flagged issues.")
	case needsVocab:
		parts = append(parts, "Try to use more varied, professional vocabulary.")
	default:
		parts = append(parts, "Grammar and vocabulary are in good shape.")
	}
	return strings.Join(parts, " ")
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

func countByCategory(issues []positionedIssue, category IssueCategory) int {
	n := 0
	for _, issue := range issues {
		if issue.Category == category {
			n++
		}
	}
	return n
}

func clampSub(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
