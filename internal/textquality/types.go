package textquality

// IssueCategory classifies a detected grammar issue. The set is closed;
// adding a category requires updating categoryOrder and severityFor.
type IssueCategory string

const (
	CategorySubjectVerbAgreement IssueCategory = "subject-verb-agreement"
	CategoryTenseConsistency     IssueCategory = "tense-consistency"
	CategoryArticleUsage         IssueCategory = "article-usage"
	CategoryPrepositionUsage     IssueCategory = "preposition-usage"
	CategoryRunOnSentence        IssueCategory = "run-on-sentence"
	CategorySentenceFragment     IssueCategory = "sentence-fragment"
	CategoryPunctuation          IssueCategory = "punctuation"
	CategoryWordChoice           IssueCategory = "word-choice"
	CategoryRepetition           IssueCategory = "repetition"
)

// Severity orders issues for display. It never feeds score arithmetic
// directly; scoring uses the per-severity penalty table in Config.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
)

// GrammarIssue is one detected problem instance.
type GrammarIssue struct {
	Category   IssueCategory `json:"category"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion"`
	Severity   Severity      `json:"severity"`
}

// Pace classifies speaking speed from words per minute.
type Pace string

const (
	PaceTooSlow  Pace = "too-slow"
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
	PaceTooFast  Pace = "too-fast"
)

// Input carries one answer to analyze. ElapsedSeconds <= 0 means pace is
// not computed.
type Input struct {
	Text           string `json:"text"`
	ElapsedSeconds int    `json:"elapsedSeconds,omitempty"`
}

// Result is the full analysis for one input. It is a value object: built
// fresh per call, never mutated afterwards.
type Result struct {
	GrammarScore    int            `json:"grammarScore"`
	FluencyScore    int            `json:"fluencyScore"`
	VocabularyScore int            `json:"vocabularyScore"`
	Errors          []GrammarIssue `json:"errors"`
	WordsPerMinute  *float64       `json:"wordsPerMinute,omitempty"`
	Pace            Pace           `json:"pace,omitempty"`
	Feedback        string         `json:"feedback"`
}

// CoverageResult reports which expected key points an answer touches.
type CoverageResult struct {
	Covered    []string `json:"covered"`
	Missed     []string `json:"missed"`
	Percentage int      `json:"percentage"`
}
