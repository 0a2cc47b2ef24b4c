package assessments

import "time"

// Source identifies how the answer text reached us.
const (
	SourceTyped      = "typed"
	SourceTranscript = "transcript"
)

// Assessment is one scored answer, as persisted.
type Assessment struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	AnswerText      string         `json:"answerText"`
	Source          string         `json:"source"`
	ElapsedSeconds  int            `json:"elapsedSeconds,omitempty"`
	GrammarScore    int            `json:"grammarScore"`
	FluencyScore    int            `json:"fluencyScore"`
	VocabularyScore int            `json:"vocabularyScore"`
	Result          map[string]any `json:"result"`
	CreatedAt       time.Time      `json:"createdAt"`
}
