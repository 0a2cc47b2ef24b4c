package textquality

import (
	"strings"
	"unicode"
)

// Token is one word with its original casing preserved for messages.
type Token struct {
	Text  string
	Lower string
}

// Sentence is one segmented sentence. Raw excludes the terminal punctuation
// run, which is kept separately for the punctuation checks.
type Sentence struct {
	Raw      string
	Terminal string
	Tokens   []Token
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// segment splits raw text into sentences on runs of terminal punctuation.
// A trailing run of text with no terminal punctuation is one sentence with
// an empty Terminal. Whitespace-only input yields zero sentences.
func segment(text string) []Sentence {
	var sentences []Sentence
	runes := []rune(text)
	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		termStart := i
		for i < len(runes) && isTerminal(runes[i]) {
			i++
		}
		chunk := strings.TrimSpace(string(runes[start:termStart]))
		terminal := string(runes[termStart:i])
		if s, ok := buildSentence(chunk, terminal); ok {
			sentences = append(sentences, s)
		}
		start = i
	}
	if chunk := strings.TrimSpace(string(runes[start:])); chunk != "" {
		if s, ok := buildSentence(chunk, ""); ok {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func buildSentence(chunk, terminal string) (Sentence, bool) {
	tokens := tokenize(chunk)
	if len(tokens) == 0 {
		return Sentence{}, false
	}
	return Sentence{Raw: chunk, Terminal: terminal, Tokens: tokens}, true
}

// tokenize splits a sentence into word tokens, trimming leading and trailing
// punctuation per token while keeping interior apostrophes and hyphens.
func tokenize(chunk string) []Token {
	fields := strings.Fields(chunk)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if trimmed == "" {
			continue
		}
		tokens = append(tokens, Token{Text: trimmed, Lower: strings.ToLower(trimmed)})
	}
	return tokens
}

func totalTokens(sentences []Sentence) int {
	n := 0
	for _, s := range sentences {
		n += len(s.Tokens)
	}
	return n
}

// flatten returns every token in order along with its sentence and
// in-sentence index, for checks that span sentence boundaries.
type flatToken struct {
	Token
	sentence int
	index    int
}

func flatten(sentences []Sentence) []flatToken {
	out := make([]flatToken, 0, totalTokens(sentences))
	for si, s := range sentences {
		for ti, tok := range s.Tokens {
			out = append(out, flatToken{Token: tok, sentence: si, index: ti})
		}
	}
	return out
}
